package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// ── Fakes en memoria ──────────────────────────────────────────────────────────

type fakeUsers struct {
	byID map[string]*entity.User
}

func (f *fakeUsers) Create(_ context.Context, u *entity.User) error {
	for _, x := range f.byID {
		if x.Email == u.Email {
			return domain.ErrDuplicate
		}
	}
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	return f.byID[id], nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type fakeTokens struct {
	mu     sync.Mutex
	byHash map[string]*entity.RefreshToken
}

func (f *fakeTokens) Create(_ context.Context, t *entity.RefreshToken) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byHash[t.TokenHash] = t
	return nil
}

func (f *fakeTokens) Consume(_ context.Context, hash string) (*entity.RefreshToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.byHash[hash]
	if !ok {
		return nil, nil
	}
	delete(f.byHash, hash)
	return t, nil
}

func (f *fakeTokens) DeleteByUser(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for h, t := range f.byHash {
		if t.UserID == userID {
			delete(f.byHash, h)
		}
	}
	return nil
}

func (f *fakeTokens) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byHash)
}

type fakeTx struct{ tokens *fakeTokens }

func (f fakeTx) RunSession(_ context.Context, fn func(repository.RefreshTokenRepository) error) error {
	return fn(f.tokens)
}

type fakeMemberships struct{ rows []*entity.UserCompany }

func (f *fakeMemberships) Create(_ context.Context, m *entity.UserCompany) error {
	f.rows = append(f.rows, m)
	return nil
}
func (f *fakeMemberships) Get(context.Context, string, string) (*entity.UserCompany, error) {
	return nil, nil
}
func (f *fakeMemberships) CompanyIDsByUser(context.Context, string) ([]string, error) {
	return nil, nil
}
func (f *fakeMemberships) ListByUser(_ context.Context, userID string) ([]*entity.UserCompany, error) {
	var out []*entity.UserCompany
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}
func (f *fakeMemberships) ListMembers(context.Context, string) ([]*entity.CompanyMember, error) {
	return nil, nil
}
func (f *fakeMemberships) Delete(context.Context, string, string) error { return nil }

func newTestUseCase() (*AuthUseCase, *fakeTokens, *fakeMemberships) {
	tokens := &fakeTokens{byHash: map[string]*entity.RefreshToken{}}
	members := &fakeMemberships{}
	uc := NewAuthUseCase(
		&fakeUsers{byID: map[string]*entity.User{}},
		members,
		tokens,
		fakeTx{tokens: tokens},
		JWTConfig{
			Secret:        "access-secret",
			RefreshSecret: "refresh-secret",
			Issuer:        "crm-test",
			AccessTTL:     15 * time.Minute,
			RefreshTTL:    time.Hour,
		},
	)
	return uc, tokens, members
}

func registerAndLogin(t *testing.T, uc *AuthUseCase) *dto.LoginResponse {
	t.Helper()
	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "Ana@Acme.co", Password: "secreto123", Name: "Ana"})
	require.NoError(t, err)
	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@acme.co", Password: "secreto123"})
	require.NoError(t, err)
	return out
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _, _ := newTestUseCase()
	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "ana@acme.co", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{Email: "ANA@acme.co", Password: "otro12345"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _, _ := newTestUseCase()
	registerAndLogin(t, uc)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@acme.co", Password: "malo"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@acme.co", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "usuario inexistente no se distingue de password incorrecto")
}

func TestLogin_GuardaSoloHash(t *testing.T) {
	uc, tokens, _ := newTestUseCase()
	out := registerAndLogin(t, uc)

	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, 1, tokens.count())
	_, stored := tokens.byHash[hashToken(out.RefreshToken)]
	assert.True(t, stored)
	_, plain := tokens.byHash[out.RefreshToken]
	assert.False(t, plain, "el token en claro nunca se persiste")
}

func TestRefresh_UnSoloUso(t *testing.T) {
	uc, tokens, _ := newTestUseCase()
	out := registerAndLogin(t, uc)

	pair, err := uc.Refresh(context.Background(), out.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, out.RefreshToken, pair.RefreshToken)
	assert.Equal(t, 1, tokens.count(), "la rotación reemplaza la sesión")

	_, err = uc.Refresh(context.Background(), out.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken, "el token ya canjeado no debe servir de nuevo")

	_, err = uc.Refresh(context.Background(), pair.RefreshToken)
	assert.NoError(t, err, "el token nuevo sí es válido")
}

func TestRefresh_ConcurrenteSoloUnoGana(t *testing.T) {
	uc, _, _ := newTestUseCase()
	out := registerAndLogin(t, uc)

	const n = 8
	var wg sync.WaitGroup
	results := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Refresh(context.Background(), out.RefreshToken)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	ok := 0
	for err := range results {
		if err == nil {
			ok++
		} else {
			assert.ErrorIs(t, err, domain.ErrInvalidToken)
		}
	}
	assert.Equal(t, 1, ok)
}

func TestRefresh_AccessTokenNoSirve(t *testing.T) {
	uc, _, _ := newTestUseCase()
	out := registerAndLogin(t, uc)

	_, err := uc.Refresh(context.Background(), out.AccessToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestRefresh_Expirado(t *testing.T) {
	uc, _, _ := newTestUseCase()
	out := registerAndLogin(t, uc)

	uc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err := uc.Refresh(context.Background(), out.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestLogout_RevocaSesiones(t *testing.T) {
	uc, tokens, _ := newTestUseCase()
	out := registerAndLogin(t, uc)

	require.NoError(t, uc.Logout(context.Background(), out.User.ID))
	assert.Equal(t, 0, tokens.count())

	_, err := uc.Refresh(context.Background(), out.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestMe_IncluyeMembresias(t *testing.T) {
	uc, _, members := newTestUseCase()
	out := registerAndLogin(t, uc)
	members.rows = append(members.rows, &entity.UserCompany{UserID: out.User.ID, CompanyID: "c1", Role: entity.RoleAdmin})

	me, err := uc.Me(context.Background(), out.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@acme.co", me.Email)
	require.Len(t, me.Companies, 1)
	assert.Equal(t, entity.RoleAdmin, me.Companies[0].Role)
}
