package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
	"github.com/jhoicas/crm-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens. Access y refresh usan secretos distintos.
type JWTConfig struct {
	Secret        string
	RefreshSecret string
	Issuer        string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// AuthUseCase casos de uso de autenticación: registro, login, refresh, logout y perfil.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	memberships repository.MembershipRepository
	tokens      repository.RefreshTokenRepository
	tx          SessionTxRunner
	jwtCfg      JWTConfig
	now         func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	memberships repository.MembershipRepository,
	tokens repository.RefreshTokenRepository,
	tx SessionTxRunner,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		memberships: memberships,
		tokens:      tokens,
		tx:          tx,
		jwtCfg:      jwtCfg,
		now:         time.Now,
	}
}

// Register crea un usuario con password bcrypt. Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := normalizeEmail(in.Email)
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	now := uc.now()
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password y emite un par access/refresh.
// Usuario inexistente y password incorrecto producen el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.UserStatusActive {
		return nil, domain.ErrForbidden
	}
	pair, err := uc.issuePair(ctx, uc.tokens, user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{TokenPair: *pair, User: *toUserResponse(user)}, nil
}

// Refresh canjea un refresh token por un par nuevo. El token presentado se consume
// (DELETE ... RETURNING) y el nuevo se guarda en la misma transacción, así que
// cada refresh token sirve una sola vez. Cualquier fallo devuelve ErrInvalidToken.
func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPair, error) {
	claims, err := jwt.Parse(uc.jwtCfg.RefreshSecret, refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	user, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Status != entity.UserStatusActive {
		return nil, domain.ErrInvalidToken
	}

	var pair *dto.TokenPair
	err = uc.tx.RunSession(ctx, func(tokens repository.RefreshTokenRepository) error {
		stored, err := tokens.Consume(ctx, hashToken(refreshToken))
		if err != nil {
			return err
		}
		if stored == nil || stored.UserID != claims.UserID || stored.Expired(uc.now()) {
			return domain.ErrInvalidToken
		}
		pair, err = uc.issuePair(ctx, tokens, user)
		return err
	})
	if err != nil {
		return nil, err
	}
	return pair, nil
}

// Logout revoca todas las sesiones de refresh del usuario.
func (uc *AuthUseCase) Logout(ctx context.Context, userID string) error {
	if err := uc.tokens.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("revocar sesiones: %w", err)
	}
	return nil
}

// Me devuelve el usuario autenticado y sus membresías.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.MeResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	rows, err := uc.memberships.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := &dto.MeResponse{UserResponse: *toUserResponse(user), Companies: make([]dto.MembershipResponse, 0, len(rows))}
	for _, m := range rows {
		out.Companies = append(out.Companies, dto.MembershipResponse{CompanyID: m.CompanyID, Role: m.Role})
	}
	return out, nil
}

func (uc *AuthUseCase) issuePair(ctx context.Context, tokens repository.RefreshTokenRepository, user *entity.User) (*dto.TokenPair, error) {
	access, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.AccessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.Generate(uc.jwtCfg.RefreshSecret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.RefreshTTL)
	if err != nil {
		return nil, err
	}
	if err := tokens.Create(ctx, &entity.RefreshToken{
		ID:        refresh.ID,
		UserID:    user.ID,
		TokenHash: hashToken(refresh.Token),
		ExpiresAt: refresh.ExpiresAt,
		CreatedAt: uc.now(),
	}); err != nil {
		return nil, fmt.Errorf("guardar refresh token: %w", err)
	}
	return &dto.TokenPair{
		AccessToken:      access.Token,
		RefreshToken:     refresh.Token,
		TokenType:        "Bearer",
		ExpiresAt:        access.ExpiresAt,
		RefreshExpiresAt: refresh.ExpiresAt,
	}, nil
}

// hashToken sha256 hex del token; es lo único que se persiste.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
