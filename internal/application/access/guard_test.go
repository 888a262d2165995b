package access_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/access"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
)

type fakeMemberships struct {
	rows map[string]*entity.UserCompany
	err  error
}

func newFakeMemberships(rows ...entity.UserCompany) *fakeMemberships {
	f := &fakeMemberships{rows: map[string]*entity.UserCompany{}}
	for i := range rows {
		r := rows[i]
		f.rows[r.UserID+"|"+r.CompanyID] = &r
	}
	return f
}

func (f *fakeMemberships) Create(_ context.Context, m *entity.UserCompany) error {
	f.rows[m.UserID+"|"+m.CompanyID] = m
	return nil
}

func (f *fakeMemberships) Get(_ context.Context, userID, companyID string) (*entity.UserCompany, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows[userID+"|"+companyID], nil
}

func (f *fakeMemberships) CompanyIDsByUser(_ context.Context, userID string) ([]string, error) {
	var ids []string
	for _, r := range f.rows {
		if r.UserID == userID {
			ids = append(ids, r.CompanyID)
		}
	}
	return ids, nil
}

func (f *fakeMemberships) ListByUser(context.Context, string) ([]*entity.UserCompany, error) {
	return nil, nil
}

func (f *fakeMemberships) ListMembers(context.Context, string) ([]*entity.CompanyMember, error) {
	return nil, nil
}

func (f *fakeMemberships) Delete(_ context.Context, userID, companyID string) error {
	delete(f.rows, userID+"|"+companyID)
	return nil
}

func TestAuthorize_MiembroPermitido(t *testing.T) {
	g := access.NewGuard(newFakeMemberships(entity.UserCompany{UserID: "u1", CompanyID: "c1", Role: entity.RoleUser}))
	assert.NoError(t, g.Authorize(context.Background(), "u1", "c1"))
}

func TestAuthorize_NoMiembroProhibido(t *testing.T) {
	g := access.NewGuard(newFakeMemberships(entity.UserCompany{UserID: "u1", CompanyID: "c1"}))
	err := g.Authorize(context.Background(), "u1", "c2")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAuthorize_RolNoSeConsulta(t *testing.T) {
	g := access.NewGuard(newFakeMemberships(entity.UserCompany{UserID: "u1", CompanyID: "c1", Role: ""}))
	assert.NoError(t, g.Authorize(context.Background(), "u1", "c1"))
}

func TestAuthorize_ErrorDeInfraestructuraNoEsForbidden(t *testing.T) {
	f := newFakeMemberships()
	f.err = errors.New("conexión perdida")
	err := access.NewGuard(f).Authorize(context.Background(), "u1", "c1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrForbidden)
}

func TestMembership_DevuelveLaFila(t *testing.T) {
	g := access.NewGuard(newFakeMemberships(entity.UserCompany{UserID: "u1", CompanyID: "c1", Role: entity.RoleAdmin}))

	m, err := g.Membership(context.Background(), "u1", "c1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, m.Role)

	_, err = g.Membership(context.Background(), "", "c1")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = g.Membership(context.Background(), "u1", "")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestScope_SinFiltroUsaTodasLasEmpresas(t *testing.T) {
	g := access.NewGuard(newFakeMemberships(
		entity.UserCompany{UserID: "u1", CompanyID: "c1"},
		entity.UserCompany{UserID: "u1", CompanyID: "c2"},
		entity.UserCompany{UserID: "u2", CompanyID: "c3"},
	))
	ids, err := g.Scope(context.Background(), "u1", "")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"c1", "c2"}, ids)
}

func TestScope_FiltroAjenoProhibido(t *testing.T) {
	g := access.NewGuard(newFakeMemberships(entity.UserCompany{UserID: "u1", CompanyID: "c1"}))
	_, err := g.Scope(context.Background(), "u1", "c3")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestScope_FiltroPropio(t *testing.T) {
	g := access.NewGuard(newFakeMemberships(entity.UserCompany{UserID: "u1", CompanyID: "c1"}))
	ids, err := g.Scope(context.Background(), "u1", "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"c1"}, ids)
}
