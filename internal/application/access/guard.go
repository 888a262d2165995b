package access

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// Guard verifica la pertenencia usuario-empresa antes de cualquier lectura o escritura
// sobre datos de una empresa. Es el único punto de autorización por tenant.
type Guard struct {
	memberships repository.MembershipRepository
}

// NewGuard construye el guard sobre el repositorio de membresías.
func NewGuard(memberships repository.MembershipRepository) *Guard {
	return &Guard{memberships: memberships}
}

// Authorize devuelve domain.ErrForbidden si el usuario no tiene fila en user_companies
// para la empresa. El rol no se consulta.
func (g *Guard) Authorize(ctx context.Context, userID, companyID string) error {
	_, err := g.Membership(ctx, userID, companyID)
	return err
}

// Membership devuelve la fila de membresía o ErrForbidden si no existe.
func (g *Guard) Membership(ctx context.Context, userID, companyID string) (*entity.UserCompany, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	if companyID == "" {
		return nil, domain.ErrForbidden
	}
	m, err := g.memberships.Get(ctx, userID, companyID)
	if err != nil {
		return nil, fmt.Errorf("consultar membresía: %w", err)
	}
	if m == nil {
		return nil, domain.ErrForbidden
	}
	return m, nil
}

// Scope resuelve las empresas sobre las que filtra un listado.
// Con companyID explícito exige membresía; sin él usa todas las empresas del usuario.
func (g *Guard) Scope(ctx context.Context, userID, companyID string) ([]string, error) {
	if companyID != "" {
		if err := g.Authorize(ctx, userID, companyID); err != nil {
			return nil, err
		}
		return []string{companyID}, nil
	}
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	ids, err := g.memberships.CompanyIDsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listar empresas del usuario: %w", err)
	}
	return ids, nil
}
