package repository

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	ListByUser(ctx context.Context, userID string) ([]*entity.Company, error)
}

// MembershipRepository acceso a las filas user_companies.
type MembershipRepository interface {
	Create(ctx context.Context, m *entity.UserCompany) error
	// Get devuelve nil si el usuario no pertenece a la empresa.
	Get(ctx context.Context, userID, companyID string) (*entity.UserCompany, error)
	CompanyIDsByUser(ctx context.Context, userID string) ([]string, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.UserCompany, error)
	ListMembers(ctx context.Context, companyID string) ([]*entity.CompanyMember, error)
	Delete(ctx context.Context, userID, companyID string) error
}
