package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-api/internal/application/access"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para empresas y sus miembros.
type CompanyUseCase struct {
	repo        repository.CompanyRepository
	memberships repository.MembershipRepository
	users       repository.UserRepository
	guard       *access.Guard
	tx          CompanyTxRunner
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(
	repo repository.CompanyRepository,
	memberships repository.MembershipRepository,
	users repository.UserRepository,
	guard *access.Guard,
	tx CompanyTxRunner,
) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, memberships: memberships, users: users, guard: guard, tx: tx}
}

// Create crea una empresa y deja al creador como SUPER_ADMIN, ambas filas en la misma transacción.
func (uc *CompanyUseCase) Create(ctx context.Context, userID string, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		TaxID:     in.TaxID,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := uc.tx.RunCompany(ctx, func(companies repository.CompanyRepository, memberships repository.MembershipRepository) error {
		if err := companies.Create(ctx, company); err != nil {
			return err
		}
		return memberships.Create(ctx, &entity.UserCompany{
			UserID:    userID,
			CompanyID: company.ID,
			Role:      entity.RoleSuperAdmin,
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa a la que el usuario pertenece.
func (uc *CompanyUseCase) GetByID(ctx context.Context, userID, id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.guard.Authorize(ctx, userID, company.ID); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// ListMine lista las empresas del usuario.
func (uc *CompanyUseCase) ListMine(ctx context.Context, userID string) ([]dto.CompanyResponse, error) {
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCompanyResponse(c))
	}
	return out, nil
}

// Update actualiza datos de una empresa del usuario.
func (uc *CompanyUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.guard.Authorize(ctx, userID, company.ID); err != nil {
		return nil, err
	}
	if in.Name != nil {
		company.Name = strings.TrimSpace(*in.Name)
	}
	if in.TaxID != nil {
		company.TaxID = *in.TaxID
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}
	if in.Email != nil {
		company.Email = *in.Email
	}
	if in.Status != nil {
		company.Status = *in.Status
	}
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// ListMembers lista los miembros de una empresa del usuario.
func (uc *CompanyUseCase) ListMembers(ctx context.Context, userID, companyID string) ([]dto.MemberResponse, error) {
	if err := uc.guard.Authorize(ctx, userID, companyID); err != nil {
		return nil, err
	}
	list, err := uc.memberships.ListMembers(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MemberResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MemberResponse{
			UserID:    m.UserID,
			Email:     m.Email,
			Name:      m.Name,
			Role:      m.Role,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}

// AddMember agrega un usuario registrado a la empresa. Rol por defecto USER.
func (uc *CompanyUseCase) AddMember(ctx context.Context, userID, companyID string, in dto.AddMemberRequest) (*dto.MemberResponse, error) {
	if err := uc.guard.Authorize(ctx, userID, companyID); err != nil {
		return nil, err
	}
	user, err := uc.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	m := &entity.UserCompany{
		UserID:    user.ID,
		CompanyID: companyID,
		Role:      orDefault(in.Role, entity.RoleUser),
		CreatedAt: time.Now(),
	}
	if err := uc.memberships.Create(ctx, m); err != nil {
		return nil, err // ErrDuplicate si ya es miembro
	}
	return &dto.MemberResponse{UserID: user.ID, Email: user.Email, Name: user.Name, Role: m.Role, CreatedAt: m.CreatedAt}, nil
}

// RemoveMember quita la membresía de un usuario.
func (uc *CompanyUseCase) RemoveMember(ctx context.Context, userID, companyID, memberID string) error {
	if err := uc.guard.Authorize(ctx, userID, companyID); err != nil {
		return err
	}
	existing, err := uc.memberships.Get(ctx, memberID, companyID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.memberships.Delete(ctx, memberID, companyID)
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
