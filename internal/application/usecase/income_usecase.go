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

// IncomeUseCase CRUD de ingresos. El listado es paginado.
type IncomeUseCase struct {
	repo  repository.IncomeRepository
	guard *access.Guard
	refs  *References
}

// NewIncomeUseCase construye el caso de uso.
func NewIncomeUseCase(repo repository.IncomeRepository, guard *access.Guard, refs *References) *IncomeUseCase {
	return &IncomeUseCase{repo: repo, guard: guard, refs: refs}
}

// Create registra un ingreso. Estado por defecto PENDING.
func (uc *IncomeUseCase) Create(ctx context.Context, userID string, in dto.CreateIncomeRequest) (*dto.IncomeResponse, error) {
	if err := requirePositive("amount", in.Amount); err != nil {
		return nil, err
	}
	if err := uc.guard.Authorize(ctx, userID, in.CompanyID); err != nil {
		return nil, err
	}
	if err := uc.refs.Client(ctx, in.CompanyID, in.ClientID); err != nil {
		return nil, err
	}
	now := time.Now()
	income := &entity.Income{
		ID:            uuid.New().String(),
		CompanyID:     in.CompanyID,
		ClientID:      in.ClientID,
		Description:   strings.TrimSpace(in.Description),
		Category:      in.Category,
		Amount:        in.Amount,
		Date:          in.Date,
		Status:        orDefault(in.Status, entity.PaymentStatusPending),
		PaymentMethod: in.PaymentMethod,
		Reference:     in.Reference,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, income); err != nil {
		return nil, err
	}
	return toIncomeResponse(income), nil
}

// GetByID obtiene un ingreso.
func (uc *IncomeUseCase) GetByID(ctx context.Context, userID, id string) (*dto.IncomeResponse, error) {
	income, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return toIncomeResponse(income), nil
}

// List lista ingresos paginados de las empresas visibles.
func (uc *IncomeUseCase) List(ctx context.Context, userID string, q dto.ListQuery, page dto.PageRequest) (*dto.IncomeListResponse, error) {
	page.DefaultPage()
	f, err := scopedFilter(ctx, uc.guard, userID, q, q.Status)
	if err != nil {
		return nil, err
	}
	out := &dto.IncomeListResponse{Items: make([]dto.IncomeResponse, 0), Page: dto.PageResponse{Page: page.Page, Limit: page.Limit}}
	if len(f.CompanyIDs) == 0 {
		return out, nil
	}
	f.Limit, f.Offset = page.Limit, page.Offset()
	list, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	for _, i := range list {
		out.Items = append(out.Items, *toIncomeResponse(i))
	}
	out.Page.Total = total
	return out, nil
}

// Update actualiza un ingreso.
func (uc *IncomeUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateIncomeRequest) (*dto.IncomeResponse, error) {
	income, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if in.Amount != nil {
		if err := requirePositive("amount", *in.Amount); err != nil {
			return nil, err
		}
		income.Amount = *in.Amount
	}
	if in.ClientID != nil {
		if err := uc.refs.Client(ctx, income.CompanyID, in.ClientID); err != nil {
			return nil, err
		}
		income.ClientID = in.ClientID
	}
	if in.Description != nil {
		income.Description = strings.TrimSpace(*in.Description)
	}
	if in.Category != nil {
		income.Category = *in.Category
	}
	if in.Date != nil {
		income.Date = *in.Date
	}
	if in.Status != nil {
		income.Status = *in.Status
	}
	if in.PaymentMethod != nil {
		income.PaymentMethod = *in.PaymentMethod
	}
	if in.Reference != nil {
		income.Reference = *in.Reference
	}
	income.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, income); err != nil {
		return nil, err
	}
	return toIncomeResponse(income), nil
}

// Delete elimina un ingreso.
func (uc *IncomeUseCase) Delete(ctx context.Context, userID, id string) error {
	if _, err := uc.load(ctx, userID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *IncomeUseCase) load(ctx context.Context, userID, id string) (*entity.Income, error) {
	income, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if income == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.guard.Authorize(ctx, userID, income.CompanyID); err != nil {
		return nil, err
	}
	return income, nil
}

func toIncomeResponse(i *entity.Income) *dto.IncomeResponse {
	return &dto.IncomeResponse{
		ID:            i.ID,
		CompanyID:     i.CompanyID,
		ClientID:      i.ClientID,
		Description:   i.Description,
		Category:      i.Category,
		Amount:        i.Amount,
		Date:          i.Date,
		Status:        i.Status,
		PaymentMethod: i.PaymentMethod,
		Reference:     i.Reference,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}
