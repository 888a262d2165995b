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

// ExpenseUseCase CRUD de gastos. El listado es paginado.
type ExpenseUseCase struct {
	repo  repository.ExpenseRepository
	guard *access.Guard
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository, guard *access.Guard) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo, guard: guard}
}

// Create registra un gasto. Estado por defecto PENDING.
func (uc *ExpenseUseCase) Create(ctx context.Context, userID string, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if err := requirePositive("amount", in.Amount); err != nil {
		return nil, err
	}
	if err := uc.guard.Authorize(ctx, userID, in.CompanyID); err != nil {
		return nil, err
	}
	now := time.Now()
	expense := &entity.Expense{
		ID:            uuid.New().String(),
		CompanyID:     in.CompanyID,
		Supplier:      in.Supplier,
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
	if err := uc.repo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// GetByID obtiene un gasto.
func (uc *ExpenseUseCase) GetByID(ctx context.Context, userID, id string) (*dto.ExpenseResponse, error) {
	expense, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// List lista gastos paginados de las empresas visibles.
func (uc *ExpenseUseCase) List(ctx context.Context, userID string, q dto.ListQuery, page dto.PageRequest) (*dto.ExpenseListResponse, error) {
	page.DefaultPage()
	f, err := scopedFilter(ctx, uc.guard, userID, q, q.Status)
	if err != nil {
		return nil, err
	}
	out := &dto.ExpenseListResponse{Items: make([]dto.ExpenseResponse, 0), Page: dto.PageResponse{Page: page.Page, Limit: page.Limit}}
	if len(f.CompanyIDs) == 0 {
		return out, nil
	}
	f.Limit, f.Offset = page.Limit, page.Offset()
	list, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	for _, i := range list {
		out.Items = append(out.Items, *toExpenseResponse(i))
	}
	out.Page.Total = total
	return out, nil
}

// Update actualiza un gasto.
func (uc *ExpenseUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	expense, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if in.Amount != nil {
		if err := requirePositive("amount", *in.Amount); err != nil {
			return nil, err
		}
		expense.Amount = *in.Amount
	}
	if in.Supplier != nil {
		expense.Supplier = *in.Supplier
	}
	if in.Description != nil {
		expense.Description = strings.TrimSpace(*in.Description)
	}
	if in.Category != nil {
		expense.Category = *in.Category
	}
	if in.Date != nil {
		expense.Date = *in.Date
	}
	if in.Status != nil {
		expense.Status = *in.Status
	}
	if in.PaymentMethod != nil {
		expense.PaymentMethod = *in.PaymentMethod
	}
	if in.Reference != nil {
		expense.Reference = *in.Reference
	}
	expense.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// Delete elimina un gasto.
func (uc *ExpenseUseCase) Delete(ctx context.Context, userID, id string) error {
	if _, err := uc.load(ctx, userID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *ExpenseUseCase) load(ctx context.Context, userID, id string) (*entity.Expense, error) {
	expense, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.guard.Authorize(ctx, userID, expense.CompanyID); err != nil {
		return nil, err
	}
	return expense, nil
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:            e.ID,
		CompanyID:     e.CompanyID,
		Supplier:      e.Supplier,
		Description:   e.Description,
		Category:      e.Category,
		Amount:        e.Amount,
		Date:          e.Date,
		Status:        e.Status,
		PaymentMethod: e.PaymentMethod,
		Reference:     e.Reference,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
