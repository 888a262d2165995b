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

// ContractUseCase CRUD de contratos.
type ContractUseCase struct {
	repo  repository.ContractRepository
	guard *access.Guard
	refs  *References
}

// NewContractUseCase construye el caso de uso.
func NewContractUseCase(repo repository.ContractRepository, guard *access.Guard, refs *References) *ContractUseCase {
	return &ContractUseCase{repo: repo, guard: guard, refs: refs}
}

// Create crea un contrato. Estado por defecto DRAFT.
func (uc *ContractUseCase) Create(ctx context.Context, userID string, in dto.CreateContractRequest) (*dto.ContractResponse, error) {
	if err := requireNonNegative("value", in.Value); err != nil {
		return nil, err
	}
	if err := validateContractDates(in.StartDate, in.EndDate); err != nil {
		return nil, err
	}
	if err := uc.guard.Authorize(ctx, userID, in.CompanyID); err != nil {
		return nil, err
	}
	if err := uc.refs.Client(ctx, in.CompanyID, in.ClientID); err != nil {
		return nil, err
	}
	now := time.Now()
	c := &entity.Contract{
		ID:        uuid.New().String(),
		CompanyID: in.CompanyID,
		ClientID:  in.ClientID,
		Title:     strings.TrimSpace(in.Title),
		Value:     in.Value,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Status:    orDefault(in.Status, entity.ContractStatusDraft),
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toContractResponse(c), nil
}

// GetByID obtiene un contrato.
func (uc *ContractUseCase) GetByID(ctx context.Context, userID, id string) (*dto.ContractResponse, error) {
	c, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return toContractResponse(c), nil
}

// List lista contratos de las empresas visibles.
func (uc *ContractUseCase) List(ctx context.Context, userID string, q dto.ListQuery) ([]dto.ContractResponse, error) {
	f, err := scopedFilter(ctx, uc.guard, userID, q, q.Status)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContractResponse, 0)
	if len(f.CompanyIDs) == 0 {
		return out, nil
	}
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	for _, c := range list {
		out = append(out, *toContractResponse(c))
	}
	return out, nil
}

// Update actualiza un contrato.
func (uc *ContractUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateContractRequest) (*dto.ContractResponse, error) {
	c, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if in.Value != nil {
		if err := requireNonNegative("value", *in.Value); err != nil {
			return nil, err
		}
		c.Value = *in.Value
	}
	if in.ClientID != nil {
		if err := uc.refs.Client(ctx, c.CompanyID, in.ClientID); err != nil {
			return nil, err
		}
		c.ClientID = in.ClientID
	}
	if in.Title != nil {
		c.Title = strings.TrimSpace(*in.Title)
	}
	if in.StartDate != nil {
		c.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		c.EndDate = in.EndDate
	}
	if in.Status != nil {
		c.Status = *in.Status
	}
	if in.Notes != nil {
		c.Notes = *in.Notes
	}
	if err := validateContractDates(c.StartDate, c.EndDate); err != nil {
		return nil, err
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toContractResponse(c), nil
}

// Delete elimina un contrato.
func (uc *ContractUseCase) Delete(ctx context.Context, userID, id string) error {
	if _, err := uc.load(ctx, userID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func validateContractDates(start time.Time, end *time.Time) error {
	if end != nil && end.Before(start) {
		return domain.ErrInvalidInput
	}
	return nil
}

func (uc *ContractUseCase) load(ctx context.Context, userID, id string) (*entity.Contract, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.guard.Authorize(ctx, userID, c.CompanyID); err != nil {
		return nil, err
	}
	return c, nil
}

func toContractResponse(c *entity.Contract) *dto.ContractResponse {
	return &dto.ContractResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		ClientID:  c.ClientID,
		Title:     c.Title,
		Value:     c.Value,
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
		Status:    c.Status,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
