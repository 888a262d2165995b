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

// CampaignUseCase CRUD de campañas de marketing.
type CampaignUseCase struct {
	repo  repository.CampaignRepository
	guard *access.Guard
}

// NewCampaignUseCase construye el caso de uso.
func NewCampaignUseCase(repo repository.CampaignRepository, guard *access.Guard) *CampaignUseCase {
	return &CampaignUseCase{repo: repo, guard: guard}
}

// Create crea una campaña. Estado por defecto PLANIFICADA.
func (uc *CampaignUseCase) Create(ctx context.Context, userID string, in dto.CreateCampaignRequest) (*dto.CampaignResponse, error) {
	if err := requireNonNegative("budget", in.Budget); err != nil {
		return nil, err
	}
	if err := requireNonNegative("spent", in.Spent); err != nil {
		return nil, err
	}
	if err := uc.guard.Authorize(ctx, userID, in.CompanyID); err != nil {
		return nil, err
	}
	now := time.Now()
	c := &entity.MarketingCampaign{
		ID:          uuid.New().String(),
		CompanyID:   in.CompanyID,
		Name:        strings.TrimSpace(in.Name),
		Type:        in.Type,
		Status:      orDefault(in.Status, entity.CampaignStatusPlanificada),
		Budget:      in.Budget,
		Spent:       in.Spent,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Leads:       in.Leads,
		Conversions: in.Conversions,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCampaignResponse(c), nil
}

// GetByID obtiene una campaña.
func (uc *CampaignUseCase) GetByID(ctx context.Context, userID, id string) (*dto.CampaignResponse, error) {
	c, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return toCampaignResponse(c), nil
}

// List lista campañas; filtra por status y type.
func (uc *CampaignUseCase) List(ctx context.Context, userID string, q dto.ListQuery) ([]dto.CampaignResponse, error) {
	f, err := scopedFilter(ctx, uc.guard, userID, q, q.Status)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CampaignResponse, 0)
	if len(f.CompanyIDs) == 0 {
		return out, nil
	}
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	for _, c := range list {
		out = append(out, *toCampaignResponse(c))
	}
	return out, nil
}

// Update actualiza una campaña.
func (uc *CampaignUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateCampaignRequest) (*dto.CampaignResponse, error) {
	c, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if in.Budget != nil {
		if err := requireNonNegative("budget", *in.Budget); err != nil {
			return nil, err
		}
		c.Budget = *in.Budget
	}
	if in.Spent != nil {
		if err := requireNonNegative("spent", *in.Spent); err != nil {
			return nil, err
		}
		c.Spent = *in.Spent
	}
	if in.Name != nil {
		c.Name = strings.TrimSpace(*in.Name)
	}
	if in.Type != nil {
		c.Type = *in.Type
	}
	if in.Status != nil {
		c.Status = *in.Status
	}
	if in.StartDate != nil {
		c.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		c.EndDate = in.EndDate
	}
	if in.Leads != nil {
		c.Leads = *in.Leads
	}
	if in.Conversions != nil {
		c.Conversions = *in.Conversions
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCampaignResponse(c), nil
}

// Delete elimina una campaña.
func (uc *CampaignUseCase) Delete(ctx context.Context, userID, id string) error {
	if _, err := uc.load(ctx, userID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *CampaignUseCase) load(ctx context.Context, userID, id string) (*entity.MarketingCampaign, error) {
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

func toCampaignResponse(c *entity.MarketingCampaign) *dto.CampaignResponse {
	return &dto.CampaignResponse{
		ID:          c.ID,
		CompanyID:   c.CompanyID,
		Name:        c.Name,
		Type:        c.Type,
		Status:      c.Status,
		Budget:      c.Budget,
		Spent:       c.Spent,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		Leads:       c.Leads,
		Conversions: c.Conversions,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
