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

// OpportunityUseCase CRUD del embudo de oportunidades. Las etapas no tienen transiciones restringidas.
type OpportunityUseCase struct {
	repo  repository.OpportunityRepository
	guard *access.Guard
	refs  *References
}

// NewOpportunityUseCase construye el caso de uso.
func NewOpportunityUseCase(repo repository.OpportunityRepository, guard *access.Guard, refs *References) *OpportunityUseCase {
	return &OpportunityUseCase{repo: repo, guard: guard, refs: refs}
}

// Create crea una oportunidad. Etapa por defecto PROSPECCION.
func (uc *OpportunityUseCase) Create(ctx context.Context, userID string, in dto.CreateOpportunityRequest) (*dto.OpportunityResponse, error) {
	if err := requireNonNegative("value", in.Value); err != nil {
		return nil, err
	}
	if err := uc.guard.Authorize(ctx, userID, in.CompanyID); err != nil {
		return nil, err
	}
	if err := uc.refs.Client(ctx, in.CompanyID, in.ClientID); err != nil {
		return nil, err
	}
	now := time.Now()
	o := &entity.Opportunity{
		ID:                uuid.New().String(),
		CompanyID:         in.CompanyID,
		ClientID:          in.ClientID,
		Title:             strings.TrimSpace(in.Title),
		Value:             in.Value,
		Stage:             orDefault(in.Stage, entity.StageProspeccion),
		Probability:       in.Probability,
		ExpectedCloseDate: in.ExpectedCloseDate,
		Notes:             in.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return toOpportunityResponse(o), nil
}

// GetByID obtiene una oportunidad.
func (uc *OpportunityUseCase) GetByID(ctx context.Context, userID, id string) (*dto.OpportunityResponse, error) {
	o, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return toOpportunityResponse(o), nil
}

// List lista oportunidades; filtra por stage (o status como alias).
func (uc *OpportunityUseCase) List(ctx context.Context, userID string, q dto.ListQuery) ([]dto.OpportunityResponse, error) {
	f, err := scopedFilter(ctx, uc.guard, userID, q, orDefault(q.Stage, q.Status))
	if err != nil {
		return nil, err
	}
	out := make([]dto.OpportunityResponse, 0)
	if len(f.CompanyIDs) == 0 {
		return out, nil
	}
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	for _, o := range list {
		out = append(out, *toOpportunityResponse(o))
	}
	return out, nil
}

// Update actualiza una oportunidad.
func (uc *OpportunityUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateOpportunityRequest) (*dto.OpportunityResponse, error) {
	o, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if in.Value != nil {
		if err := requireNonNegative("value", *in.Value); err != nil {
			return nil, err
		}
		o.Value = *in.Value
	}
	if in.ClientID != nil {
		if err := uc.refs.Client(ctx, o.CompanyID, in.ClientID); err != nil {
			return nil, err
		}
		o.ClientID = in.ClientID
	}
	if in.Title != nil {
		o.Title = strings.TrimSpace(*in.Title)
	}
	if in.Stage != nil {
		o.Stage = *in.Stage
	}
	if in.Probability != nil {
		o.Probability = *in.Probability
	}
	if in.ExpectedCloseDate != nil {
		o.ExpectedCloseDate = in.ExpectedCloseDate
	}
	if in.Notes != nil {
		o.Notes = *in.Notes
	}
	return uc.save(ctx, o)
}

// UpdateStage mueve la oportunidad a cualquier etapa válida.
func (uc *OpportunityUseCase) UpdateStage(ctx context.Context, userID, id, stage string) (*dto.OpportunityResponse, error) {
	o, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	o.Stage = stage
	return uc.save(ctx, o)
}

// Delete elimina una oportunidad.
func (uc *OpportunityUseCase) Delete(ctx context.Context, userID, id string) error {
	if _, err := uc.load(ctx, userID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *OpportunityUseCase) load(ctx context.Context, userID, id string) (*entity.Opportunity, error) {
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.guard.Authorize(ctx, userID, o.CompanyID); err != nil {
		return nil, err
	}
	return o, nil
}

func (uc *OpportunityUseCase) save(ctx context.Context, o *entity.Opportunity) (*dto.OpportunityResponse, error) {
	o.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return toOpportunityResponse(o), nil
}

func toOpportunityResponse(o *entity.Opportunity) *dto.OpportunityResponse {
	return &dto.OpportunityResponse{
		ID:                o.ID,
		CompanyID:         o.CompanyID,
		ClientID:          o.ClientID,
		Title:             o.Title,
		Value:             o.Value,
		Stage:             o.Stage,
		Probability:       o.Probability,
		ExpectedCloseDate: o.ExpectedCloseDate,
		Notes:             o.Notes,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}
