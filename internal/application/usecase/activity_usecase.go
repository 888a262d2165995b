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

// ActivityUseCase CRUD de actividades comerciales.
type ActivityUseCase struct {
	repo  repository.ActivityRepository
	guard *access.Guard
	refs  *References
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(repo repository.ActivityRepository, guard *access.Guard, refs *References) *ActivityUseCase {
	return &ActivityUseCase{repo: repo, guard: guard, refs: refs}
}

// Create agenda una actividad pendiente.
func (uc *ActivityUseCase) Create(ctx context.Context, userID string, in dto.CreateActivityRequest) (*dto.ActivityResponse, error) {
	if err := uc.guard.Authorize(ctx, userID, in.CompanyID); err != nil {
		return nil, err
	}
	if err := uc.refs.Client(ctx, in.CompanyID, in.ClientID); err != nil {
		return nil, err
	}
	if err := uc.refs.Assignee(ctx, in.CompanyID, in.AssignedTo); err != nil {
		return nil, err
	}
	now := time.Now()
	a := &entity.Activity{
		ID:          uuid.New().String(),
		CompanyID:   in.CompanyID,
		ClientID:    in.ClientID,
		Type:        in.Type,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		DueDate:     in.DueDate,
		AssignedTo:  in.AssignedTo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return toActivityResponse(a), nil
}

// GetByID obtiene una actividad.
func (uc *ActivityUseCase) GetByID(ctx context.Context, userID, id string) (*dto.ActivityResponse, error) {
	a, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return toActivityResponse(a), nil
}

// List lista actividades. El filtro status acepta "pending" o "completed"; type filtra por tipo.
func (uc *ActivityUseCase) List(ctx context.Context, userID string, q dto.ListQuery) ([]dto.ActivityResponse, error) {
	f, err := scopedFilter(ctx, uc.guard, userID, q, q.Status)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ActivityResponse, 0)
	if len(f.CompanyIDs) == 0 {
		return out, nil
	}
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	for _, a := range list {
		out = append(out, *toActivityResponse(a))
	}
	return out, nil
}

// Update actualiza una actividad.
func (uc *ActivityUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateActivityRequest) (*dto.ActivityResponse, error) {
	a, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if in.ClientID != nil {
		if err := uc.refs.Client(ctx, a.CompanyID, in.ClientID); err != nil {
			return nil, err
		}
		a.ClientID = in.ClientID
	}
	if in.Type != nil {
		a.Type = *in.Type
	}
	if in.Title != nil {
		a.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		a.Description = *in.Description
	}
	if in.DueDate != nil {
		a.DueDate = *in.DueDate
	}
	if in.AssignedTo != nil {
		if err := uc.refs.Assignee(ctx, a.CompanyID, in.AssignedTo); err != nil {
			return nil, err
		}
		a.AssignedTo = in.AssignedTo
	}
	if in.Completed != nil {
		setCompleted(a, *in.Completed)
	}
	return uc.save(ctx, a)
}

// Complete marca la actividad como realizada.
func (uc *ActivityUseCase) Complete(ctx context.Context, userID, id string) (*dto.ActivityResponse, error) {
	a, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	setCompleted(a, true)
	return uc.save(ctx, a)
}

// Delete elimina una actividad.
func (uc *ActivityUseCase) Delete(ctx context.Context, userID, id string) error {
	if _, err := uc.load(ctx, userID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// setCompleted mantiene CompletedAt coherente con Completed.
func setCompleted(a *entity.Activity, done bool) {
	if done && !a.Completed {
		now := time.Now()
		a.CompletedAt = &now
	}
	if !done {
		a.CompletedAt = nil
	}
	a.Completed = done
}

func (uc *ActivityUseCase) load(ctx context.Context, userID, id string) (*entity.Activity, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.guard.Authorize(ctx, userID, a.CompanyID); err != nil {
		return nil, err
	}
	return a, nil
}

func (uc *ActivityUseCase) save(ctx context.Context, a *entity.Activity) (*dto.ActivityResponse, error) {
	a.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return toActivityResponse(a), nil
}

func toActivityResponse(a *entity.Activity) *dto.ActivityResponse {
	return &dto.ActivityResponse{
		ID:          a.ID,
		CompanyID:   a.CompanyID,
		ClientID:    a.ClientID,
		Type:        a.Type,
		Title:       a.Title,
		Description: a.Description,
		DueDate:     a.DueDate,
		Completed:   a.Completed,
		CompletedAt: a.CompletedAt,
		AssignedTo:  a.AssignedTo,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
