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

// TicketUseCase CRUD de tickets de soporte.
type TicketUseCase struct {
	repo  repository.TicketRepository
	guard *access.Guard
	refs  *References
}

// NewTicketUseCase construye el caso de uso.
func NewTicketUseCase(repo repository.TicketRepository, guard *access.Guard, refs *References) *TicketUseCase {
	return &TicketUseCase{repo: repo, guard: guard, refs: refs}
}

// Create abre un ticket en estado OPEN, prioridad por defecto MEDIUM.
func (uc *TicketUseCase) Create(ctx context.Context, userID string, in dto.CreateTicketRequest) (*dto.TicketResponse, error) {
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
	t := &entity.Ticket{
		ID:          uuid.New().String(),
		CompanyID:   in.CompanyID,
		ClientID:    in.ClientID,
		Subject:     strings.TrimSpace(in.Subject),
		Description: in.Description,
		Priority:    orDefault(in.Priority, entity.TicketPriorityMedium),
		Status:      entity.TicketStatusOpen,
		AssignedTo:  in.AssignedTo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return toTicketResponse(t), nil
}

// GetByID obtiene un ticket.
func (uc *TicketUseCase) GetByID(ctx context.Context, userID, id string) (*dto.TicketResponse, error) {
	t, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return toTicketResponse(t), nil
}

// List lista tickets; type filtra por prioridad.
func (uc *TicketUseCase) List(ctx context.Context, userID string, q dto.ListQuery) ([]dto.TicketResponse, error) {
	f, err := scopedFilter(ctx, uc.guard, userID, q, q.Status)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TicketResponse, 0)
	if len(f.CompanyIDs) == 0 {
		return out, nil
	}
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	for _, t := range list {
		out = append(out, *toTicketResponse(t))
	}
	return out, nil
}

// Update actualiza un ticket.
func (uc *TicketUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateTicketRequest) (*dto.TicketResponse, error) {
	t, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if in.ClientID != nil {
		if err := uc.refs.Client(ctx, t.CompanyID, in.ClientID); err != nil {
			return nil, err
		}
		t.ClientID = in.ClientID
	}
	if in.Subject != nil {
		t.Subject = strings.TrimSpace(*in.Subject)
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Priority != nil {
		t.Priority = *in.Priority
	}
	if in.AssignedTo != nil {
		if err := uc.refs.Assignee(ctx, t.CompanyID, in.AssignedTo); err != nil {
			return nil, err
		}
		t.AssignedTo = in.AssignedTo
	}
	if in.Status != nil {
		setTicketStatus(t, *in.Status)
	}
	return uc.save(ctx, t)
}

// UpdateStatus cambia el estado del ticket.
func (uc *TicketUseCase) UpdateStatus(ctx context.Context, userID, id, status string) (*dto.TicketResponse, error) {
	t, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	setTicketStatus(t, status)
	return uc.save(ctx, t)
}

// Delete elimina un ticket.
func (uc *TicketUseCase) Delete(ctx context.Context, userID, id string) error {
	if _, err := uc.load(ctx, userID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// setTicketStatus fija ResolvedAt al pasar a RESOLVED/CLOSED y lo limpia al reabrir.
func setTicketStatus(t *entity.Ticket, status string) {
	done := status == entity.TicketStatusResolved || status == entity.TicketStatusClosed
	if done && t.ResolvedAt == nil {
		now := time.Now()
		t.ResolvedAt = &now
	}
	if !done {
		t.ResolvedAt = nil
	}
	t.Status = status
}

func (uc *TicketUseCase) load(ctx context.Context, userID, id string) (*entity.Ticket, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.guard.Authorize(ctx, userID, t.CompanyID); err != nil {
		return nil, err
	}
	return t, nil
}

func (uc *TicketUseCase) save(ctx context.Context, t *entity.Ticket) (*dto.TicketResponse, error) {
	t.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return toTicketResponse(t), nil
}

func toTicketResponse(t *entity.Ticket) *dto.TicketResponse {
	return &dto.TicketResponse{
		ID:          t.ID,
		CompanyID:   t.CompanyID,
		ClientID:    t.ClientID,
		Subject:     t.Subject,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      t.Status,
		AssignedTo:  t.AssignedTo,
		ResolvedAt:  t.ResolvedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
