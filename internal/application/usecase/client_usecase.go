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

// ClientUseCase CRUD de clientes con control de pertenencia por empresa.
type ClientUseCase struct {
	repo  repository.ClientRepository
	guard *access.Guard
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository, guard *access.Guard) *ClientUseCase {
	return &ClientUseCase{repo: repo, guard: guard}
}

// Create crea un cliente en la empresa indicada. Estado inicial PROSPECTO.
func (uc *ClientUseCase) Create(ctx context.Context, userID string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if err := uc.guard.Authorize(ctx, userID, in.CompanyID); err != nil {
		return nil, err
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		CompanyID: in.CompanyID,
		Name:      strings.TrimSpace(in.Name),
		Email:     in.Email,
		Phone:     in.Phone,
		TaxID:     in.TaxID,
		Address:   in.Address,
		Status:    orDefault(in.Status, entity.ClientStatusProspecto),
		Source:    in.Source,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente.
func (uc *ClientUseCase) GetByID(ctx context.Context, userID, id string) (*dto.ClientResponse, error) {
	client, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List lista clientes de las empresas visibles (sin paginar).
func (uc *ClientUseCase) List(ctx context.Context, userID string, q dto.ListQuery) ([]dto.ClientResponse, error) {
	f, err := scopedFilter(ctx, uc.guard, userID, q, q.Status)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0)
	if len(f.CompanyIDs) == 0 {
		return out, nil
	}
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	for _, c := range list {
		out = append(out, *toClientResponse(c))
	}
	return out, nil
}

// Update actualiza un cliente. La empresa no cambia.
func (uc *ClientUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		client.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.TaxID != nil {
		client.TaxID = *in.TaxID
	}
	if in.Address != nil {
		client.Address = *in.Address
	}
	if in.Status != nil {
		client.Status = *in.Status
	}
	if in.Source != nil {
		client.Source = *in.Source
	}
	if in.Notes != nil {
		client.Notes = *in.Notes
	}
	return uc.save(ctx, client)
}

// UpdateStatus mueve el cliente a cualquier estado válido.
func (uc *ClientUseCase) UpdateStatus(ctx context.Context, userID, id, status string) (*dto.ClientResponse, error) {
	client, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	client.Status = status
	return uc.save(ctx, client)
}

// Delete elimina un cliente (borrado físico).
func (uc *ClientUseCase) Delete(ctx context.Context, userID, id string) error {
	if _, err := uc.load(ctx, userID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *ClientUseCase) load(ctx context.Context, userID, id string) (*entity.Client, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.guard.Authorize(ctx, userID, client.CompanyID); err != nil {
		return nil, err
	}
	return client, nil
}

func (uc *ClientUseCase) save(ctx context.Context, client *entity.Client) (*dto.ClientResponse, error) {
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		TaxID:     c.TaxID,
		Address:   c.Address,
		Status:    c.Status,
		Source:    c.Source,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
