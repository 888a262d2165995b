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

// DocumentUseCase CRUD de metadatos de documentos (el archivo vive en almacenamiento externo).
type DocumentUseCase struct {
	repo  repository.DocumentRepository
	guard *access.Guard
	refs  *References
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(repo repository.DocumentRepository, guard *access.Guard, refs *References) *DocumentUseCase {
	return &DocumentUseCase{repo: repo, guard: guard, refs: refs}
}

// Create registra un documento.
func (uc *DocumentUseCase) Create(ctx context.Context, userID string, in dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	if err := uc.guard.Authorize(ctx, userID, in.CompanyID); err != nil {
		return nil, err
	}
	if err := uc.refs.Client(ctx, in.CompanyID, in.ClientID); err != nil {
		return nil, err
	}
	now := time.Now()
	d := &entity.Document{
		ID:        uuid.New().String(),
		CompanyID: in.CompanyID,
		ClientID:  in.ClientID,
		Name:      strings.TrimSpace(in.Name),
		Type:      in.Type,
		URL:       in.URL,
		SizeBytes: in.SizeBytes,
		MimeType:  in.MimeType,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return toDocumentResponse(d), nil
}

// GetByID obtiene un documento.
func (uc *DocumentUseCase) GetByID(ctx context.Context, userID, id string) (*dto.DocumentResponse, error) {
	d, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return toDocumentResponse(d), nil
}

// List lista documentos; filtra por type.
func (uc *DocumentUseCase) List(ctx context.Context, userID string, q dto.ListQuery) ([]dto.DocumentResponse, error) {
	f, err := scopedFilter(ctx, uc.guard, userID, q, "")
	if err != nil {
		return nil, err
	}
	out := make([]dto.DocumentResponse, 0)
	if len(f.CompanyIDs) == 0 {
		return out, nil
	}
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	for _, d := range list {
		out = append(out, *toDocumentResponse(d))
	}
	return out, nil
}

// Update actualiza metadatos.
func (uc *DocumentUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateDocumentRequest) (*dto.DocumentResponse, error) {
	d, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if in.ClientID != nil {
		if err := uc.refs.Client(ctx, d.CompanyID, in.ClientID); err != nil {
			return nil, err
		}
		d.ClientID = in.ClientID
	}
	if in.Name != nil {
		d.Name = strings.TrimSpace(*in.Name)
	}
	if in.Type != nil {
		d.Type = *in.Type
	}
	if in.URL != nil {
		d.URL = *in.URL
	}
	if in.SizeBytes != nil {
		d.SizeBytes = *in.SizeBytes
	}
	if in.MimeType != nil {
		d.MimeType = *in.MimeType
	}
	d.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return toDocumentResponse(d), nil
}

// Delete elimina los metadatos del documento.
func (uc *DocumentUseCase) Delete(ctx context.Context, userID, id string) error {
	if _, err := uc.load(ctx, userID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *DocumentUseCase) load(ctx context.Context, userID, id string) (*entity.Document, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.guard.Authorize(ctx, userID, d.CompanyID); err != nil {
		return nil, err
	}
	return d, nil
}

func toDocumentResponse(d *entity.Document) *dto.DocumentResponse {
	return &dto.DocumentResponse{
		ID:        d.ID,
		CompanyID: d.CompanyID,
		ClientID:  d.ClientID,
		Name:      d.Name,
		Type:      d.Type,
		URL:       d.URL,
		SizeBytes: d.SizeBytes,
		MimeType:  d.MimeType,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
