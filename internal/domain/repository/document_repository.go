package repository

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// DocumentRepository puerto de persistencia para metadatos de documentos.
type DocumentRepository interface {
	Create(ctx context.Context, d *entity.Document) error
	GetByID(ctx context.Context, id string) (*entity.Document, error)
	Update(ctx context.Context, d *entity.Document) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ListFilter) ([]*entity.Document, error)
}
