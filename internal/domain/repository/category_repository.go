package repository

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// ProductCategoryRepository define el puerto de persistencia para categorías de producto.
type ProductCategoryRepository interface {
	Create(ctx context.Context, c *entity.ProductCategory) error
	GetByID(ctx context.Context, id string) (*entity.ProductCategory, error)
	Update(ctx context.Context, c *entity.ProductCategory) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ListFilter) ([]*entity.ProductCategory, error)
}
