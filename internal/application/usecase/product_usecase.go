package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-api/internal/application/access"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos y sus categorías.
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories repository.ProductCategoryRepository
	guard      *access.Guard
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categories repository.ProductCategoryRepository, guard *access.Guard) *ProductUseCase {
	return &ProductUseCase{repo: repo, categories: categories, guard: guard}
}

// Create crea un nuevo producto. Devuelve domain.ErrDuplicate si el SKU ya existe en la empresa.
func (uc *ProductUseCase) Create(ctx context.Context, userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := requireNonNegative("price", in.Price); err != nil {
		return nil, err
	}
	if err := requireNonNegative("cost", in.Cost); err != nil {
		return nil, err
	}
	if err := uc.guard.Authorize(ctx, userID, in.CompanyID); err != nil {
		return nil, err
	}
	sku := strings.TrimSpace(in.SKU)
	existing, err := uc.repo.GetByCompanyAndSKU(ctx, in.CompanyID, sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.checkCategory(ctx, in.CompanyID, in.CategoryID); err != nil {
		return nil, err
	}
	now := time.Now()
	p := &entity.Product{
		ID:          uuid.New().String(),
		CompanyID:   in.CompanyID,
		CategoryID:  in.CategoryID,
		SKU:         sku,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Cost:        in.Cost,
		Stock:       in.Stock,
		MinStock:    in.MinStock,
		Status:      orDefault(in.Status, entity.ProductStatusActive),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, userID, id string) (*dto.ProductResponse, error) {
	p, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// List lista productos de las empresas visibles.
func (uc *ProductUseCase) List(ctx context.Context, userID string, q dto.ListQuery) ([]dto.ProductResponse, error) {
	f, err := scopedFilter(ctx, uc.guard, userID, q, q.Status)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0)
	if len(f.CompanyIDs) == 0 {
		return out, nil
	}
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Update actualiza un producto. SKU y empresa son inmutables.
func (uc *ProductUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if in.Price != nil {
		if err := requireNonNegative("price", *in.Price); err != nil {
			return nil, err
		}
		p.Price = *in.Price
	}
	if in.Cost != nil {
		if err := requireNonNegative("cost", *in.Cost); err != nil {
			return nil, err
		}
		p.Cost = *in.Cost
	}
	if in.CategoryID != nil {
		if err := uc.checkCategory(ctx, p.CompanyID, in.CategoryID); err != nil {
			return nil, err
		}
		p.CategoryID = in.CategoryID
	}
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.MinStock != nil {
		p.MinStock = *in.MinStock
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, userID, id string) error {
	if _, err := uc.load(ctx, userID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// CreateCategory crea una categoría de producto.
func (uc *ProductUseCase) CreateCategory(ctx context.Context, userID string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := uc.guard.Authorize(ctx, userID, in.CompanyID); err != nil {
		return nil, err
	}
	now := time.Now()
	c := &entity.ProductCategory{
		ID:          uuid.New().String(),
		CompanyID:   in.CompanyID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// ListCategories lista categorías de las empresas visibles.
func (uc *ProductUseCase) ListCategories(ctx context.Context, userID string, q dto.ListQuery) ([]dto.CategoryResponse, error) {
	f, err := scopedFilter(ctx, uc.guard, userID, q, "")
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0)
	if len(f.CompanyIDs) == 0 {
		return out, nil
	}
	list, err := uc.categories.List(ctx, f)
	if err != nil {
		return nil, err
	}
	for _, c := range list {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

// UpdateCategory actualiza una categoría.
func (uc *ProductUseCase) UpdateCategory(ctx context.Context, userID, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	c, err := uc.loadCategory(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		c.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	c.UpdatedAt = time.Now()
	if err := uc.categories.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// DeleteCategory elimina una categoría; los productos quedan sin categoría (ON DELETE SET NULL).
func (uc *ProductUseCase) DeleteCategory(ctx context.Context, userID, id string) error {
	if _, err := uc.loadCategory(ctx, userID, id); err != nil {
		return err
	}
	return uc.categories.Delete(ctx, id)
}

// checkCategory exige que la categoría exista y sea de la misma empresa del producto.
func (uc *ProductUseCase) checkCategory(ctx context.Context, companyID string, categoryID *string) error {
	if categoryID == nil {
		return nil
	}
	c, err := uc.categories.GetByID(ctx, *categoryID)
	if err != nil {
		return err
	}
	if c == nil || c.CompanyID != companyID {
		return fmt.Errorf("%w: categoryId no pertenece a la empresa", domain.ErrInvalidInput)
	}
	return nil
}

func (uc *ProductUseCase) load(ctx context.Context, userID, id string) (*entity.Product, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.guard.Authorize(ctx, userID, p.CompanyID); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *ProductUseCase) loadCategory(ctx context.Context, userID, id string) (*entity.ProductCategory, error) {
	c, err := uc.categories.GetByID(ctx, id)
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

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		CategoryID:  p.CategoryID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Cost:        p.Cost,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		LowStock:    p.LowStock(),
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toCategoryResponse(c *entity.ProductCategory) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID,
		CompanyID:   c.CompanyID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
