package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository         = (*ProductRepo)(nil)
	_ repository.ProductCategoryRepository = (*CategoryRepo)(nil)
)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, company_id, category_id, sku, name, description, price, cost, stock, min_stock, status, created_at, updated_at`

var productFilter = filterColumns{
	status: "status",
	typ:    "category_id::text",
	date:   "created_at",
	search: []string{"sku", "name", "description"},
}

// Create persiste un nuevo producto. SKU único por empresa.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.CompanyID, p.CategoryID, p.SKU, p.Name, p.Description, p.Price, p.Cost,
		p.Stock, p.MinStock, p.Status, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert product", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByCompanyAndSKU obtiene un producto por empresa y SKU.
func (r *ProductRepo) GetByCompanyAndSKU(ctx context.Context, companyID, sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE company_id = $1 AND sku = $2`
	p, err := scanProduct(r.q.QueryRow(ctx, query, companyID, sku))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return p, nil
}

// Update actualiza un producto. SKU y empresa no se modifican.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET category_id = $2, name = $3, description = $4, price = $5, cost = $6,
			stock = $7, min_stock = $8, status = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.CategoryID, p.Name, p.Description, p.Price, p.Cost,
		p.Stock, p.MinStock, p.Status, p.UpdatedAt,
	)
	if err != nil {
		return writeErr("update product", err)
	}
	return affected(cmd)
}

// Delete elimina un producto.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return affected(cmd)
}

// List lista productos por nombre. type filtra por categoría.
func (r *ProductRepo) List(ctx context.Context, f repository.ListFilter) ([]*entity.Product, error) {
	where, args := buildWhere(f, productFilter)
	query, args := paginate(`SELECT `+productColumns+` FROM products`+where+` ORDER BY name`, args, f)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	list, err := collect(rows, scanProduct)
	if err != nil {
		return nil, fmt.Errorf("scan product: %w", err)
	}
	return list, nil
}

func scanProduct(row pgxScanner) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.CompanyID, &p.CategoryID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.Cost,
		&p.Stock, &p.MinStock, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CategoryRepo categorías de producto sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

const categoryColumns = `id, company_id, name, description, created_at, updated_at`

var categoryFilter = filterColumns{search: []string{"name", "description"}}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.ProductCategory) error {
	query := `
		INSERT INTO product_categories (` + categoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.q.Exec(ctx, query, c.ID, c.CompanyID, c.Name, c.Description, c.CreatedAt, c.UpdatedAt); err != nil {
		return writeErr("insert category", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.ProductCategory, error) {
	c, err := scanCategory(r.q.QueryRow(ctx, `SELECT `+categoryColumns+` FROM product_categories WHERE id = $1`, id))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// Update actualiza una categoría.
func (r *CategoryRepo) Update(ctx context.Context, c *entity.ProductCategory) error {
	query := `UPDATE product_categories SET name = $2, description = $3, updated_at = $4 WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, c.ID, c.Name, c.Description, c.UpdatedAt)
	if err != nil {
		return writeErr("update category", err)
	}
	return affected(cmd)
}

// Delete elimina una categoría; los productos quedan sin categoría.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM product_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return affected(cmd)
}

// List lista categorías por nombre.
func (r *CategoryRepo) List(ctx context.Context, f repository.ListFilter) ([]*entity.ProductCategory, error) {
	where, args := buildWhere(f, categoryFilter)
	rows, err := r.q.Query(ctx, `SELECT `+categoryColumns+` FROM product_categories`+where+` ORDER BY name`, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	list, err := collect(rows, scanCategory)
	if err != nil {
		return nil, fmt.Errorf("scan category: %w", err)
	}
	return list, nil
}

func scanCategory(row pgxScanner) (*entity.ProductCategory, error) {
	var c entity.ProductCategory
	if err := row.Scan(&c.ID, &c.CompanyID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
