package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	CompanyID   string          `json:"companyId" validate:"required,uuid"`
	CategoryID  *string         `json:"categoryId" validate:"omitempty,uuid"`
	SKU         string          `json:"sku" validate:"required,min=1,max=100"`
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Stock       int             `json:"stock" validate:"min=0"`
	MinStock    int             `json:"minStock" validate:"min=0"`
	Status      string          `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

// UpdateProductRequest entrada para actualizar un producto. SKU y empresa son inmutables.
type UpdateProductRequest struct {
	CategoryID  *string          `json:"categoryId" validate:"omitempty,uuid"`
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Cost        *decimal.Decimal `json:"cost"`
	Stock       *int             `json:"stock" validate:"omitempty,min=0"`
	MinStock    *int             `json:"minStock" validate:"omitempty,min=0"`
	Status      *string          `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"companyId"`
	CategoryID  *string         `json:"categoryId"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"minStock"`
	LowStock    bool            `json:"lowStock"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// CreateCategoryRequest entrada para crear una categoría de producto.
type CreateCategoryRequest struct {
	CompanyID   string `json:"companyId" validate:"required,uuid"`
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
}

// UpdateCategoryRequest entrada para actualizar una categoría.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"companyId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
