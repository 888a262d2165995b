package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de producto.
const (
	ProductStatusActive   = "ACTIVE"
	ProductStatusInactive = "INACTIVE"
)

// Product producto o servicio del catálogo. SKU único por empresa.
type Product struct {
	ID          string
	CompanyID   string
	CategoryID  *string
	SKU         string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta
	Cost        decimal.Decimal
	Stock       int
	MinStock    int
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LowStock indica si el stock está en o por debajo del mínimo.
func (p *Product) LowStock() bool {
	return p.Stock <= p.MinStock
}
