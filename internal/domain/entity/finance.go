package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago compartidos por ingresos y gastos.
const (
	PaymentStatusPaid      = "PAID"
	PaymentStatusPending   = "PENDING"
	PaymentStatusCancelled = "CANCELLED"
	PaymentStatusError     = "ERROR"
)

// Income ingreso registrado por la empresa.
type Income struct {
	ID            string
	CompanyID     string
	ClientID      *string
	Description   string
	Category      string
	Amount        decimal.Decimal
	Date          time.Time
	Status        string
	PaymentMethod string
	Reference     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Expense gasto registrado por la empresa.
type Expense struct {
	ID            string
	CompanyID     string
	Description   string
	Category      string
	Supplier      string
	Amount        decimal.Decimal
	Date          time.Time
	Status        string
	PaymentMethod string
	Reference     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
