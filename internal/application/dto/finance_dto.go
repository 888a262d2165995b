package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateIncomeRequest entrada para registrar un ingreso.
type CreateIncomeRequest struct {
	CompanyID     string          `json:"companyId" validate:"required,uuid"`
	ClientID      *string         `json:"clientId" validate:"omitempty,uuid"`
	Description   string          `json:"description" validate:"required,max=500"`
	Category      string          `json:"category" validate:"max=100"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date" validate:"required"`
	Status        string          `json:"status" validate:"omitempty,oneof=PAID PENDING CANCELLED ERROR"`
	PaymentMethod string          `json:"paymentMethod" validate:"max=50"`
	Reference     string          `json:"reference" validate:"max=100"`
}

// UpdateIncomeRequest entrada para actualizar un ingreso.
type UpdateIncomeRequest struct {
	ClientID      *string          `json:"clientId" validate:"omitempty,uuid"`
	Description   *string          `json:"description" validate:"omitempty,max=500"`
	Category      *string          `json:"category" validate:"omitempty,max=100"`
	Amount        *decimal.Decimal `json:"amount"`
	Date          *time.Time       `json:"date"`
	Status        *string          `json:"status" validate:"omitempty,oneof=PAID PENDING CANCELLED ERROR"`
	PaymentMethod *string          `json:"paymentMethod" validate:"omitempty,max=50"`
	Reference     *string          `json:"reference" validate:"omitempty,max=100"`
}

// IncomeResponse salida de un ingreso.
type IncomeResponse struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"companyId"`
	ClientID      *string         `json:"clientId"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"paymentMethod"`
	Reference     string          `json:"reference"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// IncomeListResponse lista paginada de ingresos.
type IncomeListResponse struct {
	Items []IncomeResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// CreateExpenseRequest entrada para registrar un gasto.
type CreateExpenseRequest struct {
	CompanyID     string          `json:"companyId" validate:"required,uuid"`
	Description   string          `json:"description" validate:"required,max=500"`
	Category      string          `json:"category" validate:"max=100"`
	Supplier      string          `json:"supplier" validate:"max=200"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date" validate:"required"`
	Status        string          `json:"status" validate:"omitempty,oneof=PAID PENDING CANCELLED ERROR"`
	PaymentMethod string          `json:"paymentMethod" validate:"max=50"`
	Reference     string          `json:"reference" validate:"max=100"`
}

// UpdateExpenseRequest entrada para actualizar un gasto.
type UpdateExpenseRequest struct {
	Description   *string          `json:"description" validate:"omitempty,max=500"`
	Category      *string          `json:"category" validate:"omitempty,max=100"`
	Supplier      *string          `json:"supplier" validate:"omitempty,max=200"`
	Amount        *decimal.Decimal `json:"amount"`
	Date          *time.Time       `json:"date"`
	Status        *string          `json:"status" validate:"omitempty,oneof=PAID PENDING CANCELLED ERROR"`
	PaymentMethod *string          `json:"paymentMethod" validate:"omitempty,max=50"`
	Reference     *string          `json:"reference" validate:"omitempty,max=100"`
}

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"companyId"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Supplier      string          `json:"supplier"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"paymentMethod"`
	Reference     string          `json:"reference"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ExpenseListResponse lista paginada de gastos.
type ExpenseListResponse struct {
	Items []ExpenseResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
