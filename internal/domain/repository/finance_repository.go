package repository

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// IncomeRepository puerto de persistencia para ingresos. List devuelve también el total sin paginar.
type IncomeRepository interface {
	Create(ctx context.Context, income *entity.Income) error
	GetByID(ctx context.Context, id string) (*entity.Income, error)
	Update(ctx context.Context, income *entity.Income) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ListFilter) ([]*entity.Income, int, error)
}

// ExpenseRepository puerto de persistencia para gastos.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id string) (*entity.Expense, error)
	Update(ctx context.Context, expense *entity.Expense) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ListFilter) ([]*entity.Expense, int, error)
}
