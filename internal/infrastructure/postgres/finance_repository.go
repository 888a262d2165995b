package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var (
	_ repository.IncomeRepository  = (*IncomeRepo)(nil)
	_ repository.ExpenseRepository = (*ExpenseRepo)(nil)
)

// IncomeRepo implementación del puerto IncomeRepository sobre PostgreSQL.
type IncomeRepo struct {
	q Querier
}

// NewIncomeRepository construye el adaptador de persistencia para ingresos.
func NewIncomeRepository(q Querier) *IncomeRepo {
	return &IncomeRepo{q: q}
}

const incomeColumns = `id, company_id, client_id, description, category, amount, date, status, payment_method, reference, created_at, updated_at`

var incomeFilter = filterColumns{
	status: "status",
	typ:    "category",
	date:   "date",
	search: []string{"description", "reference", "category"},
}

// Create persiste un nuevo ingreso.
func (r *IncomeRepo) Create(ctx context.Context, i *entity.Income) error {
	query := `
		INSERT INTO incomes (` + incomeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		i.ID, i.CompanyID, i.ClientID, i.Description, i.Category, i.Amount, i.Date,
		i.Status, i.PaymentMethod, i.Reference, i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert income", err)
	}
	return nil
}

// GetByID obtiene un ingreso por ID.
func (r *IncomeRepo) GetByID(ctx context.Context, id string) (*entity.Income, error) {
	i, err := scanIncome(r.q.QueryRow(ctx, `SELECT `+incomeColumns+` FROM incomes WHERE id = $1`, id))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get income: %w", err)
	}
	return i, nil
}

// Update actualiza un ingreso.
func (r *IncomeRepo) Update(ctx context.Context, i *entity.Income) error {
	query := `
		UPDATE incomes SET client_id = $2, description = $3, category = $4, amount = $5, date = $6,
			status = $7, payment_method = $8, reference = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		i.ID, i.ClientID, i.Description, i.Category, i.Amount, i.Date,
		i.Status, i.PaymentMethod, i.Reference, i.UpdatedAt,
	)
	if err != nil {
		return writeErr("update income", err)
	}
	return affected(cmd)
}

// Delete elimina un ingreso.
func (r *IncomeRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM incomes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete income: %w", err)
	}
	return affected(cmd)
}

// List devuelve la página pedida y el total de filas que cumplen el filtro.
func (r *IncomeRepo) List(ctx context.Context, f repository.ListFilter) ([]*entity.Income, int, error) {
	where, args := buildWhere(f, incomeFilter)
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM incomes`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count incomes: %w", err)
	}
	query, args := paginate(`SELECT `+incomeColumns+` FROM incomes`+where+` ORDER BY date DESC, created_at DESC`, args, f)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list incomes: %w", err)
	}
	list, err := collect(rows, scanIncome)
	if err != nil {
		return nil, 0, fmt.Errorf("scan income: %w", err)
	}
	return list, total, nil
}

func scanIncome(row pgxScanner) (*entity.Income, error) {
	var i entity.Income
	err := row.Scan(
		&i.ID, &i.CompanyID, &i.ClientID, &i.Description, &i.Category, &i.Amount, &i.Date,
		&i.Status, &i.PaymentMethod, &i.Reference, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// ExpenseRepo implementación del puerto ExpenseRepository sobre PostgreSQL.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador de persistencia para gastos.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

const expenseColumns = `id, company_id, description, category, supplier, amount, date, status, payment_method, reference, created_at, updated_at`

var expenseFilter = filterColumns{
	status: "status",
	typ:    "category",
	date:   "date",
	search: []string{"description", "supplier", "reference", "category"},
}

// Create persiste un nuevo gasto.
func (r *ExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.CompanyID, e.Description, e.Category, e.Supplier, e.Amount, e.Date,
		e.Status, e.PaymentMethod, e.Reference, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert expense", err)
	}
	return nil
}

// GetByID obtiene un gasto por ID.
func (r *ExpenseRepo) GetByID(ctx context.Context, id string) (*entity.Expense, error) {
	e, err := scanExpense(r.q.QueryRow(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return e, nil
}

// Update actualiza un gasto.
func (r *ExpenseRepo) Update(ctx context.Context, e *entity.Expense) error {
	query := `
		UPDATE expenses SET description = $2, category = $3, supplier = $4, amount = $5, date = $6,
			status = $7, payment_method = $8, reference = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		e.ID, e.Description, e.Category, e.Supplier, e.Amount, e.Date,
		e.Status, e.PaymentMethod, e.Reference, e.UpdatedAt,
	)
	if err != nil {
		return writeErr("update expense", err)
	}
	return affected(cmd)
}

// Delete elimina un gasto.
func (r *ExpenseRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return affected(cmd)
}

// List devuelve la página pedida y el total de filas que cumplen el filtro.
func (r *ExpenseRepo) List(ctx context.Context, f repository.ListFilter) ([]*entity.Expense, int, error) {
	where, args := buildWhere(f, expenseFilter)
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM expenses`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count expenses: %w", err)
	}
	query, args := paginate(`SELECT `+expenseColumns+` FROM expenses`+where+` ORDER BY date DESC, created_at DESC`, args, f)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list expenses: %w", err)
	}
	list, err := collect(rows, scanExpense)
	if err != nil {
		return nil, 0, fmt.Errorf("scan expense: %w", err)
	}
	return list, total, nil
}

func scanExpense(row pgxScanner) (*entity.Expense, error) {
	var e entity.Expense
	err := row.Scan(
		&e.ID, &e.CompanyID, &e.Description, &e.Category, &e.Supplier, &e.Amount, &e.Date,
		&e.Status, &e.PaymentMethod, &e.Reference, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
