package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo cotizaciones y sus ítems. Create y NextNumber deben correr dentro de TxRunner.RunQuote.
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

const quoteColumns = `id, company_id, client_id, number, title, status, valid_until, tax_applies, subtotal, discount, tax, total, notes, created_at, updated_at`

var quoteFilter = filterColumns{
	status: "status",
	date:   "created_at",
	search: []string{"number", "title"},
}

// NextNumber toma un advisory lock por empresa (liberado al terminar la transacción)
// y devuelve el siguiente consecutivo, ej: "COT-00042". Los números borrados no se reutilizan
// salvo que sean el último.
func (r *QuoteRepo) NextNumber(ctx context.Context, companyID string) (string, error) {
	if _, err := r.q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, companyID); err != nil {
		return "", fmt.Errorf("lock quote number: %w", err)
	}
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COALESCE(MAX(substring(number FROM 5)::int), 0) + 1 FROM quotes WHERE company_id = $1`, companyID).Scan(&n); err != nil {
		return "", fmt.Errorf("next quote number: %w", err)
	}
	return fmt.Sprintf("COT-%05d", n), nil
}

// Create persiste cabecera e ítems.
func (r *QuoteRepo) Create(ctx context.Context, q *entity.Quote) error {
	query := `
		INSERT INTO quotes (` + quoteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		q.ID, q.CompanyID, q.ClientID, q.Number, q.Title, q.Status, q.ValidUntil, q.TaxApplies,
		q.Subtotal, q.Discount, q.Tax, q.Total, q.Notes, q.CreatedAt, q.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert quote", err)
	}
	itemQuery := `
		INSERT INTO quote_items (id, quote_id, product_id, position, description, quantity, unit_price,
			discount_rate, tax_rate, subtotal, discount, tax, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	for i, it := range q.Items {
		_, err := r.q.Exec(ctx, itemQuery,
			it.ID, q.ID, it.ProductID, i+1, it.Description, it.Quantity, it.UnitPrice,
			it.DiscountRate, it.TaxRate, it.Subtotal, it.Discount, it.Tax, it.Total,
		)
		if err != nil {
			return writeErr("insert quote item", err)
		}
	}
	return nil
}

// GetByID obtiene la cotización con sus ítems en orden.
func (r *QuoteRepo) GetByID(ctx context.Context, id string) (*entity.Quote, error) {
	q, err := scanQuote(r.q.QueryRow(ctx, `SELECT `+quoteColumns+` FROM quotes WHERE id = $1`, id))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	query := `
		SELECT id, quote_id, product_id, description, quantity, unit_price, discount_rate, tax_rate,
			subtotal, discount, tax, total
		FROM quote_items WHERE quote_id = $1 ORDER BY position`
	rows, err := r.q.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("get quote items: %w", err)
	}
	items, err := collect(rows, scanQuoteItem)
	if err != nil {
		return nil, fmt.Errorf("scan quote item: %w", err)
	}
	q.Items = make([]entity.QuoteItem, 0, len(items))
	for _, it := range items {
		q.Items = append(q.Items, *it)
	}
	return q, nil
}

// UpdateHeader actualiza solo campos de cabecera; totales e ítems no cambian.
func (r *QuoteRepo) UpdateHeader(ctx context.Context, q *entity.Quote) error {
	query := `
		UPDATE quotes SET client_id = $2, title = $3, status = $4, valid_until = $5, notes = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, q.ID, q.ClientID, q.Title, q.Status, q.ValidUntil, q.Notes, q.UpdatedAt)
	if err != nil {
		return writeErr("update quote", err)
	}
	return affected(cmd)
}

// Delete elimina la cotización; los ítems se borran en cascada.
func (r *QuoteRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM quotes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	return affected(cmd)
}

// List lista cabeceras (sin ítems), más recientes primero.
func (r *QuoteRepo) List(ctx context.Context, f repository.ListFilter) ([]*entity.Quote, error) {
	where, args := buildWhere(f, quoteFilter)
	query, args := paginate(`SELECT `+quoteColumns+` FROM quotes`+where+` ORDER BY created_at DESC`, args, f)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	list, err := collect(rows, scanQuote)
	if err != nil {
		return nil, fmt.Errorf("scan quote: %w", err)
	}
	return list, nil
}

func scanQuote(row pgxScanner) (*entity.Quote, error) {
	var q entity.Quote
	err := row.Scan(
		&q.ID, &q.CompanyID, &q.ClientID, &q.Number, &q.Title, &q.Status, &q.ValidUntil, &q.TaxApplies,
		&q.Subtotal, &q.Discount, &q.Tax, &q.Total, &q.Notes, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func scanQuoteItem(row pgxScanner) (*entity.QuoteItem, error) {
	var it entity.QuoteItem
	err := row.Scan(
		&it.ID, &it.QuoteID, &it.ProductID, &it.Description, &it.Quantity, &it.UnitPrice,
		&it.DiscountRate, &it.TaxRate, &it.Subtotal, &it.Discount, &it.Tax, &it.Total,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}
