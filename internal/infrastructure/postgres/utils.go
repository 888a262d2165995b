package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// Querier abstrae pgxpool.Pool y pgx.Tx para que los repositorios funcionen dentro o fuera de una transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgxScanner abstrae pgx.Row y pgx.Rows para reutilizar las funciones scan*.
type pgxScanner interface {
	Scan(dest ...any) error
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return false
}

// isForeignKeyViolation verifica si un error es una violación de llave foránea (23503).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503" // foreign_key_violation
	}
	return false
}

// isInvalidValue reconoce los errores de datos que provienen de la entrada del cliente:
// texto que no es UUID (22P02), numérico fuera de rango (22003) y CHECK (23514).
func isInvalidValue(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "22P02", "22003", "23514":
			return true
		}
	}
	return false
}

// writeErr traduce errores de constraint a errores de dominio; el resto se envuelve con op.
func writeErr(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return domain.ErrDuplicate
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: referencia inexistente", domain.ErrInvalidInput)
	case isInvalidValue(err):
		return fmt.Errorf("%w: valor fuera de rango o con formato inválido", domain.ErrInvalidInput)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// affected devuelve domain.ErrNotFound si la sentencia no tocó filas.
func affected(cmd pgconn.CommandTag) error {
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// isMissing trata un id que no es UUID igual que una fila inexistente.
func isMissing(err error) bool {
	var pgErr *pgconn.PgError
	return isNoRows(err) || (errors.As(err, &pgErr) && pgErr.Code == "22P02")
}

// filterColumns columnas de cada recurso sobre las que aplica ListFilter.
// Una columna vacía desactiva ese filtro para el recurso.
type filterColumns struct {
	status string   // columna o expresión comparada con ListFilter.Status
	typ    string   // columna comparada con ListFilter.Type
	date   string   // columna del rango [From, To)
	search []string // columnas de texto para ILIKE
}

// buildWhere arma la cláusula WHERE y sus argumentos. $1 siempre es el arreglo de empresas.
func buildWhere(f repository.ListFilter, c filterColumns) (string, []any) {
	args := []any{f.CompanyIDs}
	conds := []string{"company_id = ANY($1)"}
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if c.status != "" && f.Status != "" {
		add(c.status+" = $%d", f.Status)
	}
	if c.typ != "" && f.Type != "" {
		add(c.typ+" = $%d", f.Type)
	}
	if c.date != "" && f.From != nil {
		add(c.date+" >= $%d", *f.From)
	}
	if c.date != "" && f.To != nil {
		add(c.date+" < $%d", *f.To)
	}
	if len(c.search) > 0 && f.Search != "" {
		args = append(args, "%"+escapeLike(f.Search)+"%")
		parts := make([]string, len(c.search))
		for i, col := range c.search {
			parts[i] = fmt.Sprintf("%s ILIKE $%d", col, len(args))
		}
		conds = append(conds, "("+strings.Join(parts, " OR ")+")")
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// paginate agrega LIMIT/OFFSET cuando el filtro trae Limit.
func paginate(query string, args []any, f repository.ListFilter) (string, []any) {
	if f.Limit <= 0 {
		return query, args
	}
	args = append(args, f.Limit, f.Offset)
	return fmt.Sprintf("%s LIMIT $%d OFFSET $%d", query, len(args)-1, len(args)), args
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// collect recorre rows aplicando scan y cierra el cursor.
func collect[T any](rows pgx.Rows, scan func(pgxScanner) (*T, error)) ([]*T, error) {
	defer rows.Close()
	var list []*T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, item)
	}
	return list, rows.Err()
}
