package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/application/access"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// scopedFilter resuelve las empresas visibles y arma el filtro de listado.
// status es el valor ya elegido por el recurso (status, stage o type).
func scopedFilter(ctx context.Context, guard *access.Guard, userID string, q dto.ListQuery, status string) (repository.ListFilter, error) {
	ids, err := guard.Scope(ctx, userID, q.CompanyID)
	if err != nil {
		return repository.ListFilter{}, err
	}
	from, to, err := q.Range()
	if err != nil {
		return repository.ListFilter{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return repository.ListFilter{
		CompanyIDs: ids,
		Status:     strings.TrimSpace(status),
		Type:       strings.TrimSpace(q.Type),
		From:       from,
		To:         to,
		Search:     strings.TrimSpace(q.Search),
	}, nil
}

// Límites de las columnas NUMERIC: importes (18,2), cantidades (18,4) y tasas (5,2).
var (
	maxAmount   = decimal.New(1, 16)
	maxQuantity = decimal.New(1, 14)
	maxRate     = decimal.NewFromInt(100)
)

// requireNonNegative rechaza importes negativos o que no caben en NUMERIC(18,2).
func requireNonNegative(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return fmt.Errorf("%w: %s no puede ser negativo", domain.ErrInvalidInput, field)
	}
	return requireNumeric(field, v, 2, maxAmount)
}

// requirePositive rechaza importes cero o negativos.
func requirePositive(field string, v decimal.Decimal) error {
	if !v.IsPositive() {
		return fmt.Errorf("%w: %s debe ser mayor que cero", domain.ErrInvalidInput, field)
	}
	return requireNumeric(field, v, 2, maxAmount)
}

// requireRate exige un porcentaje entre 0 y 100 con máximo dos decimales.
func requireRate(field string, v decimal.Decimal) error {
	if v.IsNegative() || v.GreaterThan(maxRate) {
		return fmt.Errorf("%w: %s debe estar entre 0 y 100", domain.ErrInvalidInput, field)
	}
	return requireNumeric(field, v, 2, decimal.New(1, 3))
}

// requireNumeric rechaza valores con más decimales que la columna o fuera de su rango.
// Postgres redondea en silencio los decimales sobrantes.
func requireNumeric(field string, v decimal.Decimal, scale int32, limit decimal.Decimal) error {
	if !v.Equal(v.Truncate(scale)) {
		return fmt.Errorf("%w: %s admite máximo %d decimales", domain.ErrInvalidInput, field, scale)
	}
	if v.Abs().GreaterThanOrEqual(limit) {
		return fmt.Errorf("%w: %s excede el máximo permitido", domain.ErrInvalidInput, field)
	}
	return nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
