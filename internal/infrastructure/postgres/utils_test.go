package postgres

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

func TestBuildWhere_SoloEmpresas(t *testing.T) {
	ids := []string{"c1", "c2"}
	where, args := buildWhere(repository.ListFilter{CompanyIDs: ids}, filterColumns{status: "status", date: "date"})

	assert.Equal(t, " WHERE company_id = ANY($1)", where)
	assert.Equal(t, []any{ids}, args)
}

func TestBuildWhere_TodosLosFiltros(t *testing.T) {
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	f := repository.ListFilter{
		CompanyIDs: []string{"c1"},
		Status:     "PAID",
		Type:       "EMAIL",
		From:       &from,
		To:         &to,
		Search:     "50%_off",
	}
	where, args := buildWhere(f, filterColumns{
		status: "status",
		typ:    "type",
		date:   "date",
		search: []string{"name", "notes"},
	})

	assert.Equal(t,
		" WHERE company_id = ANY($1) AND status = $2 AND type = $3 AND date >= $4 AND date < $5 AND (name ILIKE $6 OR notes ILIKE $6)",
		where)
	assert.Len(t, args, 6)
	assert.Equal(t, `%50\%\_off%`, args[5])
}

func TestBuildWhere_ColumnasNoAplicables(t *testing.T) {
	f := repository.ListFilter{CompanyIDs: []string{"c1"}, Status: "X", Type: "Y", Search: "z"}
	where, args := buildWhere(f, filterColumns{})

	assert.Equal(t, " WHERE company_id = ANY($1)", where)
	assert.Len(t, args, 1)
}

func TestPaginate(t *testing.T) {
	q, args := paginate("SELECT 1", []any{"a"}, repository.ListFilter{Limit: 20, Offset: 40})
	assert.Equal(t, "SELECT 1 LIMIT $2 OFFSET $3", q)
	assert.Equal(t, []any{"a", 20, 40}, args)

	q, args = paginate("SELECT 1", []any{"a"}, repository.ListFilter{})
	assert.Equal(t, "SELECT 1", q)
	assert.Len(t, args, 1)
}

func TestWriteErr_Codigos(t *testing.T) {
	cases := []struct {
		code string
		want error
	}{
		{"23505", domain.ErrDuplicate},
		{"23503", domain.ErrInvalidInput},
		{"22P02", domain.ErrInvalidInput},
		{"22003", domain.ErrInvalidInput},
		{"23514", domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			err := writeErr("insert x", fmt.Errorf("exec: %w", &pgconn.PgError{Code: tc.code}))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	err := writeErr("insert x", errors.New("conexión cerrada"))
	assert.NotErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "insert x")
}

func TestIsMissing(t *testing.T) {
	assert.True(t, isMissing(pgx.ErrNoRows))
	assert.True(t, isMissing(&pgconn.PgError{Code: "22P02"}))
	assert.False(t, isMissing(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isMissing(errors.New("otro")))
}
