package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/crm-api/internal/application/auth"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var (
	_ usecase.CompanyTxRunner = (*TxRunner)(nil)
	_ usecase.QuoteTxRunner   = (*TxRunner)(nil)
	_ auth.SessionTxRunner    = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCompany crea empresa y membresía en la misma transacción.
func (r *TxRunner) RunCompany(ctx context.Context, fn func(
	companies repository.CompanyRepository,
	memberships repository.MembershipRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewCompanyRepository(tx), NewMembershipRepository(tx))
	})
}

// RunQuote persiste cotizaciones con el lock del consecutivo tomado dentro de la tx.
func (r *TxRunner) RunQuote(ctx context.Context, fn func(quotes repository.QuoteRepository) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewQuoteRepository(tx))
	})
}

// RunSession rota refresh tokens (consumir + emitir) de forma atómica.
func (r *TxRunner) RunSession(ctx context.Context, fn func(tokens repository.RefreshTokenRepository) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewRefreshTokenRepository(tx))
	})
}

// run inicia una transacción, ejecuta fn y hace Commit o Rollback.
func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
