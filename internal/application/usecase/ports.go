package usecase

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// CompanyTxRunner crea empresa y membresía del creador en una sola transacción.
type CompanyTxRunner interface {
	RunCompany(ctx context.Context, fn func(
		companies repository.CompanyRepository,
		memberships repository.MembershipRepository,
	) error) error
}

// QuoteTxRunner persiste cabecera e ítems de una cotización en una sola transacción.
type QuoteTxRunner interface {
	RunQuote(ctx context.Context, fn func(quotes repository.QuoteRepository) error) error
}
