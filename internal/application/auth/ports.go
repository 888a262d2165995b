package auth

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// SessionTxRunner ejecuta la rotación de refresh tokens (consumir + emitir) en una sola transacción.
type SessionTxRunner interface {
	RunSession(ctx context.Context, fn func(tokens repository.RefreshTokenRepository) error) error
}
