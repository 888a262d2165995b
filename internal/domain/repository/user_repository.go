package repository

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

// RefreshTokenRepository persiste las sesiones de refresh (solo hash).
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *entity.RefreshToken) error
	// Consume borra y devuelve la fila con ese hash; nil si no existe. Un token se consume una sola vez.
	Consume(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)
	DeleteByUser(ctx context.Context, userID string) error
}
