package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-api/internal/application/access"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// References valida que los ids referenciados por un registro (cliente, producto,
// responsable) pertenezcan a la misma empresa del registro.
type References struct {
	clients  repository.ClientRepository
	products repository.ProductRepository
	guard    *access.Guard
}

// NewReferences construye el validador de referencias.
func NewReferences(clients repository.ClientRepository, products repository.ProductRepository, guard *access.Guard) *References {
	return &References{clients: clients, products: products, guard: guard}
}

// Client devuelve ErrInvalidInput si clientID no es un cliente de companyID. nil no referencia nada.
func (r *References) Client(ctx context.Context, companyID string, clientID *string) error {
	if clientID == nil {
		return nil
	}
	_, err := r.clientOf(ctx, companyID, *clientID)
	return err
}

// clientOf obtiene el cliente solo si pertenece a la empresa.
func (r *References) clientOf(ctx context.Context, companyID, clientID string) (*entity.Client, error) {
	if err := requireID("clientId", clientID); err != nil {
		return nil, err
	}
	c, err := r.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("obtener cliente: %w", err)
	}
	if c == nil || c.CompanyID != companyID {
		return nil, fmt.Errorf("%w: clientId no pertenece a la empresa", domain.ErrInvalidInput)
	}
	return c, nil
}

// Product devuelve ErrInvalidInput si productID no es un producto de companyID.
func (r *References) Product(ctx context.Context, companyID string, productID *string) error {
	if productID == nil {
		return nil
	}
	if err := requireID("productId", *productID); err != nil {
		return err
	}
	p, err := r.products.GetByID(ctx, *productID)
	if err != nil {
		return fmt.Errorf("obtener producto: %w", err)
	}
	if p == nil || p.CompanyID != companyID {
		return fmt.Errorf("%w: productId no pertenece a la empresa", domain.ErrInvalidInput)
	}
	return nil
}

// Assignee exige que el responsable sea miembro de la empresa.
func (r *References) Assignee(ctx context.Context, companyID string, userID *string) error {
	if userID == nil {
		return nil
	}
	if err := requireID("assignedTo", *userID); err != nil {
		return err
	}
	_, err := r.guard.Membership(ctx, *userID, companyID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrUnauthorized):
		return fmt.Errorf("%w: assignedTo no es miembro de la empresa", domain.ErrInvalidInput)
	default:
		return err
	}
}

func requireID(field, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s debe ser un UUID", domain.ErrInvalidInput, field)
	}
	return nil
}
