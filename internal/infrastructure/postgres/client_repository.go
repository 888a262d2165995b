package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación del puerto ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador de persistencia para clientes.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, company_id, name, email, phone, tax_id, address, status, source, notes, created_at, updated_at`

var clientFilter = filterColumns{
	status: "status",
	date:   "created_at",
	search: []string{"name", "email", "phone", "tax_id"},
}

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.CompanyID, c.Name, c.Email, c.Phone, c.TaxID, c.Address,
		c.Status, c.Source, c.Notes, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert client", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	c, err := scanClient(r.q.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// Update actualiza los datos de un cliente. company_id no se modifica.
func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	query := `
		UPDATE clients SET name = $2, email = $3, phone = $4, tax_id = $5, address = $6,
			status = $7, source = $8, notes = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Email, c.Phone, c.TaxID, c.Address, c.Status, c.Source, c.Notes, c.UpdatedAt,
	)
	if err != nil {
		return writeErr("update client", err)
	}
	return affected(cmd)
}

// Delete elimina un cliente. Sus registros asociados quedan sin cliente (ON DELETE SET NULL).
func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return affected(cmd)
}

// List lista clientes de las empresas del filtro, más recientes primero.
func (r *ClientRepo) List(ctx context.Context, f repository.ListFilter) ([]*entity.Client, error) {
	where, args := buildWhere(f, clientFilter)
	query, args := paginate(`SELECT `+clientColumns+` FROM clients`+where+` ORDER BY created_at DESC`, args, f)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	list, err := collect(rows, scanClient)
	if err != nil {
		return nil, fmt.Errorf("scan client: %w", err)
	}
	return list, nil
}

func scanClient(row pgxScanner) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.Email, &c.Phone, &c.TaxID, &c.Address,
		&c.Status, &c.Source, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
