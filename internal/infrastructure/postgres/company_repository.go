package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var (
	_ repository.CompanyRepository    = (*CompanyRepo)(nil)
	_ repository.MembershipRepository = (*MembershipRepo)(nil)
)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, name, tax_id, address, phone, email, status, created_at, updated_at`

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		company.ID, company.Name, company.TaxID, company.Address,
		company.Phone, company.Email, company.Status,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	c, err := scanCompany(r.q.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// Update actualiza una empresa existente.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, tax_id = $3, address = $4, phone = $5, email = $6, status = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		company.ID, company.Name, company.TaxID, company.Address,
		company.Phone, company.Email, company.Status, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByUser devuelve las empresas de las que el usuario es miembro.
func (r *CompanyRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Company, error) {
	query := `
		SELECT c.id, c.name, c.tax_id, c.address, c.phone, c.email, c.status, c.created_at, c.updated_at
		FROM companies c
		JOIN user_companies uc ON uc.company_id = c.id
		WHERE uc.user_id = $1
		ORDER BY c.name`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	list, err := collect(rows, scanCompany)
	if err != nil {
		return nil, fmt.Errorf("scan company: %w", err)
	}
	return list, nil
}

func scanCompany(row pgxScanner) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.TaxID, &c.Address, &c.Phone, &c.Email, &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// MembershipRepo acceso a user_companies.
type MembershipRepo struct {
	q Querier
}

// NewMembershipRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMembershipRepository(q Querier) *MembershipRepo {
	return &MembershipRepo{q: q}
}

// Create agrega un usuario a una empresa. Devuelve domain.ErrDuplicate si ya es miembro.
func (r *MembershipRepo) Create(ctx context.Context, m *entity.UserCompany) error {
	query := `
		INSERT INTO user_companies (user_id, company_id, role, created_at)
		VALUES ($1, $2, $3, $4)`
	if _, err := r.q.Exec(ctx, query, m.UserID, m.CompanyID, m.Role, m.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert membership: %w", err)
	}
	return nil
}

// Get devuelve la membresía o nil si el usuario no pertenece a la empresa.
func (r *MembershipRepo) Get(ctx context.Context, userID, companyID string) (*entity.UserCompany, error) {
	query := `
		SELECT user_id, company_id, role, created_at
		FROM user_companies WHERE user_id = $1 AND company_id = $2`
	m, err := scanMembership(r.q.QueryRow(ctx, query, userID, companyID))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get membership: %w", err)
	}
	return m, nil
}

// CompanyIDsByUser ids de las empresas del usuario.
func (r *MembershipRepo) CompanyIDsByUser(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT company_id FROM user_companies WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("list company ids: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan company id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ListByUser membresías del usuario con su rol.
func (r *MembershipRepo) ListByUser(ctx context.Context, userID string) ([]*entity.UserCompany, error) {
	query := `
		SELECT user_id, company_id, role, created_at
		FROM user_companies WHERE user_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	list, err := collect(rows, scanMembership)
	if err != nil {
		return nil, fmt.Errorf("scan membership: %w", err)
	}
	return list, nil
}

// ListMembers miembros de una empresa con email y nombre.
func (r *MembershipRepo) ListMembers(ctx context.Context, companyID string) ([]*entity.CompanyMember, error) {
	query := `
		SELECT uc.user_id, uc.company_id, uc.role, uc.created_at, u.email, u.name
		FROM user_companies uc
		JOIN users u ON u.id = uc.user_id
		WHERE uc.company_id = $1
		ORDER BY u.email`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return collect(rows, func(row pgxScanner) (*entity.CompanyMember, error) {
		var m entity.CompanyMember
		if err := row.Scan(&m.UserID, &m.CompanyID, &m.Role, &m.CreatedAt, &m.Email, &m.Name); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		return &m, nil
	})
}

// Delete quita al usuario de la empresa.
func (r *MembershipRepo) Delete(ctx context.Context, userID, companyID string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM user_companies WHERE user_id = $1 AND company_id = $2`, userID, companyID)
	if err != nil {
		return fmt.Errorf("delete membership: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanMembership(row pgxScanner) (*entity.UserCompany, error) {
	var m entity.UserCompany
	if err := row.Scan(&m.UserID, &m.CompanyID, &m.Role, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}
