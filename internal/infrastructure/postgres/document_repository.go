package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo metadatos de documentos sobre PostgreSQL. El archivo vive fuera (URL).
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador de persistencia para documentos.
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

const documentColumns = `id, company_id, client_id, name, type, url, size_bytes, mime_type, created_at, updated_at`

var documentFilter = filterColumns{
	typ:    "type",
	date:   "created_at",
	search: []string{"name"},
}

// Create persiste un nuevo documento.
func (r *DocumentRepo) Create(ctx context.Context, d *entity.Document) error {
	query := `
		INSERT INTO documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.CompanyID, d.ClientID, d.Name, d.Type, d.URL, d.SizeBytes, d.MimeType, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert document", err)
	}
	return nil
}

// GetByID obtiene un documento por ID.
func (r *DocumentRepo) GetByID(ctx context.Context, id string) (*entity.Document, error) {
	d, err := scanDocument(r.q.QueryRow(ctx, `SELECT `+documentColumns+` FROM documents WHERE id = $1`, id))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return d, nil
}

// Update actualiza los metadatos de un documento.
func (r *DocumentRepo) Update(ctx context.Context, d *entity.Document) error {
	query := `
		UPDATE documents SET client_id = $2, name = $3, type = $4, url = $5, size_bytes = $6, mime_type = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, d.ID, d.ClientID, d.Name, d.Type, d.URL, d.SizeBytes, d.MimeType, d.UpdatedAt)
	if err != nil {
		return writeErr("update document", err)
	}
	return affected(cmd)
}

// Delete elimina los metadatos de un documento.
func (r *DocumentRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return affected(cmd)
}

// List lista documentos, más recientes primero.
func (r *DocumentRepo) List(ctx context.Context, f repository.ListFilter) ([]*entity.Document, error) {
	where, args := buildWhere(f, documentFilter)
	query, args := paginate(`SELECT `+documentColumns+` FROM documents`+where+` ORDER BY created_at DESC`, args, f)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	list, err := collect(rows, scanDocument)
	if err != nil {
		return nil, fmt.Errorf("scan document: %w", err)
	}
	return list, nil
}

func scanDocument(row pgxScanner) (*entity.Document, error) {
	var d entity.Document
	err := row.Scan(
		&d.ID, &d.CompanyID, &d.ClientID, &d.Name, &d.Type, &d.URL, &d.SizeBytes, &d.MimeType,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
