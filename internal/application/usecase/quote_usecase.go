package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-api/internal/application/access"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/quote"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// QuotePDFGenerator puerto para la representación gráfica de una cotización.
type QuotePDFGenerator interface {
	GenerateQuotePDF(ctx context.Context, q *entity.Quote, company *entity.Company, client *entity.Client) ([]byte, error)
}

// QuoteUseCase cotizaciones: los totales se calculan al crear y luego solo se editan campos de cabecera.
type QuoteUseCase struct {
	repo      repository.QuoteRepository
	companies repository.CompanyRepository
	guard     *access.Guard
	refs      *References
	tx        QuoteTxRunner
	pdf       QuotePDFGenerator
}

// NewQuoteUseCase construye el caso de uso.
func NewQuoteUseCase(
	repo repository.QuoteRepository,
	companies repository.CompanyRepository,
	guard *access.Guard,
	refs *References,
	tx QuoteTxRunner,
	pdf QuotePDFGenerator,
) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, companies: companies, guard: guard, refs: refs, tx: tx, pdf: pdf}
}

// Create calcula los totales por línea y persiste cabecera + ítems en una transacción.
func (uc *QuoteUseCase) Create(ctx context.Context, userID string, in dto.CreateQuoteRequest) (*dto.QuoteResponse, error) {
	items := make([]entity.QuoteItem, 0, len(in.Items))
	for i, it := range in.Items {
		if err := validateQuoteItem(it); err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
		items = append(items, entity.QuoteItem{
			ID:           uuid.New().String(),
			ProductID:    it.ProductID,
			Description:  strings.TrimSpace(it.Description),
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			DiscountRate: it.DiscountRate,
			TaxRate:      it.TaxRate,
		})
	}
	if err := uc.guard.Authorize(ctx, userID, in.CompanyID); err != nil {
		return nil, err
	}
	if err := uc.refs.Client(ctx, in.CompanyID, in.ClientID); err != nil {
		return nil, err
	}
	for i := range items {
		if err := uc.refs.Product(ctx, in.CompanyID, items[i].ProductID); err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
	}

	now := time.Now()
	q := &entity.Quote{
		ID:         uuid.New().String(),
		CompanyID:  in.CompanyID,
		ClientID:   in.ClientID,
		Title:      strings.TrimSpace(in.Title),
		Status:     entity.QuoteStatusDraft,
		ValidUntil: in.ValidUntil,
		TaxApplies: in.TaxApplies,
		Notes:      in.Notes,
		Items:      items,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for i := range q.Items {
		q.Items[i].QuoteID = q.ID
	}
	quote.Apply(q)

	err := uc.tx.RunQuote(ctx, func(quotes repository.QuoteRepository) error {
		number, err := quotes.NextNumber(ctx, q.CompanyID)
		if err != nil {
			return err
		}
		q.Number = number
		return quotes.Create(ctx, q)
	})
	if err != nil {
		return nil, err
	}
	return toQuoteResponse(q), nil
}

// GetByID obtiene una cotización con sus ítems.
func (uc *QuoteUseCase) GetByID(ctx context.Context, userID, id string) (*dto.QuoteResponse, error) {
	q, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return toQuoteResponse(q), nil
}

// List lista cabeceras de cotizaciones (sin ítems).
func (uc *QuoteUseCase) List(ctx context.Context, userID string, q dto.ListQuery) ([]dto.QuoteResponse, error) {
	f, err := scopedFilter(ctx, uc.guard, userID, q, q.Status)
	if err != nil {
		return nil, err
	}
	out := make([]dto.QuoteResponse, 0)
	if len(f.CompanyIDs) == 0 {
		return out, nil
	}
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	for _, it := range list {
		out = append(out, *toQuoteResponse(it))
	}
	return out, nil
}

// Update edita la cabecera. Los totales y los ítems no cambian.
func (uc *QuoteUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateQuoteRequest) (*dto.QuoteResponse, error) {
	q, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if in.ClientID != nil {
		if err := uc.refs.Client(ctx, q.CompanyID, in.ClientID); err != nil {
			return nil, err
		}
		q.ClientID = in.ClientID
	}
	if in.Title != nil {
		q.Title = strings.TrimSpace(*in.Title)
	}
	if in.Status != nil {
		q.Status = *in.Status
	}
	if in.ValidUntil != nil {
		q.ValidUntil = in.ValidUntil
	}
	if in.Notes != nil {
		q.Notes = *in.Notes
	}
	return uc.save(ctx, q)
}

// UpdateStatus cambia el estado de la cotización.
func (uc *QuoteUseCase) UpdateStatus(ctx context.Context, userID, id, status string) (*dto.QuoteResponse, error) {
	q, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	q.Status = status
	return uc.save(ctx, q)
}

// Delete elimina la cotización y sus ítems (ON DELETE CASCADE).
func (uc *QuoteUseCase) Delete(ctx context.Context, userID, id string) error {
	if _, err := uc.load(ctx, userID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// DownloadPDF genera el PDF de la cotización.
func (uc *QuoteUseCase) DownloadPDF(ctx context.Context, userID, id string) (pdfBytes []byte, filename string, err error) {
	q, err := uc.load(ctx, userID, id)
	if err != nil {
		return nil, "", err
	}
	company, err := uc.companies.GetByID(ctx, q.CompanyID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener empresa: %w", err)
	}
	if company == nil {
		return nil, "", domain.ErrNotFound
	}
	// Un cliente que ya no pertenece a la empresa no se imprime.
	var client *entity.Client
	if q.ClientID != nil {
		client, err = uc.refs.clientOf(ctx, q.CompanyID, *q.ClientID)
		if err != nil && !errors.Is(err, domain.ErrInvalidInput) {
			return nil, "", fmt.Errorf("pdf: %w", err)
		}
	}
	pdfBytes, err = uc.pdf.GenerateQuotePDF(ctx, q, company, client)
	if err != nil {
		return nil, "", err
	}
	return pdfBytes, fmt.Sprintf("cotizacion-%s.pdf", q.Number), nil
}

func validateQuoteItem(it dto.QuoteItemRequest) error {
	if !it.Quantity.IsPositive() {
		return fmt.Errorf("%w: quantity debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if err := requireNumeric("quantity", it.Quantity, 4, maxQuantity); err != nil {
		return err
	}
	if err := requireNonNegative("unitPrice", it.UnitPrice); err != nil {
		return err
	}
	if err := requireRate("discountRate", it.DiscountRate); err != nil {
		return err
	}
	return requireRate("taxRate", it.TaxRate)
}

func (uc *QuoteUseCase) load(ctx context.Context, userID, id string) (*entity.Quote, error) {
	q, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.guard.Authorize(ctx, userID, q.CompanyID); err != nil {
		return nil, err
	}
	return q, nil
}

func (uc *QuoteUseCase) save(ctx context.Context, q *entity.Quote) (*dto.QuoteResponse, error) {
	q.UpdatedAt = time.Now()
	if err := uc.repo.UpdateHeader(ctx, q); err != nil {
		return nil, err
	}
	return toQuoteResponse(q), nil
}

func toQuoteResponse(q *entity.Quote) *dto.QuoteResponse {
	out := &dto.QuoteResponse{
		ID:         q.ID,
		CompanyID:  q.CompanyID,
		ClientID:   q.ClientID,
		Number:     q.Number,
		Title:      q.Title,
		Status:     q.Status,
		ValidUntil: q.ValidUntil,
		TaxApplies: q.TaxApplies,
		Subtotal:   q.Subtotal,
		Discount:   q.Discount,
		Tax:        q.Tax,
		Total:      q.Total,
		Notes:      q.Notes,
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
	for _, it := range q.Items {
		out.Items = append(out.Items, dto.QuoteItemResponse{
			ID:           it.ID,
			ProductID:    it.ProductID,
			Description:  it.Description,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			DiscountRate: it.DiscountRate,
			TaxRate:      it.TaxRate,
			Subtotal:     it.Subtotal,
			Discount:     it.Discount,
			Tax:          it.Tax,
			Total:        it.Total,
		})
	}
	return out
}
