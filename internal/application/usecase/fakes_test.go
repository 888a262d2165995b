package usecase_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/crm-api/internal/application/access"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// ── Fakes en memoria ──────────────────────────────────────────────────────────

type fakeMemberships struct {
	rows []entity.UserCompany
}

func newGuard(rows ...entity.UserCompany) *access.Guard {
	return access.NewGuard(&fakeMemberships{rows: rows})
}

func member(userID, companyID string) entity.UserCompany {
	return entity.UserCompany{UserID: userID, CompanyID: companyID, Role: entity.RoleUser}
}

func (f *fakeMemberships) Create(_ context.Context, m *entity.UserCompany) error {
	f.rows = append(f.rows, *m)
	return nil
}

func (f *fakeMemberships) Get(_ context.Context, userID, companyID string) (*entity.UserCompany, error) {
	for i := range f.rows {
		if f.rows[i].UserID == userID && f.rows[i].CompanyID == companyID {
			return &f.rows[i], nil
		}
	}
	return nil, nil
}

func (f *fakeMemberships) CompanyIDsByUser(_ context.Context, userID string) ([]string, error) {
	var ids []string
	for _, r := range f.rows {
		if r.UserID == userID {
			ids = append(ids, r.CompanyID)
		}
	}
	return ids, nil
}

func (f *fakeMemberships) ListByUser(context.Context, string) ([]*entity.UserCompany, error) {
	return nil, nil
}

func (f *fakeMemberships) ListMembers(context.Context, string) ([]*entity.CompanyMember, error) {
	return nil, nil
}

func (f *fakeMemberships) Delete(context.Context, string, string) error { return nil }

func inScope(f repository.ListFilter, companyID string) bool {
	for _, id := range f.CompanyIDs {
		if id == companyID {
			return true
		}
	}
	return false
}

type fakeClients struct {
	rows map[string]*entity.Client
}

func newFakeClients() *fakeClients { return &fakeClients{rows: map[string]*entity.Client{}} }

func (f *fakeClients) Create(_ context.Context, c *entity.Client) error {
	f.rows[c.ID] = c
	return nil
}

func (f *fakeClients) GetByID(_ context.Context, id string) (*entity.Client, error) {
	return f.rows[id], nil
}

func (f *fakeClients) Update(_ context.Context, c *entity.Client) error {
	f.rows[c.ID] = c
	return nil
}

func (f *fakeClients) Delete(_ context.Context, id string) error {
	delete(f.rows, id)
	return nil
}

func (f *fakeClients) List(_ context.Context, lf repository.ListFilter) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range f.rows {
		if inScope(lf, c.CompanyID) && (lf.Status == "" || lf.Status == c.Status) {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeQuotes struct {
	mu   sync.Mutex
	rows map[string]*entity.Quote
	seq  map[string]int
}

func newFakeQuotes() *fakeQuotes {
	return &fakeQuotes{rows: map[string]*entity.Quote{}, seq: map[string]int{}}
}

func (f *fakeQuotes) Create(_ context.Context, q *entity.Quote) error {
	f.rows[q.ID] = q
	return nil
}

func (f *fakeQuotes) GetByID(_ context.Context, id string) (*entity.Quote, error) {
	return f.rows[id], nil
}

func (f *fakeQuotes) UpdateHeader(_ context.Context, q *entity.Quote) error {
	f.rows[q.ID] = q
	return nil
}

func (f *fakeQuotes) Delete(_ context.Context, id string) error {
	delete(f.rows, id)
	return nil
}

func (f *fakeQuotes) List(_ context.Context, lf repository.ListFilter) ([]*entity.Quote, error) {
	var out []*entity.Quote
	for _, q := range f.rows {
		if inScope(lf, q.CompanyID) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuotes) NextNumber(_ context.Context, companyID string) (string, error) {
	f.seq[companyID]++
	return fmt.Sprintf("COT-%05d", f.seq[companyID]), nil
}

// RunQuote serializa como lo haría el advisory lock de la transacción.
func (f *fakeQuotes) RunQuote(_ context.Context, fn func(quotes repository.QuoteRepository) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(f)
}

type fakeProducts struct {
	rows map[string]*entity.Product
}

func (f *fakeProducts) Create(_ context.Context, p *entity.Product) error {
	f.rows[p.ID] = p
	return nil
}

func (f *fakeProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return f.rows[id], nil
}

func (f *fakeProducts) GetByCompanyAndSKU(_ context.Context, companyID, sku string) (*entity.Product, error) {
	for _, p := range f.rows {
		if p.CompanyID == companyID && p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProducts) Update(_ context.Context, p *entity.Product) error {
	f.rows[p.ID] = p
	return nil
}

func (f *fakeProducts) Delete(_ context.Context, id string) error {
	delete(f.rows, id)
	return nil
}

func (f *fakeProducts) List(_ context.Context, lf repository.ListFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.rows {
		if inScope(lf, p.CompanyID) {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeCategories struct {
	rows map[string]*entity.ProductCategory
}

func (f *fakeCategories) Create(_ context.Context, c *entity.ProductCategory) error {
	f.rows[c.ID] = c
	return nil
}

func (f *fakeCategories) GetByID(_ context.Context, id string) (*entity.ProductCategory, error) {
	return f.rows[id], nil
}

func (f *fakeCategories) Update(_ context.Context, c *entity.ProductCategory) error {
	f.rows[c.ID] = c
	return nil
}

func (f *fakeCategories) Delete(_ context.Context, id string) error {
	delete(f.rows, id)
	return nil
}

func (f *fakeCategories) List(context.Context, repository.ListFilter) ([]*entity.ProductCategory, error) {
	return nil, nil
}

type fakeTickets struct {
	rows map[string]*entity.Ticket
}

func (f *fakeTickets) Create(_ context.Context, t *entity.Ticket) error {
	f.rows[t.ID] = t
	return nil
}

func (f *fakeTickets) GetByID(_ context.Context, id string) (*entity.Ticket, error) {
	return f.rows[id], nil
}

func (f *fakeTickets) Update(_ context.Context, t *entity.Ticket) error {
	f.rows[t.ID] = t
	return nil
}

func (f *fakeTickets) Delete(_ context.Context, id string) error {
	if _, ok := f.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeTickets) List(context.Context, repository.ListFilter) ([]*entity.Ticket, error) {
	return nil, nil
}

// memRepo repositorio genérico en memoria para los CRUD simples.
type memRepo[T any] struct {
	rows map[string]*T
	id   func(*T) string
}

func newMemRepo[T any](id func(*T) string) *memRepo[T] {
	return &memRepo[T]{rows: map[string]*T{}, id: id}
}

func (f *memRepo[T]) Create(_ context.Context, v *T) error {
	f.rows[f.id(v)] = v
	return nil
}

func (f *memRepo[T]) GetByID(_ context.Context, id string) (*T, error) {
	return f.rows[id], nil
}

func (f *memRepo[T]) Update(_ context.Context, v *T) error {
	f.rows[f.id(v)] = v
	return nil
}

func (f *memRepo[T]) Delete(_ context.Context, id string) error {
	delete(f.rows, id)
	return nil
}

func (f *memRepo[T]) List(context.Context, repository.ListFilter) ([]*T, error) {
	out := make([]*T, 0, len(f.rows))
	for _, v := range f.rows {
		out = append(out, v)
	}
	return out, nil
}

type fakeIncomes struct{ *memRepo[entity.Income] }

func (f fakeIncomes) List(ctx context.Context, lf repository.ListFilter) ([]*entity.Income, int, error) {
	list, _ := f.memRepo.List(ctx, lf)
	return list, len(list), nil
}

type fakeCompanies struct {
	rows map[string]*entity.Company
}

func (f *fakeCompanies) Create(_ context.Context, c *entity.Company) error {
	f.rows[c.ID] = c
	return nil
}

func (f *fakeCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return f.rows[id], nil
}

func (f *fakeCompanies) Update(_ context.Context, c *entity.Company) error {
	f.rows[c.ID] = c
	return nil
}

func (f *fakeCompanies) ListByUser(context.Context, string) ([]*entity.Company, error) {
	return nil, nil
}

// capturePDF registra con qué datos se pidió el PDF.
type capturePDF struct {
	client *entity.Client
	calls  int
}

func (f *capturePDF) GenerateQuotePDF(_ context.Context, _ *entity.Quote, _ *entity.Company, client *entity.Client) ([]byte, error) {
	f.calls++
	f.client = client
	return []byte("%PDF-1.4"), nil
}
