package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
)

const (
	clientOfA   = "aaaaaaaa-0000-0000-0000-000000000001"
	clientOfB   = "bbbbbbbb-0000-0000-0000-000000000001"
	productOfA  = "aaaaaaaa-0000-0000-0000-000000000002"
	productOfB  = "bbbbbbbb-0000-0000-0000-000000000002"
	assigneeOfA = "aaaaaaaa-0000-0000-0000-000000000003"
	outsider    = "bbbbbbbb-0000-0000-0000-000000000003"
)

func ptr(s string) *string { return &s }

// tenantFixture dos empresas con un cliente y un producto cada una.
type tenantFixture struct {
	refs    *usecase.References
	members []entity.UserCompany
}

func newTenantFixture() *tenantFixture {
	clients := newFakeClients()
	clients.rows[clientOfA] = &entity.Client{ID: clientOfA, CompanyID: companyA, Name: "Cliente A", TaxID: "900-A"}
	clients.rows[clientOfB] = &entity.Client{ID: clientOfB, CompanyID: companyB, Name: "Secreto B", TaxID: "900-B"}
	products := &fakeProducts{rows: map[string]*entity.Product{
		productOfA: {ID: productOfA, CompanyID: companyA, SKU: "A-1", Name: "Producto A"},
		productOfB: {ID: productOfB, CompanyID: companyB, SKU: "B-1", Name: "Producto B"},
	}}
	members := []entity.UserCompany{
		member("u1", companyA),
		member(assigneeOfA, companyA),
		member(outsider, companyB),
	}
	return &tenantFixture{
		refs:    usecase.NewReferences(clients, products, newGuard(members...)),
		members: members,
	}
}

func TestReferences_Client(t *testing.T) {
	refs := newTenantFixture().refs
	ctx := context.Background()

	assert.NoError(t, refs.Client(ctx, companyA, nil))
	assert.NoError(t, refs.Client(ctx, companyA, ptr(clientOfA)))
	assert.ErrorIs(t, refs.Client(ctx, companyA, ptr(clientOfB)), domain.ErrInvalidInput)
	assert.ErrorIs(t, refs.Client(ctx, companyA, ptr("cccccccc-0000-0000-0000-000000000009")), domain.ErrInvalidInput)
	assert.ErrorIs(t, refs.Client(ctx, companyA, ptr("")), domain.ErrInvalidInput)
	assert.ErrorIs(t, refs.Client(ctx, companyA, ptr("abc")), domain.ErrInvalidInput)
}

func TestReferences_ProductYResponsable(t *testing.T) {
	refs := newTenantFixture().refs
	ctx := context.Background()

	assert.NoError(t, refs.Product(ctx, companyA, ptr(productOfA)))
	assert.ErrorIs(t, refs.Product(ctx, companyA, ptr(productOfB)), domain.ErrInvalidInput)

	assert.NoError(t, refs.Assignee(ctx, companyA, ptr(assigneeOfA)))
	assert.ErrorIs(t, refs.Assignee(ctx, companyA, ptr(outsider)), domain.ErrInvalidInput)
	assert.ErrorIs(t, refs.Assignee(ctx, companyA, ptr("")), domain.ErrInvalidInput)
}

// Cada recurso con clientId debe rechazar un cliente de otra empresa al crear y al actualizar.
func TestClienteDeOtraEmpresa_PorRecurso(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	type resource struct {
		name   string
		create func(fx *tenantFixture, clientID *string) (string, error)
		update func(fx *tenantFixture, id string, clientID *string) error
		stored func(id string) *string
	}

	incomes := fakeIncomes{newMemRepo(func(i *entity.Income) string { return i.ID })}
	activities := newMemRepo(func(a *entity.Activity) string { return a.ID })
	opportunities := newMemRepo(func(o *entity.Opportunity) string { return o.ID })
	contracts := newMemRepo(func(c *entity.Contract) string { return c.ID })
	documents := newMemRepo(func(d *entity.Document) string { return d.ID })
	tickets := &fakeTickets{rows: map[string]*entity.Ticket{}}
	quotes := newFakeQuotes()

	resources := []resource{
		{
			name: "incomes",
			create: func(fx *tenantFixture, clientID *string) (string, error) {
				uc := usecase.NewIncomeUseCase(incomes, newGuard(fx.members...), fx.refs)
				out, err := uc.Create(ctx, "u1", dto.CreateIncomeRequest{CompanyID: companyA, ClientID: clientID, Description: "Pago", Amount: d("100"), Date: now})
				if err != nil {
					return "", err
				}
				return out.ID, nil
			},
			update: func(fx *tenantFixture, id string, clientID *string) error {
				uc := usecase.NewIncomeUseCase(incomes, newGuard(fx.members...), fx.refs)
				_, err := uc.Update(ctx, "u1", id, dto.UpdateIncomeRequest{ClientID: clientID})
				return err
			},
			stored: func(id string) *string { return incomes.rows[id].ClientID },
		},
		{
			name: "activities",
			create: func(fx *tenantFixture, clientID *string) (string, error) {
				uc := usecase.NewActivityUseCase(activities, newGuard(fx.members...), fx.refs)
				out, err := uc.Create(ctx, "u1", dto.CreateActivityRequest{CompanyID: companyA, ClientID: clientID, Type: "CALL", Title: "Llamada", DueDate: now})
				if err != nil {
					return "", err
				}
				return out.ID, nil
			},
			update: func(fx *tenantFixture, id string, clientID *string) error {
				uc := usecase.NewActivityUseCase(activities, newGuard(fx.members...), fx.refs)
				_, err := uc.Update(ctx, "u1", id, dto.UpdateActivityRequest{ClientID: clientID})
				return err
			},
			stored: func(id string) *string { return activities.rows[id].ClientID },
		},
		{
			name: "opportunities",
			create: func(fx *tenantFixture, clientID *string) (string, error) {
				uc := usecase.NewOpportunityUseCase(opportunities, newGuard(fx.members...), fx.refs)
				out, err := uc.Create(ctx, "u1", dto.CreateOpportunityRequest{CompanyID: companyA, ClientID: clientID, Title: "Renovación", Value: d("500")})
				if err != nil {
					return "", err
				}
				return out.ID, nil
			},
			update: func(fx *tenantFixture, id string, clientID *string) error {
				uc := usecase.NewOpportunityUseCase(opportunities, newGuard(fx.members...), fx.refs)
				_, err := uc.Update(ctx, "u1", id, dto.UpdateOpportunityRequest{ClientID: clientID})
				return err
			},
			stored: func(id string) *string { return opportunities.rows[id].ClientID },
		},
		{
			name: "contracts",
			create: func(fx *tenantFixture, clientID *string) (string, error) {
				uc := usecase.NewContractUseCase(contracts, newGuard(fx.members...), fx.refs)
				out, err := uc.Create(ctx, "u1", dto.CreateContractRequest{CompanyID: companyA, ClientID: clientID, Title: "Soporte", Value: d("1200"), StartDate: now})
				if err != nil {
					return "", err
				}
				return out.ID, nil
			},
			update: func(fx *tenantFixture, id string, clientID *string) error {
				uc := usecase.NewContractUseCase(contracts, newGuard(fx.members...), fx.refs)
				_, err := uc.Update(ctx, "u1", id, dto.UpdateContractRequest{ClientID: clientID})
				return err
			},
			stored: func(id string) *string { return contracts.rows[id].ClientID },
		},
		{
			name: "documents",
			create: func(fx *tenantFixture, clientID *string) (string, error) {
				uc := usecase.NewDocumentUseCase(documents, newGuard(fx.members...), fx.refs)
				out, err := uc.Create(ctx, "u1", dto.CreateDocumentRequest{CompanyID: companyA, ClientID: clientID, Name: "Propuesta", Type: "PROPOSAL", URL: "https://files.example/p.pdf"})
				if err != nil {
					return "", err
				}
				return out.ID, nil
			},
			update: func(fx *tenantFixture, id string, clientID *string) error {
				uc := usecase.NewDocumentUseCase(documents, newGuard(fx.members...), fx.refs)
				_, err := uc.Update(ctx, "u1", id, dto.UpdateDocumentRequest{ClientID: clientID})
				return err
			},
			stored: func(id string) *string { return documents.rows[id].ClientID },
		},
		{
			name: "tickets",
			create: func(fx *tenantFixture, clientID *string) (string, error) {
				uc := usecase.NewTicketUseCase(tickets, newGuard(fx.members...), fx.refs)
				out, err := uc.Create(ctx, "u1", dto.CreateTicketRequest{CompanyID: companyA, ClientID: clientID, Subject: "No carga"})
				if err != nil {
					return "", err
				}
				return out.ID, nil
			},
			update: func(fx *tenantFixture, id string, clientID *string) error {
				uc := usecase.NewTicketUseCase(tickets, newGuard(fx.members...), fx.refs)
				_, err := uc.Update(ctx, "u1", id, dto.UpdateTicketRequest{ClientID: clientID})
				return err
			},
			stored: func(id string) *string { return tickets.rows[id].ClientID },
		},
		{
			name: "quotes",
			create: func(fx *tenantFixture, clientID *string) (string, error) {
				uc := usecase.NewQuoteUseCase(quotes, nil, newGuard(fx.members...), fx.refs, quotes, nil)
				req := quoteRequest(companyA)
				req.ClientID = clientID
				out, err := uc.Create(ctx, "u1", req)
				if err != nil {
					return "", err
				}
				return out.ID, nil
			},
			update: func(fx *tenantFixture, id string, clientID *string) error {
				uc := usecase.NewQuoteUseCase(quotes, nil, newGuard(fx.members...), fx.refs, quotes, nil)
				_, err := uc.Update(ctx, "u1", id, dto.UpdateQuoteRequest{ClientID: clientID})
				return err
			},
			stored: func(id string) *string { return quotes.rows[id].ClientID },
		},
	}

	for _, r := range resources {
		t.Run(r.name, func(t *testing.T) {
			fx := newTenantFixture()

			_, err := r.create(fx, ptr(clientOfB))
			assert.ErrorIs(t, err, domain.ErrInvalidInput, "crear con cliente ajeno")

			id, err := r.create(fx, ptr(clientOfA))
			require.NoError(t, err)
			require.Equal(t, clientOfA, *r.stored(id))

			err = r.update(fx, id, ptr(clientOfB))
			assert.ErrorIs(t, err, domain.ErrInvalidInput, "actualizar a cliente ajeno")
			assert.Equal(t, clientOfA, *r.stored(id), "el cliente no cambia")
		})
	}
}

func TestResponsableNoMiembro(t *testing.T) {
	ctx := context.Background()
	fx := newTenantFixture()

	tickets := usecase.NewTicketUseCase(&fakeTickets{rows: map[string]*entity.Ticket{}}, newGuard(fx.members...), fx.refs)
	_, err := tickets.Create(ctx, "u1", dto.CreateTicketRequest{CompanyID: companyA, Subject: "X", AssignedTo: ptr(outsider)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	created, err := tickets.Create(ctx, "u1", dto.CreateTicketRequest{CompanyID: companyA, Subject: "X", AssignedTo: ptr(assigneeOfA)})
	require.NoError(t, err)
	_, err = tickets.Update(ctx, "u1", created.ID, dto.UpdateTicketRequest{AssignedTo: ptr(outsider)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	activities := usecase.NewActivityUseCase(newMemRepo(func(a *entity.Activity) string { return a.ID }), newGuard(fx.members...), fx.refs)
	_, err = activities.Create(ctx, "u1", dto.CreateActivityRequest{CompanyID: companyA, Type: "CALL", Title: "Llamada", DueDate: time.Now(), AssignedTo: ptr(outsider)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestQuoteCreate_ProductoDeOtraEmpresa(t *testing.T) {
	fx := newTenantFixture()
	quotes := newFakeQuotes()
	uc := usecase.NewQuoteUseCase(quotes, nil, newGuard(fx.members...), fx.refs, quotes, nil)
	before := len(quotes.rows)

	req := quoteRequest(companyA)
	req.Items[0].ProductID = ptr(productOfB)
	_, err := uc.Create(context.Background(), "u1", req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Len(t, quotes.rows, before)

	req.Items[0].ProductID = ptr(productOfA)
	_, err = uc.Create(context.Background(), "u1", req)
	assert.NoError(t, err)
}

func TestQuoteDownloadPDF_NoImprimeClienteAjeno(t *testing.T) {
	fx := newTenantFixture()
	quotes := newFakeQuotes()
	pdf := &capturePDF{}
	companies := &fakeCompanies{rows: map[string]*entity.Company{
		companyA: {ID: companyA, Name: "Empresa A"},
	}}
	uc := usecase.NewQuoteUseCase(quotes, companies, newGuard(fx.members...), fx.refs, quotes, pdf)

	// Fila heredada con un cliente de otra empresa.
	quotes.rows["q-1"] = &entity.Quote{ID: "q-1", CompanyID: companyA, ClientID: ptr(clientOfB), Number: "COT-00001"}
	_, filename, err := uc.DownloadPDF(context.Background(), "u1", "q-1")
	require.NoError(t, err)
	assert.Equal(t, "cotizacion-COT-00001.pdf", filename)
	assert.Equal(t, 1, pdf.calls)
	assert.Nil(t, pdf.client, "el PDF no debe incluir un cliente de otra empresa")

	quotes.rows["q-2"] = &entity.Quote{ID: "q-2", CompanyID: companyA, ClientID: ptr(clientOfA), Number: "COT-00002"}
	_, _, err = uc.DownloadPDF(context.Background(), "u1", "q-2")
	require.NoError(t, err)
	require.NotNil(t, pdf.client)
	assert.Equal(t, "Cliente A", pdf.client.Name)
}
