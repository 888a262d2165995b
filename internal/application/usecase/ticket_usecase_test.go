package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain/entity"
)

func TestTicketCreate_Defaults(t *testing.T) {
	repo := &fakeTickets{rows: map[string]*entity.Ticket{}}
	uc := newTicketUseCase(repo)

	got, err := uc.Create(context.Background(), "u1", dto.CreateTicketRequest{CompanyID: companyA, Subject: "No carga el reporte"})
	require.NoError(t, err)
	assert.Equal(t, entity.TicketStatusOpen, got.Status)
	assert.Equal(t, entity.TicketPriorityMedium, got.Priority)
	assert.Nil(t, got.ResolvedAt)
}

func TestTicketUpdateStatus_ResolvedAt(t *testing.T) {
	repo := &fakeTickets{rows: map[string]*entity.Ticket{}}
	uc := newTicketUseCase(repo)
	created, err := uc.Create(context.Background(), "u1", dto.CreateTicketRequest{CompanyID: companyA, Subject: "Error"})
	require.NoError(t, err)

	resolved, err := uc.UpdateStatus(context.Background(), "u1", created.ID, entity.TicketStatusResolved)
	require.NoError(t, err)
	require.NotNil(t, resolved.ResolvedAt)

	reopened, err := uc.UpdateStatus(context.Background(), "u1", created.ID, entity.TicketStatusOpen)
	require.NoError(t, err)
	assert.Nil(t, reopened.ResolvedAt)
}

func newTicketUseCase(repo *fakeTickets) *usecase.TicketUseCase {
	guard := newGuard(member("u1", companyA))
	return usecase.NewTicketUseCase(repo, guard, usecase.NewReferences(newFakeClients(), &fakeProducts{rows: map[string]*entity.Product{}}, guard))
}
