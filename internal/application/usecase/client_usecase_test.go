package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
)

const (
	companyA = "11111111-1111-1111-1111-111111111111"
	companyB = "22222222-2222-2222-2222-222222222222"
)

func TestClientCreate_MiembroCreaConEstadoInicial(t *testing.T) {
	repo := newFakeClients()
	uc := usecase.NewClientUseCase(repo, newGuard(member("u1", companyA)))

	got, err := uc.Create(context.Background(), "u1", dto.CreateClientRequest{CompanyID: companyA, Name: "  Acme S.A.S "})
	require.NoError(t, err)

	assert.Equal(t, "Acme S.A.S", got.Name)
	assert.Equal(t, entity.ClientStatusProspecto, got.Status)
	assert.Len(t, repo.rows, 1)
}

func TestClientCreate_NoMiembroNoCreaNada(t *testing.T) {
	repo := newFakeClients()
	uc := usecase.NewClientUseCase(repo, newGuard(member("u1", companyA)))

	_, err := uc.Create(context.Background(), "u1", dto.CreateClientRequest{CompanyID: companyB, Name: "Intruso"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, repo.rows)
}

func TestClientGet_Inexistente(t *testing.T) {
	uc := usecase.NewClientUseCase(newFakeClients(), newGuard(member("u1", companyA)))

	_, err := uc.GetByID(context.Background(), "u1", "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClientUpdate_OtraEmpresaProhibido(t *testing.T) {
	repo := newFakeClients()
	repo.rows["c1"] = &entity.Client{ID: "c1", CompanyID: companyB, Name: "Ajeno", Status: entity.ClientStatusActivo}
	uc := usecase.NewClientUseCase(repo, newGuard(member("u1", companyA)))

	name := "Cambiado"
	_, err := uc.Update(context.Background(), "u1", "c1", dto.UpdateClientRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, "Ajeno", repo.rows["c1"].Name)
}

func TestClientList_SoloEmpresasDelUsuario(t *testing.T) {
	repo := newFakeClients()
	repo.rows["c1"] = &entity.Client{ID: "c1", CompanyID: companyA, Status: entity.ClientStatusActivo}
	repo.rows["c2"] = &entity.Client{ID: "c2", CompanyID: companyB, Status: entity.ClientStatusActivo}
	uc := usecase.NewClientUseCase(repo, newGuard(member("u1", companyA)))

	got, err := uc.List(context.Background(), "u1", dto.ListQuery{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c1", got[0].ID)
}

func TestClientList_SinMembresiasListaVacia(t *testing.T) {
	uc := usecase.NewClientUseCase(newFakeClients(), newGuard())

	got, err := uc.List(context.Background(), "u1", dto.ListQuery{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestClientList_FechaInvalida(t *testing.T) {
	uc := usecase.NewClientUseCase(newFakeClients(), newGuard(member("u1", companyA)))

	_, err := uc.List(context.Background(), "u1", dto.ListQuery{From: "ayer"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClientUpdateStatus(t *testing.T) {
	repo := newFakeClients()
	repo.rows["c1"] = &entity.Client{ID: "c1", CompanyID: companyA, Status: entity.ClientStatusProspecto}
	uc := usecase.NewClientUseCase(repo, newGuard(member("u1", companyA)))

	got, err := uc.UpdateStatus(context.Background(), "u1", "c1", entity.ClientStatusActivo)
	require.NoError(t, err)
	assert.Equal(t, entity.ClientStatusActivo, got.Status)
}
