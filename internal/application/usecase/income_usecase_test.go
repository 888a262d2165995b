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

func newIncomeUseCase() (*usecase.IncomeUseCase, fakeIncomes) {
	repo := fakeIncomes{newMemRepo(func(i *entity.Income) string { return i.ID })}
	guard := newGuard(member("u1", companyA))
	refs := usecase.NewReferences(newFakeClients(), &fakeProducts{rows: map[string]*entity.Product{}}, guard)
	return usecase.NewIncomeUseCase(repo, guard, refs), repo
}

func TestIncomeCreate_Importes(t *testing.T) {
	cases := []struct {
		amount string
		ok     bool
	}{
		{"100.50", true},
		{"0.01", true},
		{"0", false},
		{"0.001", false},
		{"10.005", false},
		{"-5", false},
		{"10000000000000000", false},
	}
	for _, tc := range cases {
		t.Run(tc.amount, func(t *testing.T) {
			uc, repo := newIncomeUseCase()
			_, err := uc.Create(context.Background(), "u1", dto.CreateIncomeRequest{
				CompanyID:   companyA,
				Description: "Pago",
				Amount:      d(tc.amount),
				Date:        time.Now(),
			})
			if tc.ok {
				require.NoError(t, err)
				assert.Len(t, repo.rows, 1)
				return
			}
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, repo.rows)
		})
	}
}
