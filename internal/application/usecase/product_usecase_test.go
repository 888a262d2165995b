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

func newProductUseCase(rows ...entity.UserCompany) (*usecase.ProductUseCase, *fakeProducts, *fakeCategories) {
	products := &fakeProducts{rows: map[string]*entity.Product{}}
	categories := &fakeCategories{rows: map[string]*entity.ProductCategory{}}
	return usecase.NewProductUseCase(products, categories, newGuard(rows...)), products, categories
}

func TestProductCreate_SKUDuplicado(t *testing.T) {
	uc, products, _ := newProductUseCase(member("u1", companyA))
	req := dto.CreateProductRequest{CompanyID: companyA, SKU: "SKU-1", Name: "Plan básico", Price: d("100"), Cost: d("40"), Stock: 5, MinStock: 2}

	_, err := uc.Create(context.Background(), "u1", req)
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), "u1", req)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, products.rows, 1)
}

func TestProductCreate_PrecioNegativo(t *testing.T) {
	uc, _, _ := newProductUseCase(member("u1", companyA))

	_, err := uc.Create(context.Background(), "u1", dto.CreateProductRequest{CompanyID: companyA, SKU: "X", Name: "X", Price: d("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_CategoriaDeOtraEmpresa(t *testing.T) {
	uc, _, categories := newProductUseCase(member("u1", companyA))
	categories.rows["cat-b"] = &entity.ProductCategory{ID: "cat-b", CompanyID: companyB}

	cat := "cat-b"
	_, err := uc.Create(context.Background(), "u1", dto.CreateProductRequest{CompanyID: companyA, CategoryID: &cat, SKU: "X", Name: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductResponse_StockBajo(t *testing.T) {
	uc, _, _ := newProductUseCase(member("u1", companyA))

	got, err := uc.Create(context.Background(), "u1", dto.CreateProductRequest{CompanyID: companyA, SKU: "S", Name: "S", Stock: 2, MinStock: 2})
	require.NoError(t, err)
	assert.True(t, got.LowStock)
	assert.Equal(t, entity.ProductStatusActive, got.Status)
}
