package service

import (
	"context"
	"testing"

	"github.com/warning2025/farmaciaposventas3/internal/dto"
	"github.com/warning2025/farmaciaposventas3/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductFixture() (*ProductService, *fakeProductRepo, *fakeBranchRepo) {
	products := newFakeProductRepo()
	branches := newFakeBranchRepo()
	return NewProductService(products, branches, testHub()), products, branches
}

func TestCreateProduct(t *testing.T) {
	svc, repo, _ := newProductFixture()

	p, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Barcode:        "7771234567890",
		CommercialName: "Paracetamol 500mg",
		Category:       "Analgésicos",
		SellingPrice:   dec("5.50"),
		CostPrice:      dec("3.20"),
		CurrentStock:   40,
		MinStock:       10,
	})
	require.NoError(t, err)
	assert.Contains(t, repo.products, p.ID)
	assert.Equal(t, "Analgésicos", p.Category)
}

func TestCreateProductNegativePriceRejected(t *testing.T) {
	svc, _, _ := newProductFixture()
	_, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Barcode: "123456", CommercialName: "Malo", Category: "Otros",
		SellingPrice: dec("-1"), CostPrice: dec("0"),
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateProductFields(t *testing.T) {
	svc, repo, _ := newProductFixture()
	p := &model.Product{ID: uuid.New(), Barcode: "111", CommercialName: "Original", Category: "Otros"}
	repo.products[p.ID] = p

	name := "Renombrado"
	category := "Antibióticos"
	updated, err := svc.Update(context.Background(), p.ID, dto.UpdateProductRequest{
		CommercialName: &name,
		Category:       &category,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renombrado", updated.CommercialName)
	assert.Equal(t, "Antibióticos", updated.Category)
}

func TestUpdateProductNotFound(t *testing.T) {
	svc, _, _ := newProductFixture()

	name := "Fantasma"
	_, err := svc.Update(context.Background(), uuid.New(), dto.UpdateProductRequest{CommercialName: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetByBarcode(t *testing.T) {
	svc, repo, _ := newProductFixture()
	p := &model.Product{ID: uuid.New(), Barcode: "7770001112223", CommercialName: "Jarabe"}
	repo.products[p.ID] = p

	found, err := svc.GetByBarcode(context.Background(), "7770001112223")
	require.NoError(t, err)
	assert.Equal(t, p.ID, found.ID)

	_, err = svc.GetByBarcode(context.Background(), "000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListLowStock(t *testing.T) {
	svc, repo, _ := newProductFixture()

	low := &model.Product{ID: uuid.New(), CommercialName: "Bajo", CurrentStock: 2, MinStock: 5}
	atMin := &model.Product{ID: uuid.New(), CommercialName: "Al límite", CurrentStock: 5, MinStock: 5}
	healthy := &model.Product{ID: uuid.New(), CommercialName: "Sano", CurrentStock: 50, MinStock: 5}
	// MinStock zero never alerts, even at zero units
	noMin := &model.Product{ID: uuid.New(), CommercialName: "Sin mínimo", CurrentStock: 0, MinStock: 0}
	for _, p := range []*model.Product{low, atMin, healthy, noMin} {
		repo.products[p.ID] = p
	}

	result, err := svc.ListLowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 2)
	names := []string{result[0].CommercialName, result[1].CommercialName}
	assert.ElementsMatch(t, []string{"Bajo", "Al límite"}, names)
}

func TestAssignOrphansToMainBranch(t *testing.T) {
	svc, repo, branches := newProductFixture()

	main := &model.Branch{Name: "Central", Address: "Av. 1", IsMain: true}
	require.NoError(t, branches.CreateTx(nil, main))

	other := uuid.New()
	orphan1 := &model.Product{ID: uuid.New(), CommercialName: "Huérfano 1"}
	orphan2 := &model.Product{ID: uuid.New(), CommercialName: "Huérfano 2"}
	homed := &model.Product{ID: uuid.New(), CommercialName: "Con casa", BranchID: &other}
	for _, p := range []*model.Product{orphan1, orphan2, homed} {
		repo.products[p.ID] = p
	}

	assigned, err := svc.AssignOrphansToMainBranch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, assigned)

	require.NotNil(t, repo.products[orphan1.ID].BranchID)
	assert.Equal(t, main.ID, *repo.products[orphan1.ID].BranchID)
	assert.Equal(t, other, *repo.products[homed.ID].BranchID)
}

func TestAssignOrphansWithoutMainBranch(t *testing.T) {
	svc, repo, _ := newProductFixture()
	orphan := &model.Product{ID: uuid.New(), CommercialName: "Huérfano"}
	repo.products[orphan.ID] = orphan

	_, err := svc.AssignOrphansToMainBranch(context.Background())
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAssignOrphansNoneToAssign(t *testing.T) {
	svc, _, branches := newProductFixture()
	require.NoError(t, branches.CreateTx(nil, &model.Branch{Name: "Central", Address: "Av. 1", IsMain: true}))

	assigned, err := svc.AssignOrphansToMainBranch(context.Background())
	require.NoError(t, err)
	assert.Zero(t, assigned)
}

func TestDeleteProductNotFound(t *testing.T) {
	svc, _, _ := newProductFixture()
	assert.ErrorIs(t, svc.Delete(context.Background(), uuid.New()), ErrNotFound)
}
