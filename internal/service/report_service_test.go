package service

import (
	"context"
	"testing"
	"time"

	"github.com/warning2025/farmaciaposventas3/internal/dto"
	"github.com/warning2025/farmaciaposventas3/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRangeCoversWholeEndDay(t *testing.T) {
	start, end, err := parseRange("2026-08-01", "2026-08-03")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), start)
	// an event late on the 3rd is inside the window
	assert.True(t, end.After(time.Date(2026, 8, 3, 23, 59, 59, 0, time.UTC)))
	assert.True(t, end.Before(time.Date(2026, 8, 4, 0, 0, 0, 0, time.UTC)))
}

func TestParseRangeSingleDay(t *testing.T) {
	start, end, err := parseRange("2026-08-01", "2026-08-01")
	require.NoError(t, err)
	assert.True(t, end.After(start))
}

func TestParseRangeInvertedRejected(t *testing.T) {
	_, _, err := parseRange("2026-08-05", "2026-08-01")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseRangeBadFormat(t *testing.T) {
	_, _, err := parseRange("01/08/2026", "2026-08-05")
	assert.ErrorIs(t, err, ErrValidation)
	_, _, err = parseRange("2026-08-01", "mañana")
	assert.ErrorIs(t, err, ErrValidation)
}

type reportFixture struct {
	svc       *ReportService
	sales     *fakeSaleRepo
	expenses  *fakeExpenseRepo
	nursing   *fakeNursingRepo
	suppliers *fakeSupplierRepo
	products  *fakeProductRepo
	branchID  uuid.UUID
}

func newReportFixture() *reportFixture {
	f := &reportFixture{
		sales:     newFakeSaleRepo(),
		expenses:  newFakeExpenseRepo(),
		nursing:   newFakeNursingRepo(),
		suppliers: newFakeSupplierRepo(),
		products:  newFakeProductRepo(),
		branchID:  uuid.New(),
	}
	f.svc = NewReportService(f.sales, f.expenses, f.nursing, f.suppliers, newFakeCashRegisterRepo(), f.products)
	return f
}

func TestSalesReportAggregatesWindow(t *testing.T) {
	f := newReportFixture()
	svc, sales, branchID := f.svc, f.sales, f.branchID

	inWindow := &model.Sale{
		ID: uuid.New(), BranchID: branchID,
		Subtotal: dec("100"), TotalDiscount: dec("10"), FinalTotal: dec("90"),
		Channel: "pos", Date: time.Date(2026, 8, 10, 15, 30, 0, 0, time.UTC),
	}
	lateOnLastDay := &model.Sale{
		ID: uuid.New(), BranchID: branchID,
		Subtotal: dec("50"), TotalDiscount: dec("0"), FinalTotal: dec("50"),
		Channel: "pos", Date: time.Date(2026, 8, 11, 23, 59, 0, 0, time.UTC),
	}
	outside := &model.Sale{
		ID: uuid.New(), BranchID: branchID,
		Subtotal: dec("999"), TotalDiscount: dec("0"), FinalTotal: dec("999"),
		Channel: "pos", Date: time.Date(2026, 8, 12, 0, 1, 0, 0, time.UTC),
	}
	otherBranch := &model.Sale{
		ID: uuid.New(), BranchID: uuid.New(),
		Subtotal: dec("77"), TotalDiscount: dec("0"), FinalTotal: dec("77"),
		Channel: "pos", Date: time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC),
	}
	for _, s := range []*model.Sale{inWindow, lateOnLastDay, outside, otherBranch} {
		require.NoError(t, sales.CreateTx(nil, s))
	}

	report, err := svc.Sales(context.Background(), dto.ReportRangeRequest{
		BranchID: branchID.String(), From: "2026-08-10", To: "2026-08-11",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Count)
	assert.True(t, report.GrossTotal.Equal(dec("150")))
	assert.True(t, report.Discounts.Equal(dec("10")))
	assert.True(t, report.NetTotal.Equal(dec("140")))
}

func TestExpensesReportGroupsByCategory(t *testing.T) {
	f := newReportFixture()
	svc, expenses, branchID := f.svc, f.expenses, f.branchID

	day := time.Date(2026, 8, 10, 10, 0, 0, 0, time.UTC)
	for _, e := range []*model.Expense{
		{ID: uuid.New(), BranchID: branchID, Concept: "Luz", Amount: dec("80"), Category: "Servicios", Date: day},
		{ID: uuid.New(), BranchID: branchID, Concept: "Agua", Amount: dec("20"), Category: "Servicios", Date: day},
		{ID: uuid.New(), BranchID: branchID, Concept: "Bolsas", Amount: dec("15"), Category: "Insumos", Date: day},
	} {
		require.NoError(t, expenses.CreateTx(nil, e))
	}

	report, err := svc.Expenses(context.Background(), dto.ReportRangeRequest{
		BranchID: branchID.String(), From: "2026-08-10", To: "2026-08-10",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, report.Count)
	assert.True(t, report.Total.Equal(dec("115")))
	assert.True(t, report.ByCategory["Servicios"].Equal(dec("100")))
	assert.True(t, report.ByCategory["Insumos"].Equal(dec("15")))
}

func TestPurchasesReportTracksUnpaidCredit(t *testing.T) {
	f := newReportFixture()
	svc, suppliers, branchID := f.svc, f.suppliers, f.branchID

	day := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	supplierID := uuid.New()
	paid := &model.Purchase{
		ID: uuid.New(), SupplierID: supplierID, BranchID: branchID,
		TotalAmount: dec("200"), PaymentType: "contado", IsPaid: true,
		PurchaseDate: day, Timestamp: day,
	}
	pendingCredit := &model.Purchase{
		ID: uuid.New(), SupplierID: supplierID, BranchID: branchID,
		TotalAmount: dec("300"), PaymentType: "credito", IsPaid: false,
		PurchaseDate: day, Timestamp: day,
	}
	require.NoError(t, suppliers.CreatePurchaseTx(nil, paid))
	require.NoError(t, suppliers.CreatePurchaseTx(nil, pendingCredit))

	report, err := svc.Purchases(context.Background(), dto.ReportRangeRequest{
		BranchID: branchID.String(), From: "2026-08-10", To: "2026-08-10",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Count)
	assert.True(t, report.Total.Equal(dec("500")))
	assert.True(t, report.Unpaid.Equal(dec("300")))
}

func TestNursingReportGroupsByServiceType(t *testing.T) {
	f := newReportFixture()

	day := time.Date(2026, 8, 10, 11, 0, 0, 0, time.UTC)
	for _, r := range []*model.NursingRecord{
		{ID: uuid.New(), BranchID: f.branchID, ServiceType: "Inyectable", PatientName: "Ana Rojas", Cost: dec("25"), Date: day},
		{ID: uuid.New(), BranchID: f.branchID, ServiceType: "Inyectable", PatientName: "Luis Paz", Cost: dec("25"), Date: day},
		{ID: uuid.New(), BranchID: f.branchID, ServiceType: "Curación", PatientName: "Rosa Quispe", Cost: dec("40"), Date: day},
		{ID: uuid.New(), BranchID: f.branchID, ServiceType: "Suero", PatientName: "Fuera de rango", Cost: dec("99"), Date: day.AddDate(0, 0, 5)},
	} {
		require.NoError(t, f.nursing.CreateTx(nil, r))
	}

	report, err := f.svc.Nursing(context.Background(), dto.ReportRangeRequest{
		BranchID: f.branchID.String(), From: "2026-08-10", To: "2026-08-10",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, report.Count)
	assert.True(t, report.Total.Equal(dec("90")))
	assert.True(t, report.ByService["Inyectable"].Equal(dec("50")))
	assert.True(t, report.ByService["Curación"].Equal(dec("40")))
}

func TestInventoryReportValuesStock(t *testing.T) {
	f := newReportFixture()

	for _, p := range []*model.Product{
		{ID: uuid.New(), CommercialName: "Paracetamol", CostPrice: dec("3"), SellingPrice: dec("5"), CurrentStock: 10, MinStock: 5},
		{ID: uuid.New(), CommercialName: "Amoxicilina", CostPrice: dec("8"), SellingPrice: dec("12"), CurrentStock: 2, MinStock: 4},
	} {
		require.NoError(t, f.products.Create(context.Background(), p))
	}

	report, err := f.svc.Inventory(context.Background(), dto.InventoryReportRequest{})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Count)
	assert.Equal(t, 12, report.TotalUnits)
	assert.True(t, report.CostValue.Equal(dec("46")), "10*3 + 2*8")
	assert.True(t, report.SaleValue.Equal(dec("74")), "10*5 + 2*12")
	assert.Equal(t, 1, report.LowStockCount)
}

func TestInventoryReportFiltersByBranch(t *testing.T) {
	f := newReportFixture()
	other := uuid.New()

	homed := &model.Product{ID: uuid.New(), CommercialName: "Ibuprofeno", BranchID: &f.branchID, CostPrice: dec("2"), SellingPrice: dec("4"), CurrentStock: 6}
	elsewhere := &model.Product{ID: uuid.New(), CommercialName: "Vitamina C", BranchID: &other, CostPrice: dec("1"), SellingPrice: dec("2"), CurrentStock: 9}
	require.NoError(t, f.products.Create(context.Background(), homed))
	require.NoError(t, f.products.Create(context.Background(), elsewhere))

	report, err := f.svc.Inventory(context.Background(), dto.InventoryReportRequest{BranchID: f.branchID.String()})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Count)
	assert.Equal(t, 6, report.TotalUnits)
	assert.True(t, report.SaleValue.Equal(dec("24")))
}

func TestInventoryReportInvalidBranch(t *testing.T) {
	f := newReportFixture()
	_, err := f.svc.Inventory(context.Background(), dto.InventoryReportRequest{BranchID: "no-uuid"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSalesReportInvalidBranch(t *testing.T) {
	f := newReportFixture()
	_, err := f.svc.Sales(context.Background(), dto.ReportRangeRequest{
		BranchID: "no-uuid", From: "2026-08-10", To: "2026-08-11",
	})
	assert.ErrorIs(t, err, ErrValidation)
}
