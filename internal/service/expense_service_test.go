package service

import (
	"context"
	"testing"

	"github.com/warning2025/farmaciaposventas3/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type expenseFixture struct {
	svc       *ExpenseService
	expenses  *fakeExpenseRepo
	registers *fakeCashRegisterRepo
	regSvc    *CashRegisterService
	branchID  uuid.UUID
	actor     Actor
}

func newExpenseFixture(t *testing.T, openRegister bool) *expenseFixture {
	t.Helper()
	f := &expenseFixture{
		expenses:  newFakeExpenseRepo(),
		registers: newFakeCashRegisterRepo(),
		branchID:  uuid.New(),
	}
	f.actor = cashierActor(f.branchID)
	hub := testHub()
	f.regSvc = NewCashRegisterService(f.registers, hub)
	f.svc = NewExpenseService(f.expenses, f.regSvc, hub)
	if openRegister {
		_, err := f.regSvc.Open(context.Background(), f.actor, dto.OpenRegisterRequest{
			BranchID: f.branchID.String(), OpeningBalance: dec("200"),
		})
		require.NoError(t, err)
	}
	return f
}

func TestCreateExpenseUnassignedBranchForbidden(t *testing.T) {
	f := newExpenseFixture(t, true)

	_, err := f.svc.Create(context.Background(), f.actor, dto.AddExpenseRequest{
		BranchID: uuid.NewString(),
		Concept:  "Factura de luz",
		Amount:   dec("80"),
		Category: "Servicios",
	})
	require.ErrorIs(t, err, ErrForbidden)
	assert.Empty(t, f.expenses.expenses)
}

func TestCreateExpenseRecordsLedgerEntry(t *testing.T) {
	f := newExpenseFixture(t, true)

	expense, err := f.svc.Create(context.Background(), f.actor, dto.AddExpenseRequest{
		BranchID: f.branchID.String(),
		Concept:  "Factura de luz",
		Amount:   dec("80"),
		Category: "Servicios",
	})
	require.NoError(t, err)
	assert.Contains(t, f.expenses.expenses, expense.ID)

	require.Len(t, f.registers.entries, 2)
	entry := f.registers.entries[1]
	assert.Equal(t, "expense", entry.Type)
	assert.Equal(t, "Gasto: Factura de luz", entry.Concept)

	summary, err := f.registers.FindOpenByBranch(context.Background(), f.branchID)
	require.NoError(t, err)
	assert.True(t, summary.TotalExpense.Equal(dec("80")))
	assert.True(t, summary.ExpectedBalance.Equal(dec("120")))
}

func TestCreateExpenseWithoutRegisterStillPersists(t *testing.T) {
	f := newExpenseFixture(t, false)

	expense, err := f.svc.Create(context.Background(), f.actor, dto.AddExpenseRequest{
		BranchID: f.branchID.String(),
		Concept:  "Compra de insumos",
		Amount:   dec("35"),
		Category: "Insumos",
	})
	require.NoError(t, err)
	assert.Contains(t, f.expenses.expenses, expense.ID)
	assert.Empty(t, f.registers.entries)
}

func TestCreateExpenseNonPositiveAmountRejected(t *testing.T) {
	f := newExpenseFixture(t, true)
	_, err := f.svc.Create(context.Background(), f.actor, dto.AddExpenseRequest{
		BranchID: f.branchID.String(), Concept: "Nada", Amount: dec("0"), Category: "Otros",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateExpenseAmountShiftsTotalsByDelta(t *testing.T) {
	f := newExpenseFixture(t, true)

	expense, err := f.svc.Create(context.Background(), f.actor, dto.AddExpenseRequest{
		BranchID: f.branchID.String(), Concept: "Alquiler", Amount: dec("50"), Category: "Servicios",
	})
	require.NoError(t, err)

	newAmount := dec("70")
	updated, err := f.svc.Update(context.Background(), expense.ID, dto.UpdateExpenseRequest{Amount: &newAmount})
	require.NoError(t, err)
	assert.True(t, updated.Amount.Equal(dec("70")))

	summary, err := f.registers.FindOpenByBranch(context.Background(), f.branchID)
	require.NoError(t, err)
	assert.True(t, summary.TotalExpense.Equal(dec("70")), "expense %s", summary.TotalExpense)
	assert.True(t, summary.ExpectedBalance.Equal(dec("130")), "expected %s", summary.ExpectedBalance)
	// the original entry is untouched
	assert.Len(t, f.registers.entries, 2)
}

func TestUpdateExpenseConceptOnlyLeavesTotals(t *testing.T) {
	f := newExpenseFixture(t, true)

	expense, err := f.svc.Create(context.Background(), f.actor, dto.AddExpenseRequest{
		BranchID: f.branchID.String(), Concept: "Alquiler", Amount: dec("50"), Category: "Servicios",
	})
	require.NoError(t, err)

	concept := "Alquiler local"
	updated, err := f.svc.Update(context.Background(), expense.ID, dto.UpdateExpenseRequest{Concept: &concept})
	require.NoError(t, err)
	assert.Equal(t, "Alquiler local", updated.Concept)

	summary, err := f.registers.FindOpenByBranch(context.Background(), f.branchID)
	require.NoError(t, err)
	assert.True(t, summary.TotalExpense.Equal(dec("50")))
}

func TestDeleteExpenseReversesTotals(t *testing.T) {
	f := newExpenseFixture(t, true)

	expense, err := f.svc.Create(context.Background(), f.actor, dto.AddExpenseRequest{
		BranchID: f.branchID.String(), Concept: "Papelería", Amount: dec("25"), Category: "Otros",
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(context.Background(), expense.ID))
	assert.Empty(t, f.expenses.expenses)

	summary, err := f.registers.FindOpenByBranch(context.Background(), f.branchID)
	require.NoError(t, err)
	assert.True(t, summary.TotalExpense.Equal(dec("0")))
	assert.True(t, summary.ExpectedBalance.Equal(dec("200")))
	// the create entry survives as audit trail
	assert.Len(t, f.registers.entries, 2)
}

func TestDeleteExpenseNotFound(t *testing.T) {
	f := newExpenseFixture(t, true)
	err := f.svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteExpenseBatchPartial(t *testing.T) {
	f := newExpenseFixture(t, true)

	e1, err := f.svc.Create(context.Background(), f.actor, dto.AddExpenseRequest{
		BranchID: f.branchID.String(), Concept: "Gasto uno", Amount: dec("10"), Category: "Otros",
	})
	require.NoError(t, err)

	res := f.svc.DeleteBatch(context.Background(), []string{e1.ID.String(), uuid.NewString()})
	assert.Equal(t, 2, res.Requested)
	assert.Equal(t, 1, res.Succeeded)
	assert.Equal(t, 1, res.Failed)
}
