package service

import (
	"context"
	"sort"
	"time"

	"github.com/warning2025/farmaciaposventas3/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory repository fakes. DB() returns nil, which makes RunInTx execute
// the callback directly, so services run their transactional logic without a
// database. The fakes do not simulate rollback; tests that exercise failure
// paths arrange for the failure to happen before any mutation.

// ─── products ────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[uuid.UUID]*model.Product{}}
}

func (f *fakeProductRepo) Create(_ context.Context, p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) FindByBarcode(_ context.Context, barcode string) (*model.Product, error) {
	for _, p := range f.products {
		if p.Barcode == barcode {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProductRepo) List(_ context.Context) ([]model.Product, error) {
	out := make([]model.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CommercialName < out[j].CommercialName })
	return out, nil
}

func (f *fakeProductRepo) ListWithMinStock(_ context.Context) ([]model.Product, error) {
	var out []model.Product
	for _, p := range f.products {
		if p.MinStock > 0 {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) ListOrphans(_ context.Context) ([]model.Product, error) {
	var out []model.Product
	for _, p := range f.products {
		if p.BranchID == nil {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) ListByBranch(_ context.Context, branchID uuid.UUID) ([]model.Product, error) {
	var out []model.Product
	for _, p := range f.products {
		if p.BranchID != nil && *p.BranchID == branchID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) UpdateFields(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	p, ok := f.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["current_stock"]; ok {
		p.CurrentStock = v.(int)
	}
	if v, ok := fields["min_stock"]; ok {
		p.MinStock = v.(int)
	}
	if v, ok := fields["commercial_name"]; ok {
		p.CommercialName = v.(string)
	}
	if v, ok := fields["barcode"]; ok {
		p.Barcode = v.(string)
	}
	if v, ok := fields["category"]; ok {
		p.Category = v.(string)
	}
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) UpdateStockTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	p, ok := f.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.CurrentStock += delta
	return nil
}

func (f *fakeProductRepo) AssignBranchTx(_ *gorm.DB, id, branchID uuid.UUID) error {
	p, ok := f.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	b := branchID
	p.BranchID = &b
	return nil
}

func (f *fakeProductRepo) DB() *gorm.DB { return nil }

// ─── cash registers ──────────────────────────────────────────────────────────

type fakeCashRegisterRepo struct {
	summaries map[uuid.UUID]*model.CashRegisterSummary
	entries   []model.CashRegisterEntry
}

func newFakeCashRegisterRepo() *fakeCashRegisterRepo {
	return &fakeCashRegisterRepo{summaries: map[uuid.UUID]*model.CashRegisterSummary{}}
}

func (f *fakeCashRegisterRepo) CreateSummaryTx(_ *gorm.DB, s *model.CashRegisterSummary) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	cp := *s
	f.summaries[s.ID] = &cp
	return nil
}

func (f *fakeCashRegisterRepo) FindSummaryByID(_ context.Context, id uuid.UUID) (*model.CashRegisterSummary, error) {
	s, ok := f.summaries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeCashRegisterRepo) FindSummaryByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.CashRegisterSummary, error) {
	return f.FindSummaryByID(context.Background(), id)
}

func (f *fakeCashRegisterRepo) FindOpenByBranch(_ context.Context, branchID uuid.UUID) (*model.CashRegisterSummary, error) {
	for _, s := range f.summaries {
		if s.BranchID == branchID && s.Status == "open" {
			cp := *s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCashRegisterRepo) FindOpenByBranchForUpdateTx(_ *gorm.DB, branchID uuid.UUID) (*model.CashRegisterSummary, error) {
	return f.FindOpenByBranch(context.Background(), branchID)
}

func (f *fakeCashRegisterRepo) UpdateSummaryTx(_ *gorm.DB, s *model.CashRegisterSummary) error {
	cp := *s
	f.summaries[s.ID] = &cp
	return nil
}

func (f *fakeCashRegisterRepo) ApplyTotalsTx(_ *gorm.DB, id uuid.UUID, incomeDelta, expenseDelta, balanceDelta decimal.Decimal) error {
	s, ok := f.summaries[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.TotalIncome = s.TotalIncome.Add(incomeDelta)
	s.TotalExpense = s.TotalExpense.Add(expenseDelta)
	s.ExpectedBalance = s.ExpectedBalance.Add(balanceDelta)
	return nil
}

func (f *fakeCashRegisterRepo) CreateEntryTx(_ *gorm.DB, e *model.CashRegisterEntry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	f.entries = append(f.entries, *e)
	return nil
}

func (f *fakeCashRegisterRepo) ListEntriesSince(_ context.Context, branchID uuid.UUID, since time.Time) ([]model.CashRegisterEntry, error) {
	var out []model.CashRegisterEntry
	for _, e := range f.entries {
		if e.BranchID == branchID && !e.Timestamp.Before(since) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeCashRegisterRepo) ListSummaries(_ context.Context, page, limit int) ([]model.CashRegisterSummary, int64, error) {
	var out []model.CashRegisterSummary
	for _, s := range f.summaries {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (f *fakeCashRegisterRepo) ListSummariesRange(_ context.Context, start, end time.Time, branchID *uuid.UUID) ([]model.CashRegisterSummary, error) {
	var out []model.CashRegisterSummary
	for _, s := range f.summaries {
		if branchID != nil && s.BranchID != *branchID {
			continue
		}
		if s.TimestampOpen.Before(start) || s.TimestampOpen.After(end) {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeCashRegisterRepo) ListEntriesRange(_ context.Context, start, end time.Time, branchID *uuid.UUID) ([]model.CashRegisterEntry, error) {
	var out []model.CashRegisterEntry
	for _, e := range f.entries {
		if branchID != nil && e.BranchID != *branchID {
			continue
		}
		if e.Timestamp.Before(start) || e.Timestamp.After(end) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeCashRegisterRepo) DB() *gorm.DB { return nil }

// ─── sales ───────────────────────────────────────────────────────────────────

type fakeSaleRepo struct {
	sales map[uuid.UUID]*model.Sale
}

func newFakeSaleRepo() *fakeSaleRepo { return &fakeSaleRepo{sales: map[uuid.UUID]*model.Sale{}} }

func (f *fakeSaleRepo) CreateTx(_ *gorm.DB, s *model.Sale) error {
	cp := *s
	f.sales[s.ID] = &cp
	return nil
}

func (f *fakeSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Sale, error) {
	s, ok := f.sales[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSaleRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Sale, error) {
	return f.FindByID(context.Background(), id)
}

func (f *fakeSaleRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(f.sales, id)
	return nil
}

func (f *fakeSaleRepo) UpdateStatusTx(_ *gorm.DB, id uuid.UUID, status string) error {
	s, ok := f.sales[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	st := status
	s.Status = &st
	return nil
}

func (f *fakeSaleRepo) List(_ context.Context, branchID *uuid.UUID) ([]model.Sale, error) {
	var out []model.Sale
	for _, s := range f.sales {
		if branchID != nil && s.BranchID != *branchID {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeSaleRepo) ListRange(_ context.Context, start, end time.Time, branchID *uuid.UUID) ([]model.Sale, error) {
	var out []model.Sale
	for _, s := range f.sales {
		if branchID != nil && s.BranchID != *branchID {
			continue
		}
		if s.Date.Before(start) || s.Date.After(end) {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeSaleRepo) DB() *gorm.DB { return nil }

// ─── expenses ────────────────────────────────────────────────────────────────

type fakeExpenseRepo struct {
	expenses map[uuid.UUID]*model.Expense
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: map[uuid.UUID]*model.Expense{}}
}

func (f *fakeExpenseRepo) CreateTx(_ *gorm.DB, e *model.Expense) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	cp := *e
	f.expenses[e.ID] = &cp
	return nil
}

func (f *fakeExpenseRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Expense, error) {
	e, ok := f.expenses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeExpenseRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Expense, error) {
	return f.FindByID(context.Background(), id)
}

func (f *fakeExpenseRepo) UpdateFieldsTx(_ *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
	e, ok := f.expenses[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["concept"]; ok {
		e.Concept = v.(string)
	}
	if v, ok := fields["category"]; ok {
		e.Category = v.(string)
	}
	if v, ok := fields["amount"]; ok {
		e.Amount = v.(decimal.Decimal)
	}
	return nil
}

func (f *fakeExpenseRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(f.expenses, id)
	return nil
}

func (f *fakeExpenseRepo) List(_ context.Context, branchID *uuid.UUID) ([]model.Expense, error) {
	var out []model.Expense
	for _, e := range f.expenses {
		if branchID != nil && e.BranchID != *branchID {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeExpenseRepo) ListRange(_ context.Context, start, end time.Time, branchID *uuid.UUID) ([]model.Expense, error) {
	var out []model.Expense
	for _, e := range f.expenses {
		if branchID != nil && e.BranchID != *branchID {
			continue
		}
		if e.Date.Before(start) || e.Date.After(end) {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeExpenseRepo) DB() *gorm.DB { return nil }

// ─── nursing ─────────────────────────────────────────────────────────────────

type fakeNursingRepo struct {
	records map[uuid.UUID]*model.NursingRecord
}

func newFakeNursingRepo() *fakeNursingRepo {
	return &fakeNursingRepo{records: map[uuid.UUID]*model.NursingRecord{}}
}

func (f *fakeNursingRepo) CreateTx(_ *gorm.DB, rec *model.NursingRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	cp := *rec
	f.records[rec.ID] = &cp
	return nil
}

func (f *fakeNursingRepo) FindByID(_ context.Context, id uuid.UUID) (*model.NursingRecord, error) {
	r, ok := f.records[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeNursingRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.NursingRecord, error) {
	return f.FindByID(context.Background(), id)
}

func (f *fakeNursingRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(f.records, id)
	return nil
}

func (f *fakeNursingRepo) List(_ context.Context, branchID *uuid.UUID) ([]model.NursingRecord, error) {
	var out []model.NursingRecord
	for _, r := range f.records {
		if branchID != nil && r.BranchID != *branchID {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeNursingRepo) ListRange(_ context.Context, start, end time.Time, branchID *uuid.UUID) ([]model.NursingRecord, error) {
	var out []model.NursingRecord
	for _, r := range f.records {
		if branchID != nil && r.BranchID != *branchID {
			continue
		}
		if r.Date.Before(start) || r.Date.After(end) {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeNursingRepo) DB() *gorm.DB { return nil }

// ─── suppliers ───────────────────────────────────────────────────────────────

type fakeSupplierRepo struct {
	suppliers map[uuid.UUID]*model.Supplier
	purchases map[uuid.UUID]*model.Purchase
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{
		suppliers: map[uuid.UUID]*model.Supplier{},
		purchases: map[uuid.UUID]*model.Purchase{},
	}
}

func (f *fakeSupplierRepo) Create(_ context.Context, s *model.Supplier) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	cp := *s
	f.suppliers[s.ID] = &cp
	return nil
}

func (f *fakeSupplierRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Supplier, error) {
	s, ok := f.suppliers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSupplierRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Supplier, error) {
	return f.FindByID(context.Background(), id)
}

func (f *fakeSupplierRepo) List(_ context.Context) ([]model.Supplier, error) {
	var out []model.Supplier
	for _, s := range f.suppliers {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeSupplierRepo) UpdateFields(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	s, ok := f.suppliers[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["name"]; ok {
		s.Name = v.(string)
	}
	return nil
}

func (f *fakeSupplierRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.suppliers, id)
	return nil
}

func (f *fakeSupplierRepo) CreatePurchaseTx(_ *gorm.DB, p *model.Purchase) error {
	cp := *p
	f.purchases[p.ID] = &cp
	return nil
}

func (f *fakeSupplierRepo) FindPurchaseByID(_ context.Context, id uuid.UUID) (*model.Purchase, error) {
	p, ok := f.purchases[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeSupplierRepo) FindPurchaseByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Purchase, error) {
	return f.FindPurchaseByID(context.Background(), id)
}

func (f *fakeSupplierRepo) UpdatePurchaseFieldsTx(_ *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
	p, ok := f.purchases[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["is_paid"]; ok {
		p.IsPaid = v.(bool)
	}
	if v, ok := fields["payment_date"]; ok {
		t := v.(time.Time)
		p.PaymentDate = &t
	}
	if v, ok := fields["expense_id"]; ok {
		id := v.(uuid.UUID)
		p.ExpenseID = &id
	}
	return nil
}

func (f *fakeSupplierRepo) DeletePurchaseTx(_ *gorm.DB, id uuid.UUID) error {
	delete(f.purchases, id)
	return nil
}

func (f *fakeSupplierRepo) ListPurchases(_ context.Context, supplierID *uuid.UUID) ([]model.Purchase, error) {
	var out []model.Purchase
	for _, p := range f.purchases {
		if supplierID != nil && p.SupplierID != *supplierID {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeSupplierRepo) ListPurchasesRange(_ context.Context, start, end time.Time) ([]model.Purchase, error) {
	var out []model.Purchase
	for _, p := range f.purchases {
		if p.Timestamp.Before(start) || p.Timestamp.After(end) {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeSupplierRepo) DB() *gorm.DB { return nil }

// ─── branches ────────────────────────────────────────────────────────────────

type fakeBranchRepo struct {
	branches     map[uuid.UUID]*model.Branch
	codes        map[uuid.UUID]*model.ActivationCode
	openSessions map[uuid.UUID]int64
	branchStock  map[uuid.UUID]int64
	seq          int
}

func newFakeBranchRepo() *fakeBranchRepo {
	return &fakeBranchRepo{
		branches:     map[uuid.UUID]*model.Branch{},
		codes:        map[uuid.UUID]*model.ActivationCode{},
		openSessions: map[uuid.UUID]int64{},
		branchStock:  map[uuid.UUID]int64{},
	}
}

func (f *fakeBranchRepo) CreateTx(_ *gorm.DB, b *model.Branch) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	f.seq++
	b.CreatedAt = time.Unix(int64(f.seq), 0)
	cp := *b
	f.branches[b.ID] = &cp
	return nil
}

func (f *fakeBranchRepo) CountTx(_ *gorm.DB) (int64, error) {
	return int64(len(f.branches)), nil
}

func (f *fakeBranchRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Branch, error) {
	b, ok := f.branches[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBranchRepo) FindMain(_ context.Context) (*model.Branch, error) {
	for _, b := range f.branches {
		if b.IsMain {
			cp := *b
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBranchRepo) FindFirstCreated(_ context.Context) (*model.Branch, error) {
	var first *model.Branch
	for _, b := range f.branches {
		if first == nil || b.CreatedAt.Before(first.CreatedAt) {
			first = b
		}
	}
	if first == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *first
	return &cp, nil
}

func (f *fakeBranchRepo) List(_ context.Context) ([]model.Branch, error) {
	var out []model.Branch
	for _, b := range f.branches {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeBranchRepo) UpdateFields(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	b, ok := f.branches[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["name"]; ok {
		b.Name = v.(string)
	}
	if v, ok := fields["address"]; ok {
		b.Address = v.(string)
	}
	return nil
}

func (f *fakeBranchRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(f.branches, id)
	return nil
}

func (f *fakeBranchRepo) ClearMainTx(_ *gorm.DB) error {
	for _, b := range f.branches {
		b.IsMain = false
	}
	return nil
}

func (f *fakeBranchRepo) SetMainTx(_ *gorm.DB, id uuid.UUID) error {
	b, ok := f.branches[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	b.IsMain = true
	return nil
}

func (f *fakeBranchRepo) CountOpenSessionsTx(_ *gorm.DB, branchID uuid.UUID) (int64, error) {
	return f.openSessions[branchID], nil
}

func (f *fakeBranchRepo) CountBranchStockTx(_ *gorm.DB, branchID uuid.UUID) (int64, error) {
	return f.branchStock[branchID], nil
}

func (f *fakeBranchRepo) FindCodeForUpdateTx(_ *gorm.DB, code string) (*model.ActivationCode, error) {
	for _, c := range f.codes {
		if c.Code == code {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBranchRepo) CreateCode(_ context.Context, c *model.ActivationCode) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cp := *c
	f.codes[c.ID] = &cp
	return nil
}

func (f *fakeBranchRepo) SetCodeUsedTx(_ *gorm.DB, id uuid.UUID, used bool) error {
	c, ok := f.codes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.Used = used
	return nil
}

func (f *fakeBranchRepo) DB() *gorm.DB { return nil }

// ─── branch stock ────────────────────────────────────────────────────────────

type fakeBranchStockRepo struct {
	rows map[uuid.UUID]*model.BranchStock
}

func newFakeBranchStockRepo() *fakeBranchStockRepo {
	return &fakeBranchStockRepo{rows: map[uuid.UUID]*model.BranchStock{}}
}

func (f *fakeBranchStockRepo) FindForUpdateTx(_ *gorm.DB, branchID, productID uuid.UUID) (*model.BranchStock, error) {
	for _, bs := range f.rows {
		if bs.BranchID == branchID && bs.ProductID == productID {
			cp := *bs
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBranchStockRepo) CreateTx(_ *gorm.DB, bs *model.BranchStock) error {
	if bs.ID == uuid.Nil {
		bs.ID = uuid.New()
	}
	cp := *bs
	f.rows[bs.ID] = &cp
	return nil
}

func (f *fakeBranchStockRepo) AddStockTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	bs, ok := f.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	bs.CurrentStock += delta
	return nil
}

func (f *fakeBranchStockRepo) ListByBranch(_ context.Context, branchID uuid.UUID) ([]model.BranchStock, error) {
	var out []model.BranchStock
	for _, bs := range f.rows {
		if bs.BranchID == branchID {
			out = append(out, *bs)
		}
	}
	return out, nil
}

func (f *fakeBranchStockRepo) ListByProduct(_ context.Context, productID uuid.UUID) ([]model.BranchStock, error) {
	var out []model.BranchStock
	for _, bs := range f.rows {
		if bs.ProductID == productID {
			out = append(out, *bs)
		}
	}
	return out, nil
}
