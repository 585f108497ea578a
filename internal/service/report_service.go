package service

import (
	"context"
	"time"

	"github.com/warning2025/farmaciaposventas3/internal/dto"
	"github.com/warning2025/farmaciaposventas3/internal/model"
	"github.com/warning2025/farmaciaposventas3/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportService aggregates read-only range reports over the domain ledgers.
// Reports never mutate state; they run outside transactions.
type ReportService struct {
	sales     repository.SaleRepository
	expenses  repository.ExpenseRepository
	nursing   repository.NursingRepository
	suppliers repository.SupplierRepository
	registers repository.CashRegisterRepository
	products  repository.ProductRepository
}

func NewReportService(sales repository.SaleRepository, expenses repository.ExpenseRepository, nursing repository.NursingRepository, suppliers repository.SupplierRepository, registers repository.CashRegisterRepository, products repository.ProductRepository) *ReportService {
	return &ReportService{sales: sales, expenses: expenses, nursing: nursing, suppliers: suppliers, registers: registers, products: products}
}

// parseRange turns inclusive YYYY-MM-DD bounds into a [start, end] window
// covering the whole end day.
func parseRange(from, to string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		return time.Time{}, time.Time{}, validationErr("fecha 'from' inválida")
	}
	end, err := time.Parse("2006-01-02", to)
	if err != nil {
		return time.Time{}, time.Time{}, validationErr("fecha 'to' inválida")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, validationErr("el rango de fechas está invertido")
	}
	return start, end.Add(24*time.Hour - time.Nanosecond), nil
}

func (s *ReportService) Sales(ctx context.Context, req dto.ReportRangeRequest) (*dto.SalesReportResponse, error) {
	branchID, err := uuid.Parse(req.BranchID)
	if err != nil {
		return nil, validationErr("branch_id inválido")
	}
	start, end, err := parseRange(req.From, req.To)
	if err != nil {
		return nil, err
	}
	sales, err := s.sales.ListRange(ctx, start, end, &branchID)
	if err != nil {
		return nil, err
	}

	gross, discounts, net := decimal.Zero, decimal.Zero, decimal.Zero
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, sale := range sales {
		gross = gross.Add(sale.Subtotal)
		discounts = discounts.Add(sale.TotalDiscount)
		net = net.Add(sale.FinalTotal)
		out = append(out, SaleToResponse(&sale))
	}
	return &dto.SalesReportResponse{
		BranchID:   req.BranchID,
		From:       req.From,
		To:         req.To,
		Count:      len(sales),
		GrossTotal: gross,
		Discounts:  discounts,
		NetTotal:   net,
		Sales:      out,
	}, nil
}

func (s *ReportService) Expenses(ctx context.Context, req dto.ReportRangeRequest) (*dto.ExpensesReportResponse, error) {
	branchID, err := uuid.Parse(req.BranchID)
	if err != nil {
		return nil, validationErr("branch_id inválido")
	}
	start, end, err := parseRange(req.From, req.To)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.ListRange(ctx, start, end, &branchID)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	byCategory := map[string]decimal.Decimal{}
	out := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		total = total.Add(e.Amount)
		byCategory[e.Category] = byCategory[e.Category].Add(e.Amount)
		out = append(out, ExpenseToResponse(&e))
	}
	return &dto.ExpensesReportResponse{
		BranchID:   req.BranchID,
		From:       req.From,
		To:         req.To,
		Count:      len(expenses),
		Total:      total,
		ByCategory: byCategory,
		Expenses:   out,
	}, nil
}

func (s *ReportService) Cash(ctx context.Context, req dto.ReportRangeRequest) (*dto.CashReportResponse, error) {
	branchID, err := uuid.Parse(req.BranchID)
	if err != nil {
		return nil, validationErr("branch_id inválido")
	}
	start, end, err := parseRange(req.From, req.To)
	if err != nil {
		return nil, err
	}
	summaries, err := s.registers.ListSummariesRange(ctx, start, end, &branchID)
	if err != nil {
		return nil, err
	}
	entries, err := s.registers.ListEntriesRange(ctx, start, end, &branchID)
	if err != nil {
		return nil, err
	}

	resp := &dto.CashReportResponse{BranchID: req.BranchID, From: req.From, To: req.To}
	for _, sum := range summaries {
		resp.Summaries = append(resp.Summaries, SummaryToResponse(&sum))
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, EntryToResponse(&e))
	}
	return resp, nil
}

func (s *ReportService) Nursing(ctx context.Context, req dto.ReportRangeRequest) (*dto.NursingReportResponse, error) {
	branchID, err := uuid.Parse(req.BranchID)
	if err != nil {
		return nil, validationErr("branch_id inválido")
	}
	start, end, err := parseRange(req.From, req.To)
	if err != nil {
		return nil, err
	}
	records, err := s.nursing.ListRange(ctx, start, end, &branchID)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	byService := map[string]decimal.Decimal{}
	out := make([]dto.NursingRecordResponse, 0, len(records))
	for _, r := range records {
		total = total.Add(r.Cost)
		byService[r.ServiceType] = byService[r.ServiceType].Add(r.Cost)
		out = append(out, NursingToResponse(&r))
	}
	return &dto.NursingReportResponse{
		BranchID:  req.BranchID,
		From:      req.From,
		To:        req.To,
		Count:     len(records),
		Total:     total,
		ByService: byService,
		Records:   out,
	}, nil
}

func (s *ReportService) Inventory(ctx context.Context, req dto.InventoryReportRequest) (*dto.InventoryReportResponse, error) {
	var products []model.Product
	var err error
	if req.BranchID != "" {
		branchID, perr := uuid.Parse(req.BranchID)
		if perr != nil {
			return nil, validationErr("branch_id inválido")
		}
		products, err = s.products.ListByBranch(ctx, branchID)
	} else {
		products, err = s.products.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	resp := &dto.InventoryReportResponse{
		BranchID:  req.BranchID,
		Count:     len(products),
		CostValue: decimal.Zero,
		SaleValue: decimal.Zero,
		Products:  make([]dto.ProductResponse, 0, len(products)),
	}
	for _, p := range products {
		units := decimal.NewFromInt(int64(p.CurrentStock))
		resp.TotalUnits += p.CurrentStock
		resp.CostValue = resp.CostValue.Add(p.CostPrice.Mul(units))
		resp.SaleValue = resp.SaleValue.Add(p.SellingPrice.Mul(units))
		if p.MinStock > 0 && p.CurrentStock <= p.MinStock {
			resp.LowStockCount++
		}
		resp.Products = append(resp.Products, ProductToResponse(&p))
	}
	return resp, nil
}

func (s *ReportService) Purchases(ctx context.Context, req dto.ReportRangeRequest) (*dto.PurchasesReportResponse, error) {
	start, end, err := parseRange(req.From, req.To)
	if err != nil {
		return nil, err
	}
	purchases, err := s.suppliers.ListPurchasesRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	total, unpaid := decimal.Zero, decimal.Zero
	out := make([]dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		if req.BranchID != "" && p.BranchID.String() != req.BranchID {
			continue
		}
		total = total.Add(p.TotalAmount)
		if p.PaymentType == "credito" && !p.IsPaid {
			unpaid = unpaid.Add(p.TotalAmount)
		}
		out = append(out, PurchaseToResponse(&p))
	}
	return &dto.PurchasesReportResponse{
		BranchID:  req.BranchID,
		From:      req.From,
		To:        req.To,
		Count:     len(out),
		Total:     total,
		Unpaid:    unpaid,
		Purchases: out,
	}, nil
}

// mapToResponse helpers shared with the handlers.

func SaleToResponse(sale *model.Sale) dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(sale.Items))
	for _, it := range sale.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID:   it.ProductID.String(),
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		})
	}
	return dto.SaleResponse{
		ID:            sale.ID.String(),
		BranchID:      sale.BranchID.String(),
		Items:         items,
		Subtotal:      sale.Subtotal,
		TotalDiscount: sale.TotalDiscount,
		FinalTotal:    sale.FinalTotal,
		PaymentMethod: sale.PaymentMethod,
		Channel:       sale.Channel,
		Status:        sale.Status,
		UserName:      sale.UserName,
		Date:          sale.Date.Format(time.RFC3339),
	}
}

func ExpenseToResponse(e *model.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:       e.ID.String(),
		BranchID: e.BranchID.String(),
		Concept:  e.Concept,
		Amount:   e.Amount,
		Category: e.Category,
		UserName: e.UserName,
		Date:     e.Date.Format(time.RFC3339),
	}
}

func SummaryToResponse(s *model.CashRegisterSummary) dto.SummaryResponse {
	resp := dto.SummaryResponse{
		ID:              s.ID.String(),
		BranchID:        s.BranchID.String(),
		OpeningBalance:  s.OpeningBalance,
		TotalIncome:     s.TotalIncome,
		TotalExpense:    s.TotalExpense,
		ExpectedBalance: s.ExpectedBalance,
		ActualBalance:   s.ActualBalance,
		Difference:      s.Difference,
		Status:          s.Status,
		UserNameOpen:    s.UserNameOpen,
		UserNameClose:   s.UserNameClose,
		TimestampOpen:   s.TimestampOpen.Format(time.RFC3339),
	}
	if s.TimestampClose != nil {
		t := s.TimestampClose.Format(time.RFC3339)
		resp.TimestampClose = &t
	}
	return resp
}

func EntryToResponse(e *model.CashRegisterEntry) dto.EntryResponse {
	return dto.EntryResponse{
		ID:        e.ID.String(),
		BranchID:  e.BranchID.String(),
		Type:      e.Type,
		Amount:    e.Amount,
		Concept:   e.Concept,
		UserName:  e.UserName,
		Timestamp: e.Timestamp.Format(time.RFC3339),
	}
}

func NursingToResponse(r *model.NursingRecord) dto.NursingRecordResponse {
	return dto.NursingRecordResponse{
		ID:          r.ID.String(),
		BranchID:    r.BranchID.String(),
		ServiceType: r.ServiceType,
		PatientName: r.PatientName,
		Notes:       r.Notes,
		Cost:        r.Cost,
		UserName:    r.UserName,
		Date:        r.Date.Format(time.RFC3339),
	}
}

func ProductToResponse(p *model.Product) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:             p.ID.String(),
		Barcode:        p.Barcode,
		CommercialName: p.CommercialName,
		GenericName:    p.GenericName,
		Category:       p.Category,
		SellingPrice:   p.SellingPrice,
		CostPrice:      p.CostPrice,
		CurrentStock:   p.CurrentStock,
		MinStock:       p.MinStock,
		ExpirationDate: p.ExpirationDate,
		Unit:           p.Unit,
		BatchNumber:    p.BatchNumber,
		Location:       p.Location,
		Concentration:  p.Concentration,
		Presentation:   p.Presentation,
		Laboratory:     p.Laboratory,
		LowStock:       p.MinStock > 0 && p.CurrentStock <= p.MinStock,
	}
	if p.BranchID != nil {
		id := p.BranchID.String()
		resp.BranchID = &id
	}
	return resp
}

func PurchaseToResponse(p *model.Purchase) dto.PurchaseResponse {
	resp := dto.PurchaseResponse{
		ID:            p.ID.String(),
		SupplierID:    p.SupplierID.String(),
		BranchID:      p.BranchID.String(),
		InvoiceNumber: p.InvoiceNumber,
		ItemCount:     p.ItemCount,
		TotalAmount:   p.TotalAmount,
		PaymentType:   p.PaymentType,
		PurchaseDate:  p.PurchaseDate.Format("2006-01-02"),
		IsPaid:        p.IsPaid,
		Timestamp:     p.Timestamp.Format(time.RFC3339),
	}
	if p.Supplier != nil {
		resp.SupplierName = p.Supplier.Name
	}
	if p.DueDate != nil {
		d := p.DueDate.Format("2006-01-02")
		resp.DueDate = &d
	}
	if p.PaymentDate != nil {
		d := p.PaymentDate.Format(time.RFC3339)
		resp.PaymentDate = &d
	}
	if p.ExpenseID != nil {
		id := p.ExpenseID.String()
		resp.ExpenseID = &id
	}
	return resp
}
