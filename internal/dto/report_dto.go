package dto

import "github.com/shopspring/decimal"

type ReportRangeRequest struct {
	BranchID string `form:"branch_id" validate:"required,uuid"`
	From     string `form:"from"      validate:"required,datetime=2006-01-02"`
	To       string `form:"to"        validate:"required,datetime=2006-01-02"`
}

type SalesReportResponse struct {
	BranchID   string          `json:"branch_id"`
	From       string          `json:"from"`
	To         string          `json:"to"`
	Count      int             `json:"count"`
	GrossTotal decimal.Decimal `json:"gross_total"`
	Discounts  decimal.Decimal `json:"discounts"`
	NetTotal   decimal.Decimal `json:"net_total"`
	Sales      []SaleResponse  `json:"sales"`
}

type ExpensesReportResponse struct {
	BranchID string            `json:"branch_id"`
	From     string            `json:"from"`
	To       string            `json:"to"`
	Count    int               `json:"count"`
	Total    decimal.Decimal   `json:"total"`
	ByCategory map[string]decimal.Decimal `json:"by_category"`
	Expenses []ExpenseResponse `json:"expenses"`
}

type CashReportResponse struct {
	BranchID  string            `json:"branch_id"`
	From      string            `json:"from"`
	To        string            `json:"to"`
	Summaries []SummaryResponse `json:"summaries"`
	Entries   []EntryResponse   `json:"entries"`
}

type NursingReportResponse struct {
	BranchID  string                     `json:"branch_id"`
	From      string                     `json:"from"`
	To        string                     `json:"to"`
	Count     int                        `json:"count"`
	Total     decimal.Decimal            `json:"total"`
	ByService map[string]decimal.Decimal `json:"by_service"`
	Records   []NursingRecordResponse    `json:"records"`
}

type InventoryReportRequest struct {
	BranchID string `form:"branch_id" validate:"omitempty,uuid"`
}

// InventoryReportResponse is a point-in-time snapshot, not a range query:
// stock has no date dimension in this model.
type InventoryReportResponse struct {
	BranchID      string            `json:"branch_id,omitempty"`
	Count         int               `json:"count"`
	TotalUnits    int               `json:"total_units"`
	CostValue     decimal.Decimal   `json:"cost_value"`
	SaleValue     decimal.Decimal   `json:"sale_value"`
	LowStockCount int               `json:"low_stock_count"`
	Products      []ProductResponse `json:"products"`
}

type PurchasesReportResponse struct {
	BranchID string             `json:"branch_id"`
	From     string             `json:"from"`
	To       string             `json:"to"`
	Count    int                `json:"count"`
	Total    decimal.Decimal    `json:"total"`
	Unpaid   decimal.Decimal    `json:"unpaid"`
	Purchases []PurchaseResponse `json:"purchases"`
}
