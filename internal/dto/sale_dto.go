package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type SaleItemRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Quantity  int             `json:"quantity"   validate:"required,min=1"`
	// UnitPrice and TotalPrice are snapshots taken by the POS form; the
	// service re-checks the arithmetic against the invariant.
	UnitPrice  decimal.Decimal `json:"unit_price"  validate:"required"`
	TotalPrice decimal.Decimal `json:"total_price" validate:"required"`
}

type CreateSaleRequest struct {
	BranchID      string            `json:"branch_id"      validate:"required,uuid"`
	Items         []SaleItemRequest `json:"items"          validate:"required,min=1,dive"`
	Subtotal      decimal.Decimal   `json:"subtotal"       validate:"required"`
	TotalDiscount decimal.Decimal   `json:"total_discount" validate:"min=0"`
	FinalTotal    decimal.Decimal   `json:"final_total"    validate:"required"`
	PaymentMethod *string           `json:"payment_method" validate:"omitempty,oneof=efectivo qr transferencia tarjeta online"`
	Channel       string            `json:"channel"        validate:"omitempty,oneof=pos online"`
	Status        *string           `json:"status"         validate:"omitempty,oneof=pending processing completed rejected"`
	CustomerPhone *string           `json:"customer_phone"`
}

type UpdateSaleStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing completed rejected"`
}

type DeleteSalesRequest struct {
	SaleIDs []string `json:"sale_ids" validate:"required,min=1,dive,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

type SaleResponse struct {
	ID            string             `json:"id"`
	BranchID      string             `json:"branch_id"`
	Items         []SaleItemResponse `json:"items"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	TotalDiscount decimal.Decimal    `json:"total_discount"`
	FinalTotal    decimal.Decimal    `json:"final_total"`
	PaymentMethod *string            `json:"payment_method,omitempty"`
	Channel       string             `json:"channel"`
	Status        *string            `json:"status,omitempty"`
	UserName      string             `json:"user_name"`
	Date          string             `json:"date"`
}

// BatchResult reports the outcome of a bulk delete: the batch is a sequence
// of per-record transactions, so part of it can succeed.
type BatchResult struct {
	Requested int               `json:"requested"`
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Errors    map[string]string `json:"errors,omitempty"` // id → reason
}
