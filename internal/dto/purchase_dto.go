package dto

import "github.com/shopspring/decimal"

type CreateSupplierRequest struct {
	Name          string  `json:"name" validate:"required,min=2"`
	ContactPerson *string `json:"contact_person"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Address       *string `json:"address"`
	RUCNit        string  `json:"ruc_nit" validate:"required"`
}

type UpdateSupplierRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=2"`
	ContactPerson *string `json:"contact_person"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Address       *string `json:"address"`
	RUCNit        *string `json:"ruc_nit"`
}

type SupplierResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	Address       *string `json:"address,omitempty"`
	RUCNit        string  `json:"ruc_nit"`
}

type CreatePurchaseRequest struct {
	SupplierID    string          `json:"supplier_id"    validate:"required,uuid"`
	BranchID      string          `json:"branch_id"      validate:"required,uuid"`
	InvoiceNumber string          `json:"invoice_number" validate:"required"`
	ItemCount     int             `json:"item_count"     validate:"min=0"`
	TotalAmount   decimal.Decimal `json:"total_amount"   validate:"required"`
	PaymentType   string          `json:"payment_type"   validate:"required,oneof=contado credito"`
	PurchaseDate  *string         `json:"purchase_date"  validate:"omitempty,datetime=2006-01-02"`
	// DueDate is mandatory for credit purchases, meaningless otherwise.
	DueDate *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

type PurchaseResponse struct {
	ID            string          `json:"id"`
	SupplierID    string          `json:"supplier_id"`
	SupplierName  string          `json:"supplier_name,omitempty"`
	BranchID      string          `json:"branch_id"`
	InvoiceNumber string          `json:"invoice_number"`
	ItemCount     int             `json:"item_count"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentType   string          `json:"payment_type"`
	PurchaseDate  string          `json:"purchase_date"`
	DueDate       *string         `json:"due_date,omitempty"`
	IsPaid        bool            `json:"is_paid"`
	PaymentDate   *string         `json:"payment_date,omitempty"`
	ExpenseID     *string         `json:"expense_id,omitempty"`
	Timestamp     string          `json:"timestamp"`
}
