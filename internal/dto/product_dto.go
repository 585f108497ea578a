package dto

import "github.com/shopspring/decimal"

type CreateProductRequest struct {
	Barcode        string          `json:"barcode"         validate:"required,min=3"`
	CommercialName string          `json:"commercial_name" validate:"required,min=2"`
	GenericName    *string         `json:"generic_name"`
	SellingPrice   decimal.Decimal `json:"selling_price"   validate:"required"`
	CostPrice      decimal.Decimal `json:"cost_price"      validate:"min=0"`
	CurrentStock   int             `json:"current_stock"   validate:"min=0"`
	MinStock       int             `json:"min_stock"       validate:"min=0"`
	ExpirationDate *string         `json:"expiration_date" validate:"omitempty,datetime=2006-01-02"`
	Unit           *string         `json:"unit"`
	BatchNumber    *string         `json:"batch_number"`
	Location       *string         `json:"location"`
	Category       string          `json:"category" validate:"required"`
	Concentration  *string         `json:"concentration"`
	Presentation   *string         `json:"presentation"`
	Laboratory     *string         `json:"laboratory"`
	BranchID       *string         `json:"branch_id" validate:"omitempty,uuid"`
}

type UpdateProductRequest struct {
	Barcode        *string          `json:"barcode"         validate:"omitempty,min=3"`
	CommercialName *string          `json:"commercial_name" validate:"omitempty,min=2"`
	GenericName    *string          `json:"generic_name"`
	SellingPrice   *decimal.Decimal `json:"selling_price"`
	CostPrice      *decimal.Decimal `json:"cost_price"`
	CurrentStock   *int             `json:"current_stock"   validate:"omitempty,min=0"`
	MinStock       *int             `json:"min_stock"       validate:"omitempty,min=0"`
	ExpirationDate *string          `json:"expiration_date" validate:"omitempty,datetime=2006-01-02"`
	Unit           *string          `json:"unit"`
	BatchNumber    *string          `json:"batch_number"`
	Location       *string          `json:"location"`
	Category       *string          `json:"category"`
	Concentration  *string          `json:"concentration"`
	Presentation   *string          `json:"presentation"`
	Laboratory     *string          `json:"laboratory"`
	BranchID       *string          `json:"branch_id" validate:"omitempty,uuid"`
}

type ProductResponse struct {
	ID             string          `json:"id"`
	Barcode        string          `json:"barcode"`
	CommercialName string          `json:"commercial_name"`
	GenericName    *string         `json:"generic_name,omitempty"`
	SellingPrice   decimal.Decimal `json:"selling_price"`
	CostPrice      decimal.Decimal `json:"cost_price"`
	CurrentStock   int             `json:"current_stock"`
	MinStock       int             `json:"min_stock"`
	ExpirationDate *string         `json:"expiration_date,omitempty"`
	Unit           *string         `json:"unit,omitempty"`
	BatchNumber    *string         `json:"batch_number,omitempty"`
	Location       *string         `json:"location,omitempty"`
	Category       string          `json:"category"`
	Concentration  *string         `json:"concentration,omitempty"`
	Presentation   *string         `json:"presentation,omitempty"`
	Laboratory     *string         `json:"laboratory,omitempty"`
	BranchID       *string         `json:"branch_id,omitempty"`
	LowStock       bool            `json:"low_stock"`
}

type TransferItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity"   validate:"required,min=1"`
}

type TransferStockRequest struct {
	ToBranchID string                `json:"to_branch_id" validate:"required,uuid"`
	Items      []TransferItemRequest `json:"items"        validate:"required,min=1,dive"`
}

type BranchStockResponse struct {
	BranchID    string  `json:"branch_id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name,omitempty"`
	Barcode     string  `json:"barcode,omitempty"`
	Quantity    int     `json:"quantity"`
	MinStock    int     `json:"min_stock"`
	LowStock    bool    `json:"low_stock"`
}

type CatalogEntryRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}
