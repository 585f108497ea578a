package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale invariant: sum(items.total_price) − total_discount == final_total.
// Creating a sale decrements Product.CurrentStock per item and deleting it
// restores the stock, both inside the same transaction as the ledger writes.
type Sale struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BranchID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalDiscount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	FinalTotal    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentMethod *string         `gorm:"type:varchar(20)"` // efectivo | qr | transferencia | tarjeta | online
	Channel       string          `gorm:"type:varchar(10);not null;default:'pos'"` // pos | online
	// Status applies to online orders only: pending | processing | completed | rejected
	Status        *string `gorm:"type:varchar(12)"`
	CustomerPhone *string
	UserID        uuid.UUID `gorm:"type:uuid;not null"`
	UserName      string
	Date          time.Time `gorm:"index;not null"`

	Items []SaleItem `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
}

// SaleItem snapshots the product name and unit price at sale time so later
// catalog edits do not rewrite history.
type SaleItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SaleID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName string          `gorm:"not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}
