package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Supplier holds commercial data for a purchase ledger counterparty.
type Supplier struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string    `gorm:"index;not null"`
	ContactPerson *string
	Phone         *string
	Email         *string
	RUCNit        string `gorm:"column:ruc_nit;not null"`
	Address       *string
	CreatedAt     time.Time
}

// Purchase is a supplier invoice. PaymentType "contado" spawns a linked
// Expense at creation time; "credito" requires DueDate and spawns the Expense
// when the purchase is marked paid. ExpenseID is the explicit link used for
// cascade deletion (the legacy system rebuilt the concept string to find it).
type Purchase struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SupplierID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	BranchID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	InvoiceNumber string          `gorm:"not null"`
	ItemCount     int             `gorm:"not null"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentType   string          `gorm:"type:varchar(10);not null"` // credito | contado
	PurchaseDate  time.Time       `gorm:"not null"`
	DueDate       *time.Time      // required iff credito
	IsPaid        bool            `gorm:"not null;default:false"` // meaningful for credito only
	PaymentDate   *time.Time
	ExpenseID     *uuid.UUID `gorm:"type:uuid"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null"`
	UserName      string
	Timestamp     time.Time `gorm:"index;not null"`

	Supplier *Supplier `gorm:"foreignKey:SupplierID"`
}
