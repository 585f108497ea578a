package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense adjusts the open summary's TotalExpense/ExpectedBalance
// symmetrically on create and delete.
type Expense struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BranchID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Concept  string          `gorm:"not null"`
	Amount   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Category string          `gorm:"not null"`
	UserID   uuid.UUID       `gorm:"type:uuid;not null"`
	UserName string
	Date     time.Time `gorm:"index;not null"`
}

// NursingRecord bills a nursing service; it is income, the mirror of Expense.
type NursingRecord struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BranchID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ServiceType string          `gorm:"not null"` // Curación, Inyectable, Suero, …
	PatientName string          `gorm:"not null"`
	Notes       *string
	Cost        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null"`
	UserName    string
	Date        time.Time `gorm:"index;not null"`
}
