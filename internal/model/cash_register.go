package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CashRegisterSummary is one register session. At most one row per branch has
// Status "open" (enforced by a partial unique index, see infra.NewDatabase).
// The running totals are maintained incrementally by every recorder:
// ExpectedBalance == OpeningBalance + TotalIncome − TotalExpense at all times.
type CashRegisterSummary struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BranchID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	OpeningBalance  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalIncome     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TotalExpense    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	ExpectedBalance decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	// ActualBalance and Difference are filled only at close.
	ActualBalance *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Difference    *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Status        string           `gorm:"type:varchar(10);not null;default:'open'"` // open | closed
	UserIDOpen    uuid.UUID        `gorm:"type:uuid;not null"`
	UserNameOpen  string           `gorm:"not null"`
	UserIDClose   *uuid.UUID       `gorm:"type:uuid"`
	UserNameClose *string
	TimestampOpen  time.Time
	TimestampClose *time.Time
}

func (CashRegisterSummary) TableName() string { return "cash_register_summaries" }

// CashRegisterEntry is an immutable audit record of one money-moving event.
// Entries are never updated or deleted; the summary is the materialized
// aggregate of the entries since its open timestamp.
// Type: "sale" | "expense" | "income" | "initial"
type CashRegisterEntry struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BranchID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type      string          `gorm:"type:varchar(10);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Concept   string          `gorm:"not null"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null"`
	UserName  string
	Timestamp time.Time `gorm:"index;not null"`
}

func (CashRegisterEntry) TableName() string { return "cash_register_entries" }
