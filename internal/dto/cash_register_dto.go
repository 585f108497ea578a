package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type OpenRegisterRequest struct {
	BranchID       string          `json:"branch_id"       validate:"required,uuid"`
	OpeningBalance decimal.Decimal `json:"opening_balance" validate:"min=0"`
}

type CloseRegisterRequest struct {
	SummaryID     string          `json:"summary_id"     validate:"required,uuid"`
	BranchID      string          `json:"branch_id"      validate:"required,uuid"`
	ActualBalance decimal.Decimal `json:"actual_balance" validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SummaryResponse struct {
	ID              string           `json:"id"`
	BranchID        string           `json:"branch_id"`
	OpeningBalance  decimal.Decimal  `json:"opening_balance"`
	TotalIncome     decimal.Decimal  `json:"total_income"`
	TotalExpense    decimal.Decimal  `json:"total_expense"`
	ExpectedBalance decimal.Decimal  `json:"expected_balance"`
	ActualBalance   *decimal.Decimal `json:"actual_balance,omitempty"`
	Difference      *decimal.Decimal `json:"difference,omitempty"`
	Status          string           `json:"status"`
	UserNameOpen    string           `json:"user_name_open"`
	UserNameClose   *string          `json:"user_name_close,omitempty"`
	TimestampOpen   string           `json:"timestamp_open"`
	TimestampClose  *string          `json:"timestamp_close,omitempty"`
}

type EntryResponse struct {
	ID        string          `json:"id"`
	BranchID  string          `json:"branch_id"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Concept   string          `json:"concept"`
	UserName  string          `json:"user_name"`
	Timestamp string          `json:"timestamp"`
}
