package dto

import "github.com/shopspring/decimal"

type AddExpenseRequest struct {
	BranchID string          `json:"branch_id" validate:"required,uuid"`
	Concept  string          `json:"concept"   validate:"required,min=3"`
	Amount   decimal.Decimal `json:"amount"    validate:"required"`
	Category string          `json:"category"  validate:"required"`
}

type UpdateExpenseRequest struct {
	Concept  *string          `json:"concept"  validate:"omitempty,min=3"`
	Amount   *decimal.Decimal `json:"amount"`
	Category *string          `json:"category"`
}

type ExpenseResponse struct {
	ID       string          `json:"id"`
	BranchID string          `json:"branch_id"`
	Concept  string          `json:"concept"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	UserName string          `json:"user_name"`
	Date     string          `json:"date"`
}

type CreateNursingRecordRequest struct {
	BranchID    string          `json:"branch_id"    validate:"required,uuid"`
	ServiceType string          `json:"service_type" validate:"required"`
	PatientName string          `json:"patient_name" validate:"required,min=2"`
	Notes       *string         `json:"notes"`
	Cost        decimal.Decimal `json:"cost" validate:"required"`
}

type NursingRecordResponse struct {
	ID          string          `json:"id"`
	BranchID    string          `json:"branch_id"`
	ServiceType string          `json:"service_type"`
	PatientName string          `json:"patient_name"`
	Notes       *string         `json:"notes,omitempty"`
	Cost        decimal.Decimal `json:"cost"`
	UserName    string          `json:"user_name"`
	Date        string          `json:"date"`
}

type DeleteRecordsRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,uuid"`
}
