package repository

import (
	"context"
	"time"

	"github.com/warning2025/farmaciaposventas3/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ExpenseRepository interface {
	CreateTx(tx *gorm.DB, e *model.Expense) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Expense, error)
	FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Expense, error)
	UpdateFieldsTx(tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	List(ctx context.Context, branchID *uuid.UUID) ([]model.Expense, error)
	ListRange(ctx context.Context, start, end time.Time, branchID *uuid.UUID) ([]model.Expense, error)
	DB() *gorm.DB
}

type expenseRepo struct{ db *gorm.DB }

func NewExpenseRepository(db *gorm.DB) ExpenseRepository { return &expenseRepo{db: db} }

func (r *expenseRepo) CreateTx(tx *gorm.DB, e *model.Expense) error {
	return tx.Create(e).Error
}

func (r *expenseRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Expense, error) {
	var e model.Expense
	err := r.db.WithContext(ctx).First(&e, id).Error
	return &e, err
}

func (r *expenseRepo) FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Expense, error) {
	var e model.Expense
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&e, id).Error
	return &e, err
}

func (r *expenseRepo) UpdateFieldsTx(tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
	return tx.Model(&model.Expense{}).Where("id = ?", id).Updates(fields).Error
}

func (r *expenseRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Expense{}, id).Error
}

func (r *expenseRepo) List(ctx context.Context, branchID *uuid.UUID) ([]model.Expense, error) {
	var expenses []model.Expense
	q := r.db.WithContext(ctx)
	if branchID != nil {
		q = q.Where("branch_id = ?", *branchID)
	}
	err := q.Order("date DESC").Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepo) ListRange(ctx context.Context, start, end time.Time, branchID *uuid.UUID) ([]model.Expense, error) {
	var expenses []model.Expense
	q := r.db.WithContext(ctx).Where("date BETWEEN ? AND ?", start, end)
	if branchID != nil {
		q = q.Where("branch_id = ?", *branchID)
	}
	err := q.Order("date DESC").Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepo) DB() *gorm.DB { return r.db }
