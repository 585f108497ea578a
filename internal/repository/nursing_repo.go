package repository

import (
	"context"
	"time"

	"github.com/warning2025/farmaciaposventas3/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NursingRepository interface {
	CreateTx(tx *gorm.DB, rec *model.NursingRecord) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.NursingRecord, error)
	FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.NursingRecord, error)
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	List(ctx context.Context, branchID *uuid.UUID) ([]model.NursingRecord, error)
	ListRange(ctx context.Context, start, end time.Time, branchID *uuid.UUID) ([]model.NursingRecord, error)
	DB() *gorm.DB
}

type nursingRepo struct{ db *gorm.DB }

func NewNursingRepository(db *gorm.DB) NursingRepository { return &nursingRepo{db: db} }

func (r *nursingRepo) CreateTx(tx *gorm.DB, rec *model.NursingRecord) error {
	return tx.Create(rec).Error
}

func (r *nursingRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.NursingRecord, error) {
	var rec model.NursingRecord
	err := r.db.WithContext(ctx).First(&rec, id).Error
	return &rec, err
}

func (r *nursingRepo) FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.NursingRecord, error) {
	var rec model.NursingRecord
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&rec, id).Error
	return &rec, err
}

func (r *nursingRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.NursingRecord{}, id).Error
}

func (r *nursingRepo) List(ctx context.Context, branchID *uuid.UUID) ([]model.NursingRecord, error) {
	var records []model.NursingRecord
	q := r.db.WithContext(ctx)
	if branchID != nil {
		q = q.Where("branch_id = ?", *branchID)
	}
	err := q.Order("date DESC").Find(&records).Error
	return records, err
}

func (r *nursingRepo) ListRange(ctx context.Context, start, end time.Time, branchID *uuid.UUID) ([]model.NursingRecord, error) {
	var records []model.NursingRecord
	q := r.db.WithContext(ctx).Where("date BETWEEN ? AND ?", start, end)
	if branchID != nil {
		q = q.Where("branch_id = ?", *branchID)
	}
	err := q.Order("date DESC").Find(&records).Error
	return records, err
}

func (r *nursingRepo) DB() *gorm.DB { return r.db }
