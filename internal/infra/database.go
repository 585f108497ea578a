package infra

import (
	"fmt"

	"github.com/warning2025/farmaciaposventas3/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies the idempotent SQL patches that GORM
// cannot express (partial unique indexes).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// RunMigrations creates/updates all tables and applies schema patches. Also
// used by integration tests against throwaway containers.
func RunMigrations(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return fmt.Errorf("pgcrypto: %w", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Branch{},
		&model.ActivationCode{},
		&model.Product{},
		&model.BranchStock{},
		&model.CashRegisterSummary{},
		&model.CashRegisterEntry{},
		&model.Sale{},
		&model.SaleItem{},
		&model.Expense{},
		&model.NursingRecord{},
		&model.Supplier{},
		&model.Purchase{},
		&model.Category{},
		&model.Presentation{},
		&model.Concentration{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot express.
// The partial unique index is the hard backstop for the one-open-register
// invariant: two concurrent openers can both pass the row-lock check when no
// open row exists yet, and the second insert must fail.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'uq_cash_register_summaries_open') THEN
		    CREATE UNIQUE INDEX uq_cash_register_summaries_open
		        ON cash_register_summaries (branch_id)
		        WHERE status = 'open';
		  END IF;
		END $$`,
	}
	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("schema patch: %w", err)
		}
	}
	return nil
}
