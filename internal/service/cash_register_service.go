package service

import (
	"context"
	"errors"
	"time"

	"github.com/warning2025/farmaciaposventas3/internal/dto"
	"github.com/warning2025/farmaciaposventas3/internal/model"
	"github.com/warning2025/farmaciaposventas3/internal/realtime"
	"github.com/warning2025/farmaciaposventas3/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CashRegisterService owns register sessions and the immutable entry ledger.
// Every money-moving service (sales, expenses, nursing, purchases) records
// through RecordEntryTx / AdjustTotalsTx inside its own transaction, so the
// summary totals and the domain record commit or roll back together.
type CashRegisterService struct {
	registers repository.CashRegisterRepository
	hub       *realtime.Hub
}

func NewCashRegisterService(registers repository.CashRegisterRepository, hub *realtime.Hub) *CashRegisterService {
	return &CashRegisterService{registers: registers, hub: hub}
}

// Open starts a register session for the branch. At most one session per
// branch may be open; the check runs under a row lock and is backed by a
// partial unique index for the race two lockless openers could still win.
func (s *CashRegisterService) Open(ctx context.Context, actor Actor, req dto.OpenRegisterRequest) (*model.CashRegisterSummary, error) {
	branchID, err := uuid.Parse(req.BranchID)
	if err != nil {
		return nil, validationErr("branch_id inválido")
	}
	if !actor.CanAccess(branchID) {
		return nil, branchForbiddenErr()
	}
	if req.OpeningBalance.IsNegative() {
		return nil, validationErr("el saldo inicial no puede ser negativo")
	}

	summary := &model.CashRegisterSummary{
		BranchID:        branchID,
		OpeningBalance:  req.OpeningBalance,
		ExpectedBalance: req.OpeningBalance,
		Status:          "open",
		UserIDOpen:      actor.ID,
		UserNameOpen:    actor.Name,
		TimestampOpen:   time.Now(),
	}

	err = repository.RunInTx(ctx, s.registers.DB(), func(tx *gorm.DB) error {
		_, err := s.registers.FindOpenByBranchForUpdateTx(tx, branchID)
		if err == nil {
			return ErrRegisterAlreadyOpen
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := s.registers.CreateSummaryTx(tx, summary); err != nil {
			return err
		}
		return s.registers.CreateEntryTx(tx, &model.CashRegisterEntry{
			BranchID:  branchID,
			Type:      "initial",
			Amount:    req.OpeningBalance,
			Concept:   "Apertura de Caja",
			UserID:    actor.ID,
			UserName:  actor.Name,
			Timestamp: summary.TimestampOpen,
		})
	})
	if repository.IsUniqueViolation(err, "uq_cash_register_summaries_open") {
		return nil, ErrRegisterAlreadyOpen
	}
	if err != nil {
		return nil, err
	}

	log.Info().Str("branch_id", branchID.String()).Str("user", actor.Name).Msg("caja abierta")
	s.hub.Publish(ctx, realtime.TopicCashRegister+":"+branchID.String())
	return summary, nil
}

// Close finishes a session, freezing the expected balance and recording the
// counted cash. Only the opener or an Admin may close.
func (s *CashRegisterService) Close(ctx context.Context, actor Actor, req dto.CloseRegisterRequest) (*model.CashRegisterSummary, error) {
	summaryID, err := uuid.Parse(req.SummaryID)
	if err != nil {
		return nil, validationErr("summary_id inválido")
	}
	branchID, err := uuid.Parse(req.BranchID)
	if err != nil {
		return nil, validationErr("branch_id inválido")
	}
	if !actor.CanAccess(branchID) {
		return nil, branchForbiddenErr()
	}

	var closed *model.CashRegisterSummary
	err = repository.RunInTx(ctx, s.registers.DB(), func(tx *gorm.DB) error {
		summary, err := s.registers.FindSummaryByIDForUpdateTx(tx, summaryID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if summary.BranchID != branchID {
			return validationErr("la caja no pertenece a la sucursal indicada")
		}
		if summary.Status != "open" {
			return ErrRegisterClosed
		}
		if summary.UserIDOpen != actor.ID && !actor.IsAdmin() {
			return ErrForbidden
		}

		now := time.Now()
		diff := req.ActualBalance.Sub(summary.ExpectedBalance)
		summary.ActualBalance = &req.ActualBalance
		summary.Difference = &diff
		summary.Status = "closed"
		summary.UserIDClose = &actor.ID
		summary.UserNameClose = &actor.Name
		summary.TimestampClose = &now
		if err := s.registers.UpdateSummaryTx(tx, summary); err != nil {
			return err
		}
		closed = summary
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("branch_id", branchID.String()).
		Str("difference", closed.Difference.String()).
		Msg("caja cerrada")
	s.hub.Publish(ctx, realtime.TopicCashRegister+":"+branchID.String())
	return closed, nil
}

// RecordEntryTx writes a ledger entry and bumps the open summary's totals
// under the caller's transaction. When no register is open for the branch the
// call is a silent no-op and reports recorded=false; the domain record is
// still created by the caller. entryType "expense" raises TotalExpense, any
// other type raises TotalIncome.
func (s *CashRegisterService) RecordEntryTx(tx *gorm.DB, branchID uuid.UUID, entryType string, amount decimal.Decimal, concept string, actor Actor) (bool, error) {
	summary, err := s.registers.FindOpenByBranchForUpdateTx(tx, branchID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Debug().Str("branch_id", branchID.String()).Str("concept", concept).
			Msg("sin caja abierta, movimiento no registrado en el libro")
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := s.registers.CreateEntryTx(tx, &model.CashRegisterEntry{
		BranchID:  branchID,
		Type:      entryType,
		Amount:    amount,
		Concept:   concept,
		UserID:    actor.ID,
		UserName:  actor.Name,
		Timestamp: time.Now(),
	}); err != nil {
		return false, err
	}
	return true, s.applyTotalsTx(tx, summary.ID, entryType, amount)
}

// AdjustTotalsTx bumps the open summary's totals without writing an entry.
// Deletions and amount corrections use it with a negative amount, leaving the
// original entry in place as the audit trail. No-op when no register is open.
func (s *CashRegisterService) AdjustTotalsTx(tx *gorm.DB, branchID uuid.UUID, entryType string, amount decimal.Decimal) (bool, error) {
	summary, err := s.registers.FindOpenByBranchForUpdateTx(tx, branchID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, s.applyTotalsTx(tx, summary.ID, entryType, amount)
}

func (s *CashRegisterService) applyTotalsTx(tx *gorm.DB, summaryID uuid.UUID, entryType string, amount decimal.Decimal) error {
	zero := decimal.Zero
	if entryType == "expense" {
		// Expenses lower the expected balance.
		return s.registers.ApplyTotalsTx(tx, summaryID, zero, amount, amount.Neg())
	}
	return s.registers.ApplyTotalsTx(tx, summaryID, amount, zero, amount)
}

// Current returns the open session for the branch with its entries since
// opening. ErrRegisterClosed when no session is open.
func (s *CashRegisterService) Current(ctx context.Context, branchID uuid.UUID) (*model.CashRegisterSummary, []model.CashRegisterEntry, error) {
	summary, err := s.registers.FindOpenByBranch(ctx, branchID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrRegisterClosed
	}
	if err != nil {
		return nil, nil, err
	}
	entries, err := s.registers.ListEntriesSince(ctx, branchID, summary.TimestampOpen)
	if err != nil {
		return nil, nil, err
	}
	return summary, entries, nil
}

// History lists closed and open sessions, newest first.
func (s *CashRegisterService) History(ctx context.Context, page, limit int) ([]model.CashRegisterSummary, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.registers.ListSummaries(ctx, page, limit)
}

// PublishBranch signals register watchers of the branch. Callers that record
// entries inside their own transaction publish after commit.
func (s *CashRegisterService) PublishBranch(ctx context.Context, branchID uuid.UUID) {
	s.hub.Publish(ctx, realtime.TopicCashRegister+":"+branchID.String())
}
