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
	"gorm.io/gorm"
)

// ExpenseService keeps operating expenses and the register ledger in step:
// the expense row and its ledger effect always commit together.
type ExpenseService struct {
	expenses  repository.ExpenseRepository
	registers *CashRegisterService
	hub       *realtime.Hub
}

func NewExpenseService(expenses repository.ExpenseRepository, registers *CashRegisterService, hub *realtime.Hub) *ExpenseService {
	return &ExpenseService{expenses: expenses, registers: registers, hub: hub}
}

func (s *ExpenseService) Create(ctx context.Context, actor Actor, req dto.AddExpenseRequest) (*model.Expense, error) {
	branchID, err := uuid.Parse(req.BranchID)
	if err != nil {
		return nil, validationErr("branch_id inválido")
	}
	if !actor.CanAccess(branchID) {
		return nil, branchForbiddenErr()
	}
	if !req.Amount.IsPositive() {
		return nil, validationErr("el monto debe ser mayor a cero")
	}

	expense := &model.Expense{
		ID:       uuid.New(),
		BranchID: branchID,
		Concept:  req.Concept,
		Amount:   req.Amount,
		Category: req.Category,
		UserID:   actor.ID,
		UserName: actor.Name,
		Date:     time.Now(),
	}

	err = repository.RunInTx(ctx, s.expenses.DB(), func(tx *gorm.DB) error {
		if err := s.expenses.CreateTx(tx, expense); err != nil {
			return err
		}
		_, err := s.registers.RecordEntryTx(tx, branchID, "expense", req.Amount, "Gasto: "+req.Concept, actor)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("expense_id", expense.ID.String()).Str("amount", expense.Amount.String()).Msg("gasto registrado")
	s.hub.Publish(ctx, realtime.TopicExpenses+":"+branchID.String())
	s.registers.PublishBranch(ctx, branchID)
	return expense, nil
}

// Update edits an expense in place. When the amount changes, the open
// summary's totals shift by the difference; the original ledger entry is not
// rewritten.
func (s *ExpenseService) Update(ctx context.Context, expenseID uuid.UUID, req dto.UpdateExpenseRequest) (*model.Expense, error) {
	var updated *model.Expense
	var branchID uuid.UUID
	err := repository.RunInTx(ctx, s.expenses.DB(), func(tx *gorm.DB) error {
		expense, err := s.expenses.FindByIDForUpdateTx(tx, expenseID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		branchID = expense.BranchID

		fields := map[string]interface{}{}
		if req.Concept != nil {
			fields["concept"] = *req.Concept
			expense.Concept = *req.Concept
		}
		if req.Category != nil {
			fields["category"] = *req.Category
			expense.Category = *req.Category
		}
		if req.Amount != nil && !req.Amount.Equal(expense.Amount) {
			if !req.Amount.IsPositive() {
				return validationErr("el monto debe ser mayor a cero")
			}
			delta := req.Amount.Sub(expense.Amount)
			if _, err := s.registers.AdjustTotalsTx(tx, expense.BranchID, "expense", delta); err != nil {
				return err
			}
			fields["amount"] = *req.Amount
			expense.Amount = *req.Amount
		}
		if len(fields) == 0 {
			updated = expense
			return nil
		}
		if err := s.expenses.UpdateFieldsTx(tx, expenseID, fields); err != nil {
			return err
		}
		updated = expense
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.hub.Publish(ctx, realtime.TopicExpenses+":"+branchID.String())
	s.registers.PublishBranch(ctx, branchID)
	return updated, nil
}

func (s *ExpenseService) Delete(ctx context.Context, expenseID uuid.UUID) error {
	var branchID uuid.UUID
	err := repository.RunInTx(ctx, s.expenses.DB(), func(tx *gorm.DB) error {
		expense, err := s.expenses.FindByIDForUpdateTx(tx, expenseID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		branchID = expense.BranchID
		if _, err := s.registers.AdjustTotalsTx(tx, expense.BranchID, "expense", expense.Amount.Neg()); err != nil {
			return err
		}
		return s.expenses.DeleteTx(tx, expenseID)
	})
	if err != nil {
		return err
	}

	log.Info().Str("expense_id", expenseID.String()).Msg("gasto eliminado")
	s.hub.Publish(ctx, realtime.TopicExpenses+":"+branchID.String())
	s.registers.PublishBranch(ctx, branchID)
	return nil
}

func (s *ExpenseService) DeleteBatch(ctx context.Context, ids []string) dto.BatchResult {
	res := dto.BatchResult{Requested: len(ids), Errors: map[string]string{}}
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			res.Failed++
			res.Errors[raw] = "id inválido"
			continue
		}
		if err := s.Delete(ctx, id); err != nil {
			res.Failed++
			res.Errors[raw] = err.Error()
			continue
		}
		res.Succeeded++
	}
	if len(res.Errors) == 0 {
		res.Errors = nil
	}
	return res
}

func (s *ExpenseService) List(ctx context.Context, branchID *uuid.UUID) ([]model.Expense, error) {
	return s.expenses.List(ctx, branchID)
}
