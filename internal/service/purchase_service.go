package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/warning2025/farmaciaposventas3/internal/dto"
	"github.com/warning2025/farmaciaposventas3/internal/model"
	"github.com/warning2025/farmaciaposventas3/internal/realtime"
	"github.com/warning2025/farmaciaposventas3/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const purchaseExpenseCategory = "Compra Proveedores"

// PurchaseService manages suppliers and their invoices. A cash purchase
// ("contado") spawns a linked Expense in the same transaction; a credit
// purchase ("credito") spawns it when marked paid. Deleting a purchase removes
// the linked expense and reverses its ledger effect, all atomically.
type PurchaseService struct {
	suppliers repository.SupplierRepository
	expenses  repository.ExpenseRepository
	registers *CashRegisterService
	hub       *realtime.Hub
}

func NewPurchaseService(suppliers repository.SupplierRepository, expenses repository.ExpenseRepository, registers *CashRegisterService, hub *realtime.Hub) *PurchaseService {
	return &PurchaseService{suppliers: suppliers, expenses: expenses, registers: registers, hub: hub}
}

// ─── Suppliers ───────────────────────────────────────────────────────────────

func (s *PurchaseService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*model.Supplier, error) {
	supplier := &model.Supplier{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		RUCNit:        req.RUCNit,
	}
	if err := s.suppliers.Create(ctx, supplier); err != nil {
		return nil, err
	}
	s.hub.Publish(ctx, realtime.TopicPurchases)
	return supplier, nil
}

func (s *PurchaseService) UpdateSupplier(ctx context.Context, id uuid.UUID, req dto.UpdateSupplierRequest) (*model.Supplier, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.ContactPerson != nil {
		fields["contact_person"] = *req.ContactPerson
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.RUCNit != nil {
		fields["ruc_nit"] = *req.RUCNit
	}
	if len(fields) > 0 {
		if err := s.suppliers.UpdateFields(ctx, id, fields); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
	}
	supplier, err := s.suppliers.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	s.hub.Publish(ctx, realtime.TopicPurchases)
	return supplier, nil
}

func (s *PurchaseService) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	if err := s.suppliers.Delete(ctx, id); err != nil {
		return err
	}
	s.hub.Publish(ctx, realtime.TopicPurchases)
	return nil
}

func (s *PurchaseService) ListSuppliers(ctx context.Context) ([]model.Supplier, error) {
	return s.suppliers.List(ctx)
}

// ─── Purchases ───────────────────────────────────────────────────────────────

// CreatePurchase registers a supplier invoice. For "contado" the money left
// the drawer now: a linked Expense and its ledger entry are created in the
// same transaction. For "credito" nothing hits the ledger until MarkPaid.
func (s *PurchaseService) CreatePurchase(ctx context.Context, actor Actor, req dto.CreatePurchaseRequest) (*model.Purchase, error) {
	supplierID, err := uuid.Parse(req.SupplierID)
	if err != nil {
		return nil, validationErr("supplier_id inválido")
	}
	branchID, err := uuid.Parse(req.BranchID)
	if err != nil {
		return nil, validationErr("branch_id inválido")
	}
	if !actor.CanAccess(branchID) {
		return nil, branchForbiddenErr()
	}
	if !req.TotalAmount.IsPositive() {
		return nil, validationErr("el total debe ser mayor a cero")
	}
	if req.PaymentType == "credito" && req.DueDate == nil {
		return nil, validationErr("una compra a crédito requiere fecha de vencimiento")
	}

	supplier, err := s.suppliers.FindByID(ctx, supplierID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: proveedor", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	now := time.Now()
	purchaseDate := now
	if req.PurchaseDate != nil {
		if d, err := time.Parse("2006-01-02", *req.PurchaseDate); err == nil {
			purchaseDate = d
		}
	}
	var dueDate *time.Time
	if req.DueDate != nil {
		d, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return nil, validationErr("due_date inválida")
		}
		dueDate = &d
	}

	purchase := &model.Purchase{
		ID:            uuid.New(),
		SupplierID:    supplierID,
		BranchID:      branchID,
		InvoiceNumber: req.InvoiceNumber,
		ItemCount:     req.ItemCount,
		TotalAmount:   req.TotalAmount,
		PaymentType:   req.PaymentType,
		PurchaseDate:  purchaseDate,
		DueDate:       dueDate,
		UserID:        actor.ID,
		UserName:      actor.Name,
		Timestamp:     now,
	}

	err = repository.RunInTx(ctx, s.suppliers.DB(), func(tx *gorm.DB) error {
		if purchase.PaymentType == "contado" {
			expenseID, err := s.createLinkedExpenseTx(tx, actor, purchase, supplier.Name)
			if err != nil {
				return err
			}
			purchase.ExpenseID = &expenseID
			purchase.IsPaid = true
			purchase.PaymentDate = &now
		}
		return s.suppliers.CreatePurchaseTx(tx, purchase)
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("purchase_id", purchase.ID.String()).
		Str("payment_type", purchase.PaymentType).
		Msg("compra registrada")
	s.hub.Publish(ctx, realtime.TopicPurchases)
	s.hub.Publish(ctx, realtime.TopicExpenses+":"+branchID.String())
	s.registers.PublishBranch(ctx, branchID)
	return purchase, nil
}

// MarkPaid settles a credit purchase: the linked Expense appears now, dated at
// payment time, and the ledger records the outflow.
func (s *PurchaseService) MarkPaid(ctx context.Context, actor Actor, purchaseID uuid.UUID) (*model.Purchase, error) {
	var updated *model.Purchase
	var branchID uuid.UUID
	err := repository.RunInTx(ctx, s.suppliers.DB(), func(tx *gorm.DB) error {
		purchase, err := s.suppliers.FindPurchaseByIDForUpdateTx(tx, purchaseID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if purchase.PaymentType != "credito" {
			return validationErr("solo las compras a crédito se marcan como pagadas")
		}
		if purchase.IsPaid {
			return validationErr("la compra ya está pagada")
		}
		branchID = purchase.BranchID

		supplier, err := s.suppliers.FindByIDTx(tx, purchase.SupplierID)
		if err != nil {
			return err
		}
		expenseID, err := s.createLinkedExpenseTx(tx, actor, purchase, supplier.Name)
		if err != nil {
			return err
		}
		now := time.Now()
		if err := s.suppliers.UpdatePurchaseFieldsTx(tx, purchaseID, map[string]interface{}{
			"is_paid":      true,
			"payment_date": now,
			"expense_id":   expenseID,
		}); err != nil {
			return err
		}
		purchase.IsPaid = true
		purchase.PaymentDate = &now
		purchase.ExpenseID = &expenseID
		updated = purchase
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("purchase_id", purchaseID.String()).Msg("compra a crédito pagada")
	s.hub.Publish(ctx, realtime.TopicPurchases)
	s.hub.Publish(ctx, realtime.TopicExpenses+":"+branchID.String())
	s.registers.PublishBranch(ctx, branchID)
	return updated, nil
}

// DeletePurchase removes the invoice and, when an expense is linked, deletes
// it and reverses its effect on the open summary.
func (s *PurchaseService) DeletePurchase(ctx context.Context, purchaseID uuid.UUID) error {
	var branchID uuid.UUID
	err := repository.RunInTx(ctx, s.suppliers.DB(), func(tx *gorm.DB) error {
		purchase, err := s.suppliers.FindPurchaseByIDForUpdateTx(tx, purchaseID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		branchID = purchase.BranchID

		if purchase.ExpenseID != nil {
			expense, err := s.expenses.FindByIDForUpdateTx(tx, *purchase.ExpenseID)
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				// Linked expense already removed by hand; nothing to reverse.
			case err != nil:
				return err
			default:
				if _, err := s.registers.AdjustTotalsTx(tx, expense.BranchID, "expense", expense.Amount.Neg()); err != nil {
					return err
				}
				if err := s.expenses.DeleteTx(tx, expense.ID); err != nil {
					return err
				}
			}
		}
		return s.suppliers.DeletePurchaseTx(tx, purchaseID)
	})
	if err != nil {
		return err
	}

	log.Info().Str("purchase_id", purchaseID.String()).Msg("compra eliminada")
	s.hub.Publish(ctx, realtime.TopicPurchases)
	s.hub.Publish(ctx, realtime.TopicExpenses+":"+branchID.String())
	s.registers.PublishBranch(ctx, branchID)
	return nil
}

func (s *PurchaseService) ListPurchases(ctx context.Context, supplierID *uuid.UUID) ([]model.Purchase, error) {
	return s.suppliers.ListPurchases(ctx, supplierID)
}

func (s *PurchaseService) createLinkedExpenseTx(tx *gorm.DB, actor Actor, purchase *model.Purchase, supplierName string) (uuid.UUID, error) {
	expense := &model.Expense{
		ID:       uuid.New(),
		BranchID: purchase.BranchID,
		Concept:  fmt.Sprintf("Compra a Proveedor: %s (Factura: %s)", supplierName, purchase.InvoiceNumber),
		Amount:   purchase.TotalAmount,
		Category: purchaseExpenseCategory,
		UserID:   actor.ID,
		UserName: actor.Name,
		Date:     time.Now(),
	}
	if err := s.expenses.CreateTx(tx, expense); err != nil {
		return uuid.Nil, err
	}
	if _, err := s.registers.RecordEntryTx(tx, purchase.BranchID, "expense", expense.Amount, "Gasto: "+expense.Concept, actor); err != nil {
		return uuid.Nil, err
	}
	return expense.ID, nil
}
