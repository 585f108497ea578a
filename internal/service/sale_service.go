package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
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

// StockAlertDispatcher schedules an async low-stock re-check after a sale.
// Satisfied by worker.Dispatcher; nil disables alerts.
type StockAlertDispatcher interface {
	EnqueueStockCheck(ctx context.Context, productIDs []string) error
}

// SaleService records sales atomically: stock decrements, the sale record and
// the cash ledger entry commit together or not at all.
type SaleService struct {
	sales     repository.SaleRepository
	products  repository.ProductRepository
	registers *CashRegisterService
	hub       *realtime.Hub
	alerts    StockAlertDispatcher
}

func NewSaleService(sales repository.SaleRepository, products repository.ProductRepository, registers *CashRegisterService, hub *realtime.Hub, alerts StockAlertDispatcher) *SaleService {
	return &SaleService{sales: sales, products: products, registers: registers, hub: hub, alerts: alerts}
}

// Create validates the totals, locks every referenced product, verifies and
// decrements stock, writes the sale and records "Venta #xxxxxx" in the open
// register. Any shortage aborts the whole transaction; nothing is partially
// applied.
func (s *SaleService) Create(ctx context.Context, actor Actor, req dto.CreateSaleRequest) (*model.Sale, error) {
	branchID, err := uuid.Parse(req.BranchID)
	if err != nil {
		return nil, validationErr("branch_id inválido")
	}
	if !actor.CanAccess(branchID) {
		return nil, branchForbiddenErr()
	}
	if len(req.Items) == 0 {
		return nil, validationErr("la venta no tiene artículos")
	}

	itemsTotal := decimal.Zero
	for _, it := range req.Items {
		itemsTotal = itemsTotal.Add(it.TotalPrice)
	}
	if !itemsTotal.Sub(req.TotalDiscount).Equal(req.FinalTotal) {
		return nil, validationErr("el total no coincide con la suma de los artículos menos el descuento")
	}

	channel := req.Channel
	if channel == "" {
		channel = "pos"
	}

	sale := &model.Sale{
		ID:            uuid.New(),
		BranchID:      branchID,
		Subtotal:      req.Subtotal,
		TotalDiscount: req.TotalDiscount,
		FinalTotal:    req.FinalTotal,
		PaymentMethod: req.PaymentMethod,
		Channel:       channel,
		Status:        req.Status,
		CustomerPhone: req.CustomerPhone,
		UserID:        actor.ID,
		UserName:      actor.Name,
		Date:          time.Now(),
	}

	// Stable lock order across concurrent sales prevents deadlocks between
	// transactions touching overlapping product sets.
	items := make([]dto.SaleItemRequest, len(req.Items))
	copy(items, req.Items)
	sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })

	err = repository.RunInTx(ctx, s.sales.DB(), func(tx *gorm.DB) error {
		for _, it := range items {
			productID, err := uuid.Parse(it.ProductID)
			if err != nil {
				return validationErr("product_id inválido: " + it.ProductID)
			}
			p, err := s.products.FindByIDForUpdateTx(tx, productID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: producto %s", ErrNotFound, it.ProductID)
			}
			if err != nil {
				return err
			}
			if p.CurrentStock < it.Quantity {
				return fmt.Errorf("%w: %s (disponible %d, pedido %d)",
					ErrInsufficientStock, p.CommercialName, p.CurrentStock, it.Quantity)
			}
			if err := s.products.UpdateStockTx(tx, productID, -it.Quantity); err != nil {
				return err
			}
			sale.Items = append(sale.Items, model.SaleItem{
				SaleID:      sale.ID,
				ProductID:   productID,
				ProductName: p.CommercialName,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
				TotalPrice:  it.TotalPrice,
			})
		}
		if err := s.sales.CreateTx(tx, sale); err != nil {
			return err
		}
		concept := "Venta #" + sale.ID.String()[:6]
		_, err := s.registers.RecordEntryTx(tx, branchID, "sale", sale.FinalTotal, concept, actor)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("sale_id", sale.ID.String()).Str("total", sale.FinalTotal.String()).Msg("venta registrada")
	s.hub.Publish(ctx, realtime.TopicSales+":"+branchID.String())
	s.hub.Publish(ctx, realtime.TopicProducts)
	s.registers.PublishBranch(ctx, branchID)

	if s.alerts != nil {
		ids := make([]string, 0, len(sale.Items))
		for _, it := range sale.Items {
			ids = append(ids, it.ProductID.String())
		}
		if err := s.alerts.EnqueueStockCheck(ctx, ids); err != nil {
			log.Warn().Err(err).Msg("no se pudo encolar la verificación de stock")
		}
	}
	return sale, nil
}

// Delete reverses a sale: stock is restored and the open summary's totals are
// lowered by the sale amount. The original ledger entry stays, the totals
// adjustment is the correction.
func (s *SaleService) Delete(ctx context.Context, saleID uuid.UUID) error {
	var branchID uuid.UUID
	err := repository.RunInTx(ctx, s.sales.DB(), func(tx *gorm.DB) error {
		sale, err := s.sales.FindByIDForUpdateTx(tx, saleID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		branchID = sale.BranchID

		items := make([]model.SaleItem, len(sale.Items))
		copy(items, sale.Items)
		sort.Slice(items, func(i, j int) bool {
			return items[i].ProductID.String() < items[j].ProductID.String()
		})
		for _, it := range items {
			if _, err := s.products.FindByIDForUpdateTx(tx, it.ProductID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					// Product removed from the catalog after the sale; there
					// is no stock row to restore.
					continue
				}
				return err
			}
			if err := s.products.UpdateStockTx(tx, it.ProductID, it.Quantity); err != nil {
				return err
			}
		}
		if _, err := s.registers.AdjustTotalsTx(tx, sale.BranchID, "sale", sale.FinalTotal.Neg()); err != nil {
			return err
		}
		return s.sales.DeleteTx(tx, saleID)
	})
	if err != nil {
		return err
	}

	log.Info().Str("sale_id", saleID.String()).Msg("venta anulada")
	s.hub.Publish(ctx, realtime.TopicSales+":"+branchID.String())
	s.hub.Publish(ctx, realtime.TopicProducts)
	s.registers.PublishBranch(ctx, branchID)
	return nil
}

// DeleteBatch deletes each sale in its own transaction, so one failure does
// not roll back the rest. The result reports per-record outcomes.
func (s *SaleService) DeleteBatch(ctx context.Context, ids []string) dto.BatchResult {
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

// UpdateStatus moves an online order through its workflow. Stock and ledger
// are untouched; they were settled when the sale was created.
func (s *SaleService) UpdateStatus(ctx context.Context, saleID uuid.UUID, status string) (*model.Sale, error) {
	var updated *model.Sale
	err := repository.RunInTx(ctx, s.sales.DB(), func(tx *gorm.DB) error {
		sale, err := s.sales.FindByIDForUpdateTx(tx, saleID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if sale.Channel != "online" {
			return validationErr("solo los pedidos en línea tienen estado")
		}
		if err := s.sales.UpdateStatusTx(tx, saleID, status); err != nil {
			return err
		}
		sale.Status = &status
		updated = sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.hub.Publish(ctx, realtime.TopicSales+":"+updated.BranchID.String())
	return updated, nil
}

func (s *SaleService) Get(ctx context.Context, id uuid.UUID) (*model.Sale, error) {
	sale, err := s.sales.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return sale, err
}

func (s *SaleService) List(ctx context.Context, branchID *uuid.UUID) ([]model.Sale, error) {
	return s.sales.List(ctx, branchID)
}
