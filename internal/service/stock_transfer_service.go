package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/warning2025/farmaciaposventas3/internal/dto"
	"github.com/warning2025/farmaciaposventas3/internal/model"
	"github.com/warning2025/farmaciaposventas3/internal/realtime"
	"github.com/warning2025/farmaciaposventas3/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// StockTransferService bridges the two stock pools: it drains units from the
// central catalog (Product.CurrentStock) into a branch's local pool
// (BranchStock). This is the only place the pools are connected; they are
// never merged back.
type StockTransferService struct {
	products    repository.ProductRepository
	branchStock repository.BranchStockRepository
	branches    repository.BranchRepository
	hub         *realtime.Hub
}

func NewStockTransferService(products repository.ProductRepository, branchStock repository.BranchStockRepository, branches repository.BranchRepository, hub *realtime.Hub) *StockTransferService {
	return &StockTransferService{products: products, branchStock: branchStock, branches: branches, hub: hub}
}

// Transfer moves units of each item out of the central pool into the target
// branch. One transaction: every product row is read and validated before any
// write, so a shortage on any item aborts with both pools untouched. The
// branch-stock row is created lazily on the first transfer of a product.
func (s *StockTransferService) Transfer(ctx context.Context, req dto.TransferStockRequest) error {
	toID, err := uuid.Parse(req.ToBranchID)
	if err != nil {
		return validationErr("to_branch_id inválido")
	}
	if len(req.Items) == 0 {
		return validationErr("la transferencia no tiene items")
	}

	// Repeated product lines are merged so validation sees the combined
	// quantity against a single read of the central stock.
	quantities := make(map[uuid.UUID]int, len(req.Items))
	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return validationErr("product_id inválido")
		}
		if item.Quantity <= 0 {
			return validationErr("la cantidad debe ser mayor a cero")
		}
		quantities[productID] += item.Quantity
	}
	productIDs := make([]uuid.UUID, 0, len(quantities))
	for id := range quantities {
		productIDs = append(productIDs, id)
	}
	// Deterministic lock order across concurrent transfers.
	sort.Slice(productIDs, func(i, j int) bool {
		return productIDs[i].String() < productIDs[j].String()
	})

	if _, err := s.branches.FindByID(ctx, toID); errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: sucursal destino", ErrNotFound)
	} else if err != nil {
		return err
	}

	err = repository.RunInTx(ctx, s.products.DB(), func(tx *gorm.DB) error {
		type move struct {
			productID uuid.UUID
			dest      *model.BranchStock
			quantity  int
		}
		moves := make([]move, 0, len(productIDs))

		for _, productID := range productIDs {
			product, err := s.products.FindByIDForUpdateTx(tx, productID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: producto", ErrNotFound)
			}
			if err != nil {
				return err
			}
			quantity := quantities[productID]
			if product.CurrentStock < quantity {
				return fmt.Errorf("%w: %s en el almacén central (disponible %d, solicitado %d)",
					ErrInsufficientStock, product.CommercialName, product.CurrentStock, quantity)
			}

			dest, err := s.branchStock.FindForUpdateTx(tx, toID, productID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				dest = nil
			} else if err != nil {
				return err
			}
			moves = append(moves, move{productID: productID, dest: dest, quantity: quantity})
		}

		for _, m := range moves {
			if err := s.products.UpdateStockTx(tx, m.productID, -m.quantity); err != nil {
				return err
			}
			if m.dest == nil {
				if err := s.branchStock.CreateTx(tx, &model.BranchStock{
					BranchID:     toID,
					ProductID:    m.productID,
					CurrentStock: m.quantity,
				}); err != nil {
					return err
				}
				continue
			}
			if err := s.branchStock.AddStockTx(tx, m.dest.ID, m.quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().
		Str("to", toID.String()).
		Int("items", len(productIDs)).
		Msg("stock transferido a sucursal")
	s.hub.Publish(ctx, realtime.TopicProducts)
	return nil
}

// BranchStock lists the pools of a branch, flagging low-stock rows against
// the product's minimum.
func (s *StockTransferService) BranchStock(ctx context.Context, branchID uuid.UUID) ([]model.BranchStock, error) {
	return s.branchStock.ListByBranch(ctx, branchID)
}
