package service

import (
	"context"
	"errors"

	"github.com/warning2025/farmaciaposventas3/internal/dto"
	"github.com/warning2025/farmaciaposventas3/internal/model"
	"github.com/warning2025/farmaciaposventas3/internal/realtime"
	"github.com/warning2025/farmaciaposventas3/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ProductService manages the catalog. Stock fields are edited here only for
// repositions and corrections; sales and transfers move stock through their
// own transactions.
type ProductService struct {
	products repository.ProductRepository
	branches repository.BranchRepository
	hub      *realtime.Hub
}

func NewProductService(products repository.ProductRepository, branches repository.BranchRepository, hub *realtime.Hub) *ProductService {
	return &ProductService{products: products, branches: branches, hub: hub}
}

func (s *ProductService) Create(ctx context.Context, req dto.CreateProductRequest) (*model.Product, error) {
	var branchID *uuid.UUID
	if req.BranchID != nil {
		id, err := uuid.Parse(*req.BranchID)
		if err != nil {
			return nil, validationErr("branch_id inválido")
		}
		branchID = &id
	}
	if req.SellingPrice.IsNegative() || req.CostPrice.IsNegative() {
		return nil, validationErr("los precios no pueden ser negativos")
	}

	p := &model.Product{
		Barcode:        req.Barcode,
		CommercialName: req.CommercialName,
		GenericName:    req.GenericName,
		Category:       req.Category,
		SellingPrice:   req.SellingPrice,
		CostPrice:      req.CostPrice,
		CurrentStock:   req.CurrentStock,
		MinStock:       req.MinStock,
		ExpirationDate: req.ExpirationDate,
		Unit:           req.Unit,
		BatchNumber:    req.BatchNumber,
		Location:       req.Location,
		Concentration:  req.Concentration,
		Presentation:   req.Presentation,
		Laboratory:     req.Laboratory,
		BranchID:       branchID,
	}
	if err := s.products.Create(ctx, p); err != nil {
		if repository.IsUniqueViolation(err, "") {
			return nil, ErrDuplicateBarcode
		}
		return nil, err
	}

	log.Info().Str("product_id", p.ID.String()).Str("barcode", p.Barcode).Msg("producto creado")
	s.hub.Publish(ctx, realtime.TopicProducts)
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*model.Product, error) {
	fields := map[string]interface{}{}
	if req.Barcode != nil {
		fields["barcode"] = *req.Barcode
	}
	if req.CommercialName != nil {
		fields["commercial_name"] = *req.CommercialName
	}
	if req.GenericName != nil {
		fields["generic_name"] = *req.GenericName
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.SellingPrice != nil {
		fields["selling_price"] = *req.SellingPrice
	}
	if req.CostPrice != nil {
		fields["cost_price"] = *req.CostPrice
	}
	if req.CurrentStock != nil {
		fields["current_stock"] = *req.CurrentStock
	}
	if req.MinStock != nil {
		fields["min_stock"] = *req.MinStock
	}
	if req.ExpirationDate != nil {
		fields["expiration_date"] = *req.ExpirationDate
	}
	if req.Unit != nil {
		fields["unit"] = *req.Unit
	}
	if req.BatchNumber != nil {
		fields["batch_number"] = *req.BatchNumber
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Concentration != nil {
		fields["concentration"] = *req.Concentration
	}
	if req.Presentation != nil {
		fields["presentation"] = *req.Presentation
	}
	if req.Laboratory != nil {
		fields["laboratory"] = *req.Laboratory
	}
	if req.BranchID != nil {
		branchID, err := uuid.Parse(*req.BranchID)
		if err != nil {
			return nil, validationErr("branch_id inválido")
		}
		fields["branch_id"] = branchID
	}
	if len(fields) > 0 {
		if err := s.products.UpdateFields(ctx, id, fields); err != nil {
			if repository.IsUniqueViolation(err, "") {
				return nil, ErrDuplicateBarcode
			}
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
	}
	p, err := s.products.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	s.hub.Publish(ctx, realtime.TopicProducts)
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.products.FindByID(ctx, id); errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	} else if err != nil {
		return err
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.hub.Publish(ctx, realtime.TopicProducts)
	return nil
}

func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return p, err
}

// GetByBarcode is the scanner lookup on the POS screen.
func (s *ProductService) GetByBarcode(ctx context.Context, barcode string) (*model.Product, error) {
	p, err := s.products.FindByBarcode(ctx, barcode)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return p, err
}

func (s *ProductService) List(ctx context.Context, branchID *uuid.UUID) ([]model.Product, error) {
	if branchID != nil {
		return s.products.ListByBranch(ctx, *branchID)
	}
	return s.products.List(ctx)
}

// ListLowStock returns products at or below their minimum. Products with
// MinStock zero never alert.
func (s *ProductService) ListLowStock(ctx context.Context) ([]model.Product, error) {
	candidates, err := s.products.ListWithMinStock(ctx)
	if err != nil {
		return nil, err
	}
	low := make([]model.Product, 0, len(candidates))
	for _, p := range candidates {
		if p.CurrentStock <= p.MinStock {
			low = append(low, p)
		}
	}
	return low, nil
}

// AssignOrphansToMainBranch claims every product without a home branch for the
// main branch. Data imported from spreadsheets arrives unassigned; this is the
// one-click cleanup.
func (s *ProductService) AssignOrphansToMainBranch(ctx context.Context) (int, error) {
	main, err := s.branches.FindMain(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, validationErr("no existe una sucursal principal")
	}
	if err != nil {
		return 0, err
	}
	orphans, err := s.products.ListOrphans(ctx)
	if err != nil {
		return 0, err
	}
	if len(orphans) == 0 {
		return 0, nil
	}

	assigned := 0
	err = repository.RunInTx(ctx, s.products.DB(), func(tx *gorm.DB) error {
		for _, p := range orphans {
			if err := s.products.AssignBranchTx(tx, p.ID, main.ID); err != nil {
				return err
			}
			assigned++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info().Int("count", assigned).Str("branch_id", main.ID.String()).Msg("productos huérfanos asignados")
	s.hub.Publish(ctx, realtime.TopicProducts)
	return assigned, nil
}
