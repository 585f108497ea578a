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

// BranchService manages store locations and the single main-branch
// designation, plus the activation codes that gate provisioning a new branch.
type BranchService struct {
	branches repository.BranchRepository
	hub      *realtime.Hub
}

func NewBranchService(branches repository.BranchRepository, hub *realtime.Hub) *BranchService {
	return &BranchService{branches: branches, hub: hub}
}

// Create adds a branch. The very first branch becomes main regardless of the
// request; explicit is_main on a later branch moves the designation.
func (s *BranchService) Create(ctx context.Context, req dto.CreateBranchRequest) (*model.Branch, error) {
	branch := &model.Branch{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	}
	err := repository.RunInTx(ctx, s.branches.DB(), func(tx *gorm.DB) error {
		count, err := s.branches.CountTx(tx)
		if err != nil {
			return err
		}
		branch.IsMain = count == 0 || req.IsMain
		if branch.IsMain && count > 0 {
			if err := s.branches.ClearMainTx(tx); err != nil {
				return err
			}
		}
		return s.branches.CreateTx(tx, branch)
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("branch_id", branch.ID.String()).Bool("is_main", branch.IsMain).Msg("sucursal creada")
	s.hub.Publish(ctx, realtime.TopicBranches)
	return branch, nil
}

// CreateWithCode provisions a branch by consuming an unused activation code.
// The code check, its consumption and the branch insert are one transaction,
// so a code cannot activate two branches.
func (s *BranchService) CreateWithCode(ctx context.Context, code string, req dto.CreateBranchRequest) (*model.Branch, error) {
	branch := &model.Branch{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	}
	err := repository.RunInTx(ctx, s.branches.DB(), func(tx *gorm.DB) error {
		ac, err := s.branches.FindCodeForUpdateTx(tx, code)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return validationErr("código de activación inexistente")
		}
		if err != nil {
			return err
		}
		if ac.Used {
			return ErrCodeUsed
		}
		if err := s.branches.SetCodeUsedTx(tx, ac.ID, true); err != nil {
			return err
		}
		count, err := s.branches.CountTx(tx)
		if err != nil {
			return err
		}
		branch.IsMain = count == 0
		return s.branches.CreateTx(tx, branch)
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("branch_id", branch.ID.String()).Msg("sucursal activada con código")
	s.hub.Publish(ctx, realtime.TopicBranches)
	return branch, nil
}

func (s *BranchService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateBranchRequest) (*model.Branch, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if len(fields) > 0 {
		if err := s.branches.UpdateFields(ctx, id, fields); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
	}
	branch, err := s.branches.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	s.hub.Publish(ctx, realtime.TopicBranches)
	return branch, nil
}

// SetMain promotes a branch; the old designation is cleared in the same
// transaction so there is never zero or two mains visible.
func (s *BranchService) SetMain(ctx context.Context, id uuid.UUID) error {
	err := repository.RunInTx(ctx, s.branches.DB(), func(tx *gorm.DB) error {
		if err := s.branches.ClearMainTx(tx); err != nil {
			return err
		}
		if err := s.branches.SetMainTx(tx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Str("branch_id", id.String()).Msg("sucursal principal cambiada")
	s.hub.Publish(ctx, realtime.TopicBranches)
	return nil
}

// Delete removes a branch. Branches with an open register session or with
// stock still assigned are protected; move the stock and close the register
// first.
func (s *BranchService) Delete(ctx context.Context, id uuid.UUID) error {
	err := repository.RunInTx(ctx, s.branches.DB(), func(tx *gorm.DB) error {
		open, err := s.branches.CountOpenSessionsTx(tx, id)
		if err != nil {
			return err
		}
		if open > 0 {
			return ErrBranchInUse
		}
		stock, err := s.branches.CountBranchStockTx(tx, id)
		if err != nil {
			return err
		}
		if stock > 0 {
			return ErrBranchInUse
		}
		return s.branches.DeleteTx(tx, id)
	})
	if err != nil {
		return err
	}

	log.Info().Str("branch_id", id.String()).Msg("sucursal eliminada")
	s.hub.Publish(ctx, realtime.TopicBranches)
	return nil
}

// GetMain resolves the main branch, falling back to the oldest branch when no
// row carries the designation (legacy data).
func (s *BranchService) GetMain(ctx context.Context) (*model.Branch, error) {
	branch, err := s.branches.FindMain(ctx)
	if err == nil {
		return branch, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	branch, err = s.branches.FindFirstCreated(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return branch, err
}

func (s *BranchService) Get(ctx context.Context, id uuid.UUID) (*model.Branch, error) {
	branch, err := s.branches.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return branch, err
}

func (s *BranchService) List(ctx context.Context) ([]model.Branch, error) {
	return s.branches.List(ctx)
}

// GenerateCode mints a new activation code for provisioning.
func (s *BranchService) GenerateCode(ctx context.Context) (*model.ActivationCode, error) {
	code := &model.ActivationCode{Code: uuid.NewString()[:8]}
	if err := s.branches.CreateCode(ctx, code); err != nil {
		return nil, err
	}
	return code, nil
}
