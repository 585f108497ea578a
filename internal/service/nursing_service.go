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

// NursingService bills nursing services (curaciones, inyectables, sueros) as
// register income, the mirror image of ExpenseService.
type NursingService struct {
	records   repository.NursingRepository
	registers *CashRegisterService
	hub       *realtime.Hub
}

func NewNursingService(records repository.NursingRepository, registers *CashRegisterService, hub *realtime.Hub) *NursingService {
	return &NursingService{records: records, registers: registers, hub: hub}
}

func (s *NursingService) Create(ctx context.Context, actor Actor, req dto.CreateNursingRecordRequest) (*model.NursingRecord, error) {
	branchID, err := uuid.Parse(req.BranchID)
	if err != nil {
		return nil, validationErr("branch_id inválido")
	}
	if !actor.CanAccess(branchID) {
		return nil, branchForbiddenErr()
	}
	if !req.Cost.IsPositive() {
		return nil, validationErr("el costo debe ser mayor a cero")
	}

	rec := &model.NursingRecord{
		ID:          uuid.New(),
		BranchID:    branchID,
		ServiceType: req.ServiceType,
		PatientName: req.PatientName,
		Notes:       req.Notes,
		Cost:        req.Cost,
		UserID:      actor.ID,
		UserName:    actor.Name,
		Date:        time.Now(),
	}

	err = repository.RunInTx(ctx, s.records.DB(), func(tx *gorm.DB) error {
		if err := s.records.CreateTx(tx, rec); err != nil {
			return err
		}
		concept := fmt.Sprintf("Servicio de enfermería: %s - %s", req.ServiceType, req.PatientName)
		_, err := s.registers.RecordEntryTx(tx, branchID, "income", req.Cost, concept, actor)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("record_id", rec.ID.String()).Str("service", rec.ServiceType).Msg("servicio de enfermería registrado")
	s.hub.Publish(ctx, realtime.TopicNursing+":"+branchID.String())
	s.registers.PublishBranch(ctx, branchID)
	return rec, nil
}

func (s *NursingService) Delete(ctx context.Context, recordID uuid.UUID) error {
	var branchID uuid.UUID
	err := repository.RunInTx(ctx, s.records.DB(), func(tx *gorm.DB) error {
		rec, err := s.records.FindByIDForUpdateTx(tx, recordID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		branchID = rec.BranchID
		if _, err := s.registers.AdjustTotalsTx(tx, rec.BranchID, "income", rec.Cost.Neg()); err != nil {
			return err
		}
		return s.records.DeleteTx(tx, recordID)
	})
	if err != nil {
		return err
	}

	log.Info().Str("record_id", recordID.String()).Msg("servicio de enfermería eliminado")
	s.hub.Publish(ctx, realtime.TopicNursing+":"+branchID.String())
	s.registers.PublishBranch(ctx, branchID)
	return nil
}

func (s *NursingService) DeleteBatch(ctx context.Context, ids []string) dto.BatchResult {
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

func (s *NursingService) List(ctx context.Context, branchID *uuid.UUID) ([]model.NursingRecord, error) {
	return s.records.List(ctx, branchID)
}
