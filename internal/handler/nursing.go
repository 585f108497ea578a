package handler

import (
	"net/http"

	"github.com/warning2025/farmaciaposventas3/internal/apierror"
	"github.com/warning2025/farmaciaposventas3/internal/dto"
	"github.com/warning2025/farmaciaposventas3/internal/middleware"
	"github.com/warning2025/farmaciaposventas3/internal/model"
	"github.com/warning2025/farmaciaposventas3/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NursingHandler struct{ svc *service.NursingService }

func NewNursingHandler(svc *service.NursingService) *NursingHandler {
	return &NursingHandler{svc: svc}
}

func nursingToResponse(r *model.NursingRecord) dto.NursingRecordResponse {
	return service.NursingToResponse(r)
}

// Create godoc
// @Summary Registra un servicio de enfermería como ingreso de caja
// @Tags enfermeria
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateNursingRecordRequest true "Servicio"
// @Success 201 {object} dto.NursingRecordResponse
// @Router /v1/enfermeria [post]
func (h *NursingHandler) Create(c *gin.Context) {
	var req dto.CreateNursingRecordRequest
	if !bindAndValidate(c, &req) {
		return
	}
	rec, err := h.svc.Create(c.Request.Context(), middleware.GetActor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, nursingToResponse(rec))
}

func (h *NursingHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *NursingHandler) DeleteBatch(c *gin.Context) {
	var req dto.DeleteRecordsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	res := h.svc.DeleteBatch(c.Request.Context(), req.IDs)
	status := http.StatusOK
	if res.Failed > 0 && res.Succeeded > 0 {
		status = http.StatusMultiStatus
	} else if res.Failed > 0 {
		status = http.StatusConflict
	}
	c.JSON(status, res)
}

func (h *NursingHandler) List(c *gin.Context) {
	var branchID *uuid.UUID
	if raw := c.Query("branch_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("branch_id inválido"))
			return
		}
		branchID = &id
	}
	records, err := h.svc.List(c.Request.Context(), branchID)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.NursingRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, nursingToResponse(&r))
	}
	c.JSON(http.StatusOK, out)
}
