package handler

import (
	"net/http"
	"strconv"

	"github.com/warning2025/farmaciaposventas3/internal/apierror"
	"github.com/warning2025/farmaciaposventas3/internal/dto"
	"github.com/warning2025/farmaciaposventas3/internal/middleware"
	"github.com/warning2025/farmaciaposventas3/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CashRegisterHandler struct{ svc *service.CashRegisterService }

func NewCashRegisterHandler(svc *service.CashRegisterService) *CashRegisterHandler {
	return &CashRegisterHandler{svc: svc}
}

// Open godoc
// @Summary Abre una sesión de caja para una sucursal
// @Tags caja
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.OpenRegisterRequest true "Datos de apertura"
// @Success 201 {object} dto.SummaryResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/caja/abrir [post]
func (h *CashRegisterHandler) Open(c *gin.Context) {
	var req dto.OpenRegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	summary, err := h.svc.Open(c.Request.Context(), middleware.GetActor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, service.SummaryToResponse(summary))
}

// Close godoc
// @Summary Cierra la sesión de caja con el conteo de efectivo
// @Tags caja
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CloseRegisterRequest true "Datos de cierre"
// @Success 200 {object} dto.SummaryResponse
// @Failure 403 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /v1/caja/cerrar [post]
func (h *CashRegisterHandler) Close(c *gin.Context) {
	var req dto.CloseRegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	summary, err := h.svc.Close(c.Request.Context(), middleware.GetActor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, service.SummaryToResponse(summary))
}

// Current returns the open session of a branch with its entries since opening.
func (h *CashRegisterHandler) Current(c *gin.Context) {
	branchID, err := uuid.Parse(c.Query("branch_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("branch_id inválido"))
		return
	}
	summary, entries, err := h.svc.Current(c.Request.Context(), branchID)
	if err != nil {
		respondError(c, err)
		return
	}
	entryResponses := make([]dto.EntryResponse, 0, len(entries))
	for _, e := range entries {
		entryResponses = append(entryResponses, service.EntryToResponse(&e))
	}
	c.JSON(http.StatusOK, gin.H{
		"summary": service.SummaryToResponse(summary),
		"entries": entryResponses,
	})
}

// History returns paginated register sessions, newest first.
func (h *CashRegisterHandler) History(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	summaries, total, err := h.svc.History(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.SummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, service.SummaryToResponse(&s))
	}
	c.JSON(http.StatusOK, gin.H{"data": out, "total": total, "page": page, "limit": limit})
}
