package handler

import (
	"net/http"

	"github.com/warning2025/farmaciaposventas3/internal/apierror"
	"github.com/warning2025/farmaciaposventas3/internal/dto"
	"github.com/warning2025/farmaciaposventas3/internal/middleware"
	"github.com/warning2025/farmaciaposventas3/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SalesHandler struct{ svc *service.SaleService }

func NewSalesHandler(svc *service.SaleService) *SalesHandler { return &SalesHandler{svc: svc} }

// Create godoc
// @Summary Registra una venta con descuento de stock y asiento en caja
// @Tags ventas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateSaleRequest true "Venta"
// @Success 201 {object} dto.SaleResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/ventas [post]
func (h *SalesHandler) Create(c *gin.Context) {
	var req dto.CreateSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sale, err := h.svc.Create(c.Request.Context(), middleware.GetActor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, service.SaleToResponse(sale))
}

func (h *SalesHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	sale, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, service.SaleToResponse(sale))
}

func (h *SalesHandler) List(c *gin.Context) {
	var branchID *uuid.UUID
	if raw := c.Query("branch_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("branch_id inválido"))
			return
		}
		branchID = &id
	}
	sales, err := h.svc.List(c.Request.Context(), branchID)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, service.SaleToResponse(&s))
	}
	c.JSON(http.StatusOK, out)
}

// Delete godoc
// @Summary Anula una venta restaurando stock y ajustando caja
// @Tags ventas
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de venta"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /v1/ventas/{id} [delete]
func (h *SalesHandler) Delete(c *gin.Context) {
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

// DeleteBatch anula varias ventas, una transacción por registro. Responde 207
// cuando el resultado es parcial.
func (h *SalesHandler) DeleteBatch(c *gin.Context) {
	var req dto.DeleteSalesRequest
	if !bindAndValidate(c, &req) {
		return
	}
	res := h.svc.DeleteBatch(c.Request.Context(), req.SaleIDs)
	status := http.StatusOK
	if res.Failed > 0 && res.Succeeded > 0 {
		status = http.StatusMultiStatus
	} else if res.Failed > 0 {
		status = http.StatusConflict
	}
	c.JSON(status, res)
}

// UpdateStatus moves an online order through its workflow.
func (h *SalesHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateSaleStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sale, err := h.svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, service.SaleToResponse(sale))
}
