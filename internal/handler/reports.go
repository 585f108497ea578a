package handler

import (
	"net/http"

	"github.com/warning2025/farmaciaposventas3/internal/dto"
	"github.com/warning2025/farmaciaposventas3/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct{ svc *service.ReportService }

func NewReportsHandler(svc *service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

// Sales godoc
// @Summary Reporte de ventas por rango de fechas
// @Tags reportes
// @Produce json
// @Security BearerAuth
// @Param branch_id query string true "Sucursal"
// @Param from query string true "Fecha inicial YYYY-MM-DD"
// @Param to query string true "Fecha final YYYY-MM-DD"
// @Success 200 {object} dto.SalesReportResponse
// @Router /v1/reportes/ventas [get]
func (h *ReportsHandler) Sales(c *gin.Context) {
	var req dto.ReportRangeRequest
	if !bindQueryAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Sales(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) Expenses(c *gin.Context) {
	var req dto.ReportRangeRequest
	if !bindQueryAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Expenses(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) Cash(c *gin.Context) {
	var req dto.ReportRangeRequest
	if !bindQueryAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Cash(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) Nursing(c *gin.Context) {
	var req dto.ReportRangeRequest
	if !bindQueryAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Nursing(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Inventory godoc
// @Summary Snapshot valorizado del inventario
// @Tags reportes
// @Produce json
// @Security BearerAuth
// @Param branch_id query string false "Sucursal"
// @Success 200 {object} dto.InventoryReportResponse
// @Router /v1/reportes/inventario [get]
func (h *ReportsHandler) Inventory(c *gin.Context) {
	var req dto.InventoryReportRequest
	if !bindQueryAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Inventory(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) Purchases(c *gin.Context) {
	var req dto.ReportRangeRequest
	if !bindQueryAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Purchases(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
