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

type ExpensesHandler struct{ svc *service.ExpenseService }

func NewExpensesHandler(svc *service.ExpenseService) *ExpensesHandler {
	return &ExpensesHandler{svc: svc}
}

// Create godoc
// @Summary Registra un gasto con su asiento en caja
// @Tags gastos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.AddExpenseRequest true "Gasto"
// @Success 201 {object} dto.ExpenseResponse
// @Router /v1/gastos [post]
func (h *ExpensesHandler) Create(c *gin.Context) {
	var req dto.AddExpenseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	expense, err := h.svc.Create(c.Request.Context(), middleware.GetActor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, service.ExpenseToResponse(expense))
}

func (h *ExpensesHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateExpenseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	expense, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, service.ExpenseToResponse(expense))
}

func (h *ExpensesHandler) Delete(c *gin.Context) {
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

func (h *ExpensesHandler) DeleteBatch(c *gin.Context) {
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

func (h *ExpensesHandler) List(c *gin.Context) {
	var branchID *uuid.UUID
	if raw := c.Query("branch_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("branch_id inválido"))
			return
		}
		branchID = &id
	}
	expenses, err := h.svc.List(c.Request.Context(), branchID)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, service.ExpenseToResponse(&e))
	}
	c.JSON(http.StatusOK, out)
}
