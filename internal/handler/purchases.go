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

type PurchasesHandler struct{ svc *service.PurchaseService }

func NewPurchasesHandler(svc *service.PurchaseService) *PurchasesHandler {
	return &PurchasesHandler{svc: svc}
}

func supplierToResponse(s *model.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:            s.ID.String(),
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Phone:         s.Phone,
		Email:         s.Email,
		Address:       s.Address,
		RUCNit:        s.RUCNit,
	}
}

// ─── Suppliers ───────────────────────────────────────────────────────────────

func (h *PurchasesHandler) CreateSupplier(c *gin.Context) {
	var req dto.CreateSupplierRequest
	if !bindAndValidate(c, &req) {
		return
	}
	supplier, err := h.svc.CreateSupplier(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, supplierToResponse(supplier))
}

func (h *PurchasesHandler) UpdateSupplier(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateSupplierRequest
	if !bindAndValidate(c, &req) {
		return
	}
	supplier, err := h.svc.UpdateSupplier(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, supplierToResponse(supplier))
}

func (h *PurchasesHandler) DeleteSupplier(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteSupplier(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PurchasesHandler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.svc.ListSuppliers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, supplierToResponse(&s))
	}
	c.JSON(http.StatusOK, out)
}

// ─── Purchases ───────────────────────────────────────────────────────────────

// CreatePurchase godoc
// @Summary Registra una factura de compra; al contado genera el gasto enlazado
// @Tags compras
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreatePurchaseRequest true "Compra"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/compras [post]
func (h *PurchasesHandler) CreatePurchase(c *gin.Context) {
	var req dto.CreatePurchaseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	purchase, err := h.svc.CreatePurchase(c.Request.Context(), middleware.GetActor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, service.PurchaseToResponse(purchase))
}

func (h *PurchasesHandler) MarkPaid(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	purchase, err := h.svc.MarkPaid(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, service.PurchaseToResponse(purchase))
}

func (h *PurchasesHandler) DeletePurchase(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.DeletePurchase(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PurchasesHandler) ListPurchases(c *gin.Context) {
	var supplierID *uuid.UUID
	if raw := c.Query("supplier_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("supplier_id inválido"))
			return
		}
		supplierID = &id
	}
	purchases, err := h.svc.ListPurchases(c.Request.Context(), supplierID)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, service.PurchaseToResponse(&p))
	}
	c.JSON(http.StatusOK, out)
}
