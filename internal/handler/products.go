package handler

import (
	"net/http"

	"github.com/warning2025/farmaciaposventas3/internal/apierror"
	"github.com/warning2025/farmaciaposventas3/internal/dto"
	"github.com/warning2025/farmaciaposventas3/internal/model"
	"github.com/warning2025/farmaciaposventas3/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductsHandler struct{ svc *service.ProductService }

func NewProductsHandler(svc *service.ProductService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

func productToResponse(p *model.Product) dto.ProductResponse {
	return service.ProductToResponse(p)
}

// Create godoc
// @Summary Crea un producto del catálogo
// @Tags productos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateProductRequest true "Producto"
// @Success 201 {object} dto.ProductResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/productos [post]
func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, productToResponse(p))
}

func (h *ProductsHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, productToResponse(p))
}

func (h *ProductsHandler) Delete(c *gin.Context) {
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

func (h *ProductsHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, productToResponse(p))
}

// GetByBarcode is the scanner lookup on the POS screen.
func (h *ProductsHandler) GetByBarcode(c *gin.Context) {
	barcode := c.Param("barcode")
	if barcode == "" {
		c.JSON(http.StatusBadRequest, apierror.New("código de barras vacío"))
		return
	}
	p, err := h.svc.GetByBarcode(c.Request.Context(), barcode)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, productToResponse(p))
}

func (h *ProductsHandler) List(c *gin.Context) {
	var branchID *uuid.UUID
	if raw := c.Query("branch_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("branch_id inválido"))
			return
		}
		branchID = &id
	}
	products, err := h.svc.List(c.Request.Context(), branchID)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, productToResponse(&p))
	}
	c.JSON(http.StatusOK, out)
}

func (h *ProductsHandler) ListLowStock(c *gin.Context) {
	products, err := h.svc.ListLowStock(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, productToResponse(&p))
	}
	c.JSON(http.StatusOK, out)
}

// AssignOrphans claims every unassigned product for the main branch.
func (h *ProductsHandler) AssignOrphans(c *gin.Context) {
	count, err := h.svc.AssignOrphansToMainBranch(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assigned": count})
}
