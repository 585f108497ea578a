package handler

import (
	"net/http"

	"github.com/warning2025/farmaciaposventas3/internal/dto"
	"github.com/warning2025/farmaciaposventas3/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogsHandler serves the lookup lists behind the product form.
type CatalogsHandler struct{ svc *service.CatalogService }

func NewCatalogsHandler(svc *service.CatalogService) *CatalogsHandler {
	return &CatalogsHandler{svc: svc}
}

func (h *CatalogsHandler) ListCategories(c *gin.Context) {
	rows, err := h.svc.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *CatalogsHandler) CreateCategory(c *gin.Context) {
	var req dto.CatalogEntryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	row, err := h.svc.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *CatalogsHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogsHandler) ListPresentations(c *gin.Context) {
	rows, err := h.svc.ListPresentations(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *CatalogsHandler) CreatePresentation(c *gin.Context) {
	var req dto.CatalogEntryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	row, err := h.svc.CreatePresentation(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *CatalogsHandler) ListConcentrations(c *gin.Context) {
	rows, err := h.svc.ListConcentrations(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *CatalogsHandler) CreateConcentration(c *gin.Context) {
	var req dto.CatalogEntryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	row, err := h.svc.CreateConcentration(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}
