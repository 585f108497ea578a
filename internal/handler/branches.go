package handler

import (
	"net/http"

	"github.com/warning2025/farmaciaposventas3/internal/dto"
	"github.com/warning2025/farmaciaposventas3/internal/model"
	"github.com/warning2025/farmaciaposventas3/internal/service"

	"github.com/gin-gonic/gin"
)

type BranchesHandler struct{ svc *service.BranchService }

func NewBranchesHandler(svc *service.BranchService) *BranchesHandler {
	return &BranchesHandler{svc: svc}
}

func branchToResponse(b *model.Branch) dto.BranchResponse {
	return dto.BranchResponse{
		ID:      b.ID.String(),
		Name:    b.Name,
		Address: b.Address,
		Phone:   b.Phone,
		IsMain:  b.IsMain,
	}
}

// Create godoc
// @Summary Crea una sucursal; la primera queda como principal
// @Tags sucursales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateBranchRequest true "Sucursal"
// @Success 201 {object} dto.BranchResponse
// @Router /v1/sucursales [post]
func (h *BranchesHandler) Create(c *gin.Context) {
	var req dto.CreateBranchRequest
	if !bindAndValidate(c, &req) {
		return
	}
	branch, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, branchToResponse(branch))
}

// Activate provisions a branch by consuming an activation code.
func (h *BranchesHandler) Activate(c *gin.Context) {
	var req struct {
		dto.CreateBranchRequest
		Code string `json:"code" validate:"required,min=6"`
	}
	if !bindAndValidate(c, &req) {
		return
	}
	branch, err := h.svc.CreateWithCode(c.Request.Context(), req.Code, req.CreateBranchRequest)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, branchToResponse(branch))
}

func (h *BranchesHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateBranchRequest
	if !bindAndValidate(c, &req) {
		return
	}
	branch, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, branchToResponse(branch))
}

// SetMain promotes a branch to main, demoting the previous one.
func (h *BranchesHandler) SetMain(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.SetMain(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BranchesHandler) Delete(c *gin.Context) {
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

func (h *BranchesHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	branch, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, branchToResponse(branch))
}

// GetMain resolves the main branch, falling back to the oldest one.
func (h *BranchesHandler) GetMain(c *gin.Context) {
	branch, err := h.svc.GetMain(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, branchToResponse(branch))
}

func (h *BranchesHandler) List(c *gin.Context) {
	branches, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.BranchResponse, 0, len(branches))
	for _, b := range branches {
		out = append(out, branchToResponse(&b))
	}
	c.JSON(http.StatusOK, out)
}

// GenerateCode mints an activation code for provisioning a new branch.
func (h *BranchesHandler) GenerateCode(c *gin.Context) {
	code, err := h.svc.GenerateCode(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ActivationCodeResponse{Code: code.Code, Used: code.Used})
}
