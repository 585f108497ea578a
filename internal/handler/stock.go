package handler

import (
	"net/http"

	"github.com/warning2025/farmaciaposventas3/internal/apierror"
	"github.com/warning2025/farmaciaposventas3/internal/dto"
	"github.com/warning2025/farmaciaposventas3/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StockHandler struct{ svc *service.StockTransferService }

func NewStockHandler(svc *service.StockTransferService) *StockHandler {
	return &StockHandler{svc: svc}
}

// Transfer godoc
// @Summary Transfiere stock del almacén central a una sucursal de forma atómica
// @Tags stock
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.TransferStockRequest true "Transferencia"
// @Success 204
// @Failure 409 {object} apierror.APIError
// @Router /v1/stock/transferir [post]
func (h *StockHandler) Transfer(c *gin.Context) {
	var req dto.TransferStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Transfer(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// BranchStock lists the stock pools of a branch.
func (h *StockHandler) BranchStock(c *gin.Context) {
	branchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	rows, err := h.svc.BranchStock(c.Request.Context(), branchID)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.BranchStockResponse, 0, len(rows))
	for _, bs := range rows {
		resp := dto.BranchStockResponse{
			BranchID:  bs.BranchID.String(),
			ProductID: bs.ProductID.String(),
			Quantity:  bs.CurrentStock,
		}
		if bs.Product != nil {
			resp.ProductName = bs.Product.CommercialName
			resp.Barcode = bs.Product.Barcode
			resp.MinStock = bs.Product.MinStock
			resp.LowStock = bs.Product.MinStock > 0 && bs.CurrentStock <= bs.Product.MinStock
		}
		out = append(out, resp)
	}
	c.JSON(http.StatusOK, out)
}
