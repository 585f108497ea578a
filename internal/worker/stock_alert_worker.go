package worker

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/warning2025/farmaciaposventas3/internal/realtime"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// StockCheckPayload names the products whose stock just changed.
type StockCheckPayload struct {
	ProductIDs []string `json:"product_ids"`
}

// handleStockCheck re-reads each product and raises a low-stock alert when the
// level crossed the configured minimum. Alerts are advisory: a warn log plus a
// realtime signal so open dashboards refresh their alert panel.
func (p *Pool) handleStockCheck(ctx context.Context, payload json.RawMessage) error {
	var req StockCheckPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return err
	}

	alerted := false
	for _, raw := range req.ProductIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		product, err := p.products.FindByID(ctx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		if product.MinStock > 0 && product.CurrentStock <= product.MinStock {
			alerted = true
			log.Warn().
				Str("product_id", product.ID.String()).
				Str("name", product.CommercialName).
				Int("current_stock", product.CurrentStock).
				Int("min_stock", product.MinStock).
				Msg("stock bajo mínimo")
		}
	}
	if alerted {
		p.hub.Publish(ctx, realtime.TopicProducts)
	}
	return nil
}
