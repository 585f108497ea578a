package handler

import (
	"io"
	"net/http"

	"github.com/warning2025/farmaciaposventas3/internal/apierror"
	"github.com/warning2025/farmaciaposventas3/internal/realtime"

	"github.com/gin-gonic/gin"
)

// EventsHandler streams change notifications over Server-Sent Events. Clients
// subscribe to one topic (optionally branch-scoped via ?branch_id=) and
// re-query the REST API whenever a signal arrives.
type EventsHandler struct{ hub *realtime.Hub }

func NewEventsHandler(hub *realtime.Hub) *EventsHandler { return &EventsHandler{hub: hub} }

var streamTopics = map[string]bool{
	realtime.TopicCashRegister: true,
	realtime.TopicSales:        true,
	realtime.TopicExpenses:     true,
	realtime.TopicNursing:      true,
	realtime.TopicPurchases:    true,
	realtime.TopicProducts:     true,
	realtime.TopicBranches:     true,
}

// Stream godoc
// @Summary Suscripción SSE a cambios de un tema
// @Tags eventos
// @Produce text/event-stream
// @Security BearerAuth
// @Param topic path string true "Tema (sales, cash_register, ...)"
// @Param branch_id query string false "Sucursal"
// @Router /v1/eventos/{topic} [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	topic := c.Param("topic")
	if !streamTopics[topic] {
		c.JSON(http.StatusNotFound, apierror.New("tema desconocido"))
		return
	}
	if branchID := c.Query("branch_id"); branchID != "" {
		topic = topic + ":" + branchID
	}

	ch, cancel := h.hub.Subscribe(topic)
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Writer.Flush()

	// First event fires immediately so the client renders current state
	// without waiting for a change.
	c.SSEvent("change", topic)
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case <-ch:
			c.SSEvent("change", topic)
			return true
		}
	})
}
