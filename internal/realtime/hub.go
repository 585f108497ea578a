package realtime

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Topic names. Publishers append ":" + branchID for branch-scoped channels.
const (
	TopicCashRegister = "cash_register"
	TopicSales        = "sales"
	TopicExpenses     = "expenses"
	TopicNursing      = "nursing"
	TopicPurchases    = "purchases"
	TopicProducts     = "products"
	TopicBranches     = "branches"
)

// Hub fans change notifications out to in-process subscribers and, when a
// Redis client is configured, across instances via pub/sub. Subscribers get a
// bare "something changed" signal and re-query; payloads never travel through
// the hub, so a missed message costs one refresh at most.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[uuid.UUID]chan struct{}
	rdb  *redis.Client
}

// NewHub creates a hub. rdb may be nil for single-instance deployments and
// tests; the hub then works purely in process.
func NewHub(rdb *redis.Client) *Hub {
	return &Hub{subs: make(map[string]map[uuid.UUID]chan struct{}), rdb: rdb}
}

// Run bridges Redis pub/sub into the local hub until ctx is done. No-op
// without a Redis client.
func (h *Hub) Run(ctx context.Context) {
	if h.rdb == nil {
		return
	}
	sub := h.rdb.PSubscribe(ctx, "realtime:*")
	defer sub.Close()
	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			h.notifyLocal(msg.Payload)
		}
	}
}

// Publish signals every subscriber of topic. The local fanout happens first
// so the publishing instance sees its own writes even if Redis is down.
func (h *Hub) Publish(ctx context.Context, topic string) {
	h.notifyLocal(topic)
	if h.rdb == nil {
		return
	}
	if err := h.rdb.Publish(ctx, "realtime:"+topic, topic).Err(); err != nil {
		log.Warn().Err(err).Str("topic", topic).Msg("realtime: fallo al publicar en redis")
	}
}

// Subscribe registers a listener on topic and returns its channel plus a
// cancel func. The channel has capacity 1 and signals are coalesced: a slow
// consumer sees one pending signal, not a backlog.
func (h *Hub) Subscribe(topic string) (<-chan struct{}, func()) {
	id := uuid.New()
	ch := make(chan struct{}, 1)

	h.mu.Lock()
	if h.subs[topic] == nil {
		h.subs[topic] = make(map[uuid.UUID]chan struct{})
	}
	h.subs[topic][id] = ch
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if m := h.subs[topic]; m != nil {
			delete(m, id)
			if len(m) == 0 {
				delete(h.subs, topic)
			}
		}
	}
	return ch, cancel
}

func (h *Hub) notifyLocal(topic string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs[topic] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
