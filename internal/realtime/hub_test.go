package realtime

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signalled(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func TestPublishReachesSubscriber(t *testing.T) {
	hub := NewHub(nil)
	ch, cancel := hub.Subscribe(TopicSales)
	defer cancel()

	hub.Publish(context.Background(), TopicSales)
	assert.True(t, signalled(ch))
}

func TestPublishOtherTopicNotDelivered(t *testing.T) {
	hub := NewHub(nil)
	ch, cancel := hub.Subscribe(TopicSales)
	defer cancel()

	hub.Publish(context.Background(), TopicExpenses)
	assert.False(t, signalled(ch))
}

func TestBranchScopedTopicsAreIndependent(t *testing.T) {
	hub := NewHub(nil)
	chA, cancelA := hub.Subscribe(TopicCashRegister + ":branch-a")
	defer cancelA()
	chB, cancelB := hub.Subscribe(TopicCashRegister + ":branch-b")
	defer cancelB()

	hub.Publish(context.Background(), TopicCashRegister+":branch-a")
	assert.True(t, signalled(chA))
	assert.False(t, signalled(chB))
}

func TestSignalsCoalesce(t *testing.T) {
	hub := NewHub(nil)
	ch, cancel := hub.Subscribe(TopicProducts)
	defer cancel()

	for i := 0; i < 5; i++ {
		hub.Publish(context.Background(), TopicProducts)
	}

	// a slow consumer sees exactly one pending signal
	assert.True(t, signalled(ch))
	assert.False(t, signalled(ch))
}

func TestCancelStopsDelivery(t *testing.T) {
	hub := NewHub(nil)
	ch, cancel := hub.Subscribe(TopicBranches)
	cancel()

	hub.Publish(context.Background(), TopicBranches)
	assert.False(t, signalled(ch))
}

func TestCancelIsIdempotent(t *testing.T) {
	hub := NewHub(nil)
	_, cancel := hub.Subscribe(TopicBranches)
	cancel()
	assert.NotPanics(t, cancel)
}

func TestMultipleSubscribersAllSignalled(t *testing.T) {
	hub := NewHub(nil)
	var chans []<-chan struct{}
	for i := 0; i < 3; i++ {
		ch, cancel := hub.Subscribe(TopicNursing)
		defer cancel()
		chans = append(chans, ch)
	}

	hub.Publish(context.Background(), TopicNursing)
	for _, ch := range chans {
		assert.True(t, signalled(ch))
	}
}

func TestConcurrentPublishAndSubscribe(t *testing.T) {
	hub := NewHub(nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				hub.Publish(ctx, TopicSales)
			}
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, cancel := hub.Subscribe(TopicSales)
				cancel()
			}
		}()
	}

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("deadlock in hub under concurrent use")
	}

	ch, cancel := hub.Subscribe(TopicSales)
	defer cancel()
	hub.Publish(ctx, TopicSales)
	require.True(t, signalled(ch))
}
