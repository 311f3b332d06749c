package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/inventory/internal/db"
	"github.com/Skotchmaster/inventory/internal/events"
	"github.com/Skotchmaster/inventory/internal/repo"
)

type published struct {
	Topic string
	Key   string
	Event events.Event
}

type recordingPublisher struct {
	mu   sync.Mutex
	sent []published
	err  error
}

func (p *recordingPublisher) PublishEvent(_ context.Context, topic, key string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, published{Topic: topic, Key: key, Event: event.(events.Event)})
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.sent))
	for _, s := range p.sent {
		out = append(out, s.Event.Type)
	}
	return out
}

type testEnv struct {
	Products *ProductService
	Cart     *CartService
	Pub      *recordingPublisher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb, err := db.Open(context.Background(), "sqlite::memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() { _ = db.Close(gdb) })

	r := &repo.GormRepo{DB: gdb}
	pub := &recordingPublisher{}

	return &testEnv{
		Products: &ProductService{Repo: r, Publisher: pub, Topic: "product_events"},
		Cart:     &CartService{Repo: r, Publisher: pub, Topic: "cart_events"},
		Pub:      pub,
	}
}

var errBrokerDown = errors.New("broker down")
