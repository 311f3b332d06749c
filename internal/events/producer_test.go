package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/protocol/metadata"
	"github.com/segmentio/kafka-go/protocol/produce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

// instantTransport answers metadata and produce requests in process with a
// single partition per topic.
type instantTransport struct {
	produced atomic.Int32
}

func (tr *instantTransport) RoundTrip(_ context.Context, _ net.Addr, req kafka.Request) (kafka.Response, error) {
	switch r := req.(type) {
	case *metadata.Request:
		topics := make([]metadata.ResponseTopic, 0, len(r.TopicNames))
		for _, name := range r.TopicNames {
			topics = append(topics, metadata.ResponseTopic{
				Name:       name,
				Partitions: []metadata.ResponsePartition{{PartitionIndex: 0, LeaderID: 1}},
			})
		}
		return &metadata.Response{
			Brokers: []metadata.ResponseBroker{{NodeID: 1, Host: "localhost", Port: 9092}},
			Topics:  topics,
		}, nil
	case *produce.Request:
		tr.produced.Add(1)
		return &produce.Response{
			Topics: []produce.ResponseTopic{{
				Topic:      r.Topics[0].Topic,
				Partitions: []produce.ResponsePartition{{Partition: r.Topics[0].Partitions[0].Partition}},
			}},
		}, nil
	default:
		return nil, fmt.Errorf("unexpected request %T", req)
	}
}

func TestNewProducer_NoBrokers(t *testing.T) {
	p, err := NewProducer(nil)
	require.ErrorIs(t, err, ErrNoBrokers)
	assert.Nil(t, p)
}

func TestNewProducer_ConfiguresWriter(t *testing.T) {
	p, err := NewProducer([]string{"kafka:9092"})
	require.NoError(t, err)

	w, ok := p.writer.(*kafka.Writer)
	require.True(t, ok)
	assert.Equal(t, "kafka:9092", w.Addr.String())
	assert.Empty(t, w.Topic)
	assert.Equal(t, batchTimeout, w.BatchTimeout)
	require.NoError(t, p.Close())
}

func TestProducer_PublishEventDoesNotWaitForBatchWindow(t *testing.T) {
	p, err := NewProducer([]string{"kafka:9092"})
	require.NoError(t, err)

	tr := &instantTransport{}
	p.writer.(*kafka.Writer).Transport = tr
	t.Cleanup(func() { _ = p.Close() })

	for i := 1; i <= 3; i++ {
		start := time.Now()
		require.NoError(t, p.PublishEvent(context.Background(), "product_events", fmt.Sprint(i), New(ProductUpdated, i, nil)))
		assert.Less(t, time.Since(start), 500*time.Millisecond)
	}
	assert.EqualValues(t, 3, tr.produced.Load())
}

func TestProducer_PublishEvent(t *testing.T) {
	fw := &fakeWriter{}
	p := &Producer{writer: fw}

	ev := New(ProductCreated, 7, map[string]any{"name": "Widget"})
	require.NoError(t, p.PublishEvent(context.Background(), "product_events", "7", ev))

	require.Len(t, fw.msgs, 1)
	msg := fw.msgs[0]
	assert.Equal(t, "product_events", msg.Topic)
	assert.Equal(t, []byte("7"), msg.Key)

	var got map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, ProductCreated, got["type"])
	assert.EqualValues(t, 7, got["id"])
	assert.NotEmpty(t, got["event_id"])
	assert.Equal(t, "Widget", got["data"].(map[string]any)["name"])

	require.NoError(t, p.Close())
	assert.True(t, fw.closed)
}

func TestProducer_PublishEvent_WriteError(t *testing.T) {
	boom := errors.New("broker down")
	p := &Producer{writer: &fakeWriter{err: boom}}

	err := p.PublishEvent(context.Background(), "cart_events", "1", New(CartDeleted, 1, nil))
	require.ErrorIs(t, err, boom)
}

func TestProducer_PublishEvent_MarshalError(t *testing.T) {
	p := &Producer{writer: &fakeWriter{}}

	err := p.PublishEvent(context.Background(), "cart_events", "1", make(chan int))
	require.Error(t, err)
}

func TestNop(t *testing.T) {
	var pub Publisher = Nop{}
	assert.NoError(t, pub.PublishEvent(context.Background(), "t", "k", nil))
}
