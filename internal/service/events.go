package service

import (
	"context"
	"strconv"

	"github.com/Skotchmaster/inventory/internal/events"
	"github.com/Skotchmaster/inventory/internal/logging"
)

// publish sends a change event. Failures are logged and never returned: the
// database write has already happened.
func publish(ctx context.Context, pub events.Publisher, topic, eventType string, id int, data any) {
	if pub == nil {
		return
	}
	ev := events.New(eventType, id, data)
	if err := pub.PublishEvent(ctx, topic, strconv.Itoa(id), ev); err != nil {
		logging.FromContext(ctx).Error("event_publish_error", "topic", topic, "type", eventType, "id", id, "error", err)
	}
}
