package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
)

// Event binds a topic name to the Go type carried on it, so publishers and
// subscribers cannot disagree on the payload shape.
type Event[T any] struct {
	topic string
}

// NewEvent declares a typed topic.
func NewEvent[T any](topic string) Event[T] {
	return Event[T]{topic: topic}
}

// Topic returns the topic name.
func (e Event[T]) Topic() string {
	return e.topic
}

// Publish encodes payload as JSON and sends it on the event's topic.
func (e Event[T]) Publish(ctx context.Context, pub Publisher, payload T, metadata map[string]string) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", e.topic, err)
	}
	return pub.Publish(ctx, Message{Topic: e.topic, Payload: data, Metadata: metadata})
}

// Subscribe decodes every message on the event's topic before calling fn.
func (e Event[T]) Subscribe(ctx context.Context, sub Subscriber, fn func(ctx context.Context, payload T, msg Message) error) error {
	return sub.Subscribe(ctx, e.topic, func(ctx context.Context, msg Message) error {
		var payload T
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("decode %s payload: %w", e.topic, err)
		}
		return fn(ctx, payload, msg)
	})
}
