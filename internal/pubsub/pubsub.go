// Package pubsub is the in-process message bus the dashboard uses to hand
// off form submissions and preference changes to background subscribers.
package pubsub

import (
	"context"
)

// Message is the structure passed between components on the bus.
type Message struct {
	// Topic identifies the channel the message belongs to (e.g., "forms.submitted").
	Topic string
	// Payload contains the encoded event.
	Payload []byte
	// Metadata carries request context such as the request id.
	Metadata map[string]string
}

// Handler processes a received message.
type Handler func(ctx context.Context, msg Message) error

// Publisher sends messages to the bus.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber receives messages from the bus.
type Subscriber interface {
	// Subscribe starts delivering messages for topic to handler in the
	// background. Delivery stops when ctx is canceled or the bus is closed.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
