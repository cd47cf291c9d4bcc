package pubsub

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// ErrClosed is returned when publishing to or subscribing on a closed bus.
var ErrClosed = errors.New("pubsub: bus closed")

// metaKeyTopic transfers Message.Topic through watermill metadata.
const metaKeyTopic = "topic"

// Config tunes the in-memory channel.
type Config struct {
	// OutputChannelBuffer is the per-subscriber buffer size.
	OutputChannelBuffer int64
	// Debug enables watermill's own debug logging.
	Debug bool
	// BlockUntilHandled makes Publish return only after every subscriber
	// has handled the message.
	BlockUntilHandled bool
}

// WatermillBridge implements Publisher and Subscriber on watermill's GoChannel.
type WatermillBridge struct {
	channel *gochannel.GoChannel

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewWatermillBridge creates an in-memory bus.
func NewWatermillBridge(cfg Config) *WatermillBridge {
	if cfg.OutputChannelBuffer <= 0 {
		cfg.OutputChannelBuffer = 64
	}
	logger := watermill.NewStdLogger(cfg.Debug, false)
	return &WatermillBridge{
		channel: gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer:            cfg.OutputChannelBuffer,
			BlockPublishUntilSubscriberAck: cfg.BlockUntilHandled,
		}, logger),
	}
}

func toWatermill(msg Message) *message.Message {
	wmMsg := message.NewMessage(watermill.NewUUID(), msg.Payload)
	for k, v := range msg.Metadata {
		wmMsg.Metadata.Set(k, v)
	}
	wmMsg.Metadata.Set(metaKeyTopic, msg.Topic)
	return wmMsg
}

func fromWatermill(wmMsg *message.Message) Message {
	metadata := make(map[string]string, len(wmMsg.Metadata))
	for k, v := range wmMsg.Metadata {
		if k != metaKeyTopic {
			metadata[k] = v
		}
	}
	return Message{
		Topic:    wmMsg.Metadata.Get(metaKeyTopic),
		Payload:  wmMsg.Payload,
		Metadata: metadata,
	}
}

// Publish implements Publisher.
func (wb *WatermillBridge) Publish(ctx context.Context, msg Message) error {
	wb.mu.Lock()
	closed := wb.closed
	wb.mu.Unlock()
	if closed {
		return ErrClosed
	}
	return wb.channel.Publish(msg.Topic, toWatermill(msg))
}

// Subscribe implements Subscriber. Messages are processed one at a time per
// subscription. GoChannel redelivers nacked messages indefinitely, so a
// handler error is logged and the message is acked and dropped.
func (wb *WatermillBridge) Subscribe(ctx context.Context, topic string, handler Handler) error {
	wb.mu.Lock()
	defer wb.mu.Unlock()
	if wb.closed {
		return ErrClosed
	}

	messages, err := wb.channel.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	wb.wg.Add(1)
	go func() {
		defer wb.wg.Done()
		for wmMsg := range messages {
			if err := handler(wmMsg.Context(), fromWatermill(wmMsg)); err != nil {
				slog.Error("Failed to handle message", "topic", topic, "msg_id", wmMsg.UUID, "error", err)
			}
			wmMsg.Ack()
		}
		slog.Debug("Subscription message loop ended", "topic", topic)
	}()
	return nil
}

// Close shuts the channel down and waits for every subscription loop to
// finish.
func (wb *WatermillBridge) Close() error {
	wb.mu.Lock()
	if wb.closed {
		wb.mu.Unlock()
		return nil
	}
	wb.closed = true
	wb.mu.Unlock()

	err := wb.channel.Close()
	wb.wg.Wait()
	return err
}
