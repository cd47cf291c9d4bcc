package events

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/dashboard/internal/pubsub"
)

// StartLogSubscriber logs every dashboard event. It stands in for the
// authentication and settings services the forms will eventually call.
func StartLogSubscriber(ctx context.Context, sub pubsub.Subscriber, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	err := FormSubmittedEvent.Subscribe(ctx, sub, func(ctx context.Context, ev FormSubmitted, msg pubsub.Message) error {
		logger.Info("Form submitted",
			"form", ev.Form,
			"submission_id", ev.ID,
			"fields", ev.Fields,
			"request_id", msg.Metadata[MetaRequestID],
		)
		return nil
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", FormSubmittedEvent.Topic(), err)
	}

	err = ThemeChangedEvent.Subscribe(ctx, sub, func(ctx context.Context, ev ThemeChanged, msg pubsub.Message) error {
		logger.Info("Theme preference changed",
			"previous", ev.Previous,
			"theme", ev.Theme,
			"request_id", msg.Metadata[MetaRequestID],
		)
		return nil
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", ThemeChangedEvent.Topic(), err)
	}
	return nil
}
