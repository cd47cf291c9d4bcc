package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/dashboard/internal/forms"
	"github.com/nfrund/dashboard/internal/pubsub"
)

// FormSubmitter is the submission stub wired behind the authentication
// forms. It performs no authentication; it only publishes the redacted
// submission so it shows up in the logs.
type FormSubmitter struct {
	pub pubsub.Publisher
	now func() time.Time
}

// NewFormSubmitter creates a submitter publishing on pub.
func NewFormSubmitter(pub pubsub.Publisher) *FormSubmitter {
	return &FormSubmitter{pub: pub, now: time.Now}
}

type requestIDKey struct{}

// WithRequestID annotates ctx so published events can be correlated with
// the request that caused them.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func metadataFrom(ctx context.Context) map[string]string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return map[string]string{MetaRequestID: id}
	}
	return nil
}

// Submit implements forms.Submitter.
func (s *FormSubmitter) Submit(ctx context.Context, kind forms.Kind, values forms.Values) error {
	ev := FormSubmitted{
		ID:          uuid.NewString(),
		Form:        kind.String(),
		Fields:      forms.Redact(values),
		SubmittedAt: s.now().UTC(),
	}
	return FormSubmittedEvent.Publish(ctx, s.pub, ev, metadataFrom(ctx))
}

// PublishThemeChanged announces a persisted theme change.
func PublishThemeChanged(ctx context.Context, pub pubsub.Publisher, previous, next string) error {
	return ThemeChangedEvent.Publish(ctx, pub, ThemeChanged{Previous: previous, Theme: next}, metadataFrom(ctx))
}
