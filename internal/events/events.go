// Package events declares the dashboard's bus topics and the stub
// collaborators that publish to and log from them.
package events

import (
	"time"

	"github.com/nfrund/dashboard/internal/forms"
	"github.com/nfrund/dashboard/internal/pubsub"
)

// FormSubmitted is published for every form that passed validation.
type FormSubmitted struct {
	ID          string       `json:"id"`
	Form        string       `json:"form"`
	Fields      forms.Values `json:"fields"`
	SubmittedAt time.Time    `json:"submitted_at"`
}

// ThemeChanged is published after a theme preference was persisted.
type ThemeChanged struct {
	Previous string `json:"previous"`
	Theme    string `json:"theme"`
}

var (
	// FormSubmittedEvent carries FormSubmitted payloads.
	FormSubmittedEvent = pubsub.NewEvent[FormSubmitted]("forms.submitted")
	// ThemeChangedEvent carries ThemeChanged payloads.
	ThemeChangedEvent = pubsub.NewEvent[ThemeChanged]("preferences.theme_changed")
)

// MetaRequestID is the metadata key holding the originating request id.
const MetaRequestID = "request_id"
