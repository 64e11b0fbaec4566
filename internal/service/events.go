package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/repairhub/internal/events"
)

func fillEventDefaults(event *events.Event) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
}
