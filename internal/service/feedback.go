package service

import (
	"context"
	"log/slog"

	"github.com/fridok/fridok/internal/events"
	"github.com/fridok/fridok/internal/settings"
)

// HapticKind is the kind of feedback pulse to play.
type HapticKind string

// Haptic kinds
const (
	HapticImpact  HapticKind = "impact"
	HapticSuccess HapticKind = "success"
	HapticError   HapticKind = "error"
)

// Haptics plays feedback pulses on whatever device the app runs on.
type Haptics interface {
	Trigger(ctx context.Context, kind HapticKind) error
}

// Verify interface compliance at compile time
var _ events.EventHandler = (*FeedbackHandler)(nil)

// FeedbackHandler turns quiz events into haptic feedback, honouring the
// user's HapticFeedback preference at the moment of the event: an impact when
// a quiz starts, success or error for each answer.
type FeedbackHandler struct {
	store   settings.Store
	haptics Haptics
	logger  *slog.Logger
}

// NewFeedbackHandler creates a FeedbackHandler.
func NewFeedbackHandler(store settings.Store, haptics Haptics, logger *slog.Logger) (*FeedbackHandler, error) {
	if store == nil {
		return nil, newServiceError("create_feedback_handler", "settings store cannot be nil", ErrNilDependency)
	}
	if haptics == nil {
		return nil, newServiceError("create_feedback_handler", "haptics cannot be nil", ErrNilDependency)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &FeedbackHandler{
		store:   store,
		haptics: haptics,
		logger:  logger.With("component", "feedback_handler"),
	}, nil
}

// HandleEvent implements events.EventHandler. Events without feedback, such
// as quiz.completed, are ignored.
func (h *FeedbackHandler) HandleEvent(ctx context.Context, event *events.Event) error {
	var kind HapticKind
	switch event.Type {
	case events.TypeQuizStarted:
		kind = HapticImpact
	case events.TypeQuizAnswered:
		var payload events.AnsweredPayload
		if err := event.UnmarshalPayload(&payload); err != nil {
			return newServiceError("handle_event", "invalid answered payload", err)
		}
		kind = HapticError
		if payload.Correct {
			kind = HapticSuccess
		}
	default:
		return nil
	}

	prefs, err := h.store.Load(ctx)
	if err != nil {
		return newServiceError("load_settings", "could not read haptic preference", err)
	}
	if !prefs.HapticFeedback {
		h.logger.Debug("haptic feedback disabled", "event_id", event.ID, "event_type", event.Type)
		return nil
	}

	if err := h.haptics.Trigger(ctx, kind); err != nil {
		return newServiceError("trigger_haptic", string(kind), err)
	}
	return nil
}
