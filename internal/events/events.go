package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event types emitted by the quiz service.
const (
	TypeQuizStarted   = "quiz.started"
	TypeQuizAnswered  = "quiz.answered"
	TypeQuizCompleted = "quiz.completed"
)

// Event is something that happened in a quiz session.
type Event struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is one of the Type* constants
	Type string `json:"type"`

	// SessionID identifies the quiz session the event belongs to
	SessionID uuid.UUID `json:"session_id"`

	// Payload contains the type-specific data serialized as JSON
	Payload json.RawMessage `json:"payload"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// StartedPayload accompanies TypeQuizStarted.
type StartedPayload struct {
	Total int `json:"total"`
}

// AnsweredPayload accompanies TypeQuizAnswered.
type AnsweredPayload struct {
	Index        int  `json:"index"`
	Selected     int  `json:"selected"`
	CorrectIndex int  `json:"correct_index"`
	Correct      bool `json:"correct"`
	Score        int  `json:"score"`
}

// CompletedPayload accompanies TypeQuizCompleted.
type CompletedPayload struct {
	Score  int    `json:"score"`
	Total  int    `json:"total"`
	Rating string `json:"rating"`
}

// NewEvent creates an Event of the given type for a session, serializing payload to JSON.
func NewEvent(eventType string, sessionID uuid.UUID, payload interface{}) (*Event, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}

	return &Event{
		ID:        uuid.New(),
		Type:      eventType,
		SessionID: sessionID,
		Payload:   payloadBytes,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *Event) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *Event) error
}

// HandlerFunc adapts an ordinary function to EventHandler.
type HandlerFunc func(ctx context.Context, event *Event) error

// HandleEvent calls f(ctx, event).
func (f HandlerFunc) HandleEvent(ctx context.Context, event *Event) error {
	return f(ctx, event)
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *Event) error
}
