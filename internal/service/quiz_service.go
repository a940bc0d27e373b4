package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/fridok/fridok/internal/config"
	"github.com/fridok/fridok/internal/domain"
	"github.com/fridok/fridok/internal/domain/quiz"
	"github.com/fridok/fridok/internal/events"
	"github.com/fridok/fridok/internal/platform/logger"
	"github.com/google/uuid"
)

// QuizService runs quiz sessions over a fixed question pool.
type QuizService struct {
	pool         []domain.Question
	cfg          config.QuizConfig
	eventEmitter events.EventEmitter
	logger       *slog.Logger
}

// NewQuizService creates a QuizService. The pool is copied.
// It returns an error if the emitter is nil or the pool cannot fill one game.
func NewQuizService(
	pool []domain.Question,
	cfg config.QuizConfig,
	eventEmitter events.EventEmitter,
	log *slog.Logger,
) (*QuizService, error) {
	if eventEmitter == nil {
		return nil, newServiceError("create_service", "eventEmitter cannot be nil", ErrNilDependency)
	}
	if cfg.QuestionsPerGame < 1 {
		return nil, newServiceError("create_service", "questions per game must be positive", quiz.ErrInvalidCount)
	}
	if len(pool) < cfg.QuestionsPerGame {
		return nil, newServiceError("create_service", "question pool too small", quiz.ErrInsufficientPool)
	}

	if log == nil {
		log = slog.Default()
	}

	p := make([]domain.Question, len(pool))
	for i, q := range pool {
		p[i] = q.Clone()
	}

	return &QuizService{
		pool:         p,
		cfg:          cfg,
		eventEmitter: eventEmitter,
		logger:       log.With("component", "quiz_service"),
	}, nil
}

// QuestionsPerGame reports how many questions each session draws.
func (s *QuizService) QuestionsPerGame() int {
	return s.cfg.QuestionsPerGame
}

// StartQuiz begins a new session and emits quiz.started.
func (s *QuizService) StartQuiz(ctx context.Context, opts ...quiz.Option) (*quiz.Session, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	session, err := quiz.Start(s.pool, s.cfg.QuestionsPerGame, opts...)
	if err != nil {
		log.Error("failed to start quiz",
			"error", err,
			"pool_size", len(s.pool),
			"questions_per_game", s.cfg.QuestionsPerGame)
		return nil, err
	}

	log.Info("quiz started",
		"session_id", session.ID(),
		"total", session.Total())

	s.emit(ctx, log, events.TypeQuizStarted, session.ID(), events.StartedPayload{
		Total: session.Total(),
	})

	return session, nil
}

// SubmitAnswer records the answer for the current question and emits quiz.answered.
// Protocol errors from the session are returned unchanged.
func (s *QuizService) SubmitAnswer(
	ctx context.Context,
	session *quiz.Session,
	optionIndex int,
) (quiz.AnswerResult, error) {
	if session == nil {
		return quiz.AnswerResult{}, ErrNilSession
	}
	log := logger.FromContextOrDefault(ctx, s.logger).With("session_id", session.ID())

	index := session.Index()
	result, err := session.SubmitAnswer(optionIndex)
	if err != nil {
		logProtocolError(log, "submit_answer", err,
			"state", session.State(),
			"option_index", optionIndex)
		return quiz.AnswerResult{}, err
	}

	log.Debug("answer submitted",
		"index", index,
		"selected", result.Selected,
		"correct", result.Correct,
		"score", result.Score)

	s.emit(ctx, log, events.TypeQuizAnswered, session.ID(), events.AnsweredPayload{
		Index:        index,
		Selected:     result.Selected,
		CorrectIndex: result.CorrectIndex,
		Correct:      result.Correct,
		Score:        result.Score,
	})

	return result, nil
}

// Advance moves past the answered question. When the session completes it
// emits quiz.completed with the final rating.
func (s *QuizService) Advance(ctx context.Context, session *quiz.Session) (quiz.State, error) {
	if session == nil {
		return quiz.StateNotStarted, ErrNilSession
	}
	log := logger.FromContextOrDefault(ctx, s.logger).With("session_id", session.ID())

	state, err := session.Advance()
	if err != nil {
		logProtocolError(log, "advance", err, "state", session.State())
		return session.State(), err
	}

	if state != quiz.StateComplete {
		log.Debug("advanced to next question", "index", session.Index())
		return state, nil
	}

	result, err := session.Result()
	if err != nil {
		// Complete sessions always have a result.
		return state, err
	}

	log.Info("quiz completed",
		"score", result.Score,
		"total", result.Total,
		"rating", result.Rating())

	s.emit(ctx, log, events.TypeQuizCompleted, session.ID(), events.CompletedPayload{
		Score:  result.Score,
		Total:  result.Total,
		Rating: string(result.Rating()),
	})

	return state, nil
}

// emit publishes an event. Handler failures are logged, never returned:
// feedback must not break the quiz.
func (s *QuizService) emit(
	ctx context.Context,
	log *slog.Logger,
	eventType string,
	sessionID uuid.UUID,
	payload interface{},
) {
	event, err := events.NewEvent(eventType, sessionID, payload)
	if err != nil {
		log.Error("failed to build event", "error", err, "event_type", eventType)
		return
	}

	if err := s.eventEmitter.EmitEvent(ctx, event); err != nil {
		log.Error("failed to emit event",
			"error", err,
			"event_id", event.ID,
			"event_type", eventType)
	}
}

func logProtocolError(log *slog.Logger, operation string, err error, attrs ...any) {
	args := append([]any{"error", err, "operation", operation}, attrs...)
	if errors.Is(err, quiz.ErrInvalidState) || errors.Is(err, quiz.ErrInvalidOption) {
		log.Warn("quiz operation rejected", args...)
		return
	}
	log.Error("quiz operation failed", args...)
}
