package quiz

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/fridok/fridok/internal/domain"
	"github.com/google/uuid"
)

// Operation names reported in StateError.
const (
	opSubmitAnswer    = "submit_answer"
	opAdvance         = "advance"
	opCurrentQuestion = "current_question"
	opResult          = "result"
)

// AnswerResult is the feedback for one submitted answer.
type AnswerResult struct {
	Correct      bool   `json:"correct"`
	Selected     int    `json:"selected"`
	CorrectIndex int    `json:"correct_index"`
	Explanation  string `json:"explanation"`
	Score        int    `json:"score"`
}

// Option configures Start.
type Option func(*startOptions)

type startOptions struct {
	rng *rand.Rand
}

// WithRand makes Start draw from r instead of a fresh per-session source.
func WithRand(r *rand.Rand) Option {
	return func(o *startOptions) {
		o.rng = r
	}
}

// Session is one play-through of the quiz. The zero value is a session in
// StateNotStarted.
type Session struct {
	id          uuid.UUID
	questions   []domain.Question
	index       int
	score       int
	selected    int
	hasSelected bool
	state       State
}

// Start selects count distinct questions uniformly at random from pool, in
// random order, and returns a session in StateInProgress at the first question.
//
// Returns an error wrapping ErrInsufficientPool if the pool holds fewer than
// count questions, or ErrInvalidCount if count is not positive. The pool is
// copied; later changes to it do not affect the session.
func Start(pool []domain.Question, count int, opts ...Option) (*Session, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	if len(pool) < count {
		return nil, fmt.Errorf("%w: requested %d, pool has %d", ErrInsufficientPool, count, len(pool))
	}

	o := startOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = newSessionRand()
	}

	// The first count entries of a uniform permutation are a uniform
	// ordered sample without replacement.
	perm := o.rng.Perm(len(pool))
	selected := make([]domain.Question, count)
	for i := 0; i < count; i++ {
		selected[i] = pool[perm[i]].Clone()
	}

	return &Session{
		id:        uuid.New(),
		questions: selected,
		state:     StateInProgress,
	}, nil
}

// newSessionRand returns a random source owned by a single session, seeded
// from a random UUID.
func newSessionRand() *rand.Rand {
	seed := uuid.New()
	return rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(seed[:8]),
		binary.LittleEndian.Uint64(seed[8:]),
	))
}

// SubmitAnswer records optionIndex as the answer to the current question.
// A correct answer adds exactly one point. The session moves to
// StateAwaitingAdvance.
//
// Returns an error wrapping ErrInvalidState unless the session is in
// StateInProgress, and ErrInvalidOption if optionIndex is not a valid option.
// A rejected call changes nothing.
func (s *Session) SubmitAnswer(optionIndex int) (AnswerResult, error) {
	if s.State() != StateInProgress {
		return AnswerResult{}, newStateError(opSubmitAnswer, s.State())
	}

	q := s.questions[s.index]
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return AnswerResult{}, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidOption, optionIndex, len(q.Options))
	}

	correct := q.IsCorrect(optionIndex)
	if correct {
		s.score++
	}
	s.selected = optionIndex
	s.hasSelected = true
	s.state = StateAwaitingAdvance

	return AnswerResult{
		Correct:      correct,
		Selected:     optionIndex,
		CorrectIndex: q.CorrectIndex,
		Explanation:  q.Explanation,
		Score:        s.score,
	}, nil
}

// Advance moves past an answered question: to StateComplete after the last
// question, otherwise to the next question in StateInProgress with the
// selection cleared.
//
// Returns an error wrapping ErrInvalidState unless the session is in
// StateAwaitingAdvance.
func (s *Session) Advance() (State, error) {
	if s.State() != StateAwaitingAdvance {
		return s.State(), newStateError(opAdvance, s.State())
	}

	s.selected = 0
	s.hasSelected = false

	if s.index == len(s.questions)-1 {
		s.state = StateComplete
		return s.state, nil
	}

	s.index++
	s.state = StateInProgress
	return s.state, nil
}

// CurrentQuestion returns the question at the current index.
// Returns an error wrapping ErrInvalidState when the session has not started
// or is complete.
func (s *Session) CurrentQuestion() (domain.Question, error) {
	switch s.State() {
	case StateInProgress, StateAwaitingAdvance:
		return s.questions[s.index].Clone(), nil
	default:
		return domain.Question{}, newStateError(opCurrentQuestion, s.State())
	}
}

// Result returns the final score. Only permitted in StateComplete.
func (s *Session) Result() (Result, error) {
	if s.State() != StateComplete {
		return Result{}, newStateError(opResult, s.State())
	}
	return Result{Score: s.score, Total: len(s.questions)}, nil
}

// Reset returns the session to StateNotStarted, dropping its questions and
// score. It is permitted in every state.
func (s *Session) Reset() {
	*s = Session{}
}

// ID returns the session identifier, or uuid.Nil for a session that has not started.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	if s.state == "" {
		return StateNotStarted
	}
	return s.state
}

// Index returns the 0-based position of the current question.
func (s *Session) Index() int {
	return s.index
}

// Total returns the number of questions selected for this session.
func (s *Session) Total() int {
	return len(s.questions)
}

// Score returns the number of correct answers so far.
func (s *Session) Score() int {
	return s.score
}

// SelectedAnswer returns the answer recorded for the current question, if any.
func (s *Session) SelectedAnswer() (int, bool) {
	return s.selected, s.hasSelected
}

// Questions returns a copy of the selected questions in presentation order.
func (s *Session) Questions() []domain.Question {
	out := make([]domain.Question, len(s.questions))
	for i, q := range s.questions {
		out[i] = q.Clone()
	}
	return out
}
