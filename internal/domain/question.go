package domain

import (
	"errors"
	"fmt"
	"strings"
)

// OptionCount is the number of answer options every question carries.
const OptionCount = 4

// Question-specific validation errors
var (
	// ErrQuestionPromptEmpty is returned when a question has no prompt text.
	ErrQuestionPromptEmpty = errors.New("question prompt cannot be empty")

	// ErrQuestionOptionCount is returned when a question does not have exactly OptionCount options.
	ErrQuestionOptionCount = errors.New("question must have exactly 4 options")

	// ErrQuestionOptionEmpty is returned when one of the options is blank.
	ErrQuestionOptionEmpty = errors.New("question option cannot be empty")

	// ErrQuestionCorrectIndex is returned when the correct index does not point into the options.
	ErrQuestionCorrectIndex = errors.New("question correct index out of range")
)

// Question is an immutable multiple-choice quiz question.
type Question struct {
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
}

// Validate checks if the Question has valid data.
// Returns an error wrapping ErrValidation if any field fails validation.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Prompt) == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrQuestionPromptEmpty)
	}

	if len(q.Options) != OptionCount {
		return fmt.Errorf("%w: %w: got %d", ErrValidation, ErrQuestionOptionCount, len(q.Options))
	}

	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return fmt.Errorf("%w: %w: option %d", ErrValidation, ErrQuestionOptionEmpty, i)
		}
	}

	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return fmt.Errorf("%w: %w: %d", ErrValidation, ErrQuestionCorrectIndex, q.CorrectIndex)
	}

	return nil
}

// IsCorrect reports whether index is the correct option.
func (q Question) IsCorrect(index int) bool {
	return index == q.CorrectIndex
}

// CorrectOption returns the text of the correct option.
func (q Question) CorrectOption() string {
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return ""
	}
	return q.Options[q.CorrectIndex]
}

// Clone returns a copy of q that shares no memory with it.
func (q Question) Clone() Question {
	opts := make([]string, len(q.Options))
	copy(opts, q.Options)
	q.Options = opts
	return q
}
