package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuestion() Question {
	return Question{
		Prompt:       "How many moons does Mars have?",
		Options:      []string{"0", "1", "2", "4"},
		CorrectIndex: 2,
		Explanation:  "Mars has two small moons: Phobos and Deimos.",
	}
}

func TestQuestionValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		mutate  func(q *Question)
		wantErr error
	}{
		{
			name:   "valid question",
			mutate: func(q *Question) {},
		},
		{
			name:    "empty prompt",
			mutate:  func(q *Question) { q.Prompt = "  " },
			wantErr: ErrQuestionPromptEmpty,
		},
		{
			name:    "three options",
			mutate:  func(q *Question) { q.Options = q.Options[:3] },
			wantErr: ErrQuestionOptionCount,
		},
		{
			name:    "five options",
			mutate:  func(q *Question) { q.Options = append(q.Options, "8") },
			wantErr: ErrQuestionOptionCount,
		},
		{
			name:    "blank option",
			mutate:  func(q *Question) { q.Options = []string{"0", "", "2", "4"} },
			wantErr: ErrQuestionOptionEmpty,
		},
		{
			name:    "negative correct index",
			mutate:  func(q *Question) { q.CorrectIndex = -1 },
			wantErr: ErrQuestionCorrectIndex,
		},
		{
			name:    "correct index past the end",
			mutate:  func(q *Question) { q.CorrectIndex = 4 },
			wantErr: ErrQuestionCorrectIndex,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := validQuestion()
			tc.mutate(&q)

			err := q.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
			assert.True(t, errors.Is(err, ErrValidation), "validation errors should wrap ErrValidation")
		})
	}
}

func TestQuestionIsCorrect(t *testing.T) {
	t.Parallel()
	q := validQuestion()

	assert.True(t, q.IsCorrect(2))
	assert.False(t, q.IsCorrect(0))
	assert.False(t, q.IsCorrect(-1))
	assert.Equal(t, "2", q.CorrectOption())
}

func TestQuestionClone(t *testing.T) {
	t.Parallel()
	q := validQuestion()
	c := q.Clone()

	c.Options[0] = "changed"
	assert.Equal(t, "0", q.Options[0], "clone must not share the options slice")
	assert.Equal(t, q.Prompt, c.Prompt)
}
