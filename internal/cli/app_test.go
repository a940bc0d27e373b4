package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fridok/fridok/internal/catalog"
	"github.com/fridok/fridok/internal/config"
	"github.com/fridok/fridok/internal/events"
	"github.com/fridok/fridok/internal/platform/logger"
	"github.com/fridok/fridok/internal/service"
	"github.com/fridok/fridok/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	store   settings.Store
	out     *bytes.Buffer
	bell    *bytes.Buffer
	logBuf  *logger.TestLogBuffer
	emitter *events.InMemoryEventEmitter
}

func run(t *testing.T, input string) *harness {
	t.Helper()

	log, logBuf := logger.GetTestLogger(t)
	h := &harness{
		store:   settings.NewMemoryStore(),
		out:     &bytes.Buffer{},
		bell:    &bytes.Buffer{},
		logBuf:  logBuf,
		emitter: events.NewInMemoryEventEmitter(log),
	}

	feedback, err := service.NewFeedbackHandler(h.store, &Bell{Out: h.bell}, log)
	require.NoError(t, err)
	h.emitter.RegisterHandler(feedback)

	quizSvc, err := service.NewQuizService(catalog.Questions(), config.QuizConfig{QuestionsPerGame: 5}, h.emitter, log)
	require.NoError(t, err)

	app := New(strings.NewReader(input), h.out, quizSvc, h.store, log)
	require.NoError(t, app.Run(context.Background()))
	return h
}

func TestRunQuitsOnEOFAndQ(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "q\n", "Q\n"} {
		h := run(t, input)
		assert.Contains(t, h.out.String(), "Clear skies!")
	}
}

func TestRunUnknownOption(t *testing.T) {
	t.Parallel()

	h := run(t, "9\nq\n")
	assert.Contains(t, h.out.String(), `Unknown option "9"`)
}

func TestPlanetsScreen(t *testing.T) {
	t.Parallel()

	h := run(t, "1\n6\nsaturn\n42\n\nq\n")
	out := h.out.String()

	assert.Contains(t, out, "Planets of the Solar System")
	assert.Contains(t, out, "Moons:")
	assert.Contains(t, out, "Rings:             yes")
	assert.Contains(t, out, "Did you know?")
	assert.Contains(t, out, `No such entry "42"`)
}

func TestStarsScreen(t *testing.T) {
	t.Parallel()

	h := run(t, "2\nbetelgeuse\n\nq\n")
	out := h.out.String()

	assert.Contains(t, out, "Famous stars")
	assert.Contains(t, out, "☀ Sun (Yellow Dwarf)")
	assert.Contains(t, out, "Betelgeuse - ")
	assert.Contains(t, out, "Constellation: Orion")
}

func TestQuizScreenPlaysFullGame(t *testing.T) {
	t.Parallel()

	input := "3\nZ\n" + strings.Repeat("A\n\n", 5) + "n\nq\n"
	h := run(t, input)
	out := h.out.String()

	assert.Contains(t, out, "Space quiz: 5 questions")
	assert.Contains(t, out, "Question 1 of 5")
	assert.Contains(t, out, "Question 5 of 5")
	assert.Contains(t, out, "Answer with A-D")
	assert.Contains(t, out, "Press enter to see your results")
	assert.Contains(t, out, "out of 5")
	assert.Equal(t, 5, strings.Count(out, "Your answer: ")-1, "one retry after the invalid answer")
	if strings.Contains(out, "Incorrect.") {
		assert.Regexp(t, `Incorrect\. The answer is [ABCD]\) \S`, out)
	}

	// One ring for the start, then one per right and two per wrong answer.
	rings := strings.Count(h.bell.String(), "\a")
	assert.GreaterOrEqual(t, rings, 6)
	assert.LessOrEqual(t, rings, 11)
}

func TestQuizScreenRespectsHapticSetting(t *testing.T) {
	t.Parallel()

	// Turn haptics off in settings, then play.
	input := "6\n3\n\n3\n" + strings.Repeat("1\n\n", 5) + "n\nq\n"
	h := run(t, input)

	assert.Empty(t, h.bell.String())
	prefs, err := h.store.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, prefs.HapticFeedback)
}

func TestWeightScreen(t *testing.T) {
	t.Parallel()

	h := run(t, "4\nabc\n-5\n100\n\nq\n")
	out := h.out.String()

	assert.Equal(t, 2, strings.Count(out, "Enter a positive number"))
	assert.Contains(t, out, "Jupiter")
	assert.Contains(t, out, "234.0")
	assert.Contains(t, out, "(234% gravity, heavier)")
	assert.Contains(t, out, "(17% gravity, lighter)")
	assert.Contains(t, out, "(100% gravity, home)")
}

func TestSizeScreen(t *testing.T) {
	t.Parallel()

	h := run(t, "5\nmars, earth\npluto\nall\n\nq\n")
	out := h.out.String()

	assert.Contains(t, out, "Size comparison: Mercury, Venus, Earth")
	assert.Contains(t, out, "size 150.0")
	assert.Contains(t, out, "size  79.8")
	assert.Contains(t, out, "unknown body")
	assert.Contains(t, out, "size 120.0")

	// The first details block lists only the selection, largest first.
	first := out[strings.Index(out, "Diameter details"):]
	first = first[:strings.Index(first, "Compare which planets?")]
	assert.NotContains(t, first, "Jupiter")
	assert.Less(t, strings.Index(first, "Earth"), strings.Index(first, "Mars"))
	assert.Contains(t, first, "13K km")
	assert.Contains(t, first, "7K km")

	// Selecting all shows Jupiter at full width.
	assert.Contains(t, out, "140K km")
	assert.Contains(t, out, "Jupiter  "+strings.Repeat("#", 30))
}

func TestSettingsScreen(t *testing.T) {
	t.Parallel()

	h := run(t, "6\n1\n4\n20\n4\nlots\n4\n200\n\nq\n")
	out := h.out.String()

	assert.Contains(t, out, "Star density must be between 50 and 300")
	assert.Contains(t, out, `Not a number: "lots"`)

	prefs, err := h.store.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, prefs.ShowAnimations)
	assert.True(t, prefs.ShowNebula)
	assert.Equal(t, 200.0, prefs.StarDensity)

	logger.AssertLogContains(t, h.logBuf, "settings updated")
}

func TestParseOption(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in    string
		want  int
		valid bool
	}{
		{"a", 0, true},
		{"D", 3, true},
		{" c ", 2, true},
		{"1", 0, true},
		{"4", 3, true},
		{"5", 0, false},
		{"E", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		got, ok := parseOption(tc.in)
		assert.Equal(t, tc.valid, ok, tc.in)
		if tc.valid {
			assert.Equal(t, tc.want, got, tc.in)
		}
	}
}
