package cli

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/fridok/fridok/internal/domain/quiz"
)

const optionLetters = "ABCD"

func (a *App) quizScreen(ctx context.Context) error {
	for {
		a.printf("\nSpace quiz: %d questions\n", a.quiz.QuestionsPerGame())
		session, err := a.quiz.StartQuiz(ctx)
		if err != nil {
			return err
		}

		if err := a.playQuiz(ctx, session); err != nil {
			return err
		}

		result, err := session.Result()
		if err != nil {
			return err
		}
		rating := result.Rating()
		a.printf("\n%s\n", rating.Title())
		a.printf("You scored %d out of %d\n", result.Score, result.Total)
		a.printf("%s\n", rating.Message())

		again, ok := a.prompt("Play again? (y/n): ")
		if !ok {
			return errQuit
		}
		session.Reset()
		if !strings.EqualFold(again, "y") {
			return nil
		}
	}
}

func (a *App) playQuiz(ctx context.Context, session *quiz.Session) error {
	for session.State() != quiz.StateComplete {
		q, err := session.CurrentQuestion()
		if err != nil {
			return err
		}

		a.printf("\nQuestion %d of %d  (score %d)\n", session.Index()+1, session.Total(), session.Score())
		a.printf("%s\n", q.Prompt)
		for i, opt := range q.Options {
			a.printf("  %c) %s\n", optionLetters[i], opt)
		}

		var res quiz.AnswerResult
		for {
			line, ok := a.prompt("Your answer: ")
			if !ok {
				return errQuit
			}
			idx, valid := parseOption(line)
			if !valid {
				a.printf("Answer with A-D\n")
				continue
			}
			res, err = a.quiz.SubmitAnswer(ctx, session, idx)
			if errors.Is(err, quiz.ErrInvalidOption) {
				a.printf("Answer with A-D\n")
				continue
			}
			if err != nil {
				return err
			}
			break
		}

		if res.Correct {
			a.printf("Correct!\n")
		} else {
			a.printf("Incorrect. The answer is %c) %s\n", optionLetters[res.CorrectIndex], q.CorrectOption())
		}
		if res.Explanation != "" {
			a.printf("%s\n", res.Explanation)
		}

		label := "Press enter for the next question"
		if session.Index() == session.Total()-1 {
			label = "Press enter to see your results"
		}
		if _, ok := a.prompt(label + " "); !ok {
			return errQuit
		}
		if _, err := a.quiz.Advance(ctx, session); err != nil {
			return err
		}
	}
	return nil
}

// parseOption accepts a letter A-D or a number 1-4.
func parseOption(line string) (int, bool) {
	line = strings.ToUpper(strings.TrimSpace(line))
	if len(line) == 1 {
		if i := strings.Index(optionLetters, line); i >= 0 {
			return i, true
		}
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > len(optionLetters) {
		return 0, false
	}
	return n - 1, true
}
