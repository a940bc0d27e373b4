// Package quiz implements the quiz session state machine: question selection,
// answer submission, scoring and advancement.
//
// A Session moves through NotStarted → InProgress → AwaitingAdvance → Complete.
// Every operation is checked against the current state; an operation that is
// not permitted returns an error wrapping ErrInvalidState instead of being
// ignored, so an answer can never be scored twice and feedback can never be
// skipped.
//
// A Session is owned by a single caller and is not safe for concurrent use.
// Discarding a Session at any point needs no cleanup.
package quiz
