// Package service composes the quiz core with configuration, logging and
// event publication.
//
// The quiz.Session state machine stays pure; QuizService wraps each
// transition so that callers get structured logs and every registered
// events.EventHandler (for example FeedbackHandler) learns what happened.
package service
