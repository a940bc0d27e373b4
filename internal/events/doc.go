// Package events lets the quiz service announce what happened in a session
// without knowing who listens.
//
// The quiz service emits an Event for every session transition (started,
// answered, completed). Handlers such as the feedback handler that triggers
// haptics subscribe through an EventEmitter. Payloads are JSON so handlers
// decode only the fields they care about.
package events
