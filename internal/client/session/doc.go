// Package session contains the quiz session controller: the state machine
// that owns the current stage and the active quiz, and coordinates the
// identity holder, category catalog, quiz engine and grader.
//
// The controller serializes state changes with a mutex and performs every
// network call with the mutex released. Results that arrive after the stage
// has moved on are discarded.
package session
