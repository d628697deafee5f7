// Package cli provides the interactive QuizMaster command-line client.
//
// It wires configuration, the local credential store, the HTTP API client,
// the services and the session controller, then runs a REPL whose prompt
// shows the signed-in user and the current stage.
//
// Typical flow: login, pick a category with "start", answer questions,
// "submit", then "again" or "scores".
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
