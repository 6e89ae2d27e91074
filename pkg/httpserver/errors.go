package httpserver

import "errors"

var (
	// ErrStart wraps listener failures and repeated Run calls.
	ErrStart = errors.New("httpserver: start failed")

	// ErrAlreadyRunning is joined with ErrStart when Run is called on a
	// server that is still serving.
	ErrAlreadyRunning = errors.New("httpserver: already running")

	// ErrShutdown wraps failures to drain connections within the shutdown timeout.
	ErrShutdown = errors.New("httpserver: graceful shutdown failed")
)
