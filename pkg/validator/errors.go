package validator

import "errors"

var (
	// ErrEmptyKind is returned when registering an evaluator without a kind.
	ErrEmptyKind = errors.New("rule kind is empty")

	// ErrKindRegistered is returned when a kind already has an evaluator.
	ErrKindRegistered = errors.New("rule kind already registered")

	// ErrNilEvaluator is returned when registering a nil evaluator.
	ErrNilEvaluator = errors.New("rule evaluator is nil")
)
