package validator

import (
	"fmt"
	"sync"
)

// EvaluateFunc checks value against the configuration carried by r.
type EvaluateFunc func(r Rule, value string) Status

var (
	kindsMu sync.RWMutex
	kinds   = map[Kind]EvaluateFunc{
		KindLength:     evalLength,
		KindIsRequired: evalIsRequired,
		KindHasMinMax:  evalHasMinMax,
		KindHasFormat:  evalHasFormat,
	}
)

// Register adds an evaluator for a new rule kind. Built-in kinds cannot be
// replaced.
func Register(kind Kind, fn EvaluateFunc) error {
	if kind == "" {
		return ErrEmptyKind
	}
	if fn == nil {
		return ErrNilEvaluator
	}

	kindsMu.Lock()
	defer kindsMu.Unlock()

	if _, ok := kinds[kind]; ok {
		return fmt.Errorf("%w: %s", ErrKindRegistered, kind)
	}
	kinds[kind] = fn
	return nil
}

// Registered reports whether kind has an evaluator.
func Registered(kind Kind) bool {
	_, ok := lookup(kind)
	return ok
}

// Custom builds a rule of a kind added with Register.
func Custom(kind Kind, c Constraints) Rule {
	return Rule{kind: kind, constraints: c}
}

func lookup(kind Kind) (EvaluateFunc, bool) {
	kindsMu.RLock()
	fn, ok := kinds[kind]
	kindsMu.RUnlock()
	return fn, ok
}
