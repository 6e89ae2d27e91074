package validator

import (
	"regexp"
	"unicode/utf16"
)

// Status is the result of evaluating one or more rules against a value.
// Message is empty when Valid is true and non-empty otherwise.
type Status struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// Pass returns a successful Status.
func Pass() Status {
	return Status{Valid: true}
}

// Fail returns a failed Status carrying msg.
func Fail(msg string) Status {
	return Status{Valid: false, Message: msg}
}

// Kind discriminates rule variants.
type Kind string

const (
	KindLength     Kind = "length"
	KindIsRequired Kind = "is-required"
	KindHasMinMax  Kind = "has-min-max"
	KindHasFormat  Kind = "has-format"
)

func (k Kind) String() string {
	return string(k)
}

// Constraints holds length bounds. Min <= Max is expected but not enforced.
type Constraints struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Rule is a configured check. The zero value has no kind and always passes.
type Rule struct {
	kind        Kind
	constraints Constraints
	pattern     *regexp.Regexp
	message     string
}

func (r Rule) Kind() Kind {
	return r.kind
}

func (r Rule) Constraints() Constraints {
	return r.constraints
}

// Pattern returns the compiled expression of a has-format rule, or nil.
func (r Rule) Pattern() *regexp.Regexp {
	return r.pattern
}

// Message returns the configured failure message, if the kind uses one.
func (r Rule) Message() string {
	return r.message
}

// Evaluate runs the rule against value through the kind's registered evaluator.
// Rules of an unregistered kind impose no constraint.
func (r Rule) Evaluate(value string) Status {
	fn, ok := lookup(r.kind)
	if !ok {
		return Pass()
	}
	return fn(r, value)
}

// Validate evaluates rules in order and returns the first failing Status.
// Rules after the first failure are not evaluated. An empty rule list is valid.
func Validate(value string, rules ...Rule) Status {
	for _, rule := range rules {
		if status := rule.Evaluate(value); !status.Valid {
			return status
		}
	}
	return Pass()
}

// length counts UTF-16 code units, so characters outside the Basic
// Multilingual Plane count as two.
func length(value string) int {
	n := 0
	for _, r := range value {
		n += len(utf16.Encode([]rune{r})) // utf16.RuneLen requires Go 1.23
	}
	return n
}
