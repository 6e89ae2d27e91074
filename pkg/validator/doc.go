// Package validator provides an ordered, short-circuiting validation pipeline
// for string values.
//
// A Rule is plain data: a Kind tag plus the kind's configuration. Rules are
// built with constructor functions (IsRequired, HasLength, HasMinMax,
// HasFormat) and evaluated with Validate, which walks the rules in order and
// returns the first failing Status. Later rules are never consulted once one
// fails.
//
// # Architecture
//
// Evaluation logic for every kind lives in a single dispatch table keyed by
// Kind (see registry.go). Rules carry no closures, so a rule list can be
// inspected, logged or serialised without losing information. Additional kinds
// can be plugged in with Register and instantiated with Custom.
//
// Core building blocks:
//   - Status       – validity flag plus an optional failure message
//   - Rule         – tagged rule value (Kind, Constraints, pattern, message)
//   - Constraints  – Min/Max length bounds shared by the length kinds
//   - Validate     – first-failure-wins evaluation over a rule list
//
// # Usage
//
//	status := validator.Validate(username,
//	    validator.IsRequired(),
//	    validator.HasLength(validator.Constraints{Min: 3, Max: 16}),
//	)
//	if !status.Valid {
//	    fmt.Println(status.Message) // "Value is too short"
//	}
//
// # Error Handling
//
// Validation outcomes are values, not errors. A failed check is reported as
// Status{Valid: false, Message: "..."}; the only errors in this package come
// from Register when extending the kind table.
//
// Constraints are deliberately permissive: Min > Max or negative bounds are
// accepted and evaluated as the comparisons dictate.
//
// Length is measured in UTF-16 code units, not bytes: characters outside the
// Basic Multilingual Plane (most emoji) count as two, combining marks as one.
package validator
