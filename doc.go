// Package formkit is a rule-based string validation toolkit for form input.
//
// The packages build on each other:
//
//   - pkg/validator: Rule values (is-required, length, has-min-max,
//     has-format) and Validate, which returns the first failing Status.
//   - pkg/form: binds named fields to rule lists, re-validates on Set and
//     aggregates field validity into a form flag with change subscriptions.
//   - pkg/schema: loads YAML/JSON form definitions and compiles them into
//     validator rules.
//   - pkg/formhttp: serves compiled forms over HTTP.
//
// Quick start:
//
//	status := validator.Validate("a",
//	    validator.IsRequired(),
//	    validator.HasLength(validator.Constraints{Min: 2, Max: 4}),
//	)
//	// status == validator.Status{Valid: false, Message: "Value is too short"}
//
// The cmd/formkit binary wires schema loading, logging, configuration and the
// HTTP handler into a standalone service.
package formkit
