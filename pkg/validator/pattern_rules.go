package validator

import "regexp"

// MsgInvalidFormat is used by HasFormat when no message is given.
const MsgInvalidFormat = "Invalid format"

// HasFormat requires the value to match pattern. The empty string is matched
// like any other value; combine with IsRequired for mandatory fields.
// A nil pattern imposes no constraint.
func HasFormat(pattern *regexp.Regexp, message string) Rule {
	if message == "" {
		message = MsgInvalidFormat
	}
	return Rule{kind: KindHasFormat, pattern: pattern, message: message}
}

// MustHasFormat compiles expr and builds a HasFormat rule.
// Panics on an invalid expression so misconfigured rule sets fail at startup.
func MustHasFormat(expr, message string) Rule {
	return HasFormat(regexp.MustCompile(expr), message)
}

func evalHasFormat(r Rule, value string) Status {
	if r.pattern == nil || r.pattern.MatchString(value) {
		return Pass()
	}
	return Fail(r.message)
}
