package validator

import "fmt"

const (
	MsgTooLong  = "Value is too long"
	MsgTooShort = "Value is too short"
	MsgRequired = "Required"
)

// HasLength requires the value length to fall within [c.Min, c.Max].
// The upper bound is checked first.
func HasLength(c Constraints) Rule {
	return Rule{kind: KindLength, constraints: c}
}

// IsRequired rejects the empty string. Whitespace-only values pass.
func IsRequired() Rule {
	return Rule{kind: KindIsRequired}
}

// HasMinMax rejects values longer than c.Max. c.Min is kept on the rule but
// never checked.
func HasMinMax(c Constraints) Rule {
	return Rule{kind: KindHasMinMax, constraints: c}
}

func evalLength(r Rule, value string) Status {
	n := length(value)
	if n > r.constraints.Max {
		return Fail(MsgTooLong)
	}
	if n < r.constraints.Min {
		return Fail(MsgTooShort)
	}
	return Pass()
}

func evalIsRequired(_ Rule, value string) Status {
	if value == "" {
		return Fail(MsgRequired)
	}
	return Pass()
}

func evalHasMinMax(r Rule, value string) Status {
	if length(value) > r.constraints.Max {
		return Fail(fmt.Sprintf("Max length is %d", r.constraints.Max))
	}
	return Pass()
}
