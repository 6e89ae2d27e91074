package schema

// Document is the root of a schema file.
type Document struct {
	Forms map[string]FormSpec `yaml:"forms" json:"forms"`
}

// FormSpec declares the fields of one form.
type FormSpec struct {
	Fields []FieldSpec `yaml:"fields" json:"fields"`
}

// FieldSpec declares a field and its ordered rules.
type FieldSpec struct {
	Name  string     `yaml:"name" json:"name"`
	Rules []RuleSpec `yaml:"rules" json:"rules"`
}

// RuleSpec declares one rule. Type is a validator.Kind; the remaining keys
// are used by the kinds that need them.
type RuleSpec struct {
	Type    string `yaml:"type" json:"type"`
	Min     int    `yaml:"min,omitempty" json:"min,omitempty"`
	Max     *int   `yaml:"max,omitempty" json:"max,omitempty"`
	Pattern string `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Message string `yaml:"message,omitempty" json:"message,omitempty"`
}
