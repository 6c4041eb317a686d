package fieldvalidation

// Rule is a named predicate plus the metadata used to present it. A Rule is
// a value: the With* and Optional/Require methods return modified copies, so
// a Rule registered in a [RuleSet] cannot change afterwards.
type Rule struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
	Hint     string `json:"hint,omitempty"`
	Message  string `json:"message,omitempty"`

	checker Checker
}

// NewRule returns an optional rule identified by id.
func NewRule(id, label string, checker Checker) Rule {
	return Rule{
		ID:      id,
		Label:   label,
		checker: checker,
	}
}

// By wraps f into an optional rule.
func By(id, label string, f func(string) bool) Rule {
	return NewRule(id, label, CheckFunc(f))
}

// Require marks the rule as required.
func (r Rule) Require() Rule {
	r.Required = true
	return r
}

// Optional marks the rule as optional.
func (r Rule) Optional() Rule {
	r.Required = false
	return r
}

// WithHint sets the hint shown while the rule is unsatisfied.
func (r Rule) WithHint(hint string) Rule {
	r.Hint = hint
	return r
}

// WithMessage sets the error message used when this rule is the primary failure.
func (r Rule) WithMessage(msg string) Rule {
	r.Message = msg
	return r
}

// Checker returns the predicate behind the rule.
func (r Rule) Checker() Checker {
	return r.checker
}
