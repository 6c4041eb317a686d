package fieldvalidation

import (
	"context"
)

// Field is one field instance. It exclusively owns its [State]; the touched
// set survives every Update until Reset. A Field is not safe for concurrent
// mutation.
type Field struct {
	engine *Engine
	typ    FieldType
	rules  RuleSet
	state  State
}

// FieldOption configures a [Field].
type FieldOption func(*Field)

// WithRuleSet replaces the field type's default rules with rs.
func WithRuleSet(rs RuleSet) FieldOption {
	return func(f *Field) {
		f.rules = rs
	}
}

// NewField returns a field of type t. Its rules come from the engine's
// registry unless replaced with [WithRuleSet].
func (e *Engine) NewField(t FieldType, opts ...FieldOption) *Field {
	f := &Field{
		engine: e,
		typ:    t,
		rules:  e.registry.RulesFor(t),
	}
	for _, o := range opts {
		o(f)
	}
	f.state = e.Next(State{}, "", f.rules)
	return f
}

// Type returns the field type.
func (f *Field) Type() FieldType {
	return f.typ
}

// Rules returns the field's ruleset.
func (f *Field) Rules() RuleSet {
	return f.rules
}

// Update evaluates value and advances the field state.
func (f *Field) Update(value string) Result {
	f.state = f.engine.Next(f.state, value, f.rules)
	return Result{Outcomes: f.state.Outcomes, Valid: f.state.Valid}
}

// State returns a snapshot of the field state.
func (f *Field) State() State {
	s := f.state
	s.Touched = f.state.Touched.clone(0)
	s.Outcomes = append([]Outcome(nil), f.state.Outcomes...)
	return s
}

// Valid reports the aggregate validity of the current value.
func (f *Field) Valid() bool {
	return f.state.Valid
}

// Status returns the display status.
func (f *Field) Status() Status {
	return f.state.Status()
}

// Message returns the primary error message, or "" when valid.
func (f *Field) Message() string {
	return f.engine.Message(f.state, f.typ)
}

// Checklist returns the requirements panel rows.
func (f *Field) Checklist(showAll bool) Checklist {
	return f.state.Checklist(showAll)
}

// Suggestions returns candidate corrections for the current value.
func (f *Field) Suggestions() []string {
	return f.engine.Suggest(f.typ, f.state.Value)
}

// Reset clears the value and the touched set.
func (f *Field) Reset() {
	f.state = f.engine.Next(State{}, "", f.rules)
}

// SetValidating marks an external check as in flight.
func (f *Field) SetValidating(on bool) {
	f.state.Validating = on
}

// RunCheck runs an external check on the current value, for example a
// server-side availability lookup. The field reports [StatusValidating]
// while fn runs, and fn's context is bounded by the configured CheckTimeout.
// The result does not change the field's validity; it is returned to the
// caller as is.
func (f *Field) RunCheck(ctx context.Context, fn func(ctx context.Context, value string) error) error {
	ctx, cancel := context.WithTimeout(ctx, f.engine.cfg.CheckTimeout)
	defer cancel()

	f.SetValidating(true)
	defer f.SetValidating(false)

	return fn(ctx, f.state.Value)
}
