package fieldvalidation

import (
	"encoding/json"
	"sort"
)

// TouchedSet records the rule ids that have failed at least once for a field
// instance. Transitions only ever add ids.
type TouchedSet map[string]struct{}

// Has reports whether id has been touched.
func (s TouchedSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the touched ids, sorted.
func (s TouchedSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// MarshalJSON encodes the set as a sorted list of ids.
func (s TouchedSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.IDs())
}

// clone returns an independent copy so a transition never writes into the
// previous state.
func (s TouchedSet) clone(extra int) TouchedSet {
	out := make(TouchedSet, len(s)+extra)
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// State is the validation state of one field instance.
type State struct {
	Value      string     `json:"value"`
	Outcomes   []Outcome  `json:"outcomes"`
	Touched    TouchedSet `json:"touched"`
	Validating bool       `json:"validating"`
	Valid      bool       `json:"valid"`
}

// Status is the coarse state a presentation layer renders.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusValidating Status = "validating"
	StatusValid      Status = "valid"
	StatusInvalid    Status = "invalid"
)

// Next is the pure transition from old to the state for value. It evaluates
// value against rs and, when value is non-empty, marks every unsatisfied rule
// as touched. old is not modified.
func (e *Engine) Next(old State, value string, rs RuleSet) State {
	res := e.Evaluate(value, rs)

	touched := old.Touched.clone(len(res.Outcomes))
	if value != "" {
		for _, o := range res.Outcomes {
			if !o.Satisfied {
				touched[o.Rule.ID] = struct{}{}
			}
		}
	}

	return State{
		Value:      value,
		Outcomes:   res.Outcomes,
		Touched:    touched,
		Validating: old.Validating,
		Valid:      res.Valid,
	}
}

// Status derives the display status. An empty value with nothing touched is
// idle so a fresh field does not open with an error.
func (s State) Status() Status {
	switch {
	case s.Validating:
		return StatusValidating
	case s.pristine():
		return StatusIdle
	case s.Valid:
		return StatusValid
	default:
		return StatusInvalid
	}
}

// pristine reports an empty value that has never failed a rule.
func (s State) pristine() bool {
	return s.Value == "" && len(s.Touched) == 0
}

// primaryFailure returns the first outcome, in registration order, that is
// unsatisfied and either required or already touched.
func (s State) primaryFailure() (Outcome, bool) {
	for _, o := range s.Outcomes {
		if o.Satisfied {
			continue
		}
		if o.Rule.Required || s.Touched.Has(o.Rule.ID) {
			return o, true
		}
	}
	return Outcome{}, false
}

// Message returns the primary error message for an invalid state, falling
// back to the engine's generic message for t. Valid states have no message,
// and neither does a field nobody has typed into yet.
func (e *Engine) Message(s State, t FieldType) string {
	if s.Valid || s.pristine() {
		return ""
	}
	o, ok := s.primaryFailure()
	if ok && o.Rule.Message != "" {
		return o.Rule.Message
	}
	return e.genericMessage(t)
}
