package fieldvalidation

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateRuleID is returned when two rules in one set share an id.
	ErrDuplicateRuleID = errors.New("duplicate rule id")

	// ErrEmptyRuleID is returned for a rule without an id.
	ErrEmptyRuleID = errors.New("rule id is empty")

	// ErrNilChecker is returned for a rule without a predicate.
	ErrNilChecker = errors.New("rule has no checker")
)

// RuleSet is an ordered, immutable list of rules with unique ids. Order sets
// message precedence and never affects validity. The zero value is an empty
// set.
type RuleSet struct {
	rules []Rule
	index map[string]int
}

// NewRuleSet builds a set from rules in the given order. A malformed set is
// rejected here rather than at evaluation time.
func NewRuleSet(rules ...Rule) (RuleSet, error) {
	rs := RuleSet{
		rules: make([]Rule, 0, len(rules)),
		index: make(map[string]int, len(rules)),
	}
	for i, r := range rules {
		if r.ID == "" {
			return RuleSet{}, fmt.Errorf("rule at index %d: %w", i, ErrEmptyRuleID)
		}
		if r.checker == nil {
			return RuleSet{}, fmt.Errorf("rule %q: %w", r.ID, ErrNilChecker)
		}
		if _, dup := rs.index[r.ID]; dup {
			return RuleSet{}, fmt.Errorf("rule %q: %w", r.ID, ErrDuplicateRuleID)
		}
		rs.index[r.ID] = len(rs.rules)
		rs.rules = append(rs.rules, r)
	}
	return rs, nil
}

// MustRuleSet is like [NewRuleSet] but panics on error.
func MustRuleSet(rules ...Rule) RuleSet {
	rs, err := NewRuleSet(rules...)
	if err != nil {
		panic(err)
	}
	return rs
}

// Rules returns a copy of the rules in registration order.
func (rs RuleSet) Rules() []Rule {
	out := make([]Rule, len(rs.rules))
	copy(out, rs.rules)
	return out
}

// Len returns the number of rules.
func (rs RuleSet) Len() int {
	return len(rs.rules)
}

// Lookup returns the rule with the given id.
func (rs RuleSet) Lookup(id string) (Rule, bool) {
	i, ok := rs.index[id]
	if !ok {
		return Rule{}, false
	}
	return rs.rules[i], true
}

// Required returns the required rules in registration order.
func (rs RuleSet) Required() []Rule {
	return rs.filter(true)
}

// Optional returns the optional rules in registration order.
func (rs RuleSet) Optional() []Rule {
	return rs.filter(false)
}

func (rs RuleSet) filter(required bool) []Rule {
	var out []Rule
	for _, r := range rs.rules {
		if r.Required == required {
			out = append(out, r)
		}
	}
	return out
}
