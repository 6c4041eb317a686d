package fieldvalidation

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrRuleFault marks a checker that could not reach a verdict, for example an
// ozzo rule reporting an internal error instead of a validation failure.
var ErrRuleFault = errors.New("rule evaluation fault")

type ozzoChecker struct {
	rule validation.Rule
}

// FromOzzo adapts an ozzo-validation rule into a [Checker]. ozzo rules accept
// empty values, but an empty field never satisfies a field rule, so the
// adapter rejects "" before delegating.
func FromOzzo(rule validation.Rule) Checker {
	return ozzoChecker{rule: rule}
}

func (c ozzoChecker) Check(value string) bool {
	ok, _ := c.CheckErr(value)
	return ok
}

// CheckErr separates a plain failure (false, nil) from a fault inside the
// ozzo rule (false, ErrRuleFault).
func (c ozzoChecker) CheckErr(value string) (bool, error) {
	if value == "" {
		return false, nil
	}
	err := c.rule.Validate(value)
	if err == nil {
		return true, nil
	}
	var ie validation.InternalError
	if errors.As(err, &ie) {
		return false, errors.Join(ErrRuleFault, ie.InternalError())
	}
	return false, nil
}

// Match returns a checker that is satisfied when value matches re.
func Match(re *regexp.Regexp) Checker {
	return FromOzzo(validation.Match(re))
}

// MinRunes returns a checker that is satisfied when value holds at least n runes.
func MinRunes(n int) Checker {
	return FromOzzo(validation.RuneLength(n, 0))
}
