package fieldvalidation

import (
	"strings"

	"go.uber.org/zap"

	"github.com/Gobd/fieldvalidation/transform"
)

// domainTypo maps a common misspelling of a mail domain to its correction.
type domainTypo struct {
	typo, fix string
}

// domainTypos is checked in order; the first match wins. No entry may be a
// substring of a correct domain.
var domainTypos = []domainTypo{
	{"gmial.com", "gmail.com"},
	{"gmal.com", "gmail.com"},
	{"gamil.com", "gmail.com"},
	{"gnail.com", "gmail.com"},
	{"yahooo.com", "yahoo.com"},
	{"yaho.com", "yahoo.com"},
	{"hotmial.com", "hotmail.com"},
	{"hotmal.com", "hotmail.com"},
	{"outlok.com", "outlook.com"},
	{"outlook.co.com", "outlook.com"},
	{"iclould.com", "icloud.com"},
	{"icoud.com", "icloud.com"},
}

const phoneSeparators = " -()"

// suggesters holds the heuristic for each field type that has one.
var suggesters = map[FieldType]func(string) []string{
	Email: suggestEmail,
	Phone: suggestPhone,
}

// Suggest returns "did you mean" candidates for value. It never fails: any
// internal fault yields no suggestions. The caller decides whether to apply
// a candidate; value is never changed.
func Suggest(t FieldType, value string) []string {
	return suggest(zap.NewNop(), t, value)
}

// Suggest is like the package-level [Suggest] but logs recovered faults.
func (e *Engine) Suggest(t FieldType, value string) []string {
	return suggest(e.logger, t, value)
}

func suggest(logger *zap.Logger, t FieldType, value string) (out []string) {
	defer func() {
		if p := recover(); p != nil {
			logger.Warn("Suggestion heuristic panicked",
				zap.String("field_type", t.String()),
				zap.Any("panic", p),
			)
			out = nil
		}
	}()

	if fn, ok := suggesters[t]; ok {
		return fn(value)
	}
	return nil
}

func suggestEmail(value string) []string {
	lower := strings.ToLower(value)
	for _, d := range domainTypos {
		if strings.Contains(lower, d.typo) {
			return []string{"Did you mean @" + d.fix + "?"}
		}
	}

	if strings.Contains(value, "@") {
		return nil
	}
	parts := strings.Split(value, ".")
	if len(parts) == 2 && parts[0] != "" && parts[1] != "" {
		return []string{"Did you mean " + parts[0] + "@" + parts[1] + ".com?"}
	}
	return nil
}

func suggestPhone(value string) []string {
	digits := transform.Digits(value)
	var out []string
	if len(digits) == 10 && !transform.ContainsAny(value, phoneSeparators) {
		out = append(out, transform.GroupPhone(digits))
	}
	if len(digits) == 11 && digits[0] == '1' {
		out = append(out, transform.GroupPhoneIntl(digits))
	}
	return out
}
