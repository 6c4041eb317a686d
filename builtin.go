package fieldvalidation

import (
	"regexp"
	"strings"

	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/Gobd/fieldvalidation/transform"
)

const (
	minPasswordLength = 8
	minNameLength     = 2
	minPhoneDigits    = 10
	minCardDigits     = 13
	maxCardDigits     = 19
)

var (
	emailRegexp     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	upperRegexp     = regexp.MustCompile(`[A-Z]`)
	lowerRegexp     = regexp.MustCompile(`[a-z]`)
	numberRegexp    = regexp.MustCompile(`[0-9]`)
	specialRegexp   = regexp.MustCompile(`[^A-Za-z0-9]`)
	phoneRegexp     = regexp.MustCompile(`^[\d\s\-()+]+$`)
	nameRegexp      = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	dateShapeRegexp = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	zipRegexp       = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

	cardSeparators = strings.NewReplacer(" ", "", "-", "")
)

var builtins = map[FieldType]RuleSet{
	Email: MustRuleSet(
		NewRule("format", "Valid email format", Match(emailRegexp)).Require().
			WithHint("Use the form name@example.com").
			WithMessage("Please enter a valid email address"),
		By("domain", "Domain includes a dot", emailDomainHasDot).Require().
			WithHint("The part after @ needs a dot, like example.com"),
	),
	Password: MustRuleSet(
		NewRule("length", "At least 8 characters", MinRunes(minPasswordLength)).Require().
			WithMessage("Password must be at least 8 characters"),
		NewRule("uppercase", "One uppercase letter", Match(upperRegexp)).Require().
			WithHint("Add a capital letter (A-Z)"),
		NewRule("lowercase", "One lowercase letter", Match(lowerRegexp)).Require().
			WithHint("Add a lowercase letter (a-z)"),
		NewRule("number", "One number", Match(numberRegexp)).Require().
			WithHint("Add a digit (0-9)"),
		NewRule("special", "One special character", Match(specialRegexp)).
			WithHint("Symbols like ! @ # make it stronger"),
	),
	Phone: MustRuleSet(
		NewRule("format", "Digits, spaces, dashes and parentheses only", Match(phoneRegexp)).Require().
			WithMessage("Please enter a valid phone number"),
		By("digits", "At least 10 digits", func(v string) bool {
			return len(transform.Digits(v)) >= minPhoneDigits
		}).Require().
			WithHint("Include the area code"),
	),
	Name: MustRuleSet(
		NewRule("length", "At least 2 characters", MinRunes(minNameLength)).Require(),
		NewRule("characters", "Letters, spaces, hyphens and apostrophes only", Match(nameRegexp)).Require().
			WithHint("Remove numbers and symbols"),
	),
	Card: MustRuleSet(
		By("format", "13 to 19 digits", cardFormat).Require().
			WithHint("Spaces and dashes are ignored"),
		By("checksum", "Valid card number", Luhn).Require().
			WithMessage("This card number looks mistyped"),
	),
	Date: MustRuleSet(
		NewRule("format", "MM/DD/YYYY format", Match(dateShapeRegexp)).Require().
			WithHint("For example 01/31/2024"),
		By("calendar", "Real calendar date", ValidDate).Require().
			WithMessage("Please enter a real date between 1900 and 2100"),
	),
	Zipcode: MustRuleSet(
		NewRule("format", "5 digits or ZIP+4", Match(zipRegexp)).Require().
			WithHint("For example 12345 or 12345-6789"),
	),
	Text: {},
}

func emailDomainHasDot(v string) bool {
	i := strings.LastIndex(v, "@")
	return i >= 0 && strings.Contains(v[i+1:], ".")
}

func cardFormat(v string) bool {
	n := cardSeparators.Replace(v)
	if len(n) < minCardDigits || len(n) > maxCardDigits {
		return false
	}
	return FromOzzo(is.Digit).Check(n)
}
