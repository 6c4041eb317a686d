package transform

import (
	"strings"

	"github.com/asaskevich/govalidator"
)

// Digits returns s with every character other than 0-9 removed.
func Digits(s string) string {
	return govalidator.WhiteList(s, "0-9")
}

// ContainsAny reports whether s contains any of the runes in chars.
func ContainsAny(s, chars string) bool {
	return strings.ContainsAny(s, chars)
}

// GroupPhone formats a ten digit string as "(ddd) ddd-dddd".
// Any other length is returned unchanged.
func GroupPhone(digits string) string {
	if len(digits) != 10 {
		return digits
	}
	return "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:]
}

// GroupPhoneIntl formats an eleven digit string with a leading country code 1
// as "+1 (ddd) ddd-dddd". Any other input is returned unchanged.
func GroupPhoneIntl(digits string) string {
	if len(digits) != 11 || digits[0] != '1' {
		return digits
	}
	return "+1 " + GroupPhone(digits[1:])
}
