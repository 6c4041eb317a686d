package fieldvalidation

import (
	"github.com/Gobd/fieldvalidation/transform"
)

// Luhn reports whether the digits of s pass the Luhn checksum. Every
// non-digit character is stripped first, so "4539 1488 0343 6467" and
// "4539148803436467" give the same answer. A string with no digits fails.
func Luhn(s string) bool {
	digits := transform.Digits(s)
	if digits == "" {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if d < 0 || d > 9 {
			return false
		}
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
