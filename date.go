package fieldvalidation

import (
	"regexp"
	"strconv"
)

const (
	minYear = 1900
	maxYear = 2100
)

var (
	dateRegexp = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)

	daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
)

// ValidDate reports whether s is a real calendar date written as MM/DD/YYYY
// with a year between 1900 and 2100.
func ValidDate(s string) bool {
	m := dateRegexp.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	if month < 1 || month > 12 || day < 1 || day > 31 || year < minYear || year > maxYear {
		return false
	}
	return day <= monthLength(month, year)
}

func monthLength(month, year int) int {
	if month == 2 && isLeapYear(year) {
		return 29
	}
	return daysInMonth[month-1]
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
