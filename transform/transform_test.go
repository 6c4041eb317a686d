package transform_test

import (
	"testing"

	"github.com/Gobd/fieldvalidation/transform"
	"github.com/stretchr/testify/assert"
)

func TestDigits(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "5551234567", want: "5551234567"},
		{name: "grouped", in: "(555) 123-4567", want: "5551234567"},
		{name: "card with spaces", in: "4539 1488 0343 6467", want: "4539148803436467"},
		{name: "letters", in: "abc", want: ""},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, transform.Digits(tt.in))
		})
	}
}

func TestGroupPhone(t *testing.T) {
	assert.Equal(t, "(555) 123-4567", transform.GroupPhone("5551234567"))
	assert.Equal(t, "123", transform.GroupPhone("123"))
}

func TestGroupPhoneIntl(t *testing.T) {
	assert.Equal(t, "+1 (555) 123-4567", transform.GroupPhoneIntl("15551234567"))
	assert.Equal(t, "25551234567", transform.GroupPhoneIntl("25551234567"))
	assert.Equal(t, "5551234567", transform.GroupPhoneIntl("5551234567"))
}

func TestContainsAny(t *testing.T) {
	assert.True(t, transform.ContainsAny("555-1234", " -()"))
	assert.False(t, transform.ContainsAny("5551234", " -()"))
}
