package fieldvalidation_test

import (
	"testing"

	v "github.com/Gobd/fieldvalidation"
	"github.com/stretchr/testify/assert"
)

func TestLuhn(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "valid visa", in: "4539148803436467", want: true},
		{name: "valid with spaces", in: "4539 1488 0343 6467", want: true},
		{name: "valid with dashes", in: "4539-1488-0343-6467", want: true},
		{name: "invalid", in: "1234567812345678", want: false},
		{name: "single zero", in: "0", want: true},
		{name: "test amex", in: "378282246310005", want: true},
		{name: "one digit off", in: "4539148803436468", want: false},
		{name: "empty", in: "", want: false},
		{name: "no digits", in: "abcd efgh", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Luhn(tt.in))
		})
	}
}

func TestLuhn_IgnoresSeparators(t *testing.T) {
	assert.Equal(t, v.Luhn("4539148803436467"), v.Luhn("4539 1488 0343 6467"))
	assert.Equal(t, v.Luhn("1234567812345678"), v.Luhn("1234 5678 1234 5678"))
}
