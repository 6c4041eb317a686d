package fieldvalidation_test

import (
	"testing"

	v "github.com/Gobd/fieldvalidation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSuggest_Email(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "correct domain", in: "user@gmail.com", want: nil},
		{name: "gmail typo", in: "user@gmial.com", want: []string{"Did you mean @gmail.com?"}},
		{name: "case insensitive", in: "User@GMIAL.COM", want: []string{"Did you mean @gmail.com?"}},
		{name: "yahoo typo", in: "a@yahooo.com", want: []string{"Did you mean @yahoo.com?"}},
		{name: "hotmail typo", in: "a@hotmial.com", want: []string{"Did you mean @hotmail.com?"}},
		{name: "outlook typo", in: "a@outlok.com", want: []string{"Did you mean @outlook.com?"}},
		{name: "icloud typo", in: "a@iclould.com", want: []string{"Did you mean @icloud.com?"}},
		{name: "icloud short typo", in: "a@icoud.com", want: []string{"Did you mean @icloud.com?"}},
		{name: "missing at", in: "john.gmail", want: []string{"Did you mean john@gmail.com?"}},
		{name: "missing at with two dots", in: "john.doe.gmail", want: nil},
		{name: "missing at empty part", in: "john.", want: nil},
		{name: "no dot no at", in: "john", want: nil},
		{name: "unknown domain", in: "user@example.org", want: nil},
		{name: "empty", in: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Suggest(v.Email, tt.in))
		})
	}
}

func TestSuggest_Phone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "bare ten digits", in: "5551234567", want: []string{"(555) 123-4567"}},
		{name: "already grouped", in: "(555) 123-4567", want: nil},
		{name: "dashed", in: "555-123-4567", want: nil},
		{name: "eleven with country code", in: "15551234567", want: []string{"+1 (555) 123-4567"}},
		{name: "eleven with plus", in: "+1 555 123 4567", want: []string{"+1 (555) 123-4567"}},
		{name: "eleven without leading one", in: "25551234567", want: nil},
		{name: "too short", in: "555123", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Suggest(v.Phone, tt.in))
		})
	}
}

func TestSuggest_OtherTypes(t *testing.T) {
	for _, ft := range []v.FieldType{v.Password, v.Name, v.Card, v.Date, v.Zipcode, v.Text, "unknown"} {
		assert.Empty(t, v.Suggest(ft, "user@gmial.com 5551234567"), ft)
	}
}

func TestSuggest_DomainTyposNeverMatchCorrectDomains(t *testing.T) {
	for _, d := range []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "icloud.com"} {
		assert.Empty(t, v.Suggest(v.Email, "someone@"+d), d)
	}
}

func TestSuggest_PanickingHeuristicIsContained(t *testing.T) {
	restore := v.SetSuggester(v.Email, func(string) []string { panic("table corrupted") })
	defer restore()

	core, logs := observer.New(zap.WarnLevel)
	e := v.New(v.WithLogger(zap.New(core)))

	var got []string
	require.NotPanics(t, func() { got = e.Suggest(v.Email, "user@gmial.com") })
	assert.Empty(t, got)
	require.NotPanics(t, func() { got = v.Suggest(v.Email, "user@gmial.com") })
	assert.Empty(t, got)

	entries := logs.FilterMessage("Suggestion heuristic panicked").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "email", entries[0].ContextMap()["field_type"])
	assert.Equal(t, "table corrupted", entries[0].ContextMap()["panic"])

	restore()
	assert.Equal(t, []string{"Did you mean @gmail.com?"}, e.Suggest(v.Email, "user@gmial.com"))
}
