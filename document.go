package fieldvalidation

type (
	// Checker is the single capability every rule carries: a pure predicate
	// over the current field value.
	Checker interface {
		Check(value string) bool
	}

	// CheckFunc adapts an ordinary function into a [Checker].
	CheckFunc func(value string) bool

	// FieldType selects a default ruleset from a [Registry].
	FieldType string

	// Outcome is the result of one rule against one value. Outcomes are
	// derived on every evaluation and never stored beyond the owning [State].
	Outcome struct {
		Rule      Rule `json:"rule"`
		Satisfied bool `json:"satisfied"`
	}
)

// Check implements [Checker].
func (f CheckFunc) Check(value string) bool {
	return f(value)
}

// Field types with a built-in ruleset.
const (
	Email    FieldType = "email"
	Password FieldType = "password"
	Phone    FieldType = "phone"
	Name     FieldType = "name"
	Card     FieldType = "card"
	Date     FieldType = "date"
	Zipcode  FieldType = "zipcode"
	Text     FieldType = "text"
)

// FieldTypes lists the built-in field types in a stable order.
func FieldTypes() []FieldType {
	return []FieldType{Email, Password, Phone, Name, Card, Date, Zipcode, Text}
}

func (t FieldType) String() string {
	return string(t)
}
