package fieldvalidation_test

import (
	"fmt"
	"strings"

	v "github.com/Gobd/fieldvalidation"
)

func ExampleField() {
	f := v.New().NewField(v.Password)

	f.Update("abc")
	fmt.Println(f.Status(), f.Message())

	f.Update("Abcdefg1")
	fmt.Println(f.Status(), f.Valid())
	// Output:
	// invalid Password must be at least 8 characters
	// valid true
}

func ExampleSuggest() {
	fmt.Println(v.Suggest(v.Email, "user@gmial.com"))
	fmt.Println(v.Suggest(v.Phone, "5551234567"))
	// Output:
	// [Did you mean @gmail.com?]
	// [(555) 123-4567]
}

func ExampleNewRuleSet() {
	rs, err := v.NewRuleSet(
		v.NewRule("length", "At least 3 characters", v.MinRunes(3)).Require(),
		v.By("lower", "Lowercase only", func(s string) bool { return s == strings.ToLower(s) }),
	)
	if err != nil {
		panic(err)
	}

	res := v.New().Evaluate("Ab", rs)
	for _, o := range res.Outcomes {
		fmt.Println(o.Rule.ID, o.Satisfied)
	}
	fmt.Println(res.Valid)
	// Output:
	// length false
	// lower false
	// false
}

func ExampleLuhn() {
	fmt.Println(v.Luhn("4539 1488 0343 6467"))
	fmt.Println(v.Luhn("1234567812345678"))
	// Output:
	// true
	// false
}
