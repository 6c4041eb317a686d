// Package fieldvalidation qualifies a single string input against an ordered
// set of rules and produces the feedback a form needs: per-rule outcomes, an
// aggregate validity flag, a primary error message, a requirements checklist
// and "did you mean" suggestions.
//
// Rules are data plus one capability, [Checker]:
//
//	rs := fieldvalidation.MustRuleSet(
//	    fieldvalidation.NewRule("length", "At least 8 characters", fieldvalidation.MinRunes(8)).Require(),
//	    fieldvalidation.By("special", "One symbol", hasSymbol),
//	)
//
// Built-in rulesets exist for every [FieldType] and can be replaced per
// [Registry] or per [Field]. A field is valid when all required rules pass.
// Optional rules only decide validity in a set without required rules, where
// at least one of them must pass.
//
// A [Field] owns its [State]. Every Update runs the pure transition
// [Engine.Next], which records each rule that fails on a non-empty value in
// the field's touched set. The touched set only grows, and it decides which
// optional failures may surface as the primary message.
//
//	f := fieldvalidation.New().NewField(fieldvalidation.Email)
//	f.Update("jane@gmial.com")
//	f.Valid()       // true
//	f.Suggestions() // ["Did you mean @gmail.com?"]
//
// Sub-packages:
//   - openapi – OpenAPI component schemas for registered rulesets
//   - transform – digit extraction and phone number grouping
package fieldvalidation
