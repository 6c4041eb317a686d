// Package transform provides the string transformations shared by the field
// validators and the suggestion heuristics: digit extraction and the grouped
// display forms of North American phone numbers. None of the functions
// mutate their input; callers decide whether to write a result back.
package transform
