package fieldvalidation

// SetSuggester swaps the heuristic for t until the returned restore runs.
func SetSuggester(t FieldType, fn func(string) []string) (restore func()) {
	prev, had := suggesters[t]
	suggesters[t] = fn
	return func() {
		if had {
			suggesters[t] = prev
			return
		}
		delete(suggesters, t)
	}
}
