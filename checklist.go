package fieldvalidation

// ChecklistItem is one row of a requirements panel.
type ChecklistItem struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Satisfied bool   `json:"satisfied"`
	Hint      string `json:"hint,omitempty"`
}

// Checklist splits a state's outcomes into the required and optional rows of
// a requirements panel.
type Checklist struct {
	Required []ChecklistItem `json:"required"`
	Optional []ChecklistItem `json:"optional"`
}

// Checklist builds the panel for s. Required rows are always listed and
// carry their hint while unsatisfied. Optional rows are listed when showAll
// is set or once the rule has been touched.
func (s State) Checklist(showAll bool) Checklist {
	var c Checklist
	for _, o := range s.Outcomes {
		item := ChecklistItem{
			ID:        o.Rule.ID,
			Label:     o.Rule.Label,
			Satisfied: o.Satisfied,
		}
		if !o.Satisfied {
			item.Hint = o.Rule.Hint
		}
		if o.Rule.Required {
			c.Required = append(c.Required, item)
			continue
		}
		if showAll || s.Touched.Has(o.Rule.ID) {
			c.Optional = append(c.Optional, item)
		}
	}
	return c
}
