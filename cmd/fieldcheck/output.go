package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	fv "github.com/Gobd/fieldvalidation"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

var (
	dim  = color.New(color.Faint).SprintFunc()
	bold = color.New(color.Bold).SprintFunc()
)

func statusText(s fv.Status) string {
	switch s {
	case fv.StatusValid:
		return color.GreenString(string(s))
	case fv.StatusInvalid:
		return color.RedString(string(s))
	case fv.StatusValidating:
		return color.YellowString(string(s))
	default:
		return dim(string(s))
	}
}

func mark(ok bool) string {
	if ok {
		return color.GreenString("✓")
	}
	return color.RedString("✗")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeResults(w io.Writer, format string, results []EvalResult) error {
	if format == outputJSON {
		return writeJSON(w, results)
	}

	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s %q: %s\n", bold("value"), r.Value, statusText(r.Status))
		if r.Message != "" {
			fmt.Fprintf(w, "  %s\n", r.Message)
		}
		writeChecklist(w, r.Checklist)
		for _, s := range r.Suggestions {
			fmt.Fprintf(w, "  %s %s\n", color.CyanString("suggestion:"), s)
		}
	}
	return nil
}

func writeChecklist(w io.Writer, c fv.Checklist) {
	for _, item := range c.Required {
		writeItem(w, item, "")
	}
	for _, item := range c.Optional {
		writeItem(w, item, dim(" (optional)"))
	}
}

func writeItem(w io.Writer, item fv.ChecklistItem, suffix string) {
	fmt.Fprintf(w, "  %s %s%s\n", mark(item.Satisfied), item.Label, suffix)
	if item.Hint != "" {
		fmt.Fprintf(w, "      %s\n", dim(item.Hint))
	}
}

func writeRules(w io.Writer, format string, rules []fv.Rule) error {
	if format == outputJSON {
		if rules == nil {
			rules = []fv.Rule{}
		}
		return writeJSON(w, rules)
	}

	if len(rules) == 0 {
		fmt.Fprintln(w, "No rules.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tREQUIRED\tLABEL\tHINT")
	for _, r := range rules {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.ID, yesNo(r.Required), r.Label, strings.TrimSpace(r.Hint))
	}
	return tw.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
