package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/jward/jassdoc"
	"github.com/jward/jassdoc/internal/diag"
)

// formatObjectsText formats CLIObject results as aligned columns.
func formatObjectsText(w io.Writer, objs []CLIObject) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tNAME\tKIND\tFILE\tLINE\tPAGE")
	for _, o := range objs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\n",
			o.Index, o.Name, o.Kind, o.File, o.Line, o.Page)
	}
	tw.Flush()
}

// formatLookupText formats a CLILookup as readable text.
func formatLookupText(w io.Writer, l CLILookup) {
	fmt.Fprintf(w, "Field:    %s\n", l.Field)
	fmt.Fprintf(w, "Text:     %s\n", l.Text)
	fmt.Fprintf(w, "Expanded: %s\n", l.Expanded)
	fmt.Fprintf(w, "Outcome:  %s\n", l.Outcome)
	if l.Target != nil {
		fmt.Fprintf(w, "Target:   %s %s (#%d) %s\n", l.Target.Kind, l.Target.Name, l.Target.Index, l.Target.Page)
	}
}

// outputResultText dispatches to the appropriate text formatter based on the
// result type.
func outputResultText(w io.Writer, result CLIResult) error {
	switch v := result.Results.(type) {
	case []CLIObject:
		formatObjectsText(w, v)
	case CLILookup:
		formatLookupText(w, v)
	case nil:
	default:
		return fmt.Errorf("unsupported result type for text format: %T", v)
	}

	// Pagination footer.
	if result.TotalCount != nil {
		count := *result.TotalCount
		if objs, ok := result.Results.([]CLIObject); ok && len(objs) < count {
			fmt.Fprintf(w, "\nShowing %d of %d results\n", len(objs), count)
		}
	}
	return nil
}

// outputResult writes result to stdout in the selected format.
func outputResult(result CLIResult) error {
	if flagFormat == "text" {
		return outputResultText(os.Stdout, result)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// outputError writes an error in the selected format and returns it so RunE
// can propagate it to Cobra. In JSON mode the error is written to stdout as a
// CLIResult envelope. In text mode it goes to stderr.
func outputError(command string, err error) error {
	errorHandled = true
	if flagFormat == "text" {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(CLIResult{Command: command, Error: err.Error()})
	return err
}

// printSummary writes the counters of a build and every diagnostic of
// warning severity or worse.
func printSummary(w io.Writer, rs jassdoc.ResolveStats, ps jassdoc.RenderStats, diags []jassdoc.Diagnostic) {
	fmt.Fprintf(w, "Objects: %d (bound: %d, literal: %d, unresolved: %d)\n",
		rs.Objects, rs.Bound, rs.Literal, rs.Unresolved)
	fmt.Fprintf(w, "Pages: %d (skipped: %d, excluded: %d, failed: %d)\n",
		ps.Pages, ps.Skipped, ps.Excluded, ps.Failed)

	counts := make(map[diag.Severity]int)
	for _, d := range diags {
		counts[d.Severity]++
		switch d.Severity {
		case diag.SevError:
			color.New(color.FgRed).Fprintln(w, d.String())
		case diag.SevWarning:
			color.New(color.FgYellow).Fprintln(w, d.String())
		}
	}

	status := color.New(color.FgGreen, color.Bold)
	if counts[diag.SevError] > 0 {
		status = color.New(color.FgRed, color.Bold)
	} else if counts[diag.SevWarning] > 0 {
		status = color.New(color.FgYellow, color.Bold)
	}
	status.Fprintf(w, "%d errors, %d warnings, %d notes\n",
		counts[diag.SevError], counts[diag.SevWarning], counts[diag.SevInfo])
}

// validFormats lists accepted values for --format.
var validFormats = []string{"json", "text"}

// validateFormat checks that the --format flag value is recognized.
func validateFormat(format string) error {
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be %s", format, strings.Join(validFormats, " or "))
}
