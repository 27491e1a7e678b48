// Package report renders a reconciliation report as SQL text or YAML.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"hole-distance/internal/models"
)

const (
	FormatSQL  = "sql"
	FormatYAML = "yaml"
)

// Formats lists the supported output formats.
var Formats = []string{FormatSQL, FormatYAML}

// Write renders rep in the named format.
func Write(w io.Writer, format string, rep models.Report) error {
	switch format {
	case FormatSQL, "":
		return WriteSQL(w, rep)
	case FormatYAML:
		return WriteYAML(w, rep)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// WriteSQL writes the UPDATE statements, diagnostics and summary.
func WriteSQL(w io.Writer, rep models.Report) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "SQL Updates:")
	for _, r := range rep.Results {
		for _, line := range SQLLines(r) {
			fmt.Fprintln(bw, line)
		}
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Summary:")
	fmt.Fprintf(bw, "Total 'tii' points found: %d\n", rep.Summary.Tee)
	fmt.Fprintf(bw, "Total 'korv' points found: %d\n", rep.Summary.Target)
	fmt.Fprintf(bw, "Total holes missing 'tii' or 'korv': %d\n", rep.Summary.Missing)

	return bw.Flush()
}

// SQLLines returns the statement and diagnostic lines for one hole.
func SQLLines(r models.Result) []string {
	switch r.Outcome {
	case models.OutcomeComplete:
		return []string{fmt.Sprintf(
			"UPDATE hole SET coordinates = '%s', length = %d WHERE number = '%s';",
			r.Coordinates, *r.Length, r.Number)}
	case models.OutcomePartialTee:
		return []string{
			fmt.Sprintf("UPDATE hole SET coordinates = '%s' WHERE number = '%s';", r.Coordinates, r.Number),
			fmt.Sprintf("-- Missing 'korv' for hole %s", r.Number),
		}
	case models.OutcomeMissingTee:
		return []string{fmt.Sprintf("-- Missing 'tii' for hole %s", r.Number)}
	default:
		return []string{fmt.Sprintf("-- No Placemark found for hole %s", r.Number)}
	}
}

// WriteYAML writes the results and summary as a YAML document.
func WriteYAML(w io.Writer, rep models.Report) error {
	out, err := yaml.Marshal(rep)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	_, err = w.Write(out)
	return err
}
