package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/bashtech/gpacalc-crawler/internal/catalog"
	"github.com/bashtech/gpacalc-crawler/internal/grading"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
)

const noSystemsMessage = "No systems discovered; nothing to update."

// OutputResult contains data to be output
type OutputResult struct {
	RunAt       time.Time               `json:"run_at"`
	Mode        Mode                    `json:"mode"`
	CatalogPath string                  `json:"catalog"`
	Version     string                  `json:"version,omitempty"`
	Discovered  int                     `json:"discovered"`
	Stats       catalog.MergeStats      `json:"stats"`
	DryRun      bool                    `json:"dry_run,omitempty"`
	Systems     []grading.GradingSystem `json:"systems"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatTable:
		return writeTable(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	if result.Systems == nil {
		result.Systems = []grading.GradingSystem{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	if result.Discovered == 0 {
		fmt.Fprintln(w, noSystemsMessage)
		return nil
	}

	if verbose {
		for _, sys := range result.Systems {
			fmt.Fprintf(w, "%s: %s (scale %g, %d grades)\n", sys.ID, sys.Name, sys.Scale, len(sys.Grades))
		}
		fmt.Fprintf(w, "\nAdded %d, updated %d, rejected %d, pruned %d\n",
			result.Stats.Added, result.Stats.Updated, result.Stats.Rejected, result.Stats.Pruned)
	}

	fmt.Fprintln(w, summaryLine(result))
	return nil
}

// writeTable renders the discovered systems as a terminal table
func writeTable(w io.Writer, result *OutputResult) error {
	if result.Discovered == 0 {
		fmt.Fprintln(w, noSystemsMessage)
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Country", "Scale", "Grades"})
	for _, sys := range result.Systems {
		t.AppendRow(table.Row{sys.ID, sys.Name, sys.Country, sys.Scale, len(sys.Grades)})
	}
	t.AppendFooter(table.Row{"", "", "Total", "", len(result.Systems)})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 48},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	t.Render()

	fmt.Fprintln(w, summaryLine(result))
	return nil
}

func summaryLine(result *OutputResult) string {
	name := filepath.Base(result.CatalogPath)
	if result.DryRun {
		return fmt.Sprintf("Dry run: would merge %d systems into %s (version %s)", result.Discovered, name, result.Version)
	}
	return fmt.Sprintf("Merged %d systems into %s", result.Discovered, name)
}
