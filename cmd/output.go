package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/JoshuaShepherd/rethink-content/internal/content"
)

var (
	// titleStyle for bold section headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for written files
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// warnStyle for skipped targets
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	// boxStyle for run summaries
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1)
)

// FormatMaterializeResult renders what a convert run wrote and skipped.
func FormatMaterializeResult(w io.Writer, sections int, res content.MaterializeResult) {
	fmt.Fprintf(w, "Discovered %d section(s).\n", sections)

	for _, path := range res.Written {
		fmt.Fprintf(w, "%s %s\n", successStyle.Render("wrote"), path)
	}
	for _, path := range res.Skipped {
		fmt.Fprintf(w, "%s %s %s\n", warnStyle.Render("skipped"), path, dimStyle.Render("(already exists)"))
	}

	summary := fmt.Sprintf("%s %d written  %d skipped",
		titleStyle.Render("Convert complete"), len(res.Written), len(res.Skipped))
	fmt.Fprintln(w, boxStyle.Render(summary))
}

// FormatRecordList renders the loaded content records as a listing.
func FormatRecordList(w io.Writer, records []*content.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, dimStyle.Render("No content records found."))
		return
	}

	for _, rec := range records {
		order := dimStyle.Render("  -")
		if rec.Order != nil {
			order = dimStyle.Render(fmt.Sprintf("%3d", *rec.Order))
		}
		fmt.Fprintf(w, "%s %s %s\n", order, titleStyle.Render(rec.Slug), rec.Title)
		fmt.Fprintf(w, "    %s\n", dimStyle.Render(rec.Summary))
	}
	fmt.Fprintf(w, "\n%d record(s)\n", len(records))
}
