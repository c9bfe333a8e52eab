package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/snacktrack-dev/snacktrack/internal/domain/entities"
	"github.com/snacktrack-dev/snacktrack/internal/domain/values"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// TableFormatter formats verdict reports as a human-readable table.
type TableFormatter struct {
	writer      io.Writer
	EnableColor bool
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		writer:      w,
		EnableColor: true, // Default to true, caller can disable
	}
}

// colorize returns the string wrapped in ANSI color codes if enabled.
func (f *TableFormatter) colorize(text, code string) string {
	if !f.EnableColor {
		return text
	}
	return code + text + colorReset
}

// Format writes the verdict report as a table.
//
//nolint:errcheck // Table formatting errors are non-critical (best-effort terminal output)
func (f *TableFormatter) Format(report *entities.VerdictReport) error {
	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 72), colorGray))
	fmt.Fprintf(f.writer, "Scan for: %s\n", f.colorize(report.User, colorBold))
	fmt.Fprintf(f.writer, "Scan ID:  %s\n", report.ID)
	fmt.Fprintf(f.writer, "Executed: %s\n", report.StartTime.Format(time.RFC3339))
	fmt.Fprintln(f.writer)

	if len(report.Findings) == 0 {
		fmt.Fprintln(f.writer, "No ingredients evaluated.")
		return nil
	}

	fmt.Fprintln(f.writer, f.colorize("Ingredients:", colorBold))
	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 72), colorGray))

	for _, finding := range report.Findings {
		f.formatFinding(finding)
	}

	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 72), colorGray))

	if report.Degraded {
		fmt.Fprintln(f.writer, f.colorize(
			fmt.Sprintf("Note: %d rule(s) failed during evaluation; verdicts may be incomplete.", len(report.Failures)),
			colorYellow))
	}

	f.formatSummary(report.Summary)
	return nil
}

// formatFinding formats a single per-ingredient verdict.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatFinding(finding entities.Finding) {
	symbol, color := f.impactInfo(finding.Impact)
	fmt.Fprintf(f.writer, "%s %s: %s\n",
		f.colorize(symbol, color),
		finding.Ingredient,
		f.colorize(finding.Impact.String(), color))
	fmt.Fprintf(f.writer, "  Reason: %s\n", finding.Reason)
	if finding.RuleID != "" {
		fmt.Fprintf(f.writer, "  Rule: %s\n", finding.RuleID)
	}
}

// formatSummary formats the summary counts.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatSummary(summary entities.ReportSummary) {
	fmt.Fprintf(f.writer, "%s %d ingredients: %s safe, %s caution, %s avoid\n",
		f.colorize("Summary:", colorBold),
		summary.Total,
		f.colorize(fmt.Sprintf("%d", summary.Safe), colorGreen),
		f.colorize(fmt.Sprintf("%d", summary.Caution), colorYellow),
		f.colorize(fmt.Sprintf("%d", summary.Avoid), colorRed))
}

// impactInfo returns the symbol and color for an impact.
func (f *TableFormatter) impactInfo(impact values.Impact) (string, string) {
	switch impact {
	case values.ImpactAvoid:
		return "✗", colorRed
	case values.ImpactCaution:
		return "!", colorYellow
	default:
		return "✓", colorGreen
	}
}
