package ui

import (
	"fmt"
	"strconv"
	"strings"

	"effectsize/domain/report"

	"github.com/gomarkdown/markdown"
)

// RenderMarkdown formats a report as a markdown document. precision is the
// number of digits after the decimal point; it is an explicit parameter
// rather than process-wide state so concurrent renders cannot interfere.
func RenderMarkdown(rep *report.Report, precision int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Effect-Size Report %s\n\n", rep.ID)
	if rep.Source != "" {
		fmt.Fprintf(&b, "Source: `%s`\n\n", rep.Source)
	}
	fmt.Fprintf(&b, "Method: %s, coverage %s", rep.Method, formatValue(rep.Coverage, precision))
	if rep.Method == report.MethodBootstrap {
		fmt.Fprintf(&b, ", %d resamples, seed %d", rep.Resamples, rep.Seed)
	}
	b.WriteString("\n\n")

	b.WriteString("| Measure | Estimate | Lower | Upper | n(x) | n(y) |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, res := range rep.Results {
		ci := res.Interval
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %d | %d |\n",
			res.Measure,
			formatValue(res.Estimate, precision),
			formatValue(ci.Lower(), precision),
			formatValue(ci.Upper(), precision),
			res.SampleSizeX, res.SampleSizeY,
		)
	}

	fmt.Fprintf(&b, "\nCreated %s\n", rep.CreatedAt.Time().Format("2006-01-02 15:04:05 MST"))
	return b.String()
}

// RenderHTML converts the markdown rendering of a report to HTML
func RenderHTML(rep *report.Report, precision int) []byte {
	return markdown.ToHTML([]byte(RenderMarkdown(rep, precision)), nil, nil)
}

func formatValue(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}
