package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/keysniff/keysniff/internal/types"
)

// SummaryOptions carries the run statistics printed under the table.
type SummaryOptions struct {
	Duration     time.Duration
	FilesScanned int
}

// PrintSummary writes per-pattern counts, in order of first appearance, and
// a footer with scan statistics.
func PrintSummary(w io.Writer, findings []types.Finding, opts SummaryOptions) {
	if len(findings) == 0 {
		fmt.Fprintln(w, "No secrets found ✅")
	} else {
		var order []string
		counts := map[string]int{}
		for _, f := range findings {
			if _, ok := counts[f.Pattern]; !ok {
				order = append(order, f.Pattern)
			}
			counts[f.Pattern]++
		}
		table := tablewriter.NewWriter(w)
		table.Header("PATTERN", "FINDINGS")
		for _, name := range order {
			// bytes.Buffer and terminal writes do not fail in practice
			_ = table.Append([]string{name, strconv.Itoa(counts[name])})
		}
		_ = table.Render()
	}
	if opts.Duration > 0 || opts.FilesScanned > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Findings: %d\n", len(findings))
		if opts.FilesScanned > 0 {
			fmt.Fprintf(w, "Files scanned: %d\n", opts.FilesScanned)
		}
		if opts.Duration > 0 {
			fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
		}
	}
}
