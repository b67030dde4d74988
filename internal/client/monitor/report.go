package monitor

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

// writeReport prints the final two-row summary.
func writeReport(w io.Writer, total, aboveThreshold time.Duration) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total test duration:\t%s\n", total.Round(time.Millisecond))
	fmt.Fprintf(tw, "Total time above threshold:\t%s\n", aboveThreshold.Round(time.Millisecond))
	return tw.Flush()
}
