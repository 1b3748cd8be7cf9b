package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Document Segmentation Benchmark ===\n")
	fmt.Fprintf(tw, "run %s, IoU threshold %.2f\n", r.Meta.RunID, r.Config.IoUThreshold)

	for _, jr := range r.Jobs {
		fmt.Fprintf(tw, "\n--- Job: %s ---\n\n", jr.JobName)
		writeAggregatedTable(tw, &jr)
		writeLatencyTable(tw, &jr)
		writePerCaseTable(tw, &jr)
	}

	tw.Flush()
}

func writeHeader(tw *tabwriter.Writer, header ...string) {
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))
}

func writeAggregatedTable(tw *tabwriter.Writer, jr *JobReport) {
	fmt.Fprintf(tw, "Aggregated Results (mean across %d cases)\n\n", countCases(jr))

	writeHeader(tw, "System", "GlobalIoU", "MatchedIoU", "P", "R", "F1", "Exact", "Errors")
	for _, agg := range jr.Aggregated {
		row := []string{
			agg.SystemName,
			fmt.Sprintf("%.4f", agg.GlobalIoU),
			fmt.Sprintf("%.4f", agg.MeanMatchedIoU),
			fmt.Sprintf("%.4f", agg.Precision),
			fmt.Sprintf("%.4f", agg.Recall),
			fmt.Sprintf("%.4f", agg.F1),
			fmt.Sprintf("%d/%d", agg.ExactMatches, agg.TrueCount),
			fmt.Sprintf("%d/%d", agg.ErrorCount, agg.CaseCount),
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
}

func writeLatencyTable(tw *tabwriter.Writer, jr *JobReport) {
	fmt.Fprintf(tw, "Matching Latency (aggregated across cases)\n\n")

	writeHeader(tw, "System", "Min", "p50", "p90", "p99", "Max", "Mean", "Stddev", "Samples")
	for _, agg := range jr.Aggregated {
		s := agg.Latency
		row := []string{
			agg.SystemName,
			fmtDuration(s.Min),
			fmtDuration(s.P50()),
			fmtDuration(s.P90()),
			fmtDuration(s.P99()),
			fmtDuration(s.Max),
			fmtDuration(s.Mean),
			fmtDuration(s.Stddev),
			fmt.Sprintf("%d", s.SampleCount),
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
}

func writePerCaseTable(tw *tabwriter.Writer, jr *JobReport) {
	fmt.Fprintf(tw, "Per-Case Results\n\n")

	writeHeader(tw, "Case", "System", "GlobalIoU", "F1", "True", "Pred", "p50", "Status")
	for _, e := range jr.PerCase {
		status := "OK"
		if e.Error != "" {
			status = "ERR"
		}
		row := []string{
			e.CaseID,
			e.SystemName,
			fmt.Sprintf("%.4f", e.GlobalIoU),
			fmt.Sprintf("%.4f", e.F1),
			fmt.Sprintf("%d", e.TrueCount),
			fmt.Sprintf("%d", e.PredCount),
			fmtDuration(e.Latency.P50()),
			status,
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
}

func countCases(jr *JobReport) int {
	if len(jr.Aggregated) == 0 {
		return 0
	}
	return jr.Aggregated[0].CaseCount
}

func fmtDuration(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
