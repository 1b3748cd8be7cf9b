package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/docseg/internal/bench/matching"
)

// WritePairs lists every row of a solved matching followed by its global score.
func WritePairs(res matching.Result, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	writeHeader(tw, "#", "True", "Pred", "IoU")
	for i, p := range res.Pairs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.4f\n", i, p.True, p.Pred, p.Similarity)
	}
	fmt.Fprintf(tw, "\nn=%d total=%.4f score=%.4f\n", res.N, res.Total(), res.Score())

	return tw.Flush()
}
