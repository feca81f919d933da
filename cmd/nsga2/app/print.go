package app

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"sigs.k8s.io/yaml"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
	"github.com/mihai-snyk/nsga2/pkg/multiobjective/storage"
)

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func printYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// printRun writes a run summary followed by its Pareto front sorted by the
// first objective. duration is omitted when zero.
func printRun(w io.Writer, run storage.RunRecord, duration time.Duration) error {
	tw := newTabWriter(w)
	fmt.Fprintf(tw, "Run:\t%s\n", run.ID)
	fmt.Fprintf(tw, "Problem:\t%s (%d dimensions)\n", run.Problem, run.Config.Dimensions)
	fmt.Fprintf(tw, "Created:\t%s\n", humanize.Time(run.CreatedAt))
	if duration > 0 {
		fmt.Fprintf(tw, "Duration:\t%s\n", duration.Round(time.Millisecond))
	}
	fmt.Fprintf(tw, "Generations:\t%d\n", run.Generations)
	fmt.Fprintf(tw, "Evaluations:\t%s\n", humanize.Comma(int64(run.Evaluations)))
	if run.CacheHits > 0 {
		fmt.Fprintf(tw, "Cache hits:\t%s\n", humanize.Comma(int64(run.CacheHits)))
	}
	fmt.Fprintf(tw, "Fronts:\t%d\n", run.Fronts)
	if n := len(run.History); n > 0 {
		fmt.Fprintf(tw, "Best:\t%s\n", formatPoint(run.History[n-1].Best))
	}

	front := run.ParetoFront()
	slices.SortStableFunc(front, func(a, b storage.SolutionRecord) int {
		return compareFirst(a.Objectives, b.Objectives)
	})
	fmt.Fprintf(tw, "Pareto front:\t%s\n", english.Plural(len(front), "solution", ""))
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "OBJECTIVES\tVECTOR\tDISTANCE")
	for _, s := range front {
		distance := "inf"
		if s.Distance != nil {
			distance = fmt.Sprintf("%.4g", *s.Distance)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", formatPoint(s.Objectives), formatPoint(s.Vector), distance)
	}
	return tw.Flush()
}

func printRunSummaries(w io.Writer, summaries []storage.RunSummary) error {
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "ID\tPROBLEM\tCREATED\tEVALUATIONS\tFRONT")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", s.ID, s.Problem, humanize.Time(s.CreatedAt),
			humanize.Comma(int64(s.Evaluations)), s.FrontSize)
	}
	return tw.Flush()
}

func formatPoint(p []float64) string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = fmt.Sprintf("%.4g", v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func compareFirst(a, b []float64) int {
	if len(a) == 0 || len(b) == 0 {
		return len(a) - len(b)
	}
	return cmp.Compare(a[0], b[0])
}

func bestPoints(history []storage.SnapshotRecord) []framework.ObjectiveSpacePoint {
	best := make([]framework.ObjectiveSpacePoint, len(history))
	for i, s := range history {
		best[i] = s.Best
	}
	return best
}

func frontPoints(front []storage.SolutionRecord) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, len(front))
	for i, s := range front {
		points[i] = s.Objectives
	}
	return points
}
