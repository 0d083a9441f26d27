// Package output renders human-facing command output.
package output

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/mk/internal/engine/scheduler"
	"go.trai.ch/mk/internal/ui/style"
)

// Printer writes build summaries and timing reports.
type Printer struct {
	w io.Writer
}

// New creates a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Summary prints one line per target with its final status.
func (p *Printer) Summary(results []scheduler.Result) {
	for _, res := range results {
		icon, st := statusStyle(res.Status)
		fmt.Fprintf(p.w, "%s %s %s\n",
			st.Render(icon),
			style.Name.Render(res.Target.String()),
			st.Render(string(res.Status)),
		)
	}
}

// TimingReport prints the timing of every measured target.
func (p *Printer) TimingReport(results []scheduler.Result) {
	for _, res := range results {
		icon, st := statusStyle(res.Status)
		line := fmt.Sprintf("%s %s", st.Render(icon), style.Name.Render(res.Target.String()))
		if res.Timing != nil {
			line += " " + style.Metric.Render(formatTiming(*res.Timing))
		}
		fmt.Fprintln(p.w, line)
	}
}

func statusStyle(status scheduler.TargetStatus) (string, lipgloss.Style) {
	switch status {
	case scheduler.StatusCompleted:
		return style.Check, style.Success
	case scheduler.StatusFailed:
		return style.Cross, style.Failure
	case scheduler.StatusCached:
		return style.Circle, style.Skipped
	default:
		return style.Warning, style.Skipped
	}
}

func formatTiming(t domain.Timing) string {
	s := fmt.Sprintf("wall %s", roundDuration(t.Wall))
	if t.User > 0 || t.System > 0 {
		s += fmt.Sprintf("  user %s  sys %s", roundDuration(t.User), roundDuration(t.System))
	}
	if t.MaxRSS > 0 {
		s += fmt.Sprintf("  maxrss %dKB", t.MaxRSS)
	}
	return s
}

func roundDuration(d time.Duration) time.Duration {
	return d.Round(time.Millisecond)
}
