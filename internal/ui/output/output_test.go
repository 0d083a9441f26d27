package output_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/mk/internal/engine/scheduler"
	"go.trai.ch/mk/internal/ui/output"
)

func TestPrinter_Summary(t *testing.T) {
	var buf bytes.Buffer
	p := output.New(&buf)

	p.Summary([]scheduler.Result{
		{Target: domain.NewInternedString("nbody-c"), Status: scheduler.StatusCompleted},
		{Target: domain.NewInternedString("nbody-rs"), Status: scheduler.StatusCached},
		{Target: domain.NewInternedString("broken"), Status: scheduler.StatusFailed},
	})

	out := buf.String()
	assert.Contains(t, out, "nbody-c")
	assert.Contains(t, out, "Completed")
	assert.Contains(t, out, "nbody-rs")
	assert.Contains(t, out, "Cached")
	assert.Contains(t, out, "broken")
	assert.Contains(t, out, "Failed")
}

func TestPrinter_Summary_Empty(t *testing.T) {
	var buf bytes.Buffer
	output.New(&buf).Summary(nil)
	assert.Empty(t, buf.String())
}

func TestPrinter_TimingReport(t *testing.T) {
	var buf bytes.Buffer
	p := output.New(&buf)

	timing := domain.Timing{
		Wall:   2345 * time.Millisecond,
		User:   2 * time.Second,
		System: 100 * time.Millisecond,
		MaxRSS: 65536,
	}

	p.TimingReport([]scheduler.Result{
		{Target: domain.NewInternedString("nbody-c"), Status: scheduler.StatusCompleted, Timing: &timing},
	})

	out := buf.String()
	assert.Contains(t, out, "nbody-c")
	assert.Contains(t, out, "wall 2.345s")
	assert.Contains(t, out, "user 2s")
	assert.Contains(t, out, "sys 100ms")
	assert.Contains(t, out, "maxrss 65536KB")
}

func TestPrinter_TimingReport_NoTiming(t *testing.T) {
	var buf bytes.Buffer
	p := output.New(&buf)

	p.TimingReport([]scheduler.Result{
		{Target: domain.NewInternedString("nbody-c"), Status: scheduler.StatusFailed},
	})

	out := buf.String()
	assert.Contains(t, out, "nbody-c")
	assert.NotContains(t, out, "wall")
}
