package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/wrenlabs/budget/telemetry"
)

// withTelemetry returns a context carrying a fresh telemetry.Collector when
// enabled is true (the --telemetry flag), and a report func to defer that
// prints the collected tree to w. When disabled, the context carries no
// collector and report is a no-op, matching the teacher's check.go/
// format.go pattern of only paying for instrumentation when asked.
func withTelemetry(ctx context.Context, enabled bool, w io.Writer) (context.Context, func()) {
	if !enabled {
		return ctx, func() {}
	}
	collector := telemetry.NewTimingCollector()
	ctx = telemetry.WithCollector(ctx, collector)
	return ctx, func() {
		_, _ = fmt.Fprintln(w)
		collector.Report(w)
	}
}
