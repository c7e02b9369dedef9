package scan

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
)

// Schedule scans root on the standard cron expression spec until ctx is
// cancelled. A run still in progress when the next one is due is not
// overlapped; the due run is skipped. Schedule waits for a running scan to
// finish before returning.
//
// Common expressions:
//   - "0 3 * * *"   daily at 3 AM
//   - "*/15 * * * *" every 15 minutes
//   - "@every 1h"   hourly from start
func (s *Scanner) Schedule(ctx context.Context, spec, root string, onReport func(*Report, error)) error {
	if _, err := cron.ParseStandard(spec); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", spec, err)
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(spec, func() {
		r, err := s.Run(ctx, root)
		if ctx.Err() != nil {
			return
		}
		onReport(r, err)
	}); err != nil {
		return fmt.Errorf("failed to schedule scan: %w", err)
	}

	c.Start()
	s.logger.Info("scan scheduler started", "schedule", spec, "root", root)

	<-ctx.Done()
	<-c.Stop().Done()
	s.logger.Info("scan scheduler stopped")
	return nil
}
