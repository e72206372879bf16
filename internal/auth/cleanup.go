package auth

import (
	"context"
	"fmt"

	"github.com/robfig/cron"
	log "github.com/sirupsen/logrus"
)

const DefaultCleanupSchedule = "@every 8h"

type sessionScanner interface {
	ScanAndClean(ctx context.Context) int
}

// StartSessionCleanup schedules periodic removal of expired sessions.
// onCleaned, if set, receives the number of sessions removed by each run.
func StartSessionCleanup(
	ctx context.Context,
	scanner sessionScanner,
	schedule string,
	onCleaned func(removed int),
) (*cron.Cron, error) {
	c := cron.New()
	err := c.AddFunc(schedule, func() {
		if ctx.Err() != nil {
			return
		}
		removed := scanner.ScanAndClean(ctx)
		if removed > 0 {
			log.Infof("session cleanup removed %d expired sessions", removed)
		}
		if onCleaned != nil {
			onCleaned(removed)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule session cleanup [%s]: %w", schedule, err)
	}

	c.Start()
	return c, nil
}
