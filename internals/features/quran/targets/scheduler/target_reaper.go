package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Purger = bagian store yang dipakai reaper (GormStore.PurgeDeletedTargets).
type Purger interface {
	PurgeDeletedTargets(ctx context.Context, cutoff time.Time) (int64, error)
}

type ReaperConfig struct {
	Schedule      string // format cron 5 field, mis. "15 2 * * *"
	RetentionDays int
	Timeout       time.Duration
}

// StartTargetReaperCron: hard-delete target soft-deleted yang lebih tua dari retensi.
// Caller wajib memanggil Stop() saat shutdown.
func StartTargetReaperCron(p Purger, cfg ReaperConfig) (*cron.Cron, error) {
	if cfg.RetentionDays < 1 {
		return nil, fmt.Errorf("retention harus >= 1 hari (got %d)", cfg.RetentionDays)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 4 * time.Minute
	}
	retention := time.Duration(cfg.RetentionDays) * 24 * time.Hour

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	_, err := c.AddFunc(cfg.Schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
		defer cancel()
		if _, err := runTargetReaper(ctx, p, retention, time.Now); err != nil {
			log.Printf("[TARGET-REAPER] DB error: %v", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("add cron %q: %w", cfg.Schedule, err)
	}

	log.Printf("[TARGET-REAPER] started schedule=%q retention=%dd", cfg.Schedule, cfg.RetentionDays)
	c.Start()
	return c, nil
}

func runTargetReaper(ctx context.Context, p Purger, retention time.Duration, now func() time.Time) (int64, error) {
	cutoff := now().Add(-retention)
	n, err := p.PurgeDeletedTargets(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		log.Printf("[TARGET-REAPER] hard-deleted %d targets older than %s", n, cutoff.Format(time.RFC3339))
	} else {
		log.Println("[TARGET-REAPER] nothing to delete")
	}
	return n, nil
}
