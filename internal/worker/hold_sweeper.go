package worker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// HoldSweeper releases expired seat holds on a fixed interval so abandoned
// checkouts return their seats to the pool.
type HoldSweeper struct {
	inventory HoldReleaser
	interval  time.Duration
}

type HoldReleaser interface {
	SweepExpiredHolds(now time.Time) int
}

func NewHoldSweeper(inv HoldReleaser, interval time.Duration) *HoldSweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &HoldSweeper{inventory: inv, interval: interval}
}

func (w *HoldSweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logrus.WithField("interval", w.interval).Info("hold sweeper started")

	for {
		select {
		case <-ctx.Done():
			logrus.Info("hold sweeper stopped")
			return
		case <-ticker.C:
			if released := w.inventory.SweepExpiredHolds(time.Now()); released > 0 {
				logrus.WithField("released", released).Info("expired seat holds released")
			}
		}
	}
}
