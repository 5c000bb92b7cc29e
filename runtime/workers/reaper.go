package workers

import (
	"context"
	"log/slog"
	"time"

	"batepapo/domain"
	"batepapo/services"
)

// ReaperWorker enforces the hard liveness timeout: on a fixed period
// it re-reads the full participant set, evicts everyone whose last
// heartbeat is older than the threshold, and records a departure
// notice for each. The scan period and the threshold are independent
// deployment constants.
type ReaperWorker struct {
	presence  services.IPresenceService
	messages  services.IMessageService
	log       *slog.Logger
	threshold time.Duration
	interval  time.Duration
	now       func() time.Time
}

func NewReaperWorker(
	presence services.IPresenceService,
	messages services.IMessageService,
	log *slog.Logger,
	threshold time.Duration,
	interval time.Duration,
) *ReaperWorker {
	return &ReaperWorker{
		presence:  presence,
		messages:  messages,
		log:       log,
		threshold: threshold,
		interval:  interval,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Run executes the main loop of the worker, sweeping stale
// participants on every tick until the context is canceled.
func (w *ReaperWorker) Run(ctx context.Context) error {
	w.log.Info("Starting reaper worker", "interval", w.interval, "threshold", w.threshold)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

// Sweep performs one full scan. Every record is processed
// independently: a failure evicting one participant is logged and the
// scan moves on to the next. Scan failures are never fatal.
//
// Eviction and the departure notice are two separate writes; if the
// notice fails after the delete, the participant is still gone.
func (w *ReaperWorker) Sweep(ctx context.Context) {
	participants, err := w.presence.ListActive()
	if err != nil {
		w.log.Error("Presence scan failed", "error", err)
		return
	}

	now := w.now()
	for _, p := range participants {
		if ctx.Err() != nil {
			return
		}
		if !p.StaleAt(now, w.threshold) {
			continue
		}

		if err := w.presence.Evict(p.Name); err != nil {
			w.log.Error("Eviction failed", "name", p.Name, "error", err)
			continue
		}
		if err := w.messages.AppendSystemNotice(p.Name, domain.LeftNotice); err != nil {
			w.log.Error("Departure notice not recorded", "name", p.Name, "error", err)
		}
		w.log.Info("Evicted stale participant", "name", p.Name, "lastSeen", p.LastSeen)
	}
}
