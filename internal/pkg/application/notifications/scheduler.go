package notifications

import (
	"context"
	"sync"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

// RetryScheduler drives the dispatcher's retry loop on a fixed
// interval. A failed tick is logged and the loop keeps ticking; a
// database outage should not require a restart to resume retries.
type RetryScheduler struct {
	dispatcher Dispatcher
	interval   time.Duration
	done       chan struct{}
	stop       sync.Once
}

func NewRetryScheduler(d Dispatcher, interval time.Duration) *RetryScheduler {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	return &RetryScheduler{
		dispatcher: d,
		interval:   interval,
		done:       make(chan struct{}),
	}
}

func (s *RetryScheduler) Start(ctx context.Context) {
	go s.run(ctx)
}

// Stop never blocks: the loop may already have exited with the run
// context, and shutdown must not hang on a scheduler that is no
// longer listening. Safe to call more than once.
func (s *RetryScheduler) Stop(ctx context.Context) {
	s.stop.Do(func() { close(s.done) })
}

func (s *RetryScheduler) run(ctx context.Context) {
	log := logging.GetFromContext(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := s.dispatcher.Tick(ctx)
			if err != nil {
				log.Error("retry tick failed", "err", err.Error())
			}
		}
	}
}
