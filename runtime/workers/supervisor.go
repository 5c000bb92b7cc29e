package workers

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"batepapo/errors"
)

// Supervisor runs each worker in a goroutine, recovers panics,
// restarts crashed workers after a delay, and shuts everything down
// when the parent context is canceled or Stop is called.
type Supervisor struct {
	cancel       context.CancelFunc
	wg           *sync.WaitGroup
	log          *slog.Logger
	restartDelay time.Duration
	workers      []Worker
}

func NewSupervisor(log *slog.Logger, restartDelay time.Duration) *Supervisor {
	return &Supervisor{wg: &sync.WaitGroup{}, log: log, restartDelay: restartDelay}
}

func (s *Supervisor) Add(worker ...Worker) *Supervisor {
	s.workers = append(s.workers, worker...)
	return s
}

// Run supervises every registered worker until the parent context is
// canceled or Stop is called, then waits for all of them to finish.
func (s *Supervisor) Run(ctx context.Context) {
	supervisedCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	defer s.cancel()

	for _, worker := range s.workers {
		s.Start(supervisedCtx, worker)
	}
	s.wg.Wait()
}

// Start runs a worker under supervision.
// If its Run method panics, the supervisor recovers and restarts the
// worker; a failure in one worker never stops the supervisor itself.
// A worker returning nil terminated on purpose and is not restarted.
func (s *Supervisor) Start(ctx context.Context, worker Worker) {
	s.wg.Add(1)
	workerName := GetWorkerName(worker)

	go func() {
		defer s.wg.Done()

		for {
			if ctx.Err() != nil {
				s.log.Info(fmt.Sprintf("Stopping : %s", workerName))
				return
			}

			err := func() (err error) {
				defer func() {
					if r := recover(); r != nil {
						err = errors.ErrWorkerPanic
					}
				}()
				return worker.Run(ctx)
			}()

			if err == nil {
				s.log.Info(fmt.Sprintf("Worker finished : %s", workerName))
				return
			}

			if ctx.Err() != nil {
				s.log.Info("Worker stopped (context canceled)", "name", workerName)
				return
			}

			s.log.Warn("Worker crashed, restarting", "name", workerName, "error", err)
			select {
			case <-ctx.Done():
				// Priority stop: skip the restart delay.
				return
			case <-time.After(s.restartDelay):
			}
		}
	}()
}

// Stop cancels all supervised workers. Callers of Run observe the
// shutdown through Run returning.
func (s *Supervisor) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
}
