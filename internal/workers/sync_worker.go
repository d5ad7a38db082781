// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/case-mirror/internal/config"
	"github.com/MKhiriev/case-mirror/internal/logger"
	"github.com/MKhiriev/case-mirror/internal/service"
)

// syncWorker drives mirror reconciliation: it runs one cycle immediately on
// Start and then one per interval. Cycles run on a single goroutine, so two
// cycles can never overlap; a cycle that outlasts the interval simply delays
// the next tick.
type syncWorker struct {
	engine   service.SyncEngine
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncWorker creates a syncWorker that calls engine.RunCycle on a ticker.
// The worker is idle until Start is called. A non-positive interval falls
// back to [config.DefaultSyncInterval].
func NewSyncWorker(engine service.SyncEngine, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = config.DefaultSyncInterval
	}
	return &syncWorker{
		engine:   engine,
		interval: interval,
		logger:   logger,
	}
}

// Start implements Worker. It stops any previously running worker, then
// launches a background goroutine that runs a reconciliation cycle first
// immediately and then every interval. The goroutine exits when ctx is
// cancelled or Stop is called.
//
// Cycle failures are logged and do not stop the worker: a failed cycle
// leaves the mirror untouched and the next tick retries from scratch.
func (w *syncWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		w.runCycle(workerCtx)

		for {
			select {
			case <-workerCtx.Done():
				return
			case <-t.C:
				w.runCycle(workerCtx)
			}
		}
	}()
}

// Stop implements Worker. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the worker
// is not running (no-op in that case).
func (w *syncWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *syncWorker) runCycle(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	if _, err := w.engine.RunCycle(ctx); err != nil {
		w.logger.Err(err).
			Str("func", "syncWorker.runCycle").
			Msg("reconciliation cycle failed")
	}
}
