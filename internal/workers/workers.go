package workers

import (
	"context"

	"github.com/MKhiriev/case-mirror/internal/config"
	"github.com/MKhiriev/case-mirror/internal/logger"
	"github.com/MKhiriev/case-mirror/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers wires up every background worker of the application. Currently
// that is only the sync worker driving mirror reconciliation.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewSyncWorker(services.SyncEngine, cfg.SyncInterval, logger),
		},
	}
}

func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}
