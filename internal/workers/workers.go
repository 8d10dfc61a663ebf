package workers

import (
	"context"

	"github.com/MKhiriev/go-fedi-wallet/internal/config"
	"github.com/MKhiriev/go-fedi-wallet/internal/server"
	"github.com/MKhiriev/go-fedi-wallet/internal/service"
)

// Workers runs a fixed set of workers.
type Workers struct {
	workers []Worker
}

// NewWorkers groups ws; nil entries are skipped.
func NewWorkers(ws ...Worker) *Workers {
	kept := make([]Worker, 0, len(ws))
	for _, w := range ws {
		if w != nil {
			kept = append(kept, w)
		}
	}
	return &Workers{workers: kept}
}

// NewClientWorkers builds the client's worker set: the balance watcher and,
// when debugServer is non-nil, the debug API.
func NewClientWorkers(services *service.ClientServices, cfg config.ClientWorkers, debugServer server.Server) *Workers {
	ws := []Worker{NewBalanceWorker(services.BalanceJob, cfg.BalanceInterval)}
	if debugServer != nil {
		ws = append(ws, NewServerWorker(debugServer))
	}
	return NewWorkers(ws...)
}

// Run starts every worker in order.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops every worker in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
