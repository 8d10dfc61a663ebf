package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fedi-wallet/internal/service"
)

type balanceWorker struct {
	job      service.ClientBalanceJob
	interval time.Duration
}

// NewBalanceWorker runs job every interval.
func NewBalanceWorker(job service.ClientBalanceJob, interval time.Duration) Worker {
	return &balanceWorker{job: job, interval: interval}
}

func (b *balanceWorker) Run(ctx context.Context) {
	b.job.Start(ctx, b.interval)
}

func (b *balanceWorker) Stop() {
	b.job.Stop()
}
