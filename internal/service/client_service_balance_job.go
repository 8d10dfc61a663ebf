package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-fedi-wallet/internal/logger"
)

const defaultBalanceInterval = 5 * time.Second

type clientBalanceJob struct {
	wallet ClientWalletService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientBalanceJob creates a job that calls wallet.RefreshOpen on a
// ticker. The job is idle until Start is called.
func NewClientBalanceJob(wallet ClientWalletService, logger *logger.Logger) ClientBalanceJob {
	return &clientBalanceJob{wallet: wallet, logger: logger}
}

// Start implements ClientBalanceJob. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *clientBalanceJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultBalanceInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.poll(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.poll(jobCtx)
			}
		}
	}()
}

// Stop implements ClientBalanceJob. Safe to call when the job is not
// running.
func (j *clientBalanceJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *clientBalanceJob) poll(ctx context.Context) {
	if _, err := j.wallet.RefreshOpen(ctx); err != nil && ctx.Err() == nil {
		j.logger.Debug().Err(err).Str("func", "clientBalanceJob.poll").Msg("balance poll failed")
	}
}
