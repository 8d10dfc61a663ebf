package service

import (
	"sync"

	"github.com/MKhiriev/go-fedi-wallet/internal/logger"
	"github.com/MKhiriev/go-fedi-wallet/models"
)

type balanceHub struct {
	// deliverMu serialises deliveries so subscribers observe publishes in
	// order. Callbacks must not call Publish or SubscribeBalance.
	deliverMu sync.Mutex

	mu          sync.Mutex
	nextID      int
	subscribers map[int]func(models.Amount)
	last        models.Amount
	known       bool

	logger *logger.Logger
}

// NewClientBalanceService creates an empty balance hub.
func NewClientBalanceService(logger *logger.Logger) ClientBalanceService {
	return &balanceHub{
		subscribers: make(map[int]func(models.Amount)),
		logger:      logger,
	}
}

func (h *balanceHub) SubscribeBalance(fn func(models.Amount)) func() {
	h.deliverMu.Lock()
	defer h.deliverMu.Unlock()

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subscribers[id] = fn
	last, known := h.last, h.known
	h.mu.Unlock()

	h.logger.Debug().Int("subscriber", id).Msg("balance subscriber added")

	if known {
		fn(last)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subscribers, id)
			h.mu.Unlock()
			h.logger.Debug().Int("subscriber", id).Msg("balance subscriber removed")
		})
	}
}

func (h *balanceHub) Publish(balance models.Amount) bool {
	h.deliverMu.Lock()
	defer h.deliverMu.Unlock()

	h.mu.Lock()
	if h.known && h.last == balance {
		h.mu.Unlock()
		return false
	}
	h.last, h.known = balance, true

	targets := make([]func(models.Amount), 0, len(h.subscribers))
	for _, fn := range h.subscribers {
		targets = append(targets, fn)
	}
	h.mu.Unlock()

	h.logger.Debug().Int64("amount_sats", balance.Sats()).Int("subscribers", len(targets)).Msg("balance changed")

	for _, fn := range targets {
		fn(balance)
	}

	return true
}

func (h *balanceHub) Balance() (models.Amount, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.last, h.known
}
