package tui

import (
	"sync"

	"github.com/MKhiriev/go-fedi-wallet/models"
	tea "github.com/charmbracelet/bubbletea"
)

// balanceFeed moves balance callbacks into the event loop. It keeps at most
// one pending value: a newer balance replaces one the loop has not read yet.
type balanceFeed struct {
	ch        chan models.Amount
	done      chan struct{}
	closeOnce sync.Once
}

func newBalanceFeed() *balanceFeed {
	return &balanceFeed{
		ch:   make(chan models.Amount, 1),
		done: make(chan struct{}),
	}
}

// push is the subscription callback. It never blocks.
func (f *balanceFeed) push(amount models.Amount) {
	for {
		select {
		case <-f.done:
			return
		case f.ch <- amount:
			return
		default:
			select {
			case <-f.ch:
			default:
			}
		}
	}
}

// wait returns a command that delivers the next balance as a [balanceMsg].
// The model re-arms it after every delivery. It yields nil once the feed is
// closed.
func (f *balanceFeed) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case amount := <-f.ch:
			return balanceMsg{amount: amount}
		case <-f.done:
			return nil
		}
	}
}

func (f *balanceFeed) close() {
	f.closeOnce.Do(func() { close(f.done) })
}
