package notifymock

import (
	"context"
	"sync"

	"docflow-backend/internal/notify"
)

var _ notify.Dispatcher = (*Dispatcher)(nil)

// Dispatcher captures every message it is asked to deliver.
type Dispatcher struct {
	mu   sync.Mutex
	Sent []notify.Message
}

func (d *Dispatcher) Notify(_ context.Context, m notify.Message) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Sent = append(d.Sent, m)
}

func (d *Dispatcher) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Sent = nil
}
