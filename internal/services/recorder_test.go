package services

import (
	"sync"

	"moneymanager/internal/events"
)

// changeRecorder collects published changes.
type changeRecorder struct {
	mu      sync.Mutex
	changes []events.Change
}

func (r *changeRecorder) Publish(c events.Change) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, c)
}

func (r *changeRecorder) all() []events.Change {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]events.Change(nil), r.changes...)
}
