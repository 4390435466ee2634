package server

import (
	"sync"

	"weldsim/physics"
)

// history is a fixed-capacity buffer of recent analyses, newest first. When
// full, adding drops the oldest entry.
type history struct {
	mu       sync.Mutex
	capacity int
	items    []*physics.Analysis
}

func newHistory(capacity int) *history {
	if capacity < 1 {
		capacity = 1
	}
	return &history{capacity: capacity}
}

func (h *history) Add(a *physics.Analysis) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.items = append([]*physics.Analysis{a}, h.items...)
	if len(h.items) > h.capacity {
		h.items = h.items[:h.capacity]
	}
}

// Items returns a snapshot, newest first.
func (h *history) Items() []*physics.Analysis {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]*physics.Analysis, len(h.items))
	copy(out, h.items)
	return out
}
