package store

import (
	"context"
	"sync"

	"github.com/Priya8975/pawpal-landing/internal/domain"
)

// MemoryOutcomes counts outcomes in process when Redis is not configured.
type MemoryOutcomes struct {
	mu     sync.Mutex
	counts map[string]map[domain.Outcome]int64
}

func NewMemoryOutcomes() *MemoryOutcomes {
	return &MemoryOutcomes{counts: make(map[string]map[domain.Outcome]int64)}
}

func (m *MemoryOutcomes) RecordOutcome(_ context.Context, surface string, outcome domain.Outcome) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.counts[surface] == nil {
		m.counts[surface] = make(map[domain.Outcome]int64)
	}
	m.counts[surface][outcome]++
	return nil
}

func (m *MemoryOutcomes) OutcomeCounts(_ context.Context) (map[string]map[domain.Outcome]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]map[domain.Outcome]int64, len(m.counts))
	for surface, byOutcome := range m.counts {
		cp := make(map[domain.Outcome]int64, len(byOutcome))
		for k, v := range byOutcome {
			cp[k] = v
		}
		out[surface] = cp
	}
	return out, nil
}
