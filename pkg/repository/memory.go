package repository

import (
	"context"
	"sync"

	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// Memory implements RosterSource with an in-memory CSV body
type Memory struct {
	mu      sync.RWMutex
	body    []byte
	err     error
	fetches int
}

// NewMemory creates a new memory source serving body
func NewMemory(body []byte) *Memory {
	return &Memory{
		body: append([]byte(nil), body...),
	}
}

// Fetch returns a copy of the stored body, or the configured failure
func (m *Memory) Fetch(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.fetches++
	if m.err != nil {
		return nil, goerr.Wrap(m.err, "failed to download roster", goerr.T(model.ErrTagFetch))
	}

	// Return a copy to prevent external modification
	return append([]byte(nil), m.body...), nil
}

// Location implements RosterSource
func (m *Memory) Location() string {
	return "memory"
}

// Put replaces the stored body
func (m *Memory) Put(body []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.body = append([]byte(nil), body...)
	m.err = nil
}

// Fail makes every following Fetch return err
func (m *Memory) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.err = err
}

// Count returns the number of Fetch calls
func (m *Memory) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.fetches
}
