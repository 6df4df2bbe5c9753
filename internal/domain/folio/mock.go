package folio

import (
	"context"
	"sync"

	"nautica/internal/core/apperror"
)

// NoopTx runs the callback without a real transaction. Pair it with
// MockRepository, whose operations are individually atomic.
type NoopTx struct{}

// RunInTransaction implements tx.Manager.
func (NoopTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func notFound(entity string, id any) error {
	return apperror.NewNotFound(entity, id)
}

// MockRepository is an in-memory Repository for unit tests. Counter bumps
// are atomic under its mutex, mirroring the store-level guarantee.
type MockRepository struct {
	mu       sync.Mutex
	counters map[int]int64
	rows     map[int64]*Folio
	nextID   int64

	// FailNextInsert makes the next Insert call fail with the given error.
	FailNextInsert error
	// FailNextNumber makes every NextNumber call fail with the given error.
	FailNextNumber error
}

// NewMockRepository creates an empty mock store.
func NewMockRepository() *MockRepository {
	return &MockRepository{
		counters: make(map[int]int64),
		rows:     make(map[int64]*Folio),
	}
}

// NextNumber implements Repository.
func (m *MockRepository) NextNumber(ctx context.Context, year int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailNextNumber != nil {
		return 0, m.FailNextNumber
	}
	m.counters[year]++
	return m.counters[year], nil
}

// Insert implements Repository.
func (m *MockRepository) Insert(ctx context.Context, f *Folio) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.FailNextInsert; err != nil {
		m.FailNextInsert = nil
		// Roll the counter back, like a real transaction would.
		m.counters[f.Year]--
		return err
	}
	m.nextID++
	f.ID = m.nextID
	cp := *f
	m.rows[f.ID] = &cp
	return nil
}

// GetByNumber implements Repository.
func (m *MockRepository) GetByNumber(ctx context.Context, composite int64) (*Folio, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range m.rows {
		if f.Folio == composite {
			cp := *f
			return &cp, nil
		}
	}
	return nil, notFound("folio", composite)
}

// GetByID implements Repository.
func (m *MockRepository) GetByID(ctx context.Context, id int64) (*Folio, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.rows[id]; ok {
		cp := *f
		return &cp, nil
	}
	return nil, notFound("folio", id)
}

// Count returns how many folio rows exist.
func (m *MockRepository) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

// All returns a snapshot of every stored folio.
func (m *MockRepository) All() []*Folio {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Folio, 0, len(m.rows))
	for _, f := range m.rows {
		cp := *f
		out = append(out, &cp)
	}
	return out
}

// Ensure compile-time interface compliance.
var _ Repository = (*MockRepository)(nil)
