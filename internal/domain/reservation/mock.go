package reservation

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"nautica/internal/core/apperror"
)

// MockRepository is an in-memory Repository used in tests and local wiring.
type MockRepository struct {
	mu             sync.Mutex
	seq            int64
	rows           map[int64]*Reservation
	FailNextInsert bool
}

func NewMockRepository() *MockRepository {
	return &MockRepository{rows: make(map[int64]*Reservation)}
}

func (m *MockRepository) Insert(ctx context.Context, r *Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailNextInsert {
		m.FailNextInsert = false
		return errors.New("insert failed")
	}
	m.seq++
	r.ID = m.seq
	r.CreatedAt = time.Now()
	r.UpdatedAt = r.CreatedAt
	cp := *r
	m.rows[r.ID] = &cp
	return nil
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok {
		return nil, apperror.NewNotFound("reservation", id)
	}
	cp := *r
	return &cp, nil
}

func (m *MockRepository) List(ctx context.Context) ([]*Reservation, error) {
	return m.filter(func(*Reservation) bool { return true }), nil
}

func (m *MockRepository) FindByProduct(ctx context.Context, productID int64, typ ProductType) ([]*Reservation, error) {
	return m.filter(func(r *Reservation) bool {
		return r.ProductID == productID && r.Type == typ
	}), nil
}

func (m *MockRepository) FindByStatus(ctx context.Context, status Status) ([]*Reservation, error) {
	return m.filter(func(r *Reservation) bool { return r.Status == status }), nil
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) ([]*Reservation, error) {
	return m.filter(func(r *Reservation) bool { return r.Email == email }), nil
}

func (m *MockRepository) FindByFolioID(ctx context.Context, folioID int64) ([]*Reservation, error) {
	return m.filter(func(r *Reservation) bool { return r.FolioID == folioID }), nil
}

func (m *MockRepository) Update(ctx context.Context, r *Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[r.ID]; !ok {
		return apperror.NewNotFound("reservation", r.ID)
	}
	r.UpdatedAt = time.Now()
	cp := *r
	m.rows[r.ID] = &cp
	return nil
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return apperror.NewNotFound("reservation", id)
	}
	delete(m.rows, id)
	return nil
}

func (m *MockRepository) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

// filter returns matching rows newest first, mirroring the store ordering.
func (m *MockRepository) filter(keep func(*Reservation) bool) []*Reservation {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Reservation, 0, len(m.rows))
	for _, r := range m.rows {
		if keep(r) {
			cp := *r
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

var _ Repository = (*MockRepository)(nil)
