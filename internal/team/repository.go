package team

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("team member not found")

type Repository interface {
	List() ([]Member, error)
	Create(m Member) (Member, error)
	Update(id int, m Member) (Member, error)
	Delete(id int) error
}

// InMemoryRepository backs handler tests.
type InMemoryRepository struct {
	mu      sync.RWMutex
	members []Member
	nextID  int
}

func NewInMemoryRepository(seed []Member) *InMemoryRepository {
	r := &InMemoryRepository{
		members: make([]Member, 0, len(seed)),
		nextID:  1,
	}

	maxID := 0
	for _, m := range seed {
		r.members = append(r.members, m)
		if m.ID > maxID {
			maxID = m.ID
		}
	}
	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) List() ([]Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Member, len(r.members))
	copy(out, r.members)
	return out, nil
}

func (r *InMemoryRepository) Create(m Member) (Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m.ID == 0 {
		m.ID = r.nextID
		r.nextID++
	}
	r.members = append(r.members, m)
	return m, nil
}

func (r *InMemoryRepository) Update(id int, m Member) (Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.members {
		if r.members[i].ID == id {
			m.ID = id
			r.members[i] = m
			return m, nil
		}
	}
	return Member{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.members {
		if r.members[i].ID == id {
			r.members = append(r.members[:i], r.members[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
