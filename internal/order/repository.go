package order

import (
	"errors"
	"strings"
	"sync"
)

var ErrNotFound = errors.New("order not found")

type Repository interface {
	Create(ord Order) (Order, error)
	List(f Filter) ([]Order, error)
	GetByID(id int) (Order, error)
	UpdateStatus(id int, status string) error
	Delete(id int) error
}

// InMemoryRepository backs handler and service tests.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Order
	nextID  int
}

func NewInMemoryRepository(seed []Order) *InMemoryRepository {
	r := &InMemoryRepository{
		storage: make([]Order, 0, len(seed)),
		nextID:  1,
	}

	maxID := 0
	for _, ord := range seed {
		r.storage = append(r.storage, ord)
		if ord.ID > maxID {
			maxID = ord.ID
		}
	}
	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) Create(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ord.ID == 0 {
		ord.ID = r.nextID
		r.nextID++
	}
	r.storage = append(r.storage, ord)
	return ord, nil
}

func (r *InMemoryRepository) List(f Filter) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, 0)
	for _, ord := range r.storage {
		if f.Status != "" && ord.Status != f.Status {
			continue
		}
		if f.CategoryID != 0 && ord.CategoryID != f.CategoryID {
			continue
		}
		if f.Query != "" {
			q := strings.ToLower(f.Query)
			if !strings.Contains(strings.ToLower(ord.Name), q) &&
				!strings.Contains(strings.ToLower(ord.Email), q) {
				continue
			}
		}
		out = append(out, ord)
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ord := range r.storage {
		if ord.ID == id {
			return ord, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) UpdateStatus(id int, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage = append(r.storage[:i], r.storage[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
