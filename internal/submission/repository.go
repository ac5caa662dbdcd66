package submission

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("submission not found")

type Repository interface {
	CreateContact(s ContactSubmission) (ContactSubmission, error)
	ListContact() ([]ContactSubmission, error)
	DeleteContact(id int) error

	CreateJoin(s JoinSubmission) (JoinSubmission, error)
	ListJoin() ([]JoinSubmission, error)
	DeleteJoin(id int) error

	CreateTenantDown(s TenantDownSubmission) (TenantDownSubmission, error)
	ListTenantDown() ([]TenantDownSubmission, error)
	DeleteTenantDown(id int) error
}

// InMemoryRepository backs handler tests.
type InMemoryRepository struct {
	mu         sync.RWMutex
	contact    []ContactSubmission
	join       []JoinSubmission
	tenantDown []TenantDownSubmission
	nextID     int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) CreateContact(s ContactSubmission) (ContactSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = r.nextID
	r.nextID++
	r.contact = append(r.contact, s)
	return s, nil
}

func (r *InMemoryRepository) ListContact() ([]ContactSubmission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ContactSubmission, len(r.contact))
	copy(out, r.contact)
	return out, nil
}

func (r *InMemoryRepository) DeleteContact(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.contact {
		if r.contact[i].ID == id {
			r.contact = append(r.contact[:i], r.contact[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) CreateJoin(s JoinSubmission) (JoinSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = r.nextID
	r.nextID++
	r.join = append(r.join, s)
	return s, nil
}

func (r *InMemoryRepository) ListJoin() ([]JoinSubmission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]JoinSubmission, len(r.join))
	copy(out, r.join)
	return out, nil
}

func (r *InMemoryRepository) DeleteJoin(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.join {
		if r.join[i].ID == id {
			r.join = append(r.join[:i], r.join[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) CreateTenantDown(s TenantDownSubmission) (TenantDownSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = r.nextID
	r.nextID++
	r.tenantDown = append(r.tenantDown, s)
	return s, nil
}

func (r *InMemoryRepository) ListTenantDown() ([]TenantDownSubmission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]TenantDownSubmission, len(r.tenantDown))
	copy(out, r.tenantDown)
	return out, nil
}

func (r *InMemoryRepository) DeleteTenantDown(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tenantDown {
		if r.tenantDown[i].ID == id {
			r.tenantDown = append(r.tenantDown[:i], r.tenantDown[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
