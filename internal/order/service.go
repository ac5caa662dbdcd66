package order

import (
	"errors"
)

// ErrInvalidTransition is returned for any status change other than
// pending to done or pending to rejected.
var ErrInvalidTransition = errors.New("order status can only move from pending to done or rejected")

// Service provides business logic for orders.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) Create(ord Order) (Order, error) {
	if ord.ProductID <= 0 {
		return Order{}, errors.New("invalid product")
	}
	if ord.Quantity < 1 {
		return Order{}, errors.New("quantity must be at least 1")
	}
	ord.Status = StatusPending
	return s.repo.Create(ord)
}

func (s *Service) List(f Filter) []Order {
	orders, err := s.repo.List(f)
	if err != nil {
		return []Order{}
	}
	return orders
}

func (s *Service) GetByID(id int) (Order, error) {
	return s.repo.GetByID(id)
}

// Transition moves a pending order to done or rejected. The email side
// effect belongs to the handler; by the time it runs the status change has
// already been committed and is never rolled back.
func (s *Service) Transition(id int, status string) (Order, error) {
	if status != StatusDone && status != StatusRejected {
		return Order{}, ErrInvalidTransition
	}

	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Order{}, err
	}
	if existing.Status != StatusPending {
		return Order{}, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(id, status); err != nil {
		return Order{}, err
	}
	existing.Status = status
	return existing, nil
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
