package cart

import (
	"sync"
)

// Line is a single cart entry, enriched with product details at read time.
type Line struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	ImageURL  string  `json:"imageUrl"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}

// Repository tracks per-user carts. Carts live for the process lifetime
// only; checkout goes through the order flow, not through persistence here.
type Repository interface {
	Add(userID, productID, qty int) map[int]int
	Get(userID int) map[int]int
	Remove(userID, productID int)
	Clear(userID int)
}

type InMemoryRepository struct {
	mu    sync.RWMutex
	carts map[int]map[int]int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{carts: make(map[int]map[int]int)}
}

func (r *InMemoryRepository) Add(userID, productID, qty int) map[int]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart := r.carts[userID]
	if cart == nil {
		cart = make(map[int]int)
		r.carts[userID] = cart
	}
	cart[productID] += qty
	// negative adjustments can empty a line out entirely
	if cart[productID] <= 0 {
		delete(cart, productID)
	}
	return copyCart(cart)
}

func (r *InMemoryRepository) Get(userID int) map[int]int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyCart(r.carts[userID])
}

func (r *InMemoryRepository) Remove(userID, productID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts[userID], productID)
}

func (r *InMemoryRepository) Clear(userID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, userID)
}

func copyCart(in map[int]int) map[int]int {
	out := make(map[int]int, len(in))
	for pid, q := range in {
		out[pid] = q
	}
	return out
}
