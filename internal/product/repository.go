package product

import (
	"errors"
	"strings"
	"sync"

	"github.com/aquabluegroup/fishwaale-backend/internal/category"
)

var ErrNotFound = errors.New("product not found")

type Repository interface {
	List() ([]Product, error)
	ListBySubCategorySlug(slug string) ([]Product, error)
	ListFiltered(f Filter) ([]Product, error)
	GetByID(id int) (Product, error)
	Create(p Product) (Product, error)
	Update(id int, p Product) (Product, error)
	Delete(id int) error
}

// InMemoryRepository backs handler and service tests. Sub-categories are
// seeded alongside products so slug listing and parent-category filtering
// behave like the SQL joins.
type InMemoryRepository struct {
	mu            sync.RWMutex
	storage       []Product
	subCategories map[int]category.SubCategory
	nextID        int
}

func NewInMemoryRepository(seed []Product, subCategories []category.SubCategory) *InMemoryRepository {
	r := &InMemoryRepository{
		storage:       make([]Product, 0, len(seed)),
		subCategories: make(map[int]category.SubCategory, len(subCategories)),
		nextID:        1,
	}

	for _, sc := range subCategories {
		sc.Slug = category.Slugify(sc.Name)
		r.subCategories[sc.ID] = sc
	}

	maxID := 0
	for _, p := range seed {
		r.storage = append(r.storage, r.enrich(p))
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) enrich(p Product) Product {
	if sc, ok := r.subCategories[p.SubCategoryID]; ok {
		p.SubCategoryName = sc.Name
		p.CategoryID = sc.CategoryID
	}
	return p
}

func (r *InMemoryRepository) List() ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) ListBySubCategorySlug(slug string) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0)
	for _, p := range r.storage {
		sc, ok := r.subCategories[p.SubCategoryID]
		if ok && sc.Slug == slug {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) ListFiltered(f Filter) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0)
	for _, p := range r.storage {
		if f.SubCategoryID != 0 && p.SubCategoryID != f.SubCategoryID {
			continue
		}
		if f.CategoryID != 0 {
			sc, ok := r.subCategories[p.SubCategoryID]
			if !ok || sc.CategoryID != f.CategoryID {
				continue
			}
		}
		if f.Query != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Query)) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.storage {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) Create(p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == 0 {
		p.ID = r.nextID
		r.nextID++
	}
	p = r.enrich(p)
	r.storage = append(r.storage, p)
	return p, nil
}

func (r *InMemoryRepository) Update(id int, p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.storage {
		if r.storage[i].ID == id {
			p.ID = id
			p = r.enrich(p)
			r.storage[i] = p
			return p, nil
		}
	}
	return Product{}, ErrNotFound
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
