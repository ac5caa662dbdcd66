package category

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("sub-category not found")
	// ErrInUse is returned when a sub-category still has products pointing
	// at it. There is no cascade; the admin must move or delete products
	// first.
	ErrInUse = errors.New("sub-category is referenced by products")
)

type Repository interface {
	// ListTree returns every category with its sub-categories nested.
	ListTree() ([]Category, error)
	ListSubCategories() ([]SubCategory, error)
	CreateSubCategory(sc SubCategory) (SubCategory, error)
	UpdateSubCategory(id int, sc SubCategory) (SubCategory, error)
	DeleteSubCategory(id int) error
}

// InMemoryRepository backs handler tests without a database.
type InMemoryRepository struct {
	mu            sync.RWMutex
	categories    []Category
	subCategories []SubCategory
	nextID        int

	// referenced marks sub-category ids that products point at, so delete
	// behaves like the FK constraint would.
	referenced map[int]bool
}

func NewInMemoryRepository(categories []Category, subCategories []SubCategory) *InMemoryRepository {
	r := &InMemoryRepository{
		categories:    categories,
		subCategories: make([]SubCategory, 0, len(subCategories)),
		nextID:        1,
		referenced:    map[int]bool{},
	}

	maxID := 0
	for _, sc := range subCategories {
		sc.Slug = Slugify(sc.Name)
		r.subCategories = append(r.subCategories, sc)
		if sc.ID > maxID {
			maxID = sc.ID
		}
	}
	r.nextID = maxID + 1
	return r
}

// MarkReferenced simulates a product row holding a FK to the sub-category.
func (r *InMemoryRepository) MarkReferenced(subCategoryID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.referenced[subCategoryID] = true
}

func (r *InMemoryRepository) ListTree() ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Category, 0, len(r.categories))
	for _, cat := range r.categories {
		cat.SubCategories = make([]SubCategory, 0)
		for _, sc := range r.subCategories {
			if sc.CategoryID == cat.ID {
				cat.SubCategories = append(cat.SubCategories, sc)
			}
		}
		out = append(out, cat)
	}
	return out, nil
}

func (r *InMemoryRepository) ListSubCategories() ([]SubCategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]SubCategory, len(r.subCategories))
	copy(out, r.subCategories)
	return out, nil
}

func (r *InMemoryRepository) CreateSubCategory(sc SubCategory) (SubCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sc.ID == 0 {
		sc.ID = r.nextID
		r.nextID++
	}
	sc.Slug = Slugify(sc.Name)
	r.subCategories = append(r.subCategories, sc)
	return sc, nil
}

func (r *InMemoryRepository) UpdateSubCategory(id int, sc SubCategory) (SubCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.subCategories {
		if r.subCategories[i].ID == id {
			sc.ID = id
			sc.Slug = Slugify(sc.Name)
			r.subCategories[i] = sc
			return sc, nil
		}
	}
	return SubCategory{}, ErrNotFound
}

func (r *InMemoryRepository) DeleteSubCategory(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.referenced[id] {
		return ErrInUse
	}
	for i := range r.subCategories {
		if r.subCategories[i].ID == id {
			r.subCategories = append(r.subCategories[:i], r.subCategories[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
