package blog

import (
	"errors"
	"strings"
	"sync"
)

var (
	ErrNotFound         = errors.New("blog post not found")
	ErrCategoryNotFound = errors.New("blog category not found")
)

type Repository interface {
	ListPublished(f Filter) ([]Blog, error)
	ListAll() ([]Blog, error)
	GetBySlug(slug string) (Blog, error)
	GetByID(id int) (Blog, error)
	Create(b Blog) (Blog, error)
	Update(id int, b Blog) (Blog, error)
	Delete(id int) error
	// IncrementViewCount bumps the counter through the stored procedure.
	// Callers treat failures as best-effort.
	IncrementViewCount(id int) error

	ListCategories() ([]Category, error)
	CreateCategory(cat Category) (Category, error)
	UpdateCategory(id int, cat Category) (Category, error)
	DeleteCategory(id int) error
}

// InMemoryRepository backs handler and service tests.
type InMemoryRepository struct {
	mu         sync.RWMutex
	posts      []Blog
	categories []Category
	nextID     int
	nextCatID  int

	// FailIncrement makes IncrementViewCount error, for exercising the
	// best-effort read path.
	FailIncrement bool
}

func NewInMemoryRepository(posts []Blog, categories []Category) *InMemoryRepository {
	r := &InMemoryRepository{
		posts:      make([]Blog, 0, len(posts)),
		categories: make([]Category, 0, len(categories)),
		nextID:     1,
		nextCatID:  1,
	}

	maxID := 0
	for _, b := range posts {
		r.posts = append(r.posts, b)
		if b.ID > maxID {
			maxID = b.ID
		}
	}
	r.nextID = maxID + 1

	maxCatID := 0
	for _, cat := range categories {
		r.categories = append(r.categories, cat)
		if cat.ID > maxCatID {
			maxCatID = cat.ID
		}
	}
	r.nextCatID = maxCatID + 1
	return r
}

func (r *InMemoryRepository) ListPublished(f Filter) ([]Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Blog, 0)
	for _, b := range r.posts {
		if b.Status != StatusPublished {
			continue
		}
		if f.CategoryID != 0 && (b.CategoryID == nil || *b.CategoryID != f.CategoryID) {
			continue
		}
		if f.Query != "" {
			q := strings.ToLower(f.Query)
			if !strings.Contains(strings.ToLower(b.Title), q) &&
				!strings.Contains(strings.ToLower(b.Excerpt), q) {
				continue
			}
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *InMemoryRepository) ListAll() ([]Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Blog, len(r.posts))
	copy(out, r.posts)
	return out, nil
}

func (r *InMemoryRepository) GetBySlug(slug string) (Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.posts {
		if b.Slug == slug {
			return b, nil
		}
	}
	return Blog{}, ErrNotFound
}

func (r *InMemoryRepository) GetByID(id int) (Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.posts {
		if b.ID == id {
			return b, nil
		}
	}
	return Blog{}, ErrNotFound
}

func (r *InMemoryRepository) Create(b Blog) (Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b.ID == 0 {
		b.ID = r.nextID
		r.nextID++
	}
	r.posts = append(r.posts, b)
	return b, nil
}

func (r *InMemoryRepository) Update(id int, b Blog) (Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.posts {
		if r.posts[i].ID == id {
			b.ID = id
			b.ViewCount = r.posts[i].ViewCount
			r.posts[i] = b
			return b, nil
		}
	}
	return Blog{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.posts {
		if r.posts[i].ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) IncrementViewCount(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailIncrement {
		return errors.New("increment_view_count failed")
	}
	for i := range r.posts {
		if r.posts[i].ID == id {
			r.posts[i].ViewCount++
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) ListCategories() ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *InMemoryRepository) CreateCategory(cat Category) (Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cat.ID == 0 {
		cat.ID = r.nextCatID
		r.nextCatID++
	}
	r.categories = append(r.categories, cat)
	return cat, nil
}

func (r *InMemoryRepository) UpdateCategory(id int, cat Category) (Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.categories {
		if r.categories[i].ID == id {
			cat.ID = id
			r.categories[i] = cat
			return cat, nil
		}
	}
	return Category{}, ErrCategoryNotFound
}

func (r *InMemoryRepository) DeleteCategory(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.categories {
		if r.categories[i].ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return ErrCategoryNotFound
}
