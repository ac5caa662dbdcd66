package blog

import (
	"strings"

	"go.uber.org/zap"
)

// Service provides business logic for the blog read path and admin CRUD.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(r Repository, logger *zap.Logger) *Service {
	return &Service{repo: r, logger: logger}
}

func (s *Service) ListPublished(f Filter) []Blog {
	posts, err := s.repo.ListPublished(f)
	if err != nil {
		return []Blog{}
	}
	return posts
}

func (s *Service) ListAll() []Blog {
	posts, err := s.repo.ListAll()
	if err != nil {
		return []Blog{}
	}
	return posts
}

// GetBySlug loads the detail view and bumps the view counter. The
// increment is best-effort: a failure is logged and the post is returned
// as read.
func (s *Service) GetBySlug(slug string) (Blog, error) {
	b, err := s.repo.GetBySlug(slug)
	if err != nil {
		return Blog{}, err
	}

	if err := s.repo.IncrementViewCount(b.ID); err != nil {
		s.logger.Warn("view count increment failed",
			zap.Int("blog_id", b.ID),
			zap.Error(err),
		)
	} else {
		b.ViewCount++
	}
	return b, nil
}

func (s *Service) GetByID(id int) (Blog, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(b Blog) (Blog, error) {
	if b.Slug == "" {
		b.Slug = GenerateSlug(b.Title)
	}
	return s.repo.Create(b)
}

func (s *Service) Update(id int, b Blog) (Blog, error) {
	if b.Slug == "" {
		b.Slug = GenerateSlug(b.Title)
	}
	return s.repo.Update(id, b)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}

func (s *Service) ListCategories() []Category {
	categories, err := s.repo.ListCategories()
	if err != nil {
		return []Category{}
	}
	return categories
}

func (s *Service) CreateCategory(cat Category) (Category, error) {
	if cat.Slug == "" {
		cat.Slug = GenerateSlug(cat.Name)
	}
	return s.repo.CreateCategory(cat)
}

func (s *Service) UpdateCategory(id int, cat Category) (Category, error) {
	if cat.Slug == "" {
		cat.Slug = GenerateSlug(cat.Name)
	}
	return s.repo.UpdateCategory(id, cat)
}

func (s *Service) DeleteCategory(id int) error {
	return s.repo.DeleteCategory(id)
}

// GenerateSlug turns a title into a URL-safe slug: lowercased, anything
// outside [a-z0-9] collapsed into single hyphens.
func GenerateSlug(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
