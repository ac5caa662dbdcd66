package testimonial

// Service provides business logic for testimonials.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// List returns up to `limit` testimonials.
func (s *Service) List(limit int) []Testimonial {
	items, err := s.repo.List(limit)
	if err != nil {
		return []Testimonial{}
	}
	return items
}
