package product

// ServiceInterface lets handlers in other packages (orders enrich their
// rows with product names) depend on product lookups without the concrete
// service.
type ServiceInterface interface {
	GetByID(id int) (Product, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Product {
	products, err := s.repo.List()
	if err != nil {
		return []Product{}
	}
	return products
}

// ListBySubCategorySlug powers the catalog pages. An unknown slug simply
// yields an empty list; the page renders its not-found state.
func (s *Service) ListBySubCategorySlug(slug string) []Product {
	products, err := s.repo.ListBySubCategorySlug(slug)
	if err != nil {
		return []Product{}
	}
	return products
}

func (s *Service) ListFiltered(f Filter) []Product {
	products, err := s.repo.ListFiltered(f)
	if err != nil {
		return []Product{}
	}
	return products
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(p Product) (Product, error) {
	return s.repo.Create(p)
}

func (s *Service) Update(id int, p Product) (Product, error) {
	return s.repo.Update(id, p)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
