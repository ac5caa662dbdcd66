package category

// Service provides business logic for the category tree.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// Tree returns the navigation tree. Fetch failures degrade to an empty
// tree so the dropdown renders without sub-items instead of breaking the
// page chrome.
func (s *Service) Tree() []Category {
	tree, err := s.repo.ListTree()
	if err != nil {
		return []Category{}
	}
	return tree
}

func (s *Service) ListSubCategories() []SubCategory {
	subs, err := s.repo.ListSubCategories()
	if err != nil {
		return []SubCategory{}
	}
	return subs
}

func (s *Service) CreateSubCategory(sc SubCategory) (SubCategory, error) {
	return s.repo.CreateSubCategory(sc)
}

func (s *Service) UpdateSubCategory(id int, sc SubCategory) (SubCategory, error) {
	return s.repo.UpdateSubCategory(id, sc)
}

func (s *Service) DeleteSubCategory(id int) error {
	return s.repo.DeleteSubCategory(id)
}
