package team

// Service provides business logic for team members.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) List() []Member {
	members, err := s.repo.List()
	if err != nil {
		return []Member{}
	}
	return members
}

func (s *Service) Create(m Member) (Member, error) {
	return s.repo.Create(m)
}

func (s *Service) Update(id int, m Member) (Member, error) {
	return s.repo.Update(id, m)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
