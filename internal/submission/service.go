package submission

import (
	"mime/multipart"
	"time"

	"github.com/aquabluegroup/fishwaale-backend/internal/storage"
)

type ServiceInterface interface {
	SubmitContact(s ContactSubmission, file *multipart.FileHeader) (ContactSubmission, error)
	ListContact() ([]ContactSubmission, error)
	DeleteContact(id int) error
	SubmitJoin(s JoinSubmission, resume *multipart.FileHeader) (JoinSubmission, error)
	ListJoin() ([]JoinSubmission, error)
	DeleteJoin(id int) error
	SubmitTenantDown(s TenantDownSubmission) (TenantDownSubmission, error)
	ListTenantDown() ([]TenantDownSubmission, error)
	DeleteTenantDown(id int) error
}

type Service struct {
	repo  Repository
	files storage.Store
}

func NewService(repo Repository, files storage.Store) *Service {
	return &Service{repo: repo, files: files}
}

func (s *Service) SubmitContact(sub ContactSubmission, file *multipart.FileHeader) (ContactSubmission, error) {
	if file != nil {
		url, err := s.files.Save(file, storage.BucketUploads)
		if err != nil {
			return ContactSubmission{}, err
		}
		sub.FileURL = url
	}
	sub.CreatedAt = time.Now().Format(time.RFC3339)
	return s.repo.CreateContact(sub)
}

func (s *Service) ListContact() ([]ContactSubmission, error) {
	return s.repo.ListContact()
}

func (s *Service) DeleteContact(id int) error {
	return s.repo.DeleteContact(id)
}

func (s *Service) SubmitJoin(sub JoinSubmission, resume *multipart.FileHeader) (JoinSubmission, error) {
	if resume != nil {
		url, err := s.files.Save(resume, storage.BucketResumes)
		if err != nil {
			return JoinSubmission{}, err
		}
		sub.FileURL = url
	}
	sub.CreatedAt = time.Now().Format(time.RFC3339)
	return s.repo.CreateJoin(sub)
}

func (s *Service) ListJoin() ([]JoinSubmission, error) {
	return s.repo.ListJoin()
}

func (s *Service) DeleteJoin(id int) error {
	return s.repo.DeleteJoin(id)
}

func (s *Service) SubmitTenantDown(sub TenantDownSubmission) (TenantDownSubmission, error) {
	sub.CreatedAt = time.Now().Format(time.RFC3339)
	return s.repo.CreateTenantDown(sub)
}

func (s *Service) ListTenantDown() ([]TenantDownSubmission, error) {
	return s.repo.ListTenantDown()
}

func (s *Service) DeleteTenantDown(id int) error {
	return s.repo.DeleteTenantDown(id)
}
