package storage

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrEmptyFile = errors.New("uploaded file is empty")

// Store saves uploaded files into named buckets and hands back public URLs.
type Store interface {
	// Save writes the uploaded file into the bucket under a random name
	// (original extension preserved) and returns its public URL.
	Save(file *multipart.FileHeader, bucket string) (string, error)
}

// LocalStore keeps buckets as directories under a single uploads root and
// serves them through the app's static file route.
type LocalStore struct {
	root    string
	baseURL string
}

func NewLocalStore(root, baseURL string) *LocalStore {
	return &LocalStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *LocalStore) Save(file *multipart.FileHeader, bucket string) (string, error) {
	if file == nil || file.Size == 0 {
		return "", ErrEmptyFile
	}

	dir := filepath.Join(s.root, bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return s.baseURL + "/uploads/" + bucket + "/" + name, nil
}

// Bucket names mirror the site's storage buckets.
const (
	BucketProductImages = "product-images"
	BucketTeamAvatars   = "team-avatars"
	BucketResumes       = "join-us-resumes"
	BucketUploads       = "uploads"
	BucketBlogImages    = "blog-images"
)
