package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// buildFileHeader builds a real multipart.FileHeader the way Fiber would
// hand one to a handler.
func buildFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	w.Close()

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatal(err)
	}
	return req.MultipartForm.File["file"][0]
}

func TestSave_WritesFileAndReturnsURL(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStore(root, "http://localhost:8080/")

	url, err := store.Save(buildFileHeader(t, "resume.pdf", "dummy pdf bytes"), BucketResumes)
	if err != nil {
		t.Fatal(err)
	}

	prefix := "http://localhost:8080/uploads/" + BucketResumes + "/"
	if !strings.HasPrefix(url, prefix) {
		t.Fatalf("unexpected URL %q", url)
	}
	if !strings.HasSuffix(url, ".pdf") {
		t.Fatalf("expected original extension preserved, got %q", url)
	}

	name := strings.TrimPrefix(url, prefix)
	data, err := os.ReadFile(filepath.Join(root, BucketResumes, name))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "dummy pdf bytes" {
		t.Fatalf("unexpected file contents %q", data)
	}
}

func TestSave_RandomizesNames(t *testing.T) {
	store := NewLocalStore(t.TempDir(), "http://localhost:8080")

	first, err := store.Save(buildFileHeader(t, "a.jpg", "one"), BucketProductImages)
	if err != nil {
		t.Fatal(err)
	}
	second, err := store.Save(buildFileHeader(t, "a.jpg", "two"), BucketProductImages)
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Fatal("expected distinct URLs for repeated uploads of the same filename")
	}
}

func TestSave_EmptyFile(t *testing.T) {
	store := NewLocalStore(t.TempDir(), "http://localhost:8080")

	if _, err := store.Save(nil, BucketUploads); err != ErrEmptyFile {
		t.Fatalf("expected ErrEmptyFile, got %v", err)
	}
}
