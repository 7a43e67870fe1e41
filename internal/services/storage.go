package services

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrUnsupportedExtension = errors.New("unsupported file extension")

var allowedExtensions = map[string]bool{
	".pdf":      true,
	".md":       true,
	".markdown": true,
	".txt":      true,
}

// StoredFile is an upload written to scratch storage under a generated name.
type StoredFile struct {
	Name string
	Path string
	Size int64
}

// StorageService keeps uploaded résumés on local disk until a parse job
// has consumed them.
type StorageService interface {
	SaveFile(file *multipart.FileHeader, fileType string) (*StoredFile, error)
	GetFilePath(filename string) string
	DeleteFile(filename string) error
	EnsureUploadDir() error
	SweepOlderThan(age time.Duration) (int, error)
}

type storageService struct {
	uploadPath string
}

func NewStorageService(uploadPath string) StorageService {
	return &storageService{
		uploadPath: uploadPath,
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

func (s *storageService) SaveFile(file *multipart.FileHeader, fileType string) (*StoredFile, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext)
	}

	stored := &StoredFile{Name: fmt.Sprintf("%s_%s%s", fileType, uuid.New().String(), ext)}
	stored.Path = s.GetFilePath(stored.Name)

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.OpenFile(stored.Path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}

	stored.Size, err = io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(stored.Path)
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	return stored, nil
}

// GetFilePath only ever resolves inside the upload directory.
func (s *storageService) GetFilePath(filename string) string {
	return filepath.Join(s.uploadPath, filepath.Base(filename))
}

// DeleteFile treats an already missing file as deleted.
func (s *storageService) DeleteFile(filename string) error {
	if err := os.Remove(s.GetFilePath(filename)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// SweepOlderThan removes uploads left behind by jobs that never ran.
func (s *storageService) SweepOlderThan(age time.Duration) (int, error) {
	entries, err := os.ReadDir(s.uploadPath)
	if err != nil {
		return 0, fmt.Errorf("failed to read upload directory: %w", err)
	}

	cutoff := time.Now().Add(-age)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := s.DeleteFile(entry.Name()); err != nil {
			log.Printf("⚠️  Failed to sweep %s: %v\n", entry.Name(), err)
			continue
		}
		removed++
	}

	return removed, nil
}
