package services

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

type StorageService interface {
	SaveFile(filename string, data []byte) (string, error)
	OpenFile(filename string) (*os.File, os.FileInfo, error)
	ListFiles() ([]StoredFile, error)
	GetFilePath(filename string) string
	DeleteFile(filename string) error
	EnsureOutputDir() error
}

type StoredFile struct {
	Name    string
	Size    int64
	ModTime time.Time
}

type storageService struct {
	outputPath string
}

func NewStorageService(outputPath string) StorageService {
	return &storageService{
		outputPath: outputPath,
	}
}

func (s *storageService) EnsureOutputDir() error {
	if err := os.MkdirAll(s.outputPath, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	return nil
}

// SaveFile writes data under the output directory and returns its path.
func (s *storageService) SaveFile(filename string, data []byte) (string, error) {
	if !isPlainFilename(filename) {
		return "", fmt.Errorf("invalid filename: %q", filename)
	}

	filePath := s.GetFilePath(filename)
	tmpPath := filePath + ".part"

	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := os.Rename(tmpPath, filePath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return filePath, nil
}

// OpenFile returns ErrFileNotFound for names that are missing, are not plain
// base names, or point at a directory.
func (s *storageService) OpenFile(filename string) (*os.File, os.FileInfo, error) {
	if !isPlainFilename(filename) {
		return nil, nil, ErrFileNotFound
	}

	f, err := os.Open(s.GetFilePath(filename))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, ErrFileNotFound
		}
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		f.Close()
		return nil, nil, ErrFileNotFound
	}

	return f, info, nil
}

func (s *storageService) ListFiles() ([]StoredFile, error) {
	entries, err := os.ReadDir(s.outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read output directory: %w", err)
	}

	files := make([]StoredFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}
		files = append(files, StoredFile{
			Name:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	return files, nil
}

func (s *storageService) GetFilePath(filename string) string {
	return filepath.Join(s.outputPath, filename)
}

func (s *storageService) DeleteFile(filename string) error {
	filePath := s.GetFilePath(filename)
	if err := os.Remove(filePath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func isPlainFilename(filename string) bool {
	return filename != "" &&
		filename != "." &&
		filename != ".." &&
		filepath.Base(filename) == filename
}
