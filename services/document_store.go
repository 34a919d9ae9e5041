package services

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DocumentStore persists proof documents under a root directory injected
// at construction time. A stored document is identified by its generated
// filename (the "reference"): a UUID plus the original file extension, so
// two saves can never collide and a save never overwrites anything.
type DocumentStore struct {
	root string
}

func NewDocumentStore(root string) *DocumentStore {
	return &DocumentStore{root: root}
}

// Root returns the configured upload directory.
func (s *DocumentStore) Root() string {
	return s.root
}

// Save writes the uploaded stream to a new file and returns its reference.
// A zero-byte stream fails with ErrEmptyUpload and leaves nothing behind.
func (s *DocumentStore) Save(r io.Reader, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	ref := uuid.New().String() + ext
	fullPath := filepath.Join(s.root, ref)

	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create document file: %w", err)
	}

	written, err := io.Copy(f, r)
	if err != nil {
		f.Close()
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write document file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write document file: %w", err)
	}
	if written == 0 {
		os.Remove(fullPath)
		return "", ErrEmptyUpload
	}

	return ref, nil
}

// Open returns a reader over the stored document.
func (s *DocumentStore) Open(ref string) (io.ReadCloser, error) {
	path, err := s.refPath(ref)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrDocumentMissing
		}
		return nil, fmt.Errorf("%w: %v", ErrDocumentUnreadable, err)
	}
	return f, nil
}

// Remove deletes the stored document. Removing an absent reference is a
// no-op, so blind retries are safe.
func (s *DocumentStore) Remove(ref string) error {
	path, err := s.refPath(ref)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove document file: %w", err)
	}
	return nil
}

// refPath rejects references that would escape the upload root.
func (s *DocumentStore) refPath(ref string) (string, error) {
	if ref == "" || ref != filepath.Base(ref) || strings.HasPrefix(ref, ".") {
		return "", errors.New("malformed document reference")
	}
	return filepath.Join(s.root, ref), nil
}
