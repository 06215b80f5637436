package documents

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ayuniiieee02/Resume/internal/extract"
	"github.com/Ayuniiieee02/Resume/internal/shared/storage/object"
	"github.com/Ayuniiieee02/Resume/internal/shared/telemetry"
)

// DefaultMaxBytes bounds a single resume upload.
const DefaultMaxBytes = 10 << 20

// Service stores resume files and their metadata.
type Service struct {
	Store           object.ObjectStore
	Repo            Repo
	StorageProvider string
	MaxBytes        int64
}

// Limit returns the maximum accepted upload size in bytes.
func (s *Service) Limit() int64 {
	if s.MaxBytes > 0 {
		return s.MaxBytes
	}
	return DefaultMaxBytes
}

// Validate checks that data is a PDF within the upload limit.
func (s *Service) Validate(fileName string, data []byte) error {
	if strings.TrimSpace(fileName) == "" || len(data) == 0 {
		return ErrInvalidInput
	}
	if int64(len(data)) > s.Limit() {
		return ErrTooLarge
	}
	if !extract.IsPDF(data) {
		return ErrNotPDF
	}
	return nil
}

// Upload validates and saves the file, then records the document.
func (s *Service) Upload(ctx context.Context, userID, fileName string, data []byte) (Document, error) {
	if strings.TrimSpace(userID) == "" {
		return Document{}, ErrInvalidInput
	}
	if err := s.Validate(fileName, data); err != nil {
		return Document{}, err
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, userID, fileName, bytes.NewReader(data))
	if err != nil {
		return Document{}, fmt.Errorf("save object: %w", err)
	}

	doc := Document{
		ID:              uuid.NewString(),
		UserID:          userID,
		FileName:        fileName,
		MimeType:        mimeType,
		SizeBytes:       size,
		StorageProvider: s.StorageProvider,
		StorageKey:      storageKey,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		if delErr := s.Store.Delete(ctx, storageKey); delErr != nil {
			telemetry.Warn("documents.orphaned_object", map[string]any{
				"storage_key": storageKey,
				"error":       delErr.Error(),
			})
		}
		return Document{}, fmt.Errorf("record document: %w", err)
	}
	return doc, nil
}

// Get returns a document by ID.
func (s *Service) Get(ctx context.Context, documentID string) (Document, error) {
	if strings.TrimSpace(documentID) == "" {
		return Document{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, documentID)
}

// GetOwned returns a document only if userID owns it.
func (s *Service) GetOwned(ctx context.Context, userID, documentID string) (Document, error) {
	doc, err := s.Get(ctx, documentID)
	if err != nil {
		return Document{}, err
	}
	if doc.UserID != userID {
		return Document{}, ErrNotFound
	}
	return doc, nil
}

// Open streams the stored file.
func (s *Service) Open(ctx context.Context, doc Document) (io.ReadCloser, error) {
	return s.Store.Open(ctx, doc.StorageKey)
}

// Delete removes the document record and its stored object. A missing object
// is not an error.
func (s *Service) Delete(ctx context.Context, doc Document) error {
	if err := s.Repo.Delete(ctx, doc.ID); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("delete document: %w", err)
	}
	if err := s.Store.Delete(ctx, doc.StorageKey); err != nil && !errors.Is(err, object.ErrNotFound) {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

// List returns a user's documents newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Document, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}
