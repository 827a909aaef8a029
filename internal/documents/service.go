package documents

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"docchat-backend/internal/queue"
	"docchat-backend/internal/shared/storage/object"
	"docchat-backend/internal/shared/telemetry"
	"docchat-backend/internal/shared/util"
)

// TextExtractor converts a stored file into best-effort plain text.
type TextExtractor interface {
	Text(ctx context.Context, storageKey, contentType, fileName string) string
	CanExtract(contentType, fileName string) bool
}

// Service contains business logic for documents.
type Service struct {
	Store     object.ObjectStore
	Repo      DocumentsRepo
	Extractor TextExtractor
	Queue     queue.Client
}

// Upload saves the file, runs inline extraction and records the document.
func (s *Service) Upload(ctx context.Context, fileName, contentType string, r io.Reader) (Document, error) {
	if strings.TrimSpace(fileName) == "" {
		return Document{}, ErrInvalidInput
	}

	storageKey, size, detectedType, err := s.Store.Save(ctx, fileName, r)
	if err != nil {
		return Document{}, err
	}
	if strings.TrimSpace(contentType) == "" {
		contentType = detectedType
	}

	textContent := s.Extractor.Text(ctx, storageKey, contentType, fileName)

	doc := Document{
		ID:          uuid.NewString(),
		Title:       util.TitleFromFileName(fileName),
		FileName:    fileName,
		StorageKey:  storageKey,
		ContentType: contentType,
		SizeBytes:   size,
		UploadedAt:  time.Now().UTC(),
		TextContent: textContent,
	}

	if err := s.Repo.Add(ctx, doc); err != nil {
		return Document{}, err
	}

	// An extractable file that yielded nothing usually means a transient read
	// problem; hand it to the worker for another pass.
	if s.Queue != nil && strings.TrimSpace(textContent) == "" && s.Extractor.CanExtract(contentType, fileName) {
		s.enqueueReextract(ctx, doc.ID)
	}

	telemetry.Info("documents.uploaded", map[string]any{
		"document_id":  doc.ID,
		"file_name":    doc.FileName,
		"content_type": doc.ContentType,
		"size_bytes":   doc.SizeBytes,
	})
	return doc, nil
}

// Get returns a document by ID.
func (s *Service) Get(ctx context.Context, id string) (Document, error) {
	if strings.TrimSpace(id) == "" {
		return Document{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns all documents, newest first.
func (s *Service) List(ctx context.Context) ([]Document, error) {
	return s.Repo.GetAll(ctx)
}

// Delete removes a document and its backing file.
func (s *Service) Delete(ctx context.Context, id string) error {
	doc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if _, err := s.Store.Delete(ctx, doc.StorageKey); err != nil {
		// The repository entry still goes away; an orphaned file is preferable
		// to a document that can never be deleted.
		telemetry.Warn("documents.delete_file_failed", map[string]any{
			"document_id": id,
			"storage_key": doc.StorageKey,
			"error":       err.Error(),
		})
	}

	removed, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}

	telemetry.Info("documents.deleted", map[string]any{"document_id": id})
	return nil
}

// RefreshExtraction re-runs extraction for a stored document and updates its
// text content in place.
func (s *Service) RefreshExtraction(ctx context.Context, id string) (Document, error) {
	doc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Document{}, err
	}

	textContent := s.Extractor.Text(ctx, doc.StorageKey, doc.ContentType, doc.FileName)
	if err := s.Repo.UpdateTextContent(ctx, doc.ID, textContent); err != nil {
		return Document{}, err
	}
	doc.TextContent = textContent

	telemetry.Info("documents.extraction_refreshed", map[string]any{
		"document_id": doc.ID,
		"text_len":    len(textContent),
	})
	return doc, nil
}

func (s *Service) enqueueReextract(ctx context.Context, documentID string) {
	msg := queue.Message{
		DocumentID: documentID,
		EnqueuedAt: time.Now().UTC().Format(time.RFC3339),
		Version:    queue.MessageVersion,
	}
	if err := s.Queue.Send(ctx, msg); err != nil {
		telemetry.Error("documents.enqueue_reextract_failed", map[string]any{
			"document_id": documentID,
			"error":       err.Error(),
		})
	}
}
