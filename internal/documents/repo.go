package documents

import "context"

// DocumentsRepo defines persistence operations for documents.
type DocumentsRepo interface {
	Add(ctx context.Context, doc Document) error
	GetByID(ctx context.Context, id string) (Document, error)
	GetAll(ctx context.Context) ([]Document, error)
	Delete(ctx context.Context, id string) (bool, error)
	Exists(ctx context.Context, id string) (bool, error)
	UpdateTextContent(ctx context.Context, id, textContent string) error
}
