package documents

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements DocumentsRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const documentColumns = `id, title, file_name, storage_key, content_type, size_bytes, text_content, uploaded_at`

// Add inserts a new document.
func (r *PGRepo) Add(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (id, title, file_name, storage_key, content_type, size_bytes, text_content, uploaded_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	var textContent sql.NullString
	if doc.TextContent != "" {
		textContent = sql.NullString{String: doc.TextContent, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.Title,
		doc.FileName,
		doc.StorageKey,
		doc.ContentType,
		doc.SizeBytes,
		textContent,
		doc.UploadedAt,
	)
	return err
}

// GetByID returns a document by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Document, error) {
	const query = `
SELECT ` + documentColumns + `
FROM documents
WHERE id = $1`

	doc, err := scanDocument(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	return doc, nil
}

// GetAll returns all documents, newest first.
func (r *PGRepo) GetAll(ctx context.Context) ([]Document, error) {
	const query = `
SELECT ` + documentColumns + `
FROM documents
ORDER BY uploaded_at DESC, id`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []Document{}
	}
	return docs, nil
}

// Delete removes a document. Returns false when the ID was unknown.
func (r *PGRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Exists reports whether a document with the given ID is stored.
func (r *PGRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM documents WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// UpdateTextContent rewrites the extracted text of a stored document.
func (r *PGRepo) UpdateTextContent(ctx context.Context, id, textContent string) error {
	var content sql.NullString
	if textContent != "" {
		content = sql.NullString{String: textContent, Valid: true}
	}

	res, err := r.DB.ExecContext(ctx, `UPDATE documents SET text_content = $2 WHERE id = $1`, id, content)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (Document, error) {
	var doc Document
	var textContent sql.NullString
	if err := row.Scan(
		&doc.ID,
		&doc.Title,
		&doc.FileName,
		&doc.StorageKey,
		&doc.ContentType,
		&doc.SizeBytes,
		&textContent,
		&doc.UploadedAt,
	); err != nil {
		return Document{}, err
	}
	if textContent.Valid {
		doc.TextContent = textContent.String
	}
	return doc, nil
}

var _ DocumentsRepo = (*PGRepo)(nil)
