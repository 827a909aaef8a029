package documents

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoAddStoresEmptyTextAsNull(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	doc := Document{
		ID:          "doc-1",
		Title:       "report",
		FileName:    "report.pdf",
		StorageKey:  "abc123_report.pdf",
		ContentType: "application/pdf",
		SizeBytes:   1024,
		UploadedAt:  time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO documents").
		WithArgs(
			doc.ID,
			doc.Title,
			doc.FileName,
			doc.StorageKey,
			doc.ContentType,
			doc.SizeBytes,
			nil, // text_content
			doc.UploadedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Add(context.Background(), doc); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDMapsMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT .+ FROM documents").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "file_name", "storage_key", "content_type", "size_bytes", "text_content", "uploaded_at",
		}))

	if _, err := repo.GetByID(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("GetByID err = %v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetAllScansNullText(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	uploadedAt := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "title", "file_name", "storage_key", "content_type", "size_bytes", "text_content", "uploaded_at",
	}).
		AddRow("doc-2", "newer", "newer.txt", "k2", "text/plain", int64(10), "hello", uploadedAt).
		AddRow("doc-1", "older", "older.pdf", "k1", "application/pdf", int64(20), nil, uploadedAt.Add(-time.Hour))

	mock.ExpectQuery("SELECT .+ FROM documents").WillReturnRows(rows)

	docs, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("len(docs) = %d, want 2", len(docs))
	}
	if docs[0].TextContent != "hello" {
		t.Fatalf("docs[0].TextContent = %q", docs[0].TextContent)
	}
	if docs[1].TextContent != "" {
		t.Fatalf("docs[1].TextContent = %q, want empty for NULL", docs[1].TextContent)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoDeleteReportsAffected(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectExec("DELETE FROM documents").
		WithArgs("doc-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM documents").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(context.Background(), "doc-1")
	if err != nil || !deleted {
		t.Fatalf("Delete(doc-1) = %v, %v", deleted, err)
	}
	deleted, err = repo.Delete(context.Background(), "missing")
	if err != nil || deleted {
		t.Fatalf("Delete(missing) = %v, %v", deleted, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdateTextContentUnknownID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectExec("UPDATE documents SET text_content").
		WithArgs("missing", "new text").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.UpdateTextContent(context.Background(), "missing", "new text"); err != ErrNotFound {
		t.Fatalf("UpdateTextContent err = %v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
