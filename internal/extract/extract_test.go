package extract

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"docchat-backend/internal/shared/storage/object/local"
)

func newService(t *testing.T) *Service {
	t.Helper()
	return &Service{Store: local.New(t.TempDir())}
}

func saveFile(t *testing.T, svc *Service, name, content string) string {
	t.Helper()
	key, _, _, err := svc.Store.Save(context.Background(), name, bytes.NewReader([]byte(content)))
	if err != nil {
		t.Fatalf("save %s: %v", name, err)
	}
	return key
}

func TestTextPlainFileReturnedVerbatim(t *testing.T) {
	svc := newService(t)
	content := "line one\nline two\nไทยด้วย"
	key := saveFile(t, svc, "notes.txt", content)

	got := svc.Text(context.Background(), key, "text/plain", "notes.txt")
	if got != content {
		t.Fatalf("expected verbatim content, got %q", got)
	}
}

func TestTextExtensionAllowListWithoutTextMime(t *testing.T) {
	svc := newService(t)
	content := "col1,col2\n1,2"
	key := saveFile(t, svc, "data.csv", content)

	// Mime sniffing often reports csv as octet-stream; the extension wins.
	got := svc.Text(context.Background(), key, "application/octet-stream", "data.csv")
	if got != content {
		t.Fatalf("expected verbatim csv content, got %q", got)
	}
}

func TestTextUnsupportedFormatReturnsPlaceholder(t *testing.T) {
	svc := newService(t)
	key := saveFile(t, svc, "photo.png", "\x89PNG\r\n\x1a\n....")

	got := svc.Text(context.Background(), key, "image/png", "photo.png")
	if !strings.Contains(got, "photo.png") {
		t.Fatalf("expected placeholder naming the file, got %q", got)
	}
	if !strings.Contains(got, "OCR") {
		t.Fatalf("expected placeholder to suggest OCR, got %q", got)
	}
}

func TestTextPDFScrapeRecoversShowOperators(t *testing.T) {
	svc := newService(t)
	raw := "%PDF-1.4\nstream\nBT\n(Hello World) Tj\nET\nendstream\n%%EOF"
	key := saveFile(t, svc, "doc.pdf", raw)

	got := svc.Text(context.Background(), key, "application/pdf", "doc.pdf")
	if !strings.Contains(got, "Hello World") {
		t.Fatalf("expected scraped text to contain show-operator payload, got %q", got)
	}
}

func TestTextPDFWithoutTextBlocksReturnsScannedPlaceholder(t *testing.T) {
	svc := newService(t)
	raw := "%PDF-1.4\n\x00\x01\x02 binary only, no text objects\n%%EOF"
	key := saveFile(t, svc, "scan.pdf", raw)

	got := svc.Text(context.Background(), key, "application/pdf", "scan.pdf")
	if got != placeholderScannedPDF {
		t.Fatalf("expected scanned-document placeholder, got %q", got)
	}
}

func TestTextMissingFileNeverPanics(t *testing.T) {
	svc := newService(t)
	got := svc.Text(context.Background(), "does-not-exist.txt", "text/plain", "does-not-exist.txt")
	if got != "" {
		t.Fatalf("expected empty text for unreadable file, got %q", got)
	}
}

func TestCanExtract(t *testing.T) {
	svc := newService(t)
	cases := []struct {
		contentType string
		fileName    string
		want        bool
	}{
		{"text/plain", "a.txt", true},
		{"application/json", "payload.json", true},
		{"application/octet-stream", "readme.md", true},
		{"application/pdf", "doc.pdf", true},
		{"application/octet-stream", "doc.pdf", true},
		{"image/png", "photo.png", false},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", "doc.docx", false},
	}
	for _, tc := range cases {
		if got := svc.CanExtract(tc.contentType, tc.fileName); got != tc.want {
			t.Errorf("CanExtract(%q, %q) = %v, want %v", tc.contentType, tc.fileName, got, tc.want)
		}
	}
}

func TestKeepReadableStripsControlAndKeepsThai(t *testing.T) {
	in := "(\x01\x02Hello ภาษาไทย)\x7f Tj"
	got := keepReadable(in)
	if strings.ContainsAny(got, "\x01\x02\x7f") {
		t.Fatalf("expected control bytes removed, got %q", got)
	}
	if !strings.Contains(got, "ภาษาไทย") {
		t.Fatalf("expected Thai preserved, got %q", got)
	}
}
