package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"docchat-backend/internal/shared/storage/object"
	"docchat-backend/internal/shared/telemetry"
)

const (
	placeholderScannedPDF = "[PDF file] - เอกสาร PDF นี้อาจเป็น scan ต้องใช้ OCR ในการอ่าน"
	placeholderBrokenPDF  = "[PDF file] - ไม่สามารถอ่านเนื้อหา PDF ได้"
)

var textExtensions = map[string]struct{}{
	".txt": {}, ".md": {}, ".csv": {}, ".json": {}, ".xml": {},
	".html": {}, ".htm": {}, ".log": {}, ".yaml": {}, ".yml": {},
}

// Service pulls plain text out of stored files on a best-effort basis.
// Extraction never fails the caller: unreadable or unsupported files
// degrade to placeholder text instead of errors.
type Service struct {
	Store object.ObjectStore
}

// Text extracts the text content of a stored file. The returned string may be
// a placeholder when the format is unsupported or the content unreadable.
func (s *Service) Text(ctx context.Context, storageKey, contentType, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))

	switch {
	case isTextBased(contentType, ext):
		raw, err := s.read(ctx, storageKey)
		if err != nil {
			telemetry.Error("extract.read_failed", map[string]any{
				"storage_key": storageKey,
				"error":       err.Error(),
			})
			return ""
		}
		return string(raw)

	case strings.Contains(contentType, "pdf") || ext == ".pdf":
		raw, err := s.read(ctx, storageKey)
		if err != nil {
			telemetry.Error("extract.read_failed", map[string]any{
				"storage_key": storageKey,
				"error":       err.Error(),
			})
			return ""
		}
		return pdfText(raw)

	default:
		telemetry.Warn("extract.unsupported_format", map[string]any{
			"content_type": contentType,
			"extension":    ext,
		})
		return fmt.Sprintf("[File: %s] - ไม่สามารถอ่านเนื้อหาได้โดยอัตโนมัติ กรุณาใช้ OCR หรือใส่ข้อมูลเอง", filepath.Base(fileName))
	}
}

// CanExtract reports whether Text would attempt real extraction for the
// given content type and file name.
func (s *Service) CanExtract(contentType, fileName string) bool {
	ext := strings.ToLower(filepath.Ext(fileName))
	return isTextBased(contentType, ext) ||
		strings.Contains(contentType, "pdf") ||
		ext == ".pdf"
}

func (s *Service) read(ctx context.Context, storageKey string) ([]byte, error) {
	body, err := s.Store.Open(ctx, storageKey)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return io.ReadAll(body)
}

func isTextBased(contentType, ext string) bool {
	if strings.Contains(contentType, "text") ||
		strings.Contains(contentType, "json") ||
		strings.Contains(contentType, "xml") {
		return true
	}
	_, ok := textExtensions[ext]
	return ok
}

// pdfText tries a real PDF parse first and falls back to a heuristic scrape
// of the raw bytes. Parser panics on malformed input are swallowed.
func pdfText(data []byte) (out string) {
	defer func() {
		if rec := recover(); rec != nil {
			out = placeholderBrokenPDF
		}
	}()

	if text := parsePDF(data); strings.TrimSpace(text) != "" {
		return text
	}

	if text := scrapePDF(data); strings.TrimSpace(text) != "" {
		return text
	}

	return placeholderScannedPDF
}

// parsePDF returns "" on any parser error or panic so the caller can fall
// back to the byte-level scrape.
func parsePDF(data []byte) (out string) {
	defer func() {
		if rec := recover(); rec != nil {
			out = ""
		}
	}()
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return ""
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return ""
	}
	return buf.String()
}

// scrapePDF scans uncompressed content streams for BT..ET text objects and
// keeps printable ASCII plus Thai characters from Tj/TJ show operators.
// This is a heuristic, not a parser; it only salvages what plain byte
// scanning can see.
func scrapePDF(data []byte) string {
	var buf strings.Builder
	inTextBlock := false

	for _, line := range strings.Split(string(data), "\n") {
		if strings.Contains(line, "BT") {
			inTextBlock = true
		}
		if inTextBlock && (strings.Contains(line, "Tj") || strings.Contains(line, "TJ")) {
			clean := strings.TrimSpace(keepReadable(line))
			if clean != "" {
				buf.WriteString(clean)
				buf.WriteString("\n")
			}
		}
		if strings.Contains(line, "ET") {
			inTextBlock = false
		}
	}

	return buf.String()
}

func keepReadable(line string) string {
	return strings.Map(func(r rune) rune {
		if r >= 0x20 && r <= 0x7E {
			return r
		}
		if r >= 0x0E00 && r <= 0x0E7F {
			return r
		}
		return ' '
	}, line)
}
