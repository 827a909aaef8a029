package documents

import "time"

// Document represents an uploaded file and its extracted text.
// TextContent is empty until extraction has produced something and may be
// rewritten in place by a later extraction pass.
type Document struct {
	ID          string
	Title       string
	FileName    string
	StorageKey  string
	ContentType string
	SizeBytes   int64
	UploadedAt  time.Time
	TextContent string
}
