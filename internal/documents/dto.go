package documents

import "time"

// DocumentResponse is the outward-facing representation of a document.
type DocumentResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	FileName   string    `json:"fileName"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// UploadResponse reports the outcome of a multi-file upload.
type UploadResponse struct {
	Success   bool               `json:"success"`
	Documents []DocumentResponse `json:"documents"`
	Errors    []string           `json:"errors,omitempty"`
}

// ListResponse wraps the document listing.
type ListResponse struct {
	Success   bool               `json:"success"`
	Documents []DocumentResponse `json:"documents"`
}

// DeleteResponse acknowledges a delete.
type DeleteResponse struct {
	Success bool `json:"success"`
}

func toResponse(doc Document) DocumentResponse {
	return DocumentResponse{
		ID:         doc.ID,
		Title:      doc.Title,
		FileName:   doc.FileName,
		Size:       doc.SizeBytes,
		UploadedAt: doc.UploadedAt,
	}
}
