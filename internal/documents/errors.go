package documents

import "errors"

var (
	ErrNotFound     = errors.New("document not found")
	ErrInvalidInput = errors.New("invalid input")
)

const (
	ErrorCodeValidation = "VALIDATION_ERROR"
	ErrorCodeNotFound   = "DOCUMENT_NOT_FOUND"
	ErrorCodeUpload     = "UPLOAD_ERROR"
	ErrorCodeDelete     = "DELETE_ERROR"
)
