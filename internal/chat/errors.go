package chat

// Error codes reported by the chat endpoints.
const (
	ErrorCodeValidation = "VALIDATION_ERROR"
	ErrorCodeNotFound   = "DOCUMENT_NOT_FOUND"
	ErrorCodeNoContent  = "NO_CONTENT"
	ErrorCodeAI         = "AI_ERROR"
	ErrorCodeSummarize  = "SUMMARIZE_ERROR"
)

// Failure is an operation error with a machine-readable code.
type Failure struct {
	Code    string
	Message string
}

func (f *Failure) Error() string {
	return f.Message
}

func failf(code, message string) *Failure {
	return &Failure{Code: code, Message: message}
}
