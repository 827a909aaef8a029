package chat

import "time"

// AskRequest is the payload for a chat question.
type AskRequest struct {
	Question string `json:"question"`
	Context  string `json:"context,omitempty"`
}

// AskResponse carries the formatted answer back to the client.
type AskResponse struct {
	Success   bool      `json:"success"`
	Answer    string    `json:"answer"`
	Summary   string    `json:"summary"`
	Timestamp time.Time `json:"timestamp"`
}

// SummarizeRequest selects the kind of summary to produce.
type SummarizeRequest struct {
	SummaryType string `json:"summaryType"`
}

// SummarizeResponse carries a document summary back to the client.
type SummarizeResponse struct {
	Success     bool   `json:"success"`
	DocumentID  string `json:"documentId"`
	FileName    string `json:"fileName"`
	Summary     string `json:"summary"`
	SummaryType string `json:"summaryType"`
}
