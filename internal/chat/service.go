package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"docchat-backend/internal/documents"
	"docchat-backend/internal/llm"
	"docchat-backend/internal/shared/telemetry"
)

// DocumentGetter looks up stored documents for summarization.
type DocumentGetter interface {
	Get(ctx context.Context, id string) (documents.Document, error)
}

// Service orchestrates chat and summarization against the AI agent.
type Service struct {
	Agent llm.Agent
	Docs  DocumentGetter
}

// AskResult is the outcome of a successful Ask call.
type AskResult struct {
	Answer          string
	FormattedAnswer string
	Summary         string
	Timestamp       time.Time
}

// SummarizeResult is the outcome of a successful SummarizeDocument call.
type SummarizeResult struct {
	DocumentID       string
	FileName         string
	Summary          string
	FormattedSummary string
	SummaryType      string
}

// Ask sends a question, with optional context, to the agent. A blank
// question fails before the agent is ever called.
func (s *Service) Ask(ctx context.Context, question, contextText string) (AskResult, error) {
	if strings.TrimSpace(question) == "" {
		return AskResult{}, failf(ErrorCodeValidation, "Question is required")
	}

	prompt := llm.ComposeQuestion(question, contextText)

	raw, err := s.Agent.Ask(ctx, prompt)
	if err != nil {
		telemetry.Error("chat.ask_failed", map[string]any{"error": err.Error()})
		return AskResult{}, failf(ErrorCodeAI, fmt.Sprintf("ไม่สามารถประมวลผลคำถามได้: %s", err.Error()))
	}

	formatted := FormatForDisplay(raw)
	return AskResult{
		Answer:          raw,
		FormattedAnswer: formatted,
		Summary:         ExtractSummary(formatted, 0),
		Timestamp:       time.Now().UTC(),
	}, nil
}

// SummarizeDocument builds a typed summary of a stored document. The agent
// is only called when the document exists and has readable text.
func (s *Service) SummarizeDocument(ctx context.Context, documentID, summaryType string) (SummarizeResult, error) {
	doc, err := s.Docs.Get(ctx, documentID)
	if err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			return SummarizeResult{}, failf(ErrorCodeNotFound, "ไม่พบเอกสาร")
		}
		return SummarizeResult{}, failf(ErrorCodeSummarize, fmt.Sprintf("สรุปเอกสารไม่สำเร็จ: %s", err.Error()))
	}

	if strings.TrimSpace(doc.TextContent) == "" {
		return SummarizeResult{}, failf(ErrorCodeNoContent, "ไม่สามารถอ่านเนื้อหาเอกสารได้")
	}

	normalized := llm.NormalizeSummaryType(summaryType)
	prompt := llm.BuildSummaryPrompt(doc.TextContent, doc.FileName, normalized)

	raw, err := s.Agent.Ask(ctx, prompt)
	if err != nil {
		telemetry.Error("chat.summarize_failed", map[string]any{
			"document_id": documentID,
			"error":       err.Error(),
		})
		return SummarizeResult{}, failf(ErrorCodeSummarize, fmt.Sprintf("สรุปเอกสารไม่สำเร็จ: %s", err.Error()))
	}

	telemetry.Info("chat.document_summarized", map[string]any{
		"document_id":  documentID,
		"summary_type": normalized,
	})
	return SummarizeResult{
		DocumentID:       doc.ID,
		FileName:         doc.FileName,
		Summary:          raw,
		FormattedSummary: FormatForDisplay(raw),
		SummaryType:      normalized,
	}, nil
}
