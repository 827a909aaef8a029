package chat

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"docchat-backend/internal/shared/metrics"
	"docchat-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the chat service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches chat routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat/ask", h.ask)
	rg.POST("/documents/:id/summarize", h.summarize)
}

func (h *Handler) ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid request body", nil)
		return
	}

	result, err := h.Svc.Ask(c.Request.Context(), req.Question, req.Context)
	if err != nil {
		metrics.IncAskFailed()
		respondFailure(c, err)
		return
	}

	metrics.IncAsk()
	respond.OK(c, AskResponse{
		Success:   true,
		Answer:    result.FormattedAnswer,
		Summary:   result.Summary,
		Timestamp: result.Timestamp,
	})
}

func (h *Handler) summarize(c *gin.Context) {
	id := c.Param("id")
	c.Set("documentId", id)

	// The body is optional; an absent or empty one means a general summary.
	var req SummarizeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid request body", nil)
			return
		}
	}

	result, err := h.Svc.SummarizeDocument(c.Request.Context(), id, req.SummaryType)
	if err != nil {
		metrics.IncSummarizeFailed()
		respondFailure(c, err)
		return
	}

	metrics.IncSummarize()
	respond.OK(c, SummarizeResponse{
		Success:     true,
		DocumentID:  result.DocumentID,
		FileName:    result.FileName,
		Summary:     result.FormattedSummary,
		SummaryType: result.SummaryType,
	})
}

func respondFailure(c *gin.Context, err error) {
	var failure *Failure
	if !errors.As(err, &failure) {
		respond.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
		return
	}

	status := http.StatusInternalServerError
	switch failure.Code {
	case ErrorCodeNotFound:
		status = http.StatusNotFound
	case ErrorCodeValidation:
		status = http.StatusBadRequest
	}
	respond.Error(c, status, failure.Code, failure.Message, nil)
}
