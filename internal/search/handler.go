package search

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"docchat-backend/internal/shared/server/respond"
)

// SearchResponse wraps the search hits.
type SearchResponse struct {
	Success bool     `json:"success"`
	Results []Result `json:"results"`
}

// Handler wires HTTP handlers to the search service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches search routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/search", h.search)
}

func (h *Handler) search(c *gin.Context) {
	query := c.Query("q")
	if strings.TrimSpace(query) == "" {
		respond.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Query is required", nil)
		return
	}

	results, err := h.Svc.Search(c.Request.Context(), query)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "SEARCH_ERROR", "ค้นหาเอกสารไม่สำเร็จ: "+err.Error(), nil)
		return
	}

	respond.OK(c, SearchResponse{Success: true, Results: results})
}
