package search

import (
	"context"
	"sort"
	"strings"

	"docchat-backend/internal/documents"
)

const (
	maxResults    = 10
	snippetLength = 200
)

// Result is a single search hit.
type Result struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Snippet string  `json:"snippet"`
	Score   float64 `json:"score"`
}

// Service searches the document repository by keyword.
type Service struct {
	Repo documents.DocumentsRepo
}

// Search matches the query case-insensitively against title, file name and
// extracted text, returning the best ten hits.
func (s *Service) Search(ctx context.Context, query string) ([]Result, error) {
	docs, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	results := make([]Result, 0)
	for _, doc := range docs {
		score := scoreDocument(doc, needle)
		if score == 0 {
			continue
		}
		results = append(results, Result{
			ID:      doc.ID,
			Title:   doc.Title,
			Snippet: snippet(doc.TextContent),
			Score:   score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}

// scoreDocument counts query occurrences, weighting title and file name
// matches above body matches.
func scoreDocument(doc documents.Document, needle string) float64 {
	if needle == "" {
		return 0
	}
	var score float64
	score += 3 * float64(strings.Count(strings.ToLower(doc.Title), needle))
	score += 2 * float64(strings.Count(strings.ToLower(doc.FileName), needle))
	score += float64(strings.Count(strings.ToLower(doc.TextContent), needle))
	return score
}

func snippet(content string) string {
	runes := []rune(content)
	if len(runes) <= snippetLength {
		return content
	}
	return string(runes[:snippetLength]) + "..."
}
