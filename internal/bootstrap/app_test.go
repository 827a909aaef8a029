package bootstrap_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"docchat-backend/internal/bootstrap"
	"docchat-backend/internal/shared/config"
)

type fakeAgent struct {
	answer string
}

func (f fakeAgent) Ask(ctx context.Context, prompt string) (string, error) {
	return f.answer, nil
}

func buildTestApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:4200"},
		LocalStoreDir:   t.TempDir(),
		Env:             "dev",
		ObjectStoreType: "local",
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

func uploadFile(t *testing.T, router *gin.Engine, name, content string) string {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fw, err := writer.CreateFormFile("files", name)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("upload status = %d, body = %s", resp.Code, resp.Body.String())
	}

	var uploaded struct {
		Success   bool `json:"success"`
		Documents []struct {
			ID string `json:"id"`
		} `json:"documents"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		t.Fatalf("decode upload response: %v", err)
	}
	if !uploaded.Success || len(uploaded.Documents) != 1 {
		t.Fatalf("upload response = %+v", uploaded)
	}
	return uploaded.Documents[0].ID
}

func TestUploadListSummarizeDeleteFlow(t *testing.T) {
	app := buildTestApp(t)
	app.ChatService.Agent = fakeAgent{answer: "สรุป: เอกสารเกี่ยวกับการชำระเงิน"}
	router := app.Router

	docID := uploadFile(t, router, "payment.txt", "รายละเอียดการชำระเงินงวดแรก")

	// Listing shows the document.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("list status = %d", resp.Code)
	}
	var listed struct {
		Documents []struct {
			ID       string `json:"id"`
			FileName string `json:"fileName"`
		} `json:"documents"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed.Documents) != 1 || listed.Documents[0].ID != docID {
		t.Fatalf("listed = %+v", listed)
	}

	// Summarize the uploaded document.
	req = httptest.NewRequest(http.MethodPost, "/api/v1/documents/"+docID+"/summarize", strings.NewReader(`{"summaryType":"executive"}`))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("summarize status = %d, body = %s", resp.Code, resp.Body.String())
	}
	var summarized struct {
		Success     bool   `json:"success"`
		Summary     string `json:"summary"`
		SummaryType string `json:"summaryType"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&summarized); err != nil {
		t.Fatalf("decode summarize: %v", err)
	}
	if !summarized.Success || summarized.SummaryType != "executive" || summarized.Summary == "" {
		t.Fatalf("summarized = %+v", summarized)
	}

	// Search finds it by content.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/search?q="+"payment", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("search status = %d", resp.Code)
	}
	var found struct {
		Results []struct {
			ID string `json:"id"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&found); err != nil {
		t.Fatalf("decode search: %v", err)
	}
	if len(found.Results) != 1 || found.Results[0].ID != docID {
		t.Fatalf("search results = %+v", found)
	}

	// Delete and verify it is gone.
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/documents/"+docID, nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("delete status = %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/documents/"+docID, nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d", resp.Code)
	}
}

func TestAskFlowThroughRouter(t *testing.T) {
	app := buildTestApp(t)
	app.ChatService.Agent = fakeAgent{answer: "It is a bank."}
	router := app.Router

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/ask", strings.NewReader(`{"question":"What is EXIM Bank?"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("ask status = %d, body = %s", resp.Code, resp.Body.String())
	}
	var got struct {
		Success bool   `json:"success"`
		Answer  string `json:"answer"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode ask: %v", err)
	}
	if !got.Success || got.Answer != "It is a bank." {
		t.Fatalf("got = %+v", got)
	}
}

func TestHealthEndpoint(t *testing.T) {
	app := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("health status = %d", resp.Code)
	}
	var got struct {
		Status  string `json:"status"`
		Version string `json:"version"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if got.Status != "healthy" || got.Version == "" {
		t.Fatalf("got = %+v", got)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	app := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("metrics status = %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "uploads_total") {
		t.Fatalf("metrics body = %q", resp.Body.String())
	}
}
