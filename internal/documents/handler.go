package documents

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"docchat-backend/internal/shared/metrics"
	"docchat-backend/internal/shared/server/respond"
)

const maxUploadSize = 50 << 20 // 50MB across the whole multipart body

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload", h.upload)
	rg.GET("/documents", h.list)
	rg.DELETE("/documents/:id", h.delete)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	form, err := c.MultipartForm()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid multipart body", nil)
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "No files uploaded", nil)
		return
	}

	uploaded := make([]DocumentResponse, 0, len(files))
	var uploadErrors []string

	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			uploadErrors = append(uploadErrors, fmt.Sprintf("%s: %s", fileHeader.Filename, err.Error()))
			metrics.IncUploadFailed()
			continue
		}

		doc, err := h.Svc.Upload(c.Request.Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
		file.Close()
		if err != nil {
			uploadErrors = append(uploadErrors, fmt.Sprintf("%s: %s", fileHeader.Filename, err.Error()))
			metrics.IncUploadFailed()
			continue
		}

		uploaded = append(uploaded, toResponse(doc))
		metrics.IncUpload()
	}

	respond.OK(c, UploadResponse{
		Success:   len(uploaded) > 0,
		Documents: uploaded,
		Errors:    uploadErrors,
	})
}

func (h *Handler) list(c *gin.Context) {
	docs, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to list documents", nil)
		return
	}

	resp := ListResponse{Success: true, Documents: make([]DocumentResponse, 0, len(docs))}
	for _, doc := range docs {
		resp.Documents = append(resp.Documents, toResponse(doc))
	}
	respond.OK(c, resp)
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	c.Set("documentId", id)

	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, ErrorCodeNotFound, "ไม่พบเอกสาร", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, ErrorCodeDelete, "ลบเอกสารไม่สำเร็จ: "+err.Error(), nil)
		}
		return
	}

	respond.OK(c, DeleteResponse{Success: true})
}
