package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	filesapp "github.com/shopadmin/backend/internal/application/files"
	"github.com/shopadmin/backend/internal/interfaces/http/dto"
)

// FileHandler issues signed URLs for stored objects
type FileHandler struct {
	BaseHandler
	fileService *filesapp.Service
}

// NewFileHandler creates a new FileHandler
func NewFileHandler(fileService *filesapp.Service) *FileHandler {
	return &FileHandler{fileService: fileService}
}

// Redirect serves GET /files?key=... with a 302 to a freshly signed URL
func (h *FileHandler) Redirect(c *gin.Context) {
	signed, ok := h.issue(c)
	if !ok {
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Redirect(http.StatusFound, signed.URL)
}

// URL serves GET /files/url?key=... with the signed URL as JSON
func (h *FileHandler) URL(c *gin.Context) {
	signed, ok := h.issue(c)
	if !ok {
		return
	}
	c.Header("Cache-Control", "no-store")
	h.Record(c, http.StatusOK, signed)
}

func (h *FileHandler) issue(c *gin.Context) (*filesapp.SignedURL, bool) {
	session, ok := h.Session(c)
	if !ok {
		return nil, false
	}
	var q dto.FileQuery
	if !h.BindQuery(c, &q) {
		return nil, false
	}

	signed, err := h.fileService.Issue(c.Request.Context(), session, q.Key)
	if err != nil {
		h.HandleError(c, err)
		return nil, false
	}
	return signed, true
}
