package api

import (
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// UploadsHandler serves uploaded files from a single fixed directory.
type UploadsHandler struct {
	dir string
}

// NewUploadsHandler creates an uploads handler rooted at dir.
func NewUploadsHandler(dir string) *UploadsHandler {
	return &UploadsHandler{dir: dir}
}

// RegisterRoutes registers the uploads route at the engine root so stored
// /uploads/... URLs resolve directly.
func (h *UploadsHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/uploads/:filename", h.ServeUpload)
}

// ServeUpload returns the file bytes with a content type inferred from the
// extension. Filenames containing separator sequences are rejected outright;
// this endpoint must never resolve outside the upload directory.
func (h *UploadsHandler) ServeUpload(c *gin.Context) {
	filename := c.Param("filename")
	if filename == "" || strings.ContainsAny(filename, `/\`) || strings.Contains(filename, "..") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filename"})
		return
	}

	data, err := os.ReadFile(filepath.Join(h.dir, filename))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	c.Data(http.StatusOK, contentType, data)
}
