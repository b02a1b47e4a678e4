package transport

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/nvquang/tikz-compiler/internal/entity"
)

func (h *CompileHandler) Compile(c *gin.Context) {
	var req entity.CompileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.compile(c, req)
}

func (h *CompileHandler) CompileFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !isValidSourceType(ext) {
		c.JSON(http.StatusBadRequest, gin.H{"error": entity.ErrUnsupportedExtension.Error()})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !utf8.Valid(content) {
		c.JSON(http.StatusBadRequest, gin.H{"error": entity.ErrNotUTF8.Error()})
		return
	}

	// Uploaded sources always produce both artifacts
	h.compile(c, entity.CompileRequest{
		TikzCode:     string(content),
		OutputFormat: entity.FormatBoth,
	})
}

func (h *CompileHandler) compile(c *gin.Context, req entity.CompileRequest) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.Compile(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if entity.IsClientError(err) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func isValidSourceType(ext string) bool {
	validTypes := map[string]bool{
		".tex":  true,
		".tikz": true,
		".txt":  true,
	}
	return validTypes[ext]
}
