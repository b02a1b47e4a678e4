package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *CompileHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "TikZ Compiler API",
		"version": h.version,
		"endpoints": gin.H{
			"/compile":      "POST - compile TikZ code",
			"/compile-file": "POST - upload and compile a TikZ source file",
			"/health":       "GET - external tool availability",
		},
	})
}

func (h *CompileHandler) Health(c *gin.Context) {
	resp := h.health.Check(c.Request.Context())

	status := http.StatusOK
	if resp.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}
