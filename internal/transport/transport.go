package transport

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nvquang/tikz-compiler/internal/transport/middleware"
)

func InitRoutes(h *CompileHandler, requestTimeout time.Duration) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.GET("/", h.Root)
	router.GET("/health", h.Health)

	compile := router.Group("/", middleware.Timeout(requestTimeout))
	compile.POST("/compile", h.Compile)
	compile.POST("/compile-file", h.CompileFile)

	return router
}
