package http

import (
	"github.com/gin-gonic/gin"

	"task-short-syntax/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Parsing is
// rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/parse", mw.RateLimit(), h.Parse)
	rg.GET("/patterns", h.Patterns)
}
