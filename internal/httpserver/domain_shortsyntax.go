package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	shortsyntaxHTTP "task-short-syntax/internal/shortsyntax/delivery/http"
)

// setupShortSyntaxDomain registers /api/v1/short-syntax/*.
func (srv HTTPServer) setupShortSyntaxDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := shortsyntaxHTTP.New(srv.l, srv.shortSyntaxUC, srv.location)
	shortsyntaxHTTP.RegisterRoutes(api.Group("/short-syntax"), h, srv.mw)

	srv.l.Infof(ctx, "Short-syntax domain registered")
	return nil
}
