package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"task-short-syntax/internal/shortsyntax"
	"task-short-syntax/pkg/log"
)

// Handler is the public interface for the short-syntax HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
	Patterns(c *gin.Context)
}

type handler struct {
	l   log.Logger
	uc  shortsyntax.UseCase
	loc *time.Location
}

// New creates a new HTTP handler for the short-syntax domain. loc is used to
// render planned dates in responses.
func New(l log.Logger, uc shortsyntax.UseCase, loc *time.Location) Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &handler{
		l:   l,
		uc:  uc,
		loc: loc,
	}
}
