package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"task-short-syntax/internal/middleware"
	"task-short-syntax/internal/shortsyntax"
	"task-short-syntax/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Short-syntax domain
	shortSyntaxUC shortsyntax.UseCase
	location      *time.Location
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	RateLimitPerMin int

	// Short-syntax domain
	ShortSyntaxUseCase shortsyntax.UseCase
	Location           *time.Location
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.New(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		mw:            middleware.New(logger, cfg.RateLimitPerMin),
		shortSyntaxUC: cfg.ShortSyntaxUseCase,
		location:      cfg.Location,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.shortSyntaxUC == nil {
		return errors.New("short-syntax usecase is required")
	}
	return nil
}
