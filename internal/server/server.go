package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/syslinkats/ats-harness/api/v1"
	"github.com/syslinkats/ats-harness/internal/config"
	"github.com/syslinkats/ats-harness/internal/server/middlewares"
)

const (
	apiPrefix         = "/api/v1"
	readHeaderTimeout = 10 * time.Second
)

type Server struct {
	srv    *http.Server
	engine *gin.Engine
}

func NewServer(cfg *config.Configuration, registerHandlerFn func(router *gin.RouterGroup)) (*Server, error) {
	if cfg.API.Port <= 0 {
		return nil, fmt.Errorf("invalid api port %d", cfg.API.Port)
	}

	switch cfg.API.Mode {
	case "prod":
		gin.SetMode(gin.ReleaseMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(ginzap.RecoveryWithZap(zap.L(), true))

	router := engine.Group(apiPrefix)
	router.Use(middlewares.Logger())
	registerHandlerFn(router)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, v1.ErrorResponse{Error: "not found"})
	})

	return &Server{
		engine: engine,
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.API.Port),
			Handler:           engine,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}, nil
}

// Handler exposes the router for in-process use.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start blocks until the server fails or ctx is cancelled. Cancellation
// triggers a graceful shutdown and returns nil.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		zap.S().Named("server").Infow("ledger api listening", "address", s.srv.Addr)
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.Stop(shutdownCtx)
	}
}

// Stop waits for in-flight requests to complete.
func (s *Server) Stop(ctx context.Context) error {
	zap.S().Named("server").Info("shutting down ledger api")
	return s.srv.Shutdown(ctx)
}
