// Package gin provides the HTTP API using the gin router.
package gin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/nicobar"
	"github.com/gin-gonic/gin"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = ":3000"

// Server serves the nicobar HTTP API. Services are read at request time, so
// they may be set after NewServer returns.
type Server struct {
	server *http.Server
	router *gin.Engine
	logger *slog.Logger

	// Addr is the listen address. Set before calling ListenAndServe().
	Addr string

	// CORSOrigin is the allowed browser origin. Empty disables CORS headers.
	CORSOrigin string

	ArticleReader    nicobar.ArticleReader
	ArticleGenerator nicobar.ArticleGenerator
	MangaReader      nicobar.MangaReader
	TrainBoard       nicobar.TrainBoard
	GameCardService  nicobar.GameCardService
}

// NewServer returns a Server with all routes registered.
func NewServer(logger *slog.Logger) *Server {
	s := &Server{
		router: gin.New(),
		logger: logger,
		Addr:   DefaultAddr,
	}
	s.server = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.router.Use(gin.Recovery(), s.logRequests(), s.cors())
	s.router.GET("/", s.handleWelcome)

	api := s.router.Group("/api")
	s.registerArticleRoutes(api.Group("/articles"))
	s.registerMangaRoutes(api.Group("/manga"))
	s.registerTrainRoutes(api.Group("/traintable"))
	s.registerGameCardRoutes(api.Group("/gamecards/op"))

	return s
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on Addr until Shutdown is called. Calling Shutdown
// first makes ListenAndServe return immediately.
func (s *Server) ListenAndServe() error {
	s.server.Addr = s.Addr
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleWelcome(c *gin.Context) {
	c.String(http.StatusCreated, "Hello from ip %s", c.ClientIP())
}

// logRequests logs one line per request. Failed requests carry the error
// recorded by writeError.
func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		begin := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration", time.Since(begin),
		}
		if err := c.Errors.Last(); err != nil {
			if kind := nicobar.KindOf(err.Err); kind != "" {
				attrs = append(attrs, "kind", string(kind))
			}
			attrs = append(attrs, "err", err.Err.Error())
		}

		switch {
		case status >= http.StatusInternalServerError:
			s.logger.Error("request", attrs...)
		case status >= http.StatusBadRequest:
			s.logger.Warn("request", attrs...)
		default:
			s.logger.Info("request", attrs...)
		}
	}
}

func (s *Server) cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.CORSOrigin == "" {
			c.Next()
			return
		}
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", s.CORSOrigin)
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		h.Add("Vary", "Origin")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
