// Package server exposes an analysis.Service as a JSON API over gin.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/katalvlaran/socialgraph/analysis"
	"github.com/katalvlaran/socialgraph/config"
)

const serviceName = "socialgraph"

// Server owns the router and the HTTP listener.
type Server struct {
	cfg     config.Server
	svc     *analysis.Service
	log     *zap.Logger
	limiter *limiter
	engine  *gin.Engine
}

// New wires routes and middleware. A nil logger disables logging.
func New(svc *analysis.Service, cfg config.Server, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		cfg:     cfg,
		svc:     svc,
		log:     log,
		limiter: newLimiter(cfg.RateLimit, cfg.Burst),
	}
	s.engine = s.routes()

	return s
}

// Handler returns the gin engine, mainly for httptest.
func (s *Server) Handler() http.Handler { return s.engine }

// SetRateLimit changes the token bucket while serving.
func (s *Server) SetRateLimit(perSecond float64, burst int) {
	s.limiter.set(perSecond, burst)
	s.log.Info("rate limit updated", zap.Float64("per_second", perSecond), zap.Int("burst", burst))
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), otelgin.Middleware(serviceName), accessLog(s.log, s.svc.Metrics()))

	h := NewHandlers(s.svc, s.log)
	r.GET("/healthz", h.HandleHealth)
	r.GET("/metrics", gin.WrapH(s.svc.Metrics().Handler()))

	v1 := r.Group("/v1", rateLimit(s.limiter, s.svc.Metrics()))
	RegisterRoutes(v1, h)

	return r
}

// RegisterRoutes mounts the API on g.
func RegisterRoutes(g *gin.RouterGroup, h *Handlers) {
	g.GET("/stats", h.HandleStats)

	g.GET("/nodes", h.HandleListNodes)
	g.POST("/nodes", h.HandleCreateNode)
	g.GET("/nodes/:id", h.HandleGetNode)
	g.PUT("/nodes/:id", h.HandleUpdateNode)
	g.DELETE("/nodes/:id", h.HandleDeleteNode)

	g.GET("/edges", h.HandleListEdges)
	g.POST("/edges", h.HandleCreateEdge)
	g.DELETE("/edges", h.HandleDeleteEdge)

	g.GET("/traverse/:algo/:start", h.HandleTraverse)
	g.GET("/path", h.HandlePath)
	g.GET("/centrality/degree", h.HandleDegreeCentrality)
	g.GET("/centrality/betweenness", h.HandleBetweenness)
	g.GET("/coloring", h.HandleColoring)
	g.GET("/components", h.HandleComponents)
	g.GET("/backbone", h.HandleBackbone)
}

// Run serves until ctx is cancelled, then drains in-flight requests for up
// to cfg.ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", zap.String("addr", s.cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}

	return nil
}
