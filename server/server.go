package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"island-generator/components"
	"island-generator/config"
	"island-generator/generation"
)

// Server exposes generated islands over HTTP and a websocket stream
type Server struct {
	cfg      *config.Config
	mapping  *components.TileMappingComponent
	hub      *Hub
	streamer *Streamer
	maxDepth int
	log      *slog.Logger
}

// depthLimit returns the recursion cap for islands built on behalf of
// clients; a zero cap falls back to the default so no request is unbounded
func depthLimit(maxDepth int) int {
	if maxDepth <= 0 {
		return generation.DefaultMaxDepth
	}
	return maxDepth
}

// New creates a server. The stream uses cfg.Seed, or the clock when it is zero.
// A MaxDepth of zero is served with generation.DefaultMaxDepth.
func New(cfg *config.Config, log *slog.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mapping, err := cfg.TileMapping()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	hub := NewHub()
	maxDepth := depthLimit(cfg.MaxDepth)
	return &Server{
		cfg:      cfg,
		mapping:  mapping,
		hub:      hub,
		streamer: NewStreamer(hub, seed, cfg.Width, cfg.Height, maxDepth, cfg.RegenerateInterval(), log),
		maxDepth: maxDepth,
		log:      log,
	}, nil
}

// Routes configures all routes and returns the router
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.Health)
		r.Get("/island", s.GetIsland)
		r.Get("/island.png", s.GetIslandPNG)
		r.Get("/stream", s.Stream)
	})

	return r
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.ServerAddr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go s.streamer.Run(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("island server listening", "addr", s.cfg.ServerAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", s.cfg.ServerAddr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.log.Info("island server shutting down")
	return srv.Shutdown(shutdownCtx)
}

// RunStream produces stream frames until ctx is cancelled. Start calls it;
// it is exported for callers that mount Routes on their own http.Server.
func (s *Server) RunStream(ctx context.Context) {
	s.streamer.Run(ctx)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
