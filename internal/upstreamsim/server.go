package upstreamsim

import (
	"context"
	"net/http"
	"strconv"

	"github.com/okian/levelgate/pkg/logger"
)

// Server serves generated wire payloads over HTTP.
type Server struct {
	cfg    *Config
	logger logger.Logger
}

// NewServer creates a simulator server for the given config.
func NewServer(cfg *Config) *Server {
	if cfg == nil {
		cfg = NewConfig()
	}
	return &Server{
		cfg:    cfg,
		logger: logger.Named("upstreamsim"),
	}
}

// Register attaches the simulated upstream routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/levels", s.handleLevels)
	mux.HandleFunc("/halloffame", s.handleHallOfFame)
}

func (s *Server) handleLevels(w http.ResponseWriter, r *http.Request) {
	page := 0
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		n, err := strconv.Atoi(pageStr)
		if err != nil || n < 0 {
			http.Error(w, "bad page", http.StatusBadRequest)
			return
		}
		page = n
	}

	// Pages past the end exist but are empty, like the real server.
	body := ""
	if page < s.cfg.Pages {
		body = GenerateLevelPage(page, s.cfg)
	}

	s.logger.Debug(r.Context(), "serving level page",
		logger.Int("page", page),
		logger.Int("bytes", len(body)),
	)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(body))
}

func (s *Server) handleHallOfFame(w http.ResponseWriter, r *http.Request) {
	body := GenerateHallOfFame(s.cfg)

	s.logger.Debug(r.Context(), "serving hall of fame",
		logger.Int("bytes", len(body)),
	)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(body))
}

// ListenAndServe runs the simulator until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	mux := http.NewServeMux()
	s.Register(mux)

	srv := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: mux,
	}

	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()

	s.logger.Info(ctx, "mock upstream listening", logger.String("addr", s.cfg.Addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
