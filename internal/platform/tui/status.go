package tui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/blockfall/internal/metrics"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// StatusServer serves health, Prometheus metrics and the high-score
// table over HTTP alongside the SSH server.
type StatusServer struct {
	server *http.Server
	logger *log.Logger
}

// NewStatusServer builds the HTTP status server. store may be nil,
// in which case the score endpoints report 503.
func NewStatusServer(addr, gameID string, store *storage.Store, mt *metrics.Metrics, logger *log.Logger) *StatusServer {
	return &StatusServer{
		server: &http.Server{
			Addr:              addr,
			Handler:           StatusHandler(gameID, store, mt, logger),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger.WithPrefix("http"),
	}
}

// StatusHandler returns the gin engine with all status routes.
func StatusHandler(gameID string, store *storage.Store, mt *metrics.Metrics, logger *log.Logger) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "game": gameID})
	})

	if mt != nil {
		r.GET("/metrics", gin.WrapH(mt.Handler()))
	}

	h := &scoreHandler{gameID: gameID, store: store}
	r.GET("/scores", h.top)
	r.GET("/scores/stats", h.stats)
	r.GET("/scores/players/:player", h.player)

	return r
}

// requestLogger logs each request at debug level.
func requestLogger(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

type scoreHandler struct {
	gameID string
	store  *storage.Store
}

func (h *scoreHandler) available(c *gin.Context) bool {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "scores unavailable"})
		return false
	}
	return true
}

// limit parses the ?limit= query, defaulting to 10 and capping at maxScores.
func limit(c *gin.Context) (int, bool) {
	raw := c.DefaultQuery("limit", "10")
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid limit %q", raw)})
		return 0, false
	}
	return min(n, maxScores), true
}

func (h *scoreHandler) top(c *gin.Context) {
	if !h.available(c) {
		return
	}
	n, ok := limit(c)
	if !ok {
		return
	}
	scores, err := h.store.TopScores(h.gameID, n)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load scores"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"game": h.gameID, "scores": nonNil(scores)})
}

func (h *scoreHandler) player(c *gin.Context) {
	if !h.available(c) {
		return
	}
	n, ok := limit(c)
	if !ok {
		return
	}
	name := c.Param("player")
	scores, err := h.store.PlayerScores(h.gameID, name, n)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load scores"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"game": h.gameID, "player": name, "scores": nonNil(scores)})
}

func (h *scoreHandler) stats(c *gin.Context) {
	if !h.available(c) {
		return
	}
	stats, err := h.store.GetGameStats(h.gameID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func nonNil(s []storage.ScoreEntry) []storage.ScoreEntry {
	if s == nil {
		return []storage.ScoreEntry{}
	}
	return s
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down.
func (s *StatusServer) Serve(ctx context.Context) error {
	s.logger.Info("starting status server", "address", s.server.Addr)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}
