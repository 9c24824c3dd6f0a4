package rest

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/tictactoe-web/internal/config"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Server struct {
	logger *slog.Logger
	conf   *config.Config
	engine *gin.Engine
}

func New(logger *slog.Logger, conf *config.Config, game gameController) *Server {
	log := logger.With("component", "http")

	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(log))
	engine.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	handler := newGameHandler(logger, game)

	engine.GET("/", handler.index)
	engine.GET("/ping", pingHandler)
	engine.POST("/reset", handler.reset)
	engine.POST("/cells/:index", handler.place)

	api := engine.Group("/api")
	api.GET("/game", handler.state)

	return &Server{
		logger: log,
		conf:   conf,
		engine: engine,
	}
}

func (that *Server) Handler() http.Handler {
	return that.engine
}

// Start - listens on the configured port and serves until ctx is done.
func (that *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", that.conf.GetHTTPAddr())
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	return that.Serve(ctx, ln)
}

// Serve - serves on ln until ctx is done, then shuts down gracefully.
func (that *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      that.engine,
		ReadTimeout:  that.conf.HTTP.ReadTimeout,
		WriteTimeout: that.conf.HTTP.WriteTimeout,
		IdleTimeout:  that.conf.HTTP.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		that.logger.Info("listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), that.conf.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}

	that.logger.Info("server stopped")

	return nil
}
