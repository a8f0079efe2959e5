// Command calc-server exposes the arithmetic tools as an MCP server.
//
// By default the server speaks MCP over stdio, which is how MCP hosts
// (Claude Desktop, IDE integrations, calc-client) launch it. Logs go to
// stderr; stdout carries the protocol stream.
//
// Configuration is via environment variables, with a .env file loaded if
// present:
//
//	CALC_TRANSPORT  - "stdio" (default) or "sse"
//	CALC_PORT       - Listen port for the SSE transport (default: 8080)
//	CALC_LOG_LEVEL  - debug, info, warn, or error (default: info)
//	CALC_LOG_FORMAT - text or json (default: text)
//
// Usage:
//
//	go run ./cmd/calc-server
//	CALC_TRANSPORT=sse CALC_PORT=8080 go run ./cmd/calc-server
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mark3labs/mcp-go/server"

	"github.com/terrychangit/mcp-demo/mcp"
	"github.com/terrychangit/mcp-demo/tool"
)

const (
	serverName    = "calc-server"
	serverVersion = "1.0.0"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	registry := tool.NewRegistry().Add(tool.ArithTools(tool.WithLogger(logger))...)

	logger.Info("starting calculator MCP server",
		"transport", cfg.Transport,
		"tools", registry.Names(),
	)

	switch cfg.Transport {
	case "sse":
		err = serveSSE(cfg, registry, logger)
	default:
		err = mcp.ServeStdio(registry,
			mcp.WithName(serverName),
			mcp.WithVersion(serverVersion),
		)
	}
	if err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// newLogger builds the process logger. Output goes to stderr because stdout
// is the stdio transport's protocol stream.
func newLogger(cfg *Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// serveSSE exposes the MCP server over HTTP with SSE, behind a chi router
// with a health endpoint. The server shuts down gracefully on SIGINT/SIGTERM.
func serveSSE(cfg *Config, registry *tool.Registry, logger *slog.Logger) error {
	mcpServer := mcp.NewServer(registry,
		mcp.WithName(serverName),
		mcp.WithVersion(serverVersion),
	)
	sse := server.NewSSEServer(mcpServer)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/sse", sse)
	r.Handle("/message", sse)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 0, // SSE connections stay open
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening",
			"addr", srv.Addr,
			"sse", "http://localhost:"+cfg.Port+"/sse",
			"health", "http://localhost:"+cfg.Port+"/health",
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
