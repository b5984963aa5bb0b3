package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/geoquiz-mcp/internal/catalog"
	"github.com/ironsheep/geoquiz-mcp/internal/config"
	"github.com/ironsheep/geoquiz-mcp/internal/geocode"
	"github.com/ironsheep/geoquiz-mcp/internal/maplink"
	"github.com/ironsheep/geoquiz-mcp/internal/quiz"
	"github.com/ironsheep/geoquiz-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("geoquiz-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("geoquiz-mcp - MCP server for satellite-map geography quizzes")
			fmt.Println()
			fmt.Println("Usage: geoquiz-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  VWORLD_API_KEY           Map provider API key (default: DEMO_KEY)")
			fmt.Println("  GEOQUIZ_DATASET          Path to a coordinate dataset (TOML)")
			fmt.Println("  GEOQUIZ_TRANSPORT        stdio (default) or http")
			fmt.Println("  GEOQUIZ_HTTP_ADDR        Listen address for the http transport")
			fmt.Println("  GEOQUIZ_GEOCODE          Enable reverse-geocoded address hints")
			fmt.Println("  LOG_LEVEL                DEBUG, INFO, WARN, or ERROR")
			fmt.Println()
			fmt.Println("With the stdio transport the server communicates over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g. Claude Desktop).")
			return
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// stdout carries the MCP protocol; logs go to stderr.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	cat, err := catalog.Load(cfg.DatasetPath)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	logger.Info("catalog loaded", "entries", cat.Len())

	matcher, err := catalog.NewKeywordMatcher(cat,
		catalog.MatchPolicy(cfg.MatchPolicy),
		catalog.SelectionPolicy(cfg.SelectionPolicy),
		time.Now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("configuring matcher: %w", err)
	}

	builder, err := maplink.NewBuilder(cfg.VWorldBaseURL, cfg.VWorldKey,
		maplink.Bounds{Min: cfg.DomesticZoomMin, Max: cfg.DomesticZoomMax},
		maplink.Bounds{Min: cfg.IntlZoomMin, Max: cfg.IntlZoomMax},
		maplink.ZoomPolicy(cfg.ZoomPolicy),
	)
	if err != nil {
		if !errors.Is(err, maplink.ErrUnavailable) {
			return fmt.Errorf("configuring map links: %w", err)
		}
		// Degraded mode: quizzes still run, responses carry only coordinates.
		logger.Warn("map provider unavailable, serving link-free responses", "error", err)
		builder = nil
	}

	store, err := quiz.NewStore(cfg.SessionCap, builder)
	if err != nil {
		return fmt.Errorf("creating session store: %w", err)
	}

	var geocoder server.Geocoder
	if cfg.GeocodeEnabled {
		geocoder = geocode.New(cfg.NominatimURL, "geoquiz-mcp/"+Version)
		logger.Info("reverse geocoding enabled", "url", cfg.NominatimURL)
	}

	srv := server.New(logger, matcher, store, builder, geocoder)
	mcpSrv := srv.MCPServer(Version)

	if cfg.Transport == "stdio" {
		logger.Info("serving MCP over stdio", "version", Version)
		return mcpserver.ServeStdio(mcpSrv)
	}

	httpSrv := server.NewHTTPServer(cfg.HTTPAddr, logger, mcpSrv)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("serving MCP over streamable http", "addr", cfg.HTTPAddr, "version", Version)
		return httpSrv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return httpSrv.Shutdown(context.Background())
	})

	return g.Wait()
}
