package server

import (
	"context"
	"log/slog"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/ironsheep/geoquiz-mcp/internal/catalog"
	"github.com/ironsheep/geoquiz-mcp/internal/maplink"
	"github.com/ironsheep/geoquiz-mcp/internal/quiz"
)

const geocodeTimeout = 5 * time.Second

// Geocoder resolves a coordinate to a human-readable address. Lookups are
// best-effort; any error only degrades hint quality.
type Geocoder interface {
	Reverse(ctx context.Context, lat, lon float64) (string, error)
}

// Server wires the quiz components behind the three MCP tools.
type Server struct {
	logger  *slog.Logger
	matcher catalog.Matcher
	store   *quiz.Store

	// builder is nil when the provider template could not be resolved at
	// startup; responses then carry coordinates without links.
	builder *maplink.Builder

	// geocoder is nil when reverse geocoding is disabled.
	geocoder Geocoder
}

// New assembles a Server from its collaborators. builder and geocoder may be
// nil; see the field comments.
func New(logger *slog.Logger, matcher catalog.Matcher, store *quiz.Store, builder *maplink.Builder, geocoder Geocoder) *Server {
	return &Server{
		logger:   logger,
		matcher:  matcher,
		store:    store,
		builder:  builder,
		geocoder: geocoder,
	}
}

// MCPServer builds the MCP server with the three quiz tools registered.
func (s *Server) MCPServer(version string) *mcpserver.MCPServer {
	m := mcpserver.NewMCPServer("geoquiz-mcp", version,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
		mcpserver.WithInstructions("Geography guessing quizzes over satellite imagery. Call request_quiz with a condition, relay the map link to the player, serve request_hint on demand, and reveal with request_answer."),
	)

	m.AddTool(requestQuizTool(), s.handleRequestQuiz)
	m.AddTool(requestHintTool(), s.handleRequestHint)
	m.AddTool(requestAnswerTool(), s.handleRequestAnswer)

	return m
}
