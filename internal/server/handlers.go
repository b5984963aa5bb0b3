package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ironsheep/geoquiz-mcp/internal/maplink"
	"github.com/ironsheep/geoquiz-mcp/internal/metrics"
	"github.com/ironsheep/geoquiz-mcp/internal/quiz"
)

// quizResult is the request_quiz response payload.
type quizResult struct {
	QuizID     string `json:"quiz_id"`
	AnswerType string `json:"answer_type"`
	Zoom       int    `json:"zoom"`
	ImageURL   string `json:"image_url,omitempty"`
	Message    string `json:"message"`
}

// hintResult is the request_hint response payload.
type hintResult struct {
	QuizID string `json:"quiz_id"`
	quiz.HintPayload
}

// answerResult is the request_answer response payload.
type answerResult struct {
	QuizID string `json:"quiz_id"`
	quiz.AnswerPayload
}

func (s *Server) handleRequestQuiz(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	condition, err := req.RequireString("condition")
	if err != nil {
		return s.toolError("request_quiz", "condition is required"), nil
	}
	requestedZoom := req.GetInt("zoom", 0)

	entry, err := s.matcher.Match(condition)
	if err != nil {
		// Only an empty catalog reaches here, and that is caught at startup.
		s.logger.Error("matching condition", "error", err)
		return s.toolError("request_quiz", "could not select a quiz target"), nil
	}

	zoom := requestedZoom
	if s.builder != nil {
		zoom, err = s.builder.ResolveZoom(entry, requestedZoom)
		if errors.Is(err, maplink.ErrInvalidZoom) {
			b := s.builder.Bounds(entry)
			return s.toolError("request_quiz",
				fmt.Sprintf("zoom %d is outside the allowed range %d-%d for this region", requestedZoom, b.Min, b.Max)), nil
		}
		if err != nil {
			return s.toolError("request_quiz", err.Error()), nil
		}
	} else if zoom == 0 {
		zoom = entry.DefaultZoom
	}

	address := s.lookupAddress(ctx, entry.Lat, entry.Lon)

	sess := s.store.Create(entry, zoom, address)
	metrics.QuizzesCreated.Inc()
	s.logger.Info("quiz created",
		"quiz_id", sess.ID,
		"entry", entry.ID,
		"zoom", zoom,
		"condition", condition,
	)

	result := quizResult{
		QuizID:     sess.ID,
		AnswerType: entry.AnswerType,
		Zoom:       zoom,
	}
	if s.builder != nil {
		result.ImageURL = s.builder.ImageURL(entry, zoom, maplink.StyleSatellite)
		result.Message = fmt.Sprintf(
			"Quiz created! (ID: %s)\n[Open the map](%s)\n\nWhat %s lies at the center of the image?",
			sess.ID, result.ImageURL, entry.AnswerType)
	} else {
		result.Message = fmt.Sprintf(
			"Quiz created! (ID: %s)\n\nThe map provider is unavailable, so no image link can be offered. The target is a %s; request hints to narrow it down.",
			sess.ID, entry.AnswerType)
	}

	return mcp.NewToolResultText(mustJSON(result)), nil
}

func (s *Server) handleRequestHint(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	quizID, err := req.RequireString("quiz_id")
	if err != nil {
		return s.toolError("request_hint", "quiz_id is required"), nil
	}

	kind := quiz.HintKind(req.GetString("kind", ""))
	if kind == "" {
		sess, err := s.store.Get(quizID)
		if err != nil {
			return s.toolError("request_hint", noSuchQuiz(quizID)), nil
		}
		kind = quiz.NextKind(sess.Hints())
	}

	payload, err := s.store.Hint(quizID, kind)
	switch {
	case errors.Is(err, quiz.ErrNotFound):
		return s.toolError("request_hint", noSuchQuiz(quizID)), nil
	case errors.Is(err, quiz.ErrUnknownHint):
		return s.toolError("request_hint",
			fmt.Sprintf("unknown hint kind %q; valid kinds are region, address, zoom_out", kind)), nil
	case err != nil:
		return s.toolError("request_hint", err.Error()), nil
	}

	metrics.HintsServed.WithLabelValues(string(kind)).Inc()
	s.logger.Info("hint served", "quiz_id", quizID, "kind", kind)

	return mcp.NewToolResultText(mustJSON(hintResult{QuizID: quizID, HintPayload: payload})), nil
}

func (s *Server) handleRequestAnswer(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	quizID, err := req.RequireString("quiz_id")
	if err != nil {
		return s.toolError("request_answer", "quiz_id is required"), nil
	}

	payload, err := s.store.Answer(quizID)
	if errors.Is(err, quiz.ErrNotFound) {
		return s.toolError("request_answer", noSuchQuiz(quizID)), nil
	}
	if err != nil {
		return s.toolError("request_answer", err.Error()), nil
	}

	metrics.AnswersServed.Inc()
	s.logger.Info("answer revealed", "quiz_id", quizID, "entry", payload.Name)

	return mcp.NewToolResultText(mustJSON(answerResult{QuizID: quizID, AnswerPayload: payload})), nil
}

// lookupAddress reverse-geocodes a coordinate, best-effort. Failures are
// logged and counted, never surfaced to the caller.
func (s *Server) lookupAddress(ctx context.Context, lat, lon float64) string {
	if s.geocoder == nil {
		return ""
	}
	gctx, cancel := context.WithTimeout(ctx, geocodeTimeout)
	defer cancel()

	address, err := s.geocoder.Reverse(gctx, lat, lon)
	if err != nil {
		metrics.GeocodeFailures.Inc()
		s.logger.Warn("reverse geocode failed", "error", err)
		return ""
	}
	return address
}

// toolError translates an internal failure into a structured tool error
// result. Internal state never leaks; callers get a plain message.
func (s *Server) toolError(tool, message string) *mcp.CallToolResult {
	metrics.ToolErrors.WithLabelValues(tool).Inc()
	return mcp.NewToolResultError(message)
}

func noSuchQuiz(id string) string {
	return fmt.Sprintf("no such quiz %q; request a new quiz first", id)
}

// mustJSON converts a payload to pretty-printed JSON for a text result.
// Marshal failure is impossible for our payload types; on failure, returns
// an empty string.
func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
