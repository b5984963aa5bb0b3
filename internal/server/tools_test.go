package server

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ironsheep/geoquiz-mcp/internal/maplink"
)

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     string
		required []string
	}{
		{"quiz", "request_quiz", []string{"condition"}},
		{"hint", "request_hint", []string{"quiz_id"}},
		{"answer", "request_answer", []string{"quiz_id"}},
	}

	quizTool := requestQuizTool()
	hintTool := requestHintTool()
	answerTool := requestAnswerTool()

	byName := map[string]struct {
		required []string
	}{
		quizTool.Name:   {quizTool.InputSchema.Required},
		hintTool.Name:   {hintTool.InputSchema.Required},
		answerTool.Name: {answerTool.InputSchema.Required},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, ok := byName[tt.tool]
			if !ok {
				t.Fatalf("tool %q not defined", tt.tool)
			}
			if len(def.required) != len(tt.required) {
				t.Fatalf("required = %v, want %v", def.required, tt.required)
			}
			for i, want := range tt.required {
				if def.required[i] != want {
					t.Errorf("required[%d] = %q, want %q", i, def.required[i], want)
				}
			}
		})
	}
}

func TestMCPServer_ListsExactlyThreeTools(t *testing.T) {
	s := newTestServer(t, testDataset, maplink.ZoomClamp, nil)
	m := s.MCPServer("test")

	resp := m.HandleMessage(context.Background(),
		[]byte(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))

	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshaling tools/list response: %v", err)
	}
	body := string(raw)

	for _, tool := range []string{"request_quiz", "request_hint", "request_answer"} {
		if !strings.Contains(body, tool) {
			t.Errorf("tools/list missing %q: %s", tool, body)
		}
	}
	if got := strings.Count(body, `"name"`); got != 3 {
		t.Errorf("expected exactly 3 tools, response had %d name fields", got)
	}
}
