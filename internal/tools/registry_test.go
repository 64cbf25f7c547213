package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"mlb-stats-service/internal/app/mlb"
	"mlb-stats-service/internal/app/system"
	"mlb-stats-service/internal/metrics"
	"mlb-stats-service/internal/statsapi"
	"mlb-stats-service/internal/teststubs"
)

var expectedTools = []string{
	"get_mlb_standings",
	"get_mlb_schedule",
	"get_mlb_team_info",
	"get_mlb_player_info",
	"get_mlb_boxscore",
	"get_mlb_game_lineup",
	"get_mlb_game_highlights",
	"get_mlb_game_pace",
	"get_mlb_game_scoring_plays",
	"get_mlb_linescore",
	"get_mlb_player_stats",
	"get_mlb_sabermetrics",
	"get_mlb_roster",
	"get_mlb_search_players",
	"get_mlb_players",
	"get_mlb_draft",
	"get_mlb_awards",
	"get_mlb_search_teams",
	"get_mlb_teams",
	"get_current_date",
	"get_current_time",
}

func newSession(t *testing.T, rt teststubs.RoundTripper, recorder *metrics.Recorder) *mcp.ClientSession {
	t.Helper()

	client := statsapi.NewClient(statsapi.Config{
		BaseURL:    "http://example.com/api/v1",
		HTTPClient: teststubs.HTTPClient(rt),
		Recorder:   recorder,
	})
	server := NewServer(Config{
		MLB:      mlb.NewService(mlb.Config{Client: client}),
		System:   system.NewService(func() time.Time { return time.Date(2024, 6, 1, 9, 5, 3, 0, time.UTC) }),
		Recorder: recorder,
		Name:     "mlb-stats-service",
		Version:  "test",
	})

	ctx := context.Background()
	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}
	t.Cleanup(func() { _ = serverSession.Close() })

	mcpClient := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := mcpClient.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func TestAllOperationsRegistered(t *testing.T) {
	session := newSession(t, nil, nil)

	listed, err := session.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}

	names := make(map[string]bool, len(listed.Tools))
	for _, tool := range listed.Tools {
		names[tool.Name] = true
	}
	for _, want := range expectedTools {
		if !names[want] {
			t.Fatalf("tool %s not registered; have %v", want, names)
		}
	}
	if len(listed.Tools) != len(expectedTools) {
		t.Fatalf("expected %d tools, got %d", len(expectedTools), len(listed.Tools))
	}
}

func TestCallToolReturnsNamedKey(t *testing.T) {
	rt := teststubs.RoundTripper(func(req *http.Request) (*http.Response, error) {
		return teststubs.JSONResponse(http.StatusOK, `{"innings": []}`), nil
	})
	session := newSession(t, rt, nil)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_mlb_linescore",
		Arguments: map[string]any{"game_id": 716463},
	})
	if err != nil {
		t.Fatalf("call tool: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %+v", result.Content)
	}

	payload := decodeTextContent(t, result)
	if _, ok := payload["linescore"]; !ok {
		t.Fatalf("expected linescore key, got %v", payload)
	}
}

// Any upstream failure must surface as a payload with only an error key,
// never a protocol fault.
func TestUpstreamFailureBecomesErrorEnvelope(t *testing.T) {
	rt := teststubs.RoundTripper(func(req *http.Request) (*http.Response, error) {
		return teststubs.JSONResponse(http.StatusInternalServerError, `{"message": "boom"}`), nil
	})
	session := newSession(t, rt, nil)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_mlb_standings",
		Arguments: map[string]any{"season": 2024},
	})
	if err != nil {
		t.Fatalf("expected envelope, not protocol fault: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result")
	}

	payload := decodeTextContent(t, result)
	if len(payload) != 1 {
		t.Fatalf("expected only the error key, got %v", payload)
	}
	msg, ok := payload["error"].(string)
	if !ok || msg == "" {
		t.Fatalf("expected string error message, got %v", payload["error"])
	}
}

func TestUnknownTeamBecomesErrorEnvelope(t *testing.T) {
	session := newSession(t, nil, nil)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_mlb_roster",
		Arguments: map[string]any{"team": "Zzznoteam"},
	})
	if err != nil {
		t.Fatalf("expected envelope, not protocol fault: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result")
	}
	payload := decodeTextContent(t, result)
	if !strings.Contains(payload["error"].(string), "Zzznoteam") {
		t.Fatalf("expected query in error message, got %v", payload)
	}
}

func TestCurrentDateTool(t *testing.T) {
	session := newSession(t, nil, nil)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "get_current_date",
	})
	if err != nil {
		t.Fatalf("call tool: %v", err)
	}
	payload := decodeTextContent(t, result)
	if payload["current_date"] != "2024-06-01" {
		t.Fatalf("expected fixed date, got %v", payload)
	}
}

func TestToolCallsRecorded(t *testing.T) {
	recorder := metrics.NewRecorder()
	rt := teststubs.RoundTripper(func(req *http.Request) (*http.Response, error) {
		return teststubs.JSONResponse(http.StatusOK, `{"innings": []}`), nil
	})
	session := newSession(t, rt, recorder)

	if _, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_mlb_linescore",
		Arguments: map[string]any{"game_id": 1},
	}); err != nil {
		t.Fatalf("call tool: %v", err)
	}

	if snapshot := recorder.Tool("get_mlb_linescore"); snapshot.Calls != 1 || snapshot.ToolErrors != 0 {
		t.Fatalf("unexpected tool stats %+v", snapshot)
	}
}

func decodeTextContent(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("expected text content")
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected TextContent, got %T", result.Content[0])
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(text.Text), &payload); err != nil {
		t.Fatalf("decode payload %q: %v", text.Text, err)
	}
	return payload
}
