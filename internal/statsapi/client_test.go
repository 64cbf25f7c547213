package statsapi

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"mlb-stats-service/internal/metrics"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func newTestClient(rt roundTripperFunc) *Client {
	return NewClient(Config{
		BaseURL:    "http://example.com/api/v1",
		HTTPClient: &http.Client{Transport: rt},
	})
}

func TestStandingsBuildsQuery(t *testing.T) {
	var captured *url.URL
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		captured = req.URL
		return jsonResponse(http.StatusOK, `{"records": []}`), nil
	})

	raw, err := client.Standings(context.Background(), 103, "2024", url.Values{"standingsTypes": []string{"regularSeason"}})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(raw) == 0 {
		t.Fatal("expected raw payload")
	}
	if captured.Path != "/api/v1/standings" {
		t.Fatalf("unexpected path %s", captured.Path)
	}
	q := captured.Query()
	if q.Get("leagueId") != "103" {
		t.Fatalf("expected leagueId=103, got %s", q.Get("leagueId"))
	}
	if q.Get("season") != "2024" {
		t.Fatalf("expected season=2024, got %s", q.Get("season"))
	}
	if q.Get("standingsTypes") != "regularSeason" {
		t.Fatalf("expected passthrough filter, got %s", q.Get("standingsTypes"))
	}
}

func TestScheduleDefaultsSportID(t *testing.T) {
	var captured url.Values
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		captured = req.URL.Query()
		return jsonResponse(http.StatusOK, `{"dates": []}`), nil
	})

	if _, err := client.Schedule(context.Background(), ScheduleQuery{Date: "2024-07-04", TeamID: 147}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if captured.Get("sportId") != "1" {
		t.Fatalf("expected default sportId=1, got %s", captured.Get("sportId"))
	}
	if captured.Get("date") != "2024-07-04" {
		t.Fatalf("expected date filter, got %s", captured.Get("date"))
	}
	if captured.Get("teamId") != "147" {
		t.Fatalf("expected teamId filter, got %s", captured.Get("teamId"))
	}
}

func TestBoxscoreDecodesTypedPayload(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/api/v1/game/716463/boxscore" {
			t.Fatalf("unexpected path %s", req.URL.Path)
		}
		body := `{
			"teams": {
				"home": {
					"team": {"id": 147, "name": "New York Yankees"},
					"players": {
						"ID592450": {
							"person": {"id": 592450, "fullName": "Aaron Judge"},
							"battingOrder": "200"
						}
					}
				}
			}
		}`
		return jsonResponse(http.StatusOK, body), nil
	})

	box, err := client.Boxscore(context.Background(), 716463, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if box.Teams == nil || box.Teams.Home == nil {
		t.Fatalf("expected home side, got %+v", box)
	}
	if box.Teams.Home.Team.Name != "New York Yankees" {
		t.Fatalf("unexpected team %+v", box.Teams.Home.Team)
	}
	player, ok := box.Teams.Home.Players["ID592450"]
	if !ok {
		t.Fatalf("expected player slot, got %+v", box.Teams.Home.Players)
	}
	if player.BattingOrder != "200" {
		t.Fatalf("expected raw batting order string, got %q", player.BattingOrder)
	}
}

func TestNon200ReturnsStatusError(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusNotFound, `{"message": "no such person"}`), nil
	})

	_, err := client.Person(context.Background(), 99999999)
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
	statusErr, ok := AsStatusError(err)
	if !ok {
		t.Fatalf("expected StatusError, got %T: %v", err, err)
	}
	if statusErr.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", statusErr.StatusCode)
	}
	if statusErr.Endpoint != "person" {
		t.Fatalf("expected person endpoint, got %s", statusErr.Endpoint)
	}
	if !strings.Contains(statusErr.Body, "no such person") {
		t.Fatalf("expected body snippet, got %q", statusErr.Body)
	}
	if !IsClientError(err) {
		t.Fatal("expected 404 to be a client error")
	}
}

func TestSearchPlayerIDsMatchesCaseInsensitively(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/api/v1/sports/1/players" {
			t.Fatalf("unexpected path %s", req.URL.Path)
		}
		body := `{
			"people": [
				{"id": 660271, "fullName": "Shohei Ohtani"},
				{"id": 592450, "fullName": "Aaron Judge"},
				{"id": 12345, "fullName": "SHOHEI OHTANI"}
			]
		}`
		return jsonResponse(http.StatusOK, body), nil
	})

	ids, err := client.SearchPlayerIDs(context.Background(), "shohei ohtani", 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(ids) != 2 || ids[0] != 660271 || ids[1] != 12345 {
		t.Fatalf("expected both Ohtani entries, got %v", ids)
	}
}

func TestPeopleWithStatsBuildsHydrateClause(t *testing.T) {
	var captured url.Values
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		captured = req.URL.Query()
		return jsonResponse(http.StatusOK, `{"people": [{"id": 660271, "fullName": "Shohei Ohtani"}]}`), nil
	})

	people, err := client.PeopleWithStats(context.Background(), []string{"660271", "592450"}, []string{"hitting"}, []string{"season"}, "2024")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if captured.Get("personIds") != "660271,592450" {
		t.Fatalf("unexpected personIds %s", captured.Get("personIds"))
	}
	want := "stats(group=[hitting],type=[season],season=2024)"
	if captured.Get("hydrate") != want {
		t.Fatalf("expected hydrate %q, got %q", want, captured.Get("hydrate"))
	}
	if len(people.People) != 1 || people.People[0].FullName != "Shohei Ohtani" {
		t.Fatalf("unexpected people payload %+v", people)
	}
}

func TestGameHighlightsExtractsSubtree(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/api/v1/game/716463/content" {
			t.Fatalf("unexpected path %s", req.URL.Path)
		}
		return jsonResponse(http.StatusOK, `{"highlights": {"items": [{"title": "Walk-off homer"}]}, "editorial": {}}`), nil
	})

	raw, err := client.GameHighlights(context.Background(), 716463)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(string(raw), "Walk-off homer") {
		t.Fatalf("expected highlights subtree, got %s", raw)
	}
	if strings.Contains(string(raw), "editorial") {
		t.Fatalf("expected only the highlights subtree, got %s", raw)
	}
}

func TestClientRecordsUpstreamCalls(t *testing.T) {
	recorder := metrics.NewRecorder()
	client := NewClient(Config{
		BaseURL:    "http://example.com/api/v1",
		HTTPClient: &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `{"teams": []}`), nil
		})},
		Recorder: recorder,
	})

	if _, err := client.Teams(context.Background(), 1, ""); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	snapshot := recorder.Upstream("teams")
	if snapshot.Calls != 1 || snapshot.Errors != 0 {
		t.Fatalf("unexpected upstream stats %+v", snapshot)
	}
}

func TestBaseURLTrailingSlashTrimmed(t *testing.T) {
	var captured string
	client := NewClient(Config{
		BaseURL: "http://example.com/api/v1/",
		HTTPClient: &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			captured = req.URL.Path
			return jsonResponse(http.StatusOK, `{}`), nil
		})},
	})

	if _, err := client.Linescore(context.Background(), 1); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if captured != "/api/v1/game/1/linescore" {
		t.Fatalf("unexpected path %s", captured)
	}
}
