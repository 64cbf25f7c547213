package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"mlb-stats-service/internal/metrics"
)

const defaultTimeout = 30 * time.Second

// httpDoer abstracts the HTTP client for easier testing.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls how the client reaches the MLB Stats API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	Recorder   *metrics.Recorder
}

// Client issues read-only calls against the MLB Stats API. It holds no
// mutable state beyond the shared http.Client, so one instance is safe to
// share across concurrent requests for the process lifetime. Every call is
// attempted exactly once; the surrounding request timeout is the only
// cancellation mechanism.
type Client struct {
	baseURL    string
	httpClient httpDoer
	recorder   *metrics.Recorder
}

// NewClient constructs a statsapi client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		recorder:   cfg.Recorder,
	}
}

// Standings fetches standings for one league. extra passes through optional
// upstream filters (standingsTypes, date, hydrate, fields).
func (c *Client) Standings(ctx context.Context, leagueID int, season string, extra url.Values) (json.RawMessage, error) {
	q := cloneValues(extra)
	q.Set("leagueId", strconv.Itoa(leagueID))
	if season != "" {
		q.Set("season", season)
	}
	return c.getRaw(ctx, "standings", "/standings", q)
}

// ScheduleQuery names the supported schedule filters.
type ScheduleQuery struct {
	Date      string
	StartDate string
	EndDate   string
	SportID   int
	TeamID    int
}

// Schedule fetches the game schedule for a date, date range, or team.
func (c *Client) Schedule(ctx context.Context, query ScheduleQuery) (json.RawMessage, error) {
	q := url.Values{}
	sportID := query.SportID
	if sportID <= 0 {
		sportID = 1
	}
	q.Set("sportId", strconv.Itoa(sportID))
	if query.Date != "" {
		q.Set("date", query.Date)
	}
	if query.StartDate != "" {
		q.Set("startDate", query.StartDate)
	}
	if query.EndDate != "" {
		q.Set("endDate", query.EndDate)
	}
	if query.TeamID > 0 {
		q.Set("teamId", strconv.Itoa(query.TeamID))
	}
	return c.getRaw(ctx, "schedule", "/schedule", q)
}

// Team fetches one team by canonical ID.
func (c *Client) Team(ctx context.Context, teamID int, extra url.Values) (json.RawMessage, error) {
	return c.getRaw(ctx, "team", "/teams/"+strconv.Itoa(teamID), cloneValues(extra))
}

// Teams fetches all teams for a sport.
func (c *Client) Teams(ctx context.Context, sportID int, season string) (json.RawMessage, error) {
	q := url.Values{"sportId": []string{strconv.Itoa(sportID)}}
	if season != "" {
		q.Set("season", season)
	}
	return c.getRaw(ctx, "teams", "/teams", q)
}

// Person fetches one person by ID.
func (c *Client) Person(ctx context.Context, personID int) (json.RawMessage, error) {
	return c.getRaw(ctx, "person", "/people/"+strconv.Itoa(personID), nil)
}

// SportPlayers fetches all players for a sport, optionally for one season.
func (c *Client) SportPlayers(ctx context.Context, sportID int, season string) (json.RawMessage, error) {
	q := url.Values{}
	if season != "" {
		q.Set("season", season)
	}
	return c.getRaw(ctx, "players", "/sports/"+strconv.Itoa(sportID)+"/players", q)
}

// SearchPlayerIDs returns the IDs of all players whose full name matches
// fullname case-insensitively for the given sport.
func (c *Client) SearchPlayerIDs(ctx context.Context, fullname string, sportID int) ([]int, error) {
	raw, err := c.SportPlayers(ctx, sportID, "")
	if err != nil {
		return nil, err
	}

	var payload peopleResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("statsapi: decode players: %w", err)
	}

	needle := strings.ToLower(strings.TrimSpace(fullname))
	ids := make([]int, 0)
	for _, person := range payload.People {
		if person.ID == nil {
			continue
		}
		if strings.ToLower(person.FullName) == needle {
			ids = append(ids, *person.ID)
		}
	}
	return ids, nil
}

// Boxscore fetches the typed slice of a game's box score for normalization.
func (c *Client) Boxscore(ctx context.Context, gamePk int, extra url.Values) (*BoxscoreResponse, error) {
	var payload BoxscoreResponse
	if err := c.get(ctx, "boxscore", gamePath(gamePk, "boxscore"), cloneValues(extra), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// BoxscoreRaw fetches a game's box score untouched for passthrough.
func (c *Client) BoxscoreRaw(ctx context.Context, gamePk int, extra url.Values) (json.RawMessage, error) {
	return c.getRaw(ctx, "boxscore", gamePath(gamePk, "boxscore"), cloneValues(extra))
}

// Linescore fetches a game's inning-by-inning linescore.
func (c *Client) Linescore(ctx context.Context, gamePk int) (json.RawMessage, error) {
	return c.getRaw(ctx, "linescore", gamePath(gamePk, "linescore"), nil)
}

// PlayByPlay fetches a game's plays, keeping each play raw.
func (c *Client) PlayByPlay(ctx context.Context, gamePk int, extra url.Values) (*PlayByPlayResponse, error) {
	var payload PlayByPlayResponse
	if err := c.get(ctx, "play_by_play", gamePath(gamePk, "playByPlay"), cloneValues(extra), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// GameHighlights fetches the highlights subtree of a game's content.
func (c *Client) GameHighlights(ctx context.Context, gamePk int) (json.RawMessage, error) {
	var payload contentResponse
	if err := c.get(ctx, "game_content", gamePath(gamePk, "content"), nil, &payload); err != nil {
		return nil, err
	}
	return payload.Highlights, nil
}

// GamePace fetches pace-of-game stats for a season.
func (c *Client) GamePace(ctx context.Context, season string, sportID int) (json.RawMessage, error) {
	q := url.Values{
		"season":  []string{season},
		"sportId": []string{strconv.Itoa(sportID)},
	}
	return c.getRaw(ctx, "game_pace", "/gamePace", q)
}

// Draft fetches draft results for a year.
func (c *Client) Draft(ctx context.Context, year int) (json.RawMessage, error) {
	return c.getRaw(ctx, "draft", "/draft/"+strconv.Itoa(year), nil)
}

// AwardRecipients fetches recipients of one award.
func (c *Client) AwardRecipients(ctx context.Context, awardID string) (json.RawMessage, error) {
	return c.getRaw(ctx, "awards", "/awards/"+url.PathEscape(awardID)+"/recipients", nil)
}

// Roster fetches a team's roster. extra passes through optional upstream
// filters (rosterType, season, date, hydrate, fields).
func (c *Client) Roster(ctx context.Context, teamID int, extra url.Values) (json.RawMessage, error) {
	return c.getRaw(ctx, "roster", "/teams/"+strconv.Itoa(teamID)+"/roster", cloneValues(extra))
}

// PeopleWithStats fetches several people with stat splits hydrated in a
// single call, the way the upstream hydrate syntax expects:
// people?personIds=1,2&hydrate=stats(group=[hitting],type=[season],season=2023)
func (c *Client) PeopleWithStats(ctx context.Context, personIDs []string, groups, statTypes []string, season string) (*HydratedPeopleResponse, error) {
	hydrateParts := make([]string, 0, 3)
	if len(groups) > 0 {
		hydrateParts = append(hydrateParts, "group=["+strings.Join(groups, ",")+"]")
	}
	if len(statTypes) > 0 {
		hydrateParts = append(hydrateParts, "type=["+strings.Join(statTypes, ",")+"]")
	}
	if season != "" {
		hydrateParts = append(hydrateParts, "season="+season)
	}

	q := url.Values{}
	q.Set("personIds", strings.Join(personIDs, ","))
	q.Set("hydrate", "stats("+strings.Join(hydrateParts, ",")+")")

	var payload HydratedPeopleResponse
	if err := c.get(ctx, "people_stats", "/people", q, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Sabermetrics fetches league-wide sabermetric splits for a season and group.
func (c *Client) Sabermetrics(ctx context.Context, group, season string) (*SabermetricsResponse, error) {
	q := url.Values{
		"stats":   []string{"sabermetrics"},
		"group":   []string{group},
		"sportId": []string{"1"},
		"season":  []string{season},
	}
	var payload SabermetricsResponse
	if err := c.get(ctx, "sabermetrics", "/stats", q, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) getRaw(ctx context.Context, endpoint, path string, query url.Values) (json.RawMessage, error) {
	var payload json.RawMessage
	if err := c.get(ctx, endpoint, path, query, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *Client) get(ctx context.Context, endpoint, path string, query url.Values, out any) error {
	start := time.Now()
	err := c.doGet(ctx, endpoint, path, query, out)
	c.recorder.RecordUpstreamCall(endpoint, time.Since(start), err)
	return err
}

func (c *Client) doGet(ctx context.Context, endpoint, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("statsapi: decode %s: %w", endpoint, err)
	}
	return nil
}

func gamePath(gamePk int, suffix string) string {
	return "/game/" + strconv.Itoa(gamePk) + "/" + suffix
}

func cloneValues(values url.Values) url.Values {
	q := url.Values{}
	for key, vals := range values {
		for _, v := range vals {
			q.Add(key, v)
		}
	}
	return q
}

func normalizeBaseURL(baseURL string) string {
	if baseURL == "" {
		baseURL = "https://statsapi.mlb.com/api/v1"
	}
	return strings.TrimRight(baseURL, "/")
}

func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}
