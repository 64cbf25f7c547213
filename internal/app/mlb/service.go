package mlb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"mlb-stats-service/internal/logging"
	"mlb-stats-service/internal/statsapi"
	"mlb-stats-service/internal/teams"
	"mlb-stats-service/internal/timeutil"
)

// Result is the JSON-safe payload of one operation: either the requested
// data under a named key or, for passthrough operations, the raw upstream
// object. Failures travel as Go errors and are collapsed to the uniform
// error envelope at the transport boundary.
type Result = map[string]any

const (
	leagueIDAmerican = 103
	leagueIDNational = 104
)

// Service implements the MLB operations shared by the tool and HTTP
// surfaces. It is stateless: the reference table is re-read per call and
// the statsapi client holds the only long-lived resource (its HTTP client).
type Service struct {
	client    *statsapi.Client
	teamsFile string
	logger    *slog.Logger
	now       func() time.Time
}

// Config collects Service dependencies.
type Config struct {
	Client    *statsapi.Client
	TeamsFile string
	Logger    *slog.Logger
	Now       func() time.Time
}

func NewService(cfg Config) *Service {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		client:    cfg.Client,
		teamsFile: cfg.TeamsFile,
		logger:    cfg.Logger,
		now:       now,
	}
}

// StandingsParams filters the standings operation.
type StandingsParams struct {
	Season         int
	StandingsTypes string
	Date           string
	Hydrate        string
	Fields         string
	League         string
}

// Standings returns standings for the AL, the NL, or both.
func (s *Service) Standings(ctx context.Context, p StandingsParams) (Result, error) {
	if err := timeutil.ValidateDate("date", p.Date); err != nil {
		return nil, err
	}
	season := p.Season
	if season == 0 {
		season = s.now().Year()
	}

	extra := url.Values{}
	setIfPresent(extra, "standingsTypes", p.StandingsTypes)
	setIfPresent(extra, "date", p.Date)
	setIfPresent(extra, "hydrate", p.Hydrate)
	setIfPresent(extra, "fields", p.Fields)

	league := strings.ToUpper(strings.TrimSpace(p.League))
	if league == "" {
		league = "BOTH"
	}

	standings := map[string]any{}
	if league == "AL" || league == "BOTH" {
		al, err := s.client.Standings(ctx, leagueIDAmerican, strconv.Itoa(season), extra)
		if err != nil {
			return nil, err
		}
		standings["AL"] = al
	}
	if league == "NL" || league == "BOTH" {
		nl, err := s.client.Standings(ctx, leagueIDNational, strconv.Itoa(season), extra)
		if err != nil {
			return nil, err
		}
		standings["NL"] = nl
	}
	if len(standings) == 0 {
		return nil, fmt.Errorf("invalid league %q: use 'AL', 'NL', or 'both'", p.League)
	}
	return Result{"standings": standings}, nil
}

// ScheduleParams filters the schedule operation. Team accepts anything the
// resolver accepts: a numeric ID, a name, an abbreviation, or a location.
type ScheduleParams struct {
	Date      string
	StartDate string
	EndDate   string
	SportID   int
	Team      string
}

// Schedule returns games for a date, date range, or team.
func (s *Service) Schedule(ctx context.Context, p ScheduleParams) (Result, error) {
	for name, value := range map[string]string{
		"date":       p.Date,
		"start_date": p.StartDate,
		"end_date":   p.EndDate,
	} {
		if err := timeutil.ValidateDate(name, value); err != nil {
			return nil, err
		}
	}

	query := statsapi.ScheduleQuery{
		Date:      p.Date,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		SportID:   p.SportID,
	}
	if p.Team != "" {
		teamID, err := s.resolveTeam(p.Team)
		if err != nil {
			return nil, err
		}
		query.TeamID = teamID
	}

	schedule, err := s.client.Schedule(ctx, query)
	if err != nil {
		return nil, err
	}
	return Result{"schedule": schedule}, nil
}

// TeamInfoParams filters the team-info operation.
type TeamInfoParams struct {
	Team    string
	Season  int
	SportID int
	Hydrate string
	Fields  string
}

// TeamInfo returns details for one team.
func (s *Service) TeamInfo(ctx context.Context, p TeamInfoParams) (Result, error) {
	teamID, err := s.resolveTeam(p.Team)
	if err != nil {
		return nil, err
	}

	extra := url.Values{}
	if p.Season > 0 {
		extra.Set("season", strconv.Itoa(p.Season))
	}
	if p.SportID > 0 {
		extra.Set("sportId", strconv.Itoa(p.SportID))
	}
	setIfPresent(extra, "hydrate", p.Hydrate)
	setIfPresent(extra, "fields", p.Fields)

	info, err := s.client.Team(ctx, teamID, extra)
	if err != nil {
		return nil, err
	}
	return Result{"team_info": info}, nil
}

// PlayerInfo returns details for one player by canonical ID.
func (s *Service) PlayerInfo(ctx context.Context, playerID int) (Result, error) {
	info, err := s.client.Person(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return Result{"player_info": info}, nil
}

// BoxscoreParams filters the boxscore operation.
type BoxscoreParams struct {
	GameID   int
	Timecode string
	Fields   string
}

// Boxscore returns the raw box score object untouched.
func (s *Service) Boxscore(ctx context.Context, p BoxscoreParams) (json.RawMessage, error) {
	extra := url.Values{}
	setIfPresent(extra, "timecode", p.Timecode)
	setIfPresent(extra, "fields", p.Fields)
	return s.client.BoxscoreRaw(ctx, p.GameID, extra)
}

// GameLineup returns the normalized lineup for one game: both sides (when
// posted) with players ordered by batting-order slot.
func (s *Service) GameLineup(ctx context.Context, gameID int) (Result, error) {
	box, err := s.client.Boxscore(ctx, gameID, nil)
	if err != nil {
		return nil, err
	}
	lineup, err := statsapi.NormalizeLineup(box)
	if err != nil {
		return nil, err
	}
	return Result{"teams": lineup.Teams}, nil
}

// GameHighlights returns media highlights for one game.
func (s *Service) GameHighlights(ctx context.Context, gameID int) (Result, error) {
	highlights, err := s.client.GameHighlights(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return Result{"highlights": highlights}, nil
}

// GamePace returns pace-of-game stats for a season.
func (s *Service) GamePace(ctx context.Context, season, sportID int) (Result, error) {
	if season == 0 {
		return nil, fmt.Errorf("season is required")
	}
	if sportID <= 0 {
		sportID = 1
	}
	pace, err := s.client.GamePace(ctx, strconv.Itoa(season), sportID)
	if err != nil {
		return nil, err
	}
	return Result{"game_pace": pace}, nil
}

// ScoringPlaysParams filters the scoring-plays operation.
type ScoringPlaysParams struct {
	GameID    int
	EventType string
	Timecode  string
	Fields    string
}

// GameScoringPlays returns a game's plays, filtered by result event type
// when one is given.
func (s *Service) GameScoringPlays(ctx context.Context, p ScoringPlaysParams) (Result, error) {
	extra := url.Values{}
	setIfPresent(extra, "timecode", p.Timecode)
	setIfPresent(extra, "fields", p.Fields)

	pbp, err := s.client.PlayByPlay(ctx, p.GameID, extra)
	if err != nil {
		return nil, err
	}

	plays := pbp.AllPlays
	if p.EventType != "" {
		plays = make([]json.RawMessage, 0, len(pbp.AllPlays))
		for _, play := range pbp.AllPlays {
			if statsapi.PlayEventType(play) == p.EventType {
				plays = append(plays, play)
			}
		}
	}
	if plays == nil {
		plays = []json.RawMessage{}
	}
	return Result{"plays": plays}, nil
}

// Linescore returns the inning-by-inning linescore for one game.
func (s *Service) Linescore(ctx context.Context, gameID int) (Result, error) {
	linescore, err := s.client.Linescore(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return Result{"linescore": linescore}, nil
}

// RosterParams filters the roster operation.
type RosterParams struct {
	Team       string
	RosterType string
	Season     string
	Date       string
	Hydrate    string
	Fields     string
}

// Roster returns a team's roster.
func (s *Service) Roster(ctx context.Context, p RosterParams) (Result, error) {
	if err := timeutil.ValidateDate("date", p.Date); err != nil {
		return nil, err
	}
	teamID, err := s.resolveTeam(p.Team)
	if err != nil {
		return nil, err
	}

	extra := url.Values{}
	setIfPresent(extra, "rosterType", p.RosterType)
	setIfPresent(extra, "season", p.Season)
	setIfPresent(extra, "date", p.Date)
	setIfPresent(extra, "hydrate", p.Hydrate)
	setIfPresent(extra, "fields", p.Fields)

	roster, err := s.client.Roster(ctx, teamID, extra)
	if err != nil {
		return nil, err
	}
	return Result{"roster": roster}, nil
}

// SearchPlayers returns the IDs of players matching a full name.
func (s *Service) SearchPlayers(ctx context.Context, fullname string, sportID int) (Result, error) {
	if strings.TrimSpace(fullname) == "" {
		return nil, fmt.Errorf("fullname is required")
	}
	if sportID <= 0 {
		sportID = 1
	}
	ids, err := s.client.SearchPlayerIDs(ctx, fullname, sportID)
	if err != nil {
		return nil, err
	}
	return Result{"player_ids": ids}, nil
}

// Players returns all players for a sport, optionally for one season.
func (s *Service) Players(ctx context.Context, sportID int, season int) (Result, error) {
	if sportID <= 0 {
		sportID = 1
	}
	raw, err := s.client.SportPlayers(ctx, sportID, seasonString(season))
	if err != nil {
		return nil, err
	}
	return Result{"players": extractArray(raw, "people")}, nil
}

// Draft returns draft results for a year.
func (s *Service) Draft(ctx context.Context, year int) (Result, error) {
	if year == 0 {
		return nil, fmt.Errorf("year is required")
	}
	draft, err := s.client.Draft(ctx, year)
	if err != nil {
		return nil, err
	}
	return Result{"draft": draft}, nil
}

// Awards returns recipients of one award.
func (s *Service) Awards(ctx context.Context, awardID string) (Result, error) {
	if strings.TrimSpace(awardID) == "" {
		return nil, fmt.Errorf("award_id is required")
	}
	awards, err := s.client.AwardRecipients(ctx, awardID)
	if err != nil {
		return nil, err
	}
	return Result{"awards": awards}, nil
}

// SearchTeams returns the canonical IDs of every team matching the query,
// scanning name, abbreviation, and location.
func (s *Service) SearchTeams(_ context.Context, teamName string) (Result, error) {
	table, err := teams.Load(s.teamsFile)
	if err != nil {
		return nil, err
	}
	ids := table.Search(teamName)
	if ids == nil {
		ids = []int{}
	}
	return Result{"team_ids": ids}, nil
}

// Teams returns all teams for a sport, optionally for one season.
func (s *Service) Teams(ctx context.Context, sportID int, season int) (Result, error) {
	if sportID <= 0 {
		sportID = 1
	}
	raw, err := s.client.Teams(ctx, sportID, seasonString(season))
	if err != nil {
		return nil, err
	}
	return Result{"teams": extractArray(raw, "teams")}, nil
}

// resolveTeam re-reads the reference table and resolves one team query.
func (s *Service) resolveTeam(query string) (int, error) {
	table, err := teams.Load(s.teamsFile)
	if err != nil {
		return 0, err
	}
	teamID, err := table.Resolve(query)
	if err != nil {
		logging.Warn(s.logger, "team resolution failed", logging.FieldTeamID, query)
		return 0, fmt.Errorf("unknown team %q: %w", query, err)
	}
	return teamID, nil
}

func setIfPresent(values url.Values, key, value string) {
	if value != "" {
		values.Set(key, value)
	}
}

func seasonString(season int) string {
	if season == 0 {
		return ""
	}
	return strconv.Itoa(season)
}

// extractArray pulls a named array out of an upstream envelope so list
// operations return the list itself, not the envelope. Falls back to the
// whole payload when the key is missing.
func extractArray(raw json.RawMessage, key string) json.RawMessage {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return raw
	}
	if arr, ok := envelope[key]; ok {
		return arr
	}
	return raw
}
