package tools

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"mlb-stats-service/internal/app/mlb"
	"mlb-stats-service/internal/app/system"
	"mlb-stats-service/internal/logging"
	"mlb-stats-service/internal/metrics"
)

// Config collects the dependencies of the tool surface.
type Config struct {
	MLB      *mlb.Service
	System   *system.Service
	Logger   *slog.Logger
	Recorder *metrics.Recorder
	Name     string
	Version  string
}

type registry struct {
	mlb      *mlb.Service
	system   *system.Service
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// NewServer builds the MCP server with every operation registered as a
// tool. The same server is served over streamable HTTP and stdio.
func NewServer(cfg Config) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: cfg.Name, Version: cfg.Version}, nil)
	r := &registry{mlb: cfg.MLB, system: cfg.System, logger: cfg.Logger, recorder: cfg.Recorder}
	r.registerAll(server)
	return server
}

// register wires one operation: decode arguments, invoke, and collapse any
// failure to the {"error": message} envelope. Envelope errors are tool
// payloads, never protocol faults.
func (r *registry) register(server *mcp.Server, tool *mcp.Tool, invoke func(ctx context.Context, args json.RawMessage) (any, error)) {
	server.AddTool(tool, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		payload, err := invoke(ctx, req.Params.Arguments)
		r.recorder.RecordToolCall(tool.Name, time.Since(start), err != nil)
		if err != nil {
			logging.Warn(r.logger, "tool call failed", logging.FieldTool, tool.Name, "error", err.Error())
			return errorResult(err), nil
		}
		return successResult(payload)
	})
}

func (r *registry) registerAll(server *mcp.Server) {
	r.register(server, &mcp.Tool{
		Name:        "get_mlb_standings",
		Description: "Get MLB standings for a season, for the AL, the NL, or both.",
		InputSchema: objectSchema(map[string]*jsonschema.Schema{
			"season":         intProp("Season year. Defaults to the current year."),
			"standingsTypes": stringProp("Standings type, e.g. regularSeason or wildCard."),
			"date":           stringProp("Standings as of this date (YYYY-MM-DD)."),
			"hydrate":        stringProp("Additional data to hydrate in the response."),
			"fields":         stringProp("Comma-separated fields to include."),
			"league":         stringProp("AL, NL, or both. Defaults to both."),
		}),
	}, func(ctx context.Context, raw json.RawMessage) (any, error) {
		var args struct {
			Season         int    `json:"season"`
			StandingsTypes string `json:"standingsTypes"`
			Date           string `json:"date"`
			Hydrate        string `json:"hydrate"`
			Fields         string `json:"fields"`
			League         string `json:"league"`
		}
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.mlb.Standings(ctx, mlb.StandingsParams{
			Season:         args.Season,
			StandingsTypes: args.StandingsTypes,
			Date:           args.Date,
			Hydrate:        args.Hydrate,
			Fields:         args.Fields,
			League:         args.League,
		})
	})

	r.register(server, &mcp.Tool{
		Name:        "get_mlb_schedule",
		Description: "Get the MLB schedule for a date, date range, or team.",
		InputSchema: objectSchema(map[string]*jsonschema.Schema{
			"date":       stringProp("Single date (YYYY-MM-DD)."),
			"start_date": stringProp("Range start (YYYY-MM-DD)."),
			"end_date":   stringProp("Range end (YYYY-MM-DD)."),
			"sport_id":   intProp("Sport ID. Defaults to 1 (MLB)."),
			"team":       stringProp("Team ID, name, abbreviation, or location."),
		}),
	}, func(ctx context.Context, raw json.RawMessage) (any, error) {
		var args struct {
			Date      string `json:"date"`
			StartDate string `json:"start_date"`
			EndDate   string `json:"end_date"`
			SportID   int    `json:"sport_id"`
			Team      string `json:"team"`
		}
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.mlb.Schedule(ctx, mlb.ScheduleParams{
			Date:      args.Date,
			StartDate: args.StartDate,
			EndDate:   args.EndDate,
			SportID:   args.SportID,
			Team:      args.Team,
		})
	})

	r.register(server, &mcp.Tool{
		Name:        "get_mlb_team_info",
		Description: "Get details for one team, identified by ID, name, abbreviation, or location.",
		InputSchema: objectSchema(map[string]*jsonschema.Schema{
			"team":     stringProp("Team ID, name, abbreviation, or location."),
			"season":   intProp("Season year."),
			"sport_id": intProp("Sport ID."),
			"hydrate":  stringProp("Additional data to hydrate in the response."),
			"fields":   stringProp("Comma-separated fields to include."),
		}, "team"),
	}, func(ctx context.Context, raw json.RawMessage) (any, error) {
		var args struct {
			Team    string `json:"team"`
			Season  int    `json:"season"`
			SportID int    `json:"sport_id"`
			Hydrate string `json:"hydrate"`
			Fields  string `json:"fields"`
		}
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.mlb.TeamInfo(ctx, mlb.TeamInfoParams{
			Team:    args.Team,
			Season:  args.Season,
			SportID: args.SportID,
			Hydrate: args.Hydrate,
			Fields:  args.Fields,
		})
	})

	r.register(server, &mcp.Tool{
		Name:        "get_mlb_player_info",
		Description: "Get details for one player by numeric ID.",
		InputSchema: objectSchema(map[string]*jsonschema.Schema{
			"player_id": intProp("Canonical player ID, e.g. 592450 for Aaron Judge."),
		}, "player_id"),
	}, func(ctx context.Context, raw json.RawMessage) (any, error) {
		var args struct {
			PlayerID int `json:"player_id"`
		}
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.mlb.PlayerInfo(ctx, args.PlayerID)
	})

	r.register(server, &mcp.Tool{
		Name:        "get_mlb_boxscore",
		Description: "Get the raw boxscore for one game.",
		InputSchema: objectSchema(map[string]*jsonschema.Schema{
			"game_id":  intProp("Game ID."),
			"timecode": stringProp("Boxscore snapshot timecode (YYYYMMDD_HHMMSS)."),
			"fields":   stringProp("Comma-separated fields to include."),
		}, "game_id"),
	}, func(ctx context.Context, raw json.RawMessage) (any, error) {
		var args struct {
			GameID   int    `json:"game_id"`
			Timecode string `json:"timecode"`
			Fields   string `json:"fields"`
		}
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.mlb.Boxscore(ctx, mlb.BoxscoreParams{
			GameID:   args.GameID,
			Timecode: args.Timecode,
			Fields:   args.Fields,
		})
	})

	r.register(server, &mcp.Tool{
		Name:        "get_mlb_game_lineup",
		Description: "Get the normalized lineup for one game: both sides when posted, players in batting order.",
		InputSchema: objectSchema(map[string]*jsonschema.Schema{
			"game_id": intProp("Game ID."),
		}, "game_id"),
	}, func(ctx context.Context, raw json.RawMessage) (any, error) {
		var args struct {
			GameID int `json:"game_id"`
		}
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.mlb.GameLineup(ctx, args.GameID)
	})

	r.register(server, &mcp.Tool{
		Name:        "get_mlb_game_highlights",
		Description: "Get media highlights for one game.",
		InputSchema: objectSchema(map[string]*jsonschema.Schema{
			"game_id": intProp("Game ID."),
		}, "game_id"),
	}, func(ctx context.Context, raw json.RawMessage) (any, error) {
		var args struct {
			GameID int `json:"game_id"`
		}
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.mlb.GameHighlights(ctx, args.GameID)
	})

	r.register(server, &mcp.Tool{
		Name:        "get_mlb_game_pace",
		Description: "Get pace-of-game statistics for a season.",
		InputSchema: objectSchema(map[string]*jsonschema.Schema{
			"season":   intProp("Season year."),
			"sport_id": intProp("Sport ID. Defaults to 1 (MLB)."),
		}, "season"),
	}, func(ctx context.Context, raw json.RawMessage) (any, error) {
		var args struct {
			Season  int `json:"season"`
			SportID int `json:"sport_id"`
		}
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.mlb.GamePace(ctx, args.Season, args.SportID)
	})

	r.register(server, &mcp.Tool{
		Name:        "get_mlb_game_scoring_plays",
		Description: "Get plays for one game, optionally filtered by event type (e.g. home_run).",
		InputSchema: objectSchema(map[string]*jsonschema.Schema{
			"game_id":   intProp("Game ID."),
			"eventType": stringProp("Only return plays with this result event type."),
			"timecode":  stringProp("Play-by-play snapshot timecode (YYYYMMDD_HHMMSS)."),
			"fields":    stringProp("Comma-separated fields to include."),
		}, "game_id"),
	}, func(ctx context.Context, raw json.RawMessage) (any, error) {
		var args struct {
			GameID    int    `json:"game_id"`
			EventType string `json:"eventType"`
			Timecode  string `json:"timecode"`
			Fields    string `json:"fields"`
		}
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.mlb.GameScoringPlays(ctx, mlb.ScoringPlaysParams{
			GameID:    args.GameID,
			EventType: args.EventType,
			Timecode:  args.Timecode,
			Fields:    args.Fields,
		})
	})

	r.register(server, &mcp.Tool{
		Name:        "get_mlb_linescore",
		Description: "Get the inning-by-inning linescore for one game.",
		InputSchema: objectSchema(map[string]*jsonschema.Schema{
			"game_id": intProp("Game ID."),
		}, "game_id"),
	}, func(ctx context.Context, raw json.RawMessage) (any, error) {
		var args struct {
			GameID int `json:"game_id"`
		}
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.mlb.Linescore(ctx, args.GameID)
	})

	r.register(server, &mcp.Tool{
		Name:        "get_mlb_player_stats",
		Description: "Get stat splits for one or more players by comma-separated IDs, filtered by group, type, and season.",
		InputSchema: objectSchema(map[string]*jsonschema.Schema{
			"player_ids": stringProp("Comma-separated player IDs."),
			"group":      stringProp("Stat group, e.g. hitting or pitching."),
			"type":       stringProp("Stat type, e.g. season or career."),
			"season":     intProp("Season year."),
			"eventType":  stringProp("Event type filter for play logs."),
		}, "player_ids"),
	}, func(ctx context.Context, raw json.RawMessage) (any, error) {
		var args struct {
			PlayerIDs string `json:"player_ids"`
			Group     string `json:"group"`
			Type      string `json:"type"`
			Season    int    `json:"season"`
			EventType string `json:"eventType"`
		}
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.mlb.PlayerStats(ctx, mlb.PlayerStatsParams{
			PlayerIDs: args.PlayerIDs,
			Group:     args.Group,
			Type:      args.Type,
			Season:    args.Season,
			EventType: args.EventType,
		})
	})

	r.register(server, &mcp.Tool{
		Name:        "get_mlb_sabermetrics",
		Description: "Get sabermetric statistics (WAR, wOBA, ...) for players in one season.",
		InputSchema: objectSchema(map[string]*jsonschema.Schema{
			"player_ids": stringProp("Comma-separated player IDs."),
			"season":     intProp("Season year."),
			"stat_name":  stringProp("One stat to extract, e.g. war. Returns all when omitted."),
			"group":      stringProp("hitting or pitching. Defaults to hitting."),
		}, "player_ids", "season"),
	}, func(ctx context.Context, raw json.RawMessage) (any, error) {
		var args struct {
			PlayerIDs string `json:"player_ids"`
			Season    int    `json:"season"`
			StatName  string `json:"stat_name"`
			Group     string `json:"group"`
		}
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.mlb.Sabermetrics(ctx, mlb.SabermetricsParams{
			PlayerIDs: args.PlayerIDs,
			Season:    args.Season,
			StatName:  args.StatName,
			Group:     args.Group,
		})
	})

	r.register(server, &mcp.Tool{
		Name:        "get_mlb_roster",
		Description: "Get a team's roster, identified by ID, name, abbreviation, or location.",
		InputSchema: objectSchema(map[string]*jsonschema.Schema{
			"team":       stringProp("Team ID, name, abbreviation, or location."),
			"rosterType": stringProp("Roster type, e.g. 40Man, active, fullSeason."),
			"season":     stringProp("Season year."),
			"date":       stringProp("Roster as of this date (YYYY-MM-DD)."),
			"hydrate":    stringProp("Additional data to hydrate in the response."),
			"fields":     stringProp("Comma-separated fields to include."),
		}, "team"),
	}, func(ctx context.Context, raw json.RawMessage) (any, error) {
		var args struct {
			Team       string `json:"team"`
			RosterType string `json:"rosterType"`
			Season     string `json:"season"`
			Date       string `json:"date"`
			Hydrate    string `json:"hydrate"`
			Fields     string `json:"fields"`
		}
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.mlb.Roster(ctx, mlb.RosterParams{
			Team:       args.Team,
			RosterType: args.RosterType,
			Season:     args.Season,
			Date:       args.Date,
			Hydrate:    args.Hydrate,
			Fields:     args.Fields,
		})
	})

	r.register(server, &mcp.Tool{
		Name:        "get_mlb_search_players",
		Description: "Search players by full name; returns matching player IDs.",
		InputSchema: objectSchema(map[string]*jsonschema.Schema{
			"fullname": stringProp("Player full name, e.g. Aaron Judge."),
			"sport_id": intProp("Sport ID. Defaults to 1 (MLB)."),
		}, "fullname"),
	}, func(ctx context.Context, raw json.RawMessage) (any, error) {
		var args struct {
			Fullname string `json:"fullname"`
			SportID  int    `json:"sport_id"`
		}
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.mlb.SearchPlayers(ctx, args.Fullname, args.SportID)
	})

	r.register(server, &mcp.Tool{
		Name:        "get_mlb_players",
		Description: "Get all players for a sport, optionally for one season.",
		InputSchema: objectSchema(map[string]*jsonschema.Schema{
			"sport_id": intProp("Sport ID. Defaults to 1 (MLB)."),
			"season":   intProp("Season year."),
		}),
	}, func(ctx context.Context, raw json.RawMessage) (any, error) {
		var args struct {
			SportID int `json:"sport_id"`
			Season  int `json:"season"`
		}
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.mlb.Players(ctx, args.SportID, args.Season)
	})

	r.register(server, &mcp.Tool{
		Name:        "get_mlb_draft",
		Description: "Get draft results for one year.",
		InputSchema: objectSchema(map[string]*jsonschema.Schema{
			"year": intProp("Draft year."),
		}, "year"),
	}, func(ctx context.Context, raw json.RawMessage) (any, error) {
		var args struct {
			Year int `json:"year"`
		}
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.mlb.Draft(ctx, args.Year)
	})

	r.register(server, &mcp.Tool{
		Name:        "get_mlb_awards",
		Description: "Get recipients of one award, e.g. MLBMVP.",
		InputSchema: objectSchema(map[string]*jsonschema.Schema{
			"award_id": stringProp("Award identifier, e.g. MLBMVP."),
		}, "award_id"),
	}, func(ctx context.Context, raw json.RawMessage) (any, error) {
		var args struct {
			AwardID string `json:"award_id"`
		}
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.mlb.Awards(ctx, args.AwardID)
	})

	r.register(server, &mcp.Tool{
		Name:        "get_mlb_search_teams",
		Description: "Search teams by name, abbreviation, or location; returns matching team IDs.",
		InputSchema: objectSchema(map[string]*jsonschema.Schema{
			"team_name": stringProp("Team name, abbreviation, or location."),
		}, "team_name"),
	}, func(ctx context.Context, raw json.RawMessage) (any, error) {
		var args struct {
			TeamName string `json:"team_name"`
		}
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.mlb.SearchTeams(ctx, args.TeamName)
	})

	r.register(server, &mcp.Tool{
		Name:        "get_mlb_teams",
		Description: "Get all teams for a sport, optionally for one season.",
		InputSchema: objectSchema(map[string]*jsonschema.Schema{
			"sport_id": intProp("Sport ID. Defaults to 1 (MLB)."),
			"season":   intProp("Season year."),
		}),
	}, func(ctx context.Context, raw json.RawMessage) (any, error) {
		var args struct {
			SportID int `json:"sport_id"`
			Season  int `json:"season"`
		}
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return r.mlb.Teams(ctx, args.SportID, args.Season)
	})

	r.register(server, &mcp.Tool{
		Name:        "get_current_date",
		Description: "Get the current date (YYYY-MM-DD).",
		InputSchema: objectSchema(nil),
	}, func(ctx context.Context, raw json.RawMessage) (any, error) {
		return r.system.CurrentDate(), nil
	})

	r.register(server, &mcp.Tool{
		Name:        "get_current_time",
		Description: "Get the current time (HH:MM:SS).",
		InputSchema: objectSchema(nil),
	}, func(ctx context.Context, raw json.RawMessage) (any, error) {
		return r.system.CurrentTime(), nil
	})
}
