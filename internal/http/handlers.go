package http

import (
	"errors"
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"

	"mlb-stats-service/internal/app/mlb"
	"mlb-stats-service/internal/app/system"
	"mlb-stats-service/internal/teams"
)

// Handler wires the REST routes to the shared operation layer. Both
// surfaces return the same payloads; REST is a thin query-string front end
// over the tool operations.
type Handler struct {
	mlb    *mlb.Service
	system *system.Service
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(mlbSvc *mlb.Service, systemSvc *system.Service, logger *slog.Logger) *Handler {
	return &Handler{
		mlb:    mlbSvc,
		system: systemSvc,
		logger: logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports readiness. The service is stateless, so ready equals up.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"})
}

// CurrentDate returns the current date as YYYY-MM-DD.
func (h *Handler) CurrentDate(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, h.system.CurrentDate())
}

// CurrentTime returns the current time as HH:MM:SS.
func (h *Handler) CurrentTime(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, h.system.CurrentTime())
}

// Standings handles GET /mlb/standings.
func (h *Handler) Standings(w nethttp.ResponseWriter, r *nethttp.Request) {
	q := r.URL.Query()
	season, ok := h.optionalInt(w, q.Get("season"), "season")
	if !ok {
		return
	}

	result, err := h.mlb.Standings(r.Context(), mlb.StandingsParams{
		Season:         season,
		StandingsTypes: q.Get("standingsTypes"),
		Date:           q.Get("date"),
		Hydrate:        q.Get("hydrate"),
		Fields:         q.Get("fields"),
		League:         q.Get("league"),
	})
	h.respond(w, result, err)
}

// Schedule handles GET /mlb/schedule.
func (h *Handler) Schedule(w nethttp.ResponseWriter, r *nethttp.Request) {
	q := r.URL.Query()
	sportID, ok := h.optionalInt(w, q.Get("sport_id"), "sport_id")
	if !ok {
		return
	}

	result, err := h.mlb.Schedule(r.Context(), mlb.ScheduleParams{
		Date:      q.Get("date"),
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
		SportID:   sportID,
		Team:      q.Get("team"),
	})
	h.respond(w, result, err)
}

// TeamInfo handles GET /mlb/team/{team}.
func (h *Handler) TeamInfo(w nethttp.ResponseWriter, r *nethttp.Request) {
	team := strings.TrimPrefix(r.URL.Path, "/mlb/team/")
	if team == "" || strings.Contains(team, "/") {
		h.writeError(w, nethttp.StatusBadRequest, "missing team")
		return
	}
	q := r.URL.Query()
	season, ok := h.optionalInt(w, q.Get("season"), "season")
	if !ok {
		return
	}
	sportID, ok := h.optionalInt(w, q.Get("sport_id"), "sport_id")
	if !ok {
		return
	}

	result, err := h.mlb.TeamInfo(r.Context(), mlb.TeamInfoParams{
		Team:    team,
		Season:  season,
		SportID: sportID,
		Hydrate: q.Get("hydrate"),
		Fields:  q.Get("fields"),
	})
	h.respond(w, result, err)
}

// PlayerInfo handles GET /mlb/player/{player_id}.
func (h *Handler) PlayerInfo(w nethttp.ResponseWriter, r *nethttp.Request) {
	playerID, ok := h.pathInt(w, r.URL.Path, "/mlb/player/", "player_id")
	if !ok {
		return
	}
	result, err := h.mlb.PlayerInfo(r.Context(), playerID)
	h.respond(w, result, err)
}

// Boxscore handles GET /mlb/boxscore.
func (h *Handler) Boxscore(w nethttp.ResponseWriter, r *nethttp.Request) {
	q := r.URL.Query()
	gameID, ok := h.requiredInt(w, q.Get("game_id"), "game_id")
	if !ok {
		return
	}

	raw, err := h.mlb.Boxscore(r.Context(), mlb.BoxscoreParams{
		GameID:   gameID,
		Timecode: q.Get("timecode"),
		Fields:   q.Get("fields"),
	})
	if err != nil {
		h.writeError(w, errorStatus(err), err.Error())
		return
	}
	h.writeRaw(w, raw)
}

// GameLineup handles GET /mlb/game_lineup.
func (h *Handler) GameLineup(w nethttp.ResponseWriter, r *nethttp.Request) {
	gameID, ok := h.requiredInt(w, r.URL.Query().Get("game_id"), "game_id")
	if !ok {
		return
	}
	result, err := h.mlb.GameLineup(r.Context(), gameID)
	h.respond(w, result, err)
}

// GameHighlights handles GET /mlb/game_highlights.
func (h *Handler) GameHighlights(w nethttp.ResponseWriter, r *nethttp.Request) {
	gameID, ok := h.requiredInt(w, r.URL.Query().Get("game_id"), "game_id")
	if !ok {
		return
	}
	result, err := h.mlb.GameHighlights(r.Context(), gameID)
	h.respond(w, result, err)
}

// GamePace handles GET /mlb/game_pace.
func (h *Handler) GamePace(w nethttp.ResponseWriter, r *nethttp.Request) {
	q := r.URL.Query()
	season, ok := h.requiredInt(w, q.Get("season"), "season")
	if !ok {
		return
	}
	sportID, ok := h.optionalInt(w, q.Get("sport_id"), "sport_id")
	if !ok {
		return
	}
	result, err := h.mlb.GamePace(r.Context(), season, sportID)
	h.respond(w, result, err)
}

// GameScoringPlays handles GET /mlb/game_scoring_plays.
func (h *Handler) GameScoringPlays(w nethttp.ResponseWriter, r *nethttp.Request) {
	q := r.URL.Query()
	gameID, ok := h.requiredInt(w, q.Get("game_id"), "game_id")
	if !ok {
		return
	}

	result, err := h.mlb.GameScoringPlays(r.Context(), mlb.ScoringPlaysParams{
		GameID:    gameID,
		EventType: q.Get("eventType"),
		Timecode:  q.Get("timecode"),
		Fields:    q.Get("fields"),
	})
	h.respond(w, result, err)
}

// Linescore handles GET /mlb/linescore.
func (h *Handler) Linescore(w nethttp.ResponseWriter, r *nethttp.Request) {
	gameID, ok := h.requiredInt(w, r.URL.Query().Get("game_id"), "game_id")
	if !ok {
		return
	}
	result, err := h.mlb.Linescore(r.Context(), gameID)
	h.respond(w, result, err)
}

// PlayerStats handles GET /mlb/player_stats.
func (h *Handler) PlayerStats(w nethttp.ResponseWriter, r *nethttp.Request) {
	q := r.URL.Query()
	season, ok := h.optionalInt(w, q.Get("season"), "season")
	if !ok {
		return
	}

	result, err := h.mlb.PlayerStats(r.Context(), mlb.PlayerStatsParams{
		PlayerIDs: q.Get("player_ids"),
		Group:     q.Get("group"),
		Type:      q.Get("type"),
		Season:    season,
		EventType: q.Get("eventType"),
	})
	h.respond(w, result, err)
}

// Sabermetrics handles GET /mlb/sabermetrics.
func (h *Handler) Sabermetrics(w nethttp.ResponseWriter, r *nethttp.Request) {
	q := r.URL.Query()
	season, ok := h.optionalInt(w, q.Get("season"), "season")
	if !ok {
		return
	}

	result, err := h.mlb.Sabermetrics(r.Context(), mlb.SabermetricsParams{
		PlayerIDs: q.Get("player_ids"),
		Season:    season,
		StatName:  q.Get("stat_name"),
		Group:     q.Get("group"),
	})
	h.respond(w, result, err)
}

// Roster handles GET /mlb/roster.
func (h *Handler) Roster(w nethttp.ResponseWriter, r *nethttp.Request) {
	q := r.URL.Query()
	team := q.Get("team")
	if team == "" {
		h.writeError(w, nethttp.StatusBadRequest, "missing team")
		return
	}

	result, err := h.mlb.Roster(r.Context(), mlb.RosterParams{
		Team:       team,
		RosterType: q.Get("rosterType"),
		Season:     q.Get("season"),
		Date:       q.Get("date"),
		Hydrate:    q.Get("hydrate"),
		Fields:     q.Get("fields"),
	})
	h.respond(w, result, err)
}

// SearchPlayers handles GET /mlb/search_players.
func (h *Handler) SearchPlayers(w nethttp.ResponseWriter, r *nethttp.Request) {
	q := r.URL.Query()
	sportID, ok := h.optionalInt(w, q.Get("sport_id"), "sport_id")
	if !ok {
		return
	}
	result, err := h.mlb.SearchPlayers(r.Context(), q.Get("fullname"), sportID)
	h.respond(w, result, err)
}

// Players handles GET /mlb/players.
func (h *Handler) Players(w nethttp.ResponseWriter, r *nethttp.Request) {
	q := r.URL.Query()
	sportID, ok := h.optionalInt(w, q.Get("sport_id"), "sport_id")
	if !ok {
		return
	}
	season, ok := h.optionalInt(w, q.Get("season"), "season")
	if !ok {
		return
	}
	result, err := h.mlb.Players(r.Context(), sportID, season)
	h.respond(w, result, err)
}

// Draft handles GET /mlb/draft/{year}.
func (h *Handler) Draft(w nethttp.ResponseWriter, r *nethttp.Request) {
	year, ok := h.pathInt(w, r.URL.Path, "/mlb/draft/", "year")
	if !ok {
		return
	}
	result, err := h.mlb.Draft(r.Context(), year)
	h.respond(w, result, err)
}

// Awards handles GET /mlb/awards/{award_id}.
func (h *Handler) Awards(w nethttp.ResponseWriter, r *nethttp.Request) {
	awardID := strings.TrimPrefix(r.URL.Path, "/mlb/awards/")
	if awardID == "" || strings.Contains(awardID, "/") {
		h.writeError(w, nethttp.StatusBadRequest, "missing award_id")
		return
	}
	result, err := h.mlb.Awards(r.Context(), awardID)
	h.respond(w, result, err)
}

// SearchTeams handles GET /mlb/search_teams.
func (h *Handler) SearchTeams(w nethttp.ResponseWriter, r *nethttp.Request) {
	result, err := h.mlb.SearchTeams(r.Context(), r.URL.Query().Get("team_name"))
	h.respond(w, result, err)
}

// TeamsList handles GET /mlb/teams.
func (h *Handler) TeamsList(w nethttp.ResponseWriter, r *nethttp.Request) {
	q := r.URL.Query()
	sportID, ok := h.optionalInt(w, q.Get("sport_id"), "sport_id")
	if !ok {
		return
	}
	season, ok := h.optionalInt(w, q.Get("season"), "season")
	if !ok {
		return
	}
	result, err := h.mlb.Teams(r.Context(), sportID, season)
	h.respond(w, result, err)
}

func (h *Handler) respond(w nethttp.ResponseWriter, result mlb.Result, err error) {
	if err != nil {
		h.writeError(w, errorStatus(err), err.Error())
		return
	}
	h.writeJSON(w, nethttp.StatusOK, result)
}

// optionalInt parses an optional integer query parameter, writing a 400 on
// garbage input. The bool reports whether the caller may proceed.
func (h *Handler) optionalInt(w nethttp.ResponseWriter, value, name string) (int, bool) {
	if value == "" {
		return 0, true
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		h.writeError(w, nethttp.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return n, true
}

func (h *Handler) requiredInt(w nethttp.ResponseWriter, value, name string) (int, bool) {
	if value == "" {
		h.writeError(w, nethttp.StatusBadRequest, "missing "+name)
		return 0, false
	}
	return h.optionalInt(w, value, name)
}

func (h *Handler) pathInt(w nethttp.ResponseWriter, path, prefix, name string) (int, bool) {
	raw := strings.TrimPrefix(path, prefix)
	if raw == "" || strings.Contains(raw, "/") {
		h.writeError(w, nethttp.StatusBadRequest, "missing "+name)
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		h.writeError(w, nethttp.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return n, true
}

// errorStatus maps operation failures to HTTP statuses. The body shape is
// the same {"error": message} envelope in every case.
func errorStatus(err error) int {
	if errors.Is(err, teams.ErrTeamNotFound) {
		return nethttp.StatusNotFound
	}
	return nethttp.StatusInternalServerError
}
