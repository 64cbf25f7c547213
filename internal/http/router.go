package http

import nethttp "net/http"

// NewRouter registers the REST routes on a ServeMux and mounts the MCP
// handler when one is provided.
func NewRouter(handler *Handler, mcpHandler nethttp.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/current_date", handler.CurrentDate)
	mux.HandleFunc("/current_time", handler.CurrentTime)

	mux.HandleFunc("/mlb/standings", handler.Standings)
	mux.HandleFunc("/mlb/schedule", handler.Schedule)
	mux.HandleFunc("/mlb/team/", handler.TeamInfo)
	mux.HandleFunc("/mlb/player/", handler.PlayerInfo)
	mux.HandleFunc("/mlb/boxscore", handler.Boxscore)
	mux.HandleFunc("/mlb/game_lineup", handler.GameLineup)
	mux.HandleFunc("/mlb/game_highlights", handler.GameHighlights)
	mux.HandleFunc("/mlb/game_pace", handler.GamePace)
	mux.HandleFunc("/mlb/game_scoring_plays", handler.GameScoringPlays)
	mux.HandleFunc("/mlb/linescore", handler.Linescore)
	mux.HandleFunc("/mlb/player_stats", handler.PlayerStats)
	mux.HandleFunc("/mlb/sabermetrics", handler.Sabermetrics)
	mux.HandleFunc("/mlb/roster", handler.Roster)
	mux.HandleFunc("/mlb/search_players", handler.SearchPlayers)
	mux.HandleFunc("/mlb/players", handler.Players)
	mux.HandleFunc("/mlb/draft/", handler.Draft)
	mux.HandleFunc("/mlb/awards/", handler.Awards)
	mux.HandleFunc("/mlb/search_teams", handler.SearchTeams)
	mux.HandleFunc("/mlb/teams", handler.TeamsList)

	if mcpHandler != nil {
		mux.Handle("/mcp", mcpHandler)
	}
	return mux
}
