package lineups

// UnknownName is the sentinel used when the upstream omits a display name.
const UnknownName = "Unknown"

// Response is the payload returned by the game-lineup operation.
type Response struct {
	Teams Teams `json:"teams"`
}

// Teams holds the two fixed sides of a box score. A side missing from the
// upstream response is omitted entirely rather than synthesized empty.
type Teams struct {
	Away *TeamLineup `json:"away,omitempty"`
	Home *TeamLineup `json:"home,omitempty"`
}

// TeamLineup is one side's identity plus its ordered roster.
type TeamLineup struct {
	TeamName string        `json:"team_name"`
	TeamID   *int          `json:"team_id"`
	Players  []RosterEntry `json:"players"`
}

// Position is one eligible fielding position, reduced to its two display fields.
type Position struct {
	Abbreviation string `json:"abbreviation"`
	FullName     string `json:"full_name"`
}

// GameStatus bundles the bench/substitute/status flags for one player.
type GameStatus struct {
	IsOnBench    bool   `json:"is_on_bench"`
	IsSubstitute bool   `json:"is_substitute"`
	Status       string `json:"status"`
}

// RosterEntry is a flattened, default-filled representation of one player's
// box-score data. Every optional upstream field defaults independently; a
// gap never drops the entry.
type RosterEntry struct {
	PlayerID     *int       `json:"player_id,omitempty"`
	PlayerName   string     `json:"player_name"`
	JerseyNumber string     `json:"jersey_number,omitempty"`
	Positions    []Position `json:"positions"`
	BattingOrder *int       `json:"batting_order,omitempty"`
	GameStatus   GameStatus `json:"game_status"`
}
