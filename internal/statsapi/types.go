package statsapi

import "encoding/json"

// Wire shapes for the subset of MLB Stats API responses that get decoded
// into typed structs. Everything the service merely forwards stays raw.
// Optional upstream fields are pointers so absence is distinguishable from
// zero values; the mapper supplies defaults exactly once.

// BoxscoreResponse is the typed slice of a /game/{gamePk}/boxscore payload
// consumed by the lineup normalizer.
type BoxscoreResponse struct {
	Teams *BoxscoreTeams `json:"teams"`
}

// BoxscoreTeams holds the two fixed sides. Either may be absent for
// scheduled-but-not-started games.
type BoxscoreTeams struct {
	Away *BoxscoreTeam `json:"away"`
	Home *BoxscoreTeam `json:"home"`
}

// BoxscoreTeam is one side of the box score.
type BoxscoreTeam struct {
	Team    *TeamIdentity             `json:"team"`
	Players map[string]BoxscorePlayer `json:"players"`
}

// TeamIdentity is the minimal team identity block.
type TeamIdentity struct {
	ID   *int   `json:"id"`
	Name string `json:"name"`
}

// PersonIdentity is the minimal person identity block.
type PersonIdentity struct {
	ID       *int   `json:"id"`
	FullName string `json:"fullName"`
}

// BoxscorePlayer is one player slot in a side's players collection.
type BoxscorePlayer struct {
	Person       *PersonIdentity  `json:"person"`
	JerseyNumber string           `json:"jerseyNumber"`
	AllPositions []PositionDetail `json:"allPositions"`
	BattingOrder string           `json:"battingOrder"`
	GameStatus   *GameStatusFlags `json:"gameStatus"`
	Status       *PlayerStatus    `json:"status"`
}

// PositionDetail is one eligible fielding position.
type PositionDetail struct {
	Abbreviation string `json:"abbreviation"`
	Name         string `json:"name"`
}

// GameStatusFlags carries the per-game bench/substitute flags.
type GameStatusFlags struct {
	IsOnBench    bool `json:"isOnBench"`
	IsSubstitute bool `json:"isSubstitute"`
}

// PlayerStatus is the roster status block (e.g. code "A", "Active").
type PlayerStatus struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// PlayByPlayResponse keeps plays raw so filtered plays pass through
// untouched; only the event type is peeked at per play.
type PlayByPlayResponse struct {
	AllPlays []json.RawMessage `json:"allPlays"`
}

type playResultEnvelope struct {
	Result struct {
		EventType string `json:"eventType"`
	} `json:"result"`
}

// PlayEventType extracts result.eventType from a raw play, or "" when the
// play is malformed.
func PlayEventType(play json.RawMessage) string {
	var env playResultEnvelope
	if err := json.Unmarshal(play, &env); err != nil {
		return ""
	}
	return env.Result.EventType
}

type peopleResponse struct {
	People []PersonIdentity `json:"people"`
}

// HydratedPeopleResponse is the typed slice of a hydrated /people call used
// by the multi-player stats operation.
type HydratedPeopleResponse struct {
	People []HydratedPerson `json:"people"`
}

// HydratedPerson is one person with their hydrated stat splits kept raw.
type HydratedPerson struct {
	ID       int             `json:"id"`
	FullName string          `json:"fullName"`
	Stats    json.RawMessage `json:"stats"`
}

// SabermetricsResponse is the typed shape of a stats=sabermetrics call.
type SabermetricsResponse struct {
	Stats []SabermetricStatGroup `json:"stats"`
}

// SabermetricStatGroup is one stat grouping with its per-player splits.
type SabermetricStatGroup struct {
	Splits []SabermetricSplit `json:"splits"`
}

// SabermetricSplit is one player's sabermetric line for a season.
type SabermetricSplit struct {
	Player   *PersonIdentity `json:"player"`
	Position *PositionDetail `json:"position"`
	Team     *TeamIdentity   `json:"team"`
	Stat     map[string]any  `json:"stat"`
}

type contentResponse struct {
	Highlights json.RawMessage `json:"highlights"`
}
