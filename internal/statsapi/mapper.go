package statsapi

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"mlb-stats-service/internal/domain/lineups"
)

// ErrMalformedBoxscore signals that the upstream payload is not a box score
// at all (no teams structure). Gaps inside an otherwise well-formed box
// score are defaulted, never errors.
var ErrMalformedBoxscore = errors.New("statsapi: boxscore response has no teams structure")

// playerSlotPrefix marks real player entries in a side's players collection;
// the upstream keys them "ID<personId>" alongside occasional metadata keys.
const playerSlotPrefix = "ID"

// NormalizeLineup flattens a raw box score into the stable lineup shape.
// Sides absent upstream are omitted from the output rather than synthesized.
func NormalizeLineup(box *BoxscoreResponse) (lineups.Response, error) {
	if box == nil || box.Teams == nil {
		return lineups.Response{}, ErrMalformedBoxscore
	}

	var resp lineups.Response
	if box.Teams.Away != nil {
		side := mapTeamLineup(box.Teams.Away)
		resp.Teams.Away = &side
	}
	if box.Teams.Home != nil {
		side := mapTeamLineup(box.Teams.Home)
		resp.Teams.Home = &side
	}
	return resp, nil
}

func mapTeamLineup(side *BoxscoreTeam) lineups.TeamLineup {
	lineup := lineups.TeamLineup{
		TeamName: lineups.UnknownName,
		Players:  []lineups.RosterEntry{},
	}
	if side.Team != nil {
		if side.Team.Name != "" {
			lineup.TeamName = side.Team.Name
		}
		lineup.TeamID = side.Team.ID
	}

	type orderedEntry struct {
		entry  lineups.RosterEntry
		key    int
		hasKey bool
	}

	entries := make([]orderedEntry, 0, len(side.Players))
	for _, slot := range playerSlotKeys(side.Players) {
		player := side.Players[slot]
		key, hasKey := battingOrderKey(player.BattingOrder)
		entries = append(entries, orderedEntry{
			entry:  mapRosterEntry(player),
			key:    key,
			hasKey: hasKey,
		})
	}

	// Stable: entries without a batting order keep their relative order and
	// land after every entry that has one.
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].hasKey != entries[j].hasKey {
			return entries[i].hasKey
		}
		if !entries[i].hasKey {
			return false
		}
		return entries[i].key < entries[j].key
	})

	for _, e := range entries {
		lineup.Players = append(lineup.Players, e.entry)
	}
	return lineup
}

func mapRosterEntry(player BoxscorePlayer) lineups.RosterEntry {
	entry := lineups.RosterEntry{
		PlayerName: lineups.UnknownName,
		Positions:  []lineups.Position{},
	}

	if player.Person != nil {
		entry.PlayerID = player.Person.ID
		if player.Person.FullName != "" {
			entry.PlayerName = player.Person.FullName
		}
	}
	entry.JerseyNumber = player.JerseyNumber

	for _, pos := range player.AllPositions {
		entry.Positions = append(entry.Positions, lineups.Position{
			Abbreviation: pos.Abbreviation,
			FullName:     pos.Name,
		})
	}

	if raw := strings.TrimSpace(player.BattingOrder); raw != "" {
		if order, err := strconv.Atoi(raw); err == nil {
			entry.BattingOrder = &order
		}
	}

	if player.GameStatus != nil {
		entry.GameStatus.IsOnBench = player.GameStatus.IsOnBench
		entry.GameStatus.IsSubstitute = player.GameStatus.IsSubstitute
	}
	if player.Status != nil {
		entry.GameStatus.Status = player.Status.Description
		if entry.GameStatus.Status == "" {
			entry.GameStatus.Status = player.Status.Code
		}
	}

	return entry
}

// playerSlotKeys returns the real player slot keys ordered by their numeric
// suffix so normalization is deterministic before the batting-order sort.
func playerSlotKeys(players map[string]BoxscorePlayer) []string {
	keys := make([]string, 0, len(players))
	for key := range players {
		if strings.HasPrefix(key, playerSlotPrefix) {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		a, aErr := strconv.Atoi(strings.TrimPrefix(keys[i], playerSlotPrefix))
		b, bErr := strconv.Atoi(strings.TrimPrefix(keys[j], playerSlotPrefix))
		if aErr == nil && bErr == nil {
			return a < b
		}
		if (aErr == nil) != (bErr == nil) {
			return aErr == nil
		}
		return keys[i] < keys[j]
	})
	return keys
}

// battingOrderKey derives the sort key from the provider's batting-order
// string by removing every literal '0' rune and parsing what remains, so
// "900" sorts with key 9. Bench substitutions arrive zero-padded ("901" for
// the player subbed into slot 9) and this stripping is the long-standing
// contract; it is not numeric-value-preserving and must not be "fixed" to
// plain integer parsing.
func battingOrderKey(raw string) (int, bool) {
	stripped := strings.ReplaceAll(strings.TrimSpace(raw), "0", "")
	if stripped == "" {
		return 0, false
	}
	key, err := strconv.Atoi(stripped)
	if err != nil {
		return 0, false
	}
	return key, true
}
