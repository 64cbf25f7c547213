package mlb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"mlb-stats-service/internal/statsapi"
)

// PlayerStatsParams filters the multi-player stats operation. PlayerIDs is
// a comma-separated list of canonical person IDs.
type PlayerStatsParams struct {
	PlayerIDs string
	Group     string
	Type      string
	Season    int
	EventType string
}

// PlayerStats returns hydrated stat splits for one or more players. A 4xx
// from the hydrate call (bad ID, bad group) yields an empty result rather
// than an error.
func (s *Service) PlayerStats(ctx context.Context, p PlayerStatsParams) (Result, error) {
	ids := splitIDList(p.PlayerIDs)
	if len(ids) == 0 {
		return nil, fmt.Errorf("player_ids is required")
	}

	var groups, statTypes []string
	if p.Group != "" {
		groups = []string{p.Group}
	}
	if p.Type != "" {
		statTypes = []string{p.Type}
	}

	people, err := s.client.PeopleWithStats(ctx, ids, groups, statTypes, seasonString(p.Season))
	if err != nil {
		if statsapi.IsClientError(err) {
			return Result{"player_stats": []json.RawMessage{}}, nil
		}
		return nil, err
	}

	splits := make([]json.RawMessage, 0, len(people.People))
	for _, person := range people.People {
		if len(person.Stats) > 0 {
			splits = append(splits, person.Stats)
		}
	}
	return Result{"player_stats": splits}, nil
}

// SabermetricsParams filters the sabermetrics operation.
type SabermetricsParams struct {
	PlayerIDs string
	Season    int
	StatName  string
	Group     string
}

// Sabermetrics returns advanced stats (WAR, wOBA, ...) for the requested
// players in one season. When StatName is given only that stat is returned
// per player, with the available stat names listed if it is missing.
func (s *Service) Sabermetrics(ctx context.Context, p SabermetricsParams) (Result, error) {
	ids := splitIDList(p.PlayerIDs)
	if len(ids) == 0 {
		return nil, fmt.Errorf("player_ids is required")
	}
	if p.Season == 0 {
		return nil, fmt.Errorf("season is required")
	}
	group := p.Group
	if group == "" {
		group = "hitting"
	}

	wanted := make(map[int]bool, len(ids))
	for _, id := range ids {
		n, err := strconv.Atoi(id)
		if err != nil {
			return nil, fmt.Errorf("invalid player id %q", id)
		}
		wanted[n] = true
	}

	resp, err := s.client.Sabermetrics(ctx, group, strconv.Itoa(p.Season))
	if err != nil {
		if statusErr, ok := statsapi.AsStatusError(err); ok && statsapi.IsClientError(err) {
			return nil, fmt.Errorf("API error: %d", statusErr.StatusCode)
		}
		return nil, err
	}
	if len(resp.Stats) == 0 {
		return nil, fmt.Errorf("no stats data found")
	}

	players := make([]map[string]any, 0, len(ids))
	for _, statGroup := range resp.Stats {
		for _, split := range statGroup.Splits {
			if split.Player == nil || split.Player.ID == nil || !wanted[*split.Player.ID] {
				continue
			}
			players = append(players, sabermetricRecord(split, p.StatName))
		}
	}

	return Result{
		"season":  p.Season,
		"group":   group,
		"players": players,
	}, nil
}

func sabermetricRecord(split statsapi.SabermetricSplit, statName string) map[string]any {
	record := map[string]any{
		"player_id":   *split.Player.ID,
		"player_name": "Unknown",
		"position":    "N/A",
		"team":        "N/A",
		"team_id":     nil,
	}
	if split.Player.FullName != "" {
		record["player_name"] = split.Player.FullName
	}
	if split.Position != nil && split.Position.Abbreviation != "" {
		record["position"] = split.Position.Abbreviation
	}
	if split.Team != nil {
		if split.Team.Name != "" {
			record["team"] = split.Team.Name
		}
		if split.Team.ID != nil {
			record["team_id"] = *split.Team.ID
		}
	}

	if split.Stat == nil {
		return record
	}
	if statName == "" {
		record["sabermetrics"] = split.Stat
		return record
	}

	if value, ok := split.Stat[strings.ToLower(statName)]; ok {
		record[statName] = value
		return record
	}
	record[statName] = nil
	available := make([]string, 0, len(split.Stat))
	for name := range split.Stat {
		available = append(available, name)
	}
	sort.Strings(available)
	record["available_stats"] = available
	return record
}

func splitIDList(csv string) []string {
	var ids []string
	for _, part := range strings.Split(csv, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}
