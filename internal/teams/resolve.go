package teams

import (
	"errors"
	"strconv"
	"strings"
)

// ErrTeamNotFound signals that a query matched no record in the reference
// table. Callers turn this into a user-facing error envelope.
var ErrTeamNotFound = errors.New("teams: no team matches query")

// Resolve maps a user-supplied team identifier to the canonical numeric ID,
// in strict precedence order:
//
//  1. a full base-10 integer passes through untouched, with no table lookup
//     (a bogus ID is caught downstream by the upstream call failing);
//  2. an exact case-folded match on the team name;
//  3. the first record, in table order, whose name, abbreviation, or
//     location contains the query as a substring.
//
// Exact-before-substring keeps short names from being swallowed by longer
// ones; first-match-in-table-order is the deliberate tie-break for
// ambiguous fragments.
func (t Table) Resolve(query string) (int, error) {
	if id, err := strconv.Atoi(strings.TrimSpace(query)); err == nil {
		return id, nil
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return 0, ErrTeamNotFound
	}

	for _, rec := range t {
		if strings.ToLower(rec.Name) == needle {
			return rec.ID, nil
		}
	}

	for _, rec := range t {
		if rec.matches(needle) {
			return rec.ID, nil
		}
	}

	return 0, ErrTeamNotFound
}

// Search returns the canonical IDs of every record matching the query, in
// table order. A numeric query returns itself; otherwise exact name matches
// come first, followed by the remaining substring matches.
func (t Table) Search(query string) []int {
	if id, err := strconv.Atoi(strings.TrimSpace(query)); err == nil {
		return []int{id}
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil
	}

	var exact, partial []int
	for _, rec := range t {
		if strings.ToLower(rec.Name) == needle {
			exact = append(exact, rec.ID)
			continue
		}
		if rec.matches(needle) {
			partial = append(partial, rec.ID)
		}
	}
	return append(exact, partial...)
}

func (r Record) matches(needle string) bool {
	return strings.Contains(strings.ToLower(r.Name), needle) ||
		strings.Contains(strings.ToLower(r.Abbreviation), needle) ||
		strings.Contains(strings.ToLower(r.Location), needle)
}
