package teams

import (
	"errors"
	"testing"
)

func testTable() Table {
	return Table{
		{ID: 111, Name: "Boston Red Sox", Abbreviation: "BOS", Location: "Boston"},
		{ID: 145, Name: "Chicago White Sox", Abbreviation: "CWS", Location: "Chicago"},
		{ID: 147, Name: "New York Yankees", Abbreviation: "NYY", Location: "Bronx"},
		{ID: 999, Name: "Yankees Legends", Abbreviation: "YLG", Location: "Cooperstown"},
		{ID: 998, Name: "Yankees", Abbreviation: "YNK", Location: "Nowhere"},
	}
}

func TestResolveNumericPassthrough(t *testing.T) {
	// No table lookup: 555 is not in the table but resolves anyway.
	id, err := testTable().Resolve("555")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 555 {
		t.Fatalf("expected 555, got %d", id)
	}
}

func TestResolveNumericIgnoresTable(t *testing.T) {
	id, err := testTable().Resolve("147")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 147 {
		t.Fatalf("expected 147, got %d", id)
	}
}

func TestResolveExactMatchBeatsSubstring(t *testing.T) {
	// "Yankees" is a substring of two earlier records, but record 998 matches
	// exactly and must win.
	id, err := testTable().Resolve("Yankees")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 998 {
		t.Fatalf("expected exact match 998, got %d", id)
	}
}

func TestResolveSubstringFirstMatchWins(t *testing.T) {
	// Both Sox teams match; Boston appears first in table order.
	id, err := testTable().Resolve("Sox")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 111 {
		t.Fatalf("expected first match 111, got %d", id)
	}
}

func TestResolveCaseFoldingAndTrim(t *testing.T) {
	id, err := testTable().Resolve("  new york yankees ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 147 {
		t.Fatalf("expected 147, got %d", id)
	}
}

func TestResolveByAbbreviationAndLocation(t *testing.T) {
	id, err := testTable().Resolve("cws")
	if err != nil || id != 145 {
		t.Fatalf("expected 145 via abbreviation, got %d err=%v", id, err)
	}

	id, err = testTable().Resolve("Bronx")
	if err != nil || id != 147 {
		t.Fatalf("expected 147 via location, got %d err=%v", id, err)
	}
}

func TestResolveNotFound(t *testing.T) {
	_, err := testTable().Resolve("Zzznoteam")
	if !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}

func TestResolveEmptyQueryNotFound(t *testing.T) {
	_, err := testTable().Resolve("   ")
	if !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}

func TestSearchReturnsAllMatchesInTableOrder(t *testing.T) {
	ids := testTable().Search("Sox")
	if len(ids) != 2 || ids[0] != 111 || ids[1] != 145 {
		t.Fatalf("unexpected ids %v", ids)
	}
}

func TestSearchExactMatchFirst(t *testing.T) {
	ids := testTable().Search("Yankees")
	if len(ids) != 3 {
		t.Fatalf("expected 3 matches, got %v", ids)
	}
	if ids[0] != 998 {
		t.Fatalf("expected exact match first, got %v", ids)
	}
}

func TestSearchNumeric(t *testing.T) {
	ids := testTable().Search("555")
	if len(ids) != 1 || ids[0] != 555 {
		t.Fatalf("unexpected ids %v", ids)
	}
}

func TestSearchNoMatches(t *testing.T) {
	if ids := testTable().Search("Zzznoteam"); len(ids) != 0 {
		t.Fatalf("expected no matches, got %v", ids)
	}
}
