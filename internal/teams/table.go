package teams

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

//go:embed mlb_teams.csv
var embeddedTable []byte

// Record is one row of the reference table mapping a team's natural-language
// identifiers to the canonical numeric ID the MLB Stats API expects.
type Record struct {
	ID           int
	Name         string
	Abbreviation string
	Location     string
}

// Table is the read-only reference table in file order. File order matters:
// substring resolution returns the first match in iteration order.
type Table []Record

// Load reads the reference table from the given CSV path, or the embedded
// default when path is empty. The table is small and callers re-read it per
// request, so no caching happens here.
func Load(path string) (Table, error) {
	if path == "" {
		return parse(bytes.NewReader(embeddedTable))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("teams: open %s: %w", path, err)
	}
	defer f.Close()

	table, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("teams: parse %s: %w", path, err)
	}
	return table, nil
}

func parse(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("teams: read header: %w", err)
	}
	cols, err := columnIndexes(header)
	if err != nil {
		return nil, err
	}

	var table Table
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("teams: read row: %w", err)
		}

		id, err := strconv.Atoi(strings.TrimSpace(row[cols.id]))
		if err != nil {
			return nil, fmt.Errorf("teams: invalid id %q: %w", row[cols.id], err)
		}
		table = append(table, Record{
			ID:           id,
			Name:         strings.TrimSpace(row[cols.name]),
			Abbreviation: strings.TrimSpace(row[cols.abbreviation]),
			Location:     strings.TrimSpace(row[cols.location]),
		})
	}
	return table, nil
}

type columns struct {
	id, name, abbreviation, location int
}

func columnIndexes(header []string) (columns, error) {
	cols := columns{id: -1, name: -1, abbreviation: -1, location: -1}
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "id":
			cols.id = i
		case "name":
			cols.name = i
		case "abbreviation":
			cols.abbreviation = i
		case "location":
			cols.location = i
		}
	}
	if cols.id < 0 || cols.name < 0 || cols.abbreviation < 0 || cols.location < 0 {
		return cols, fmt.Errorf("teams: header missing required columns: %v", header)
	}
	return cols, nil
}
