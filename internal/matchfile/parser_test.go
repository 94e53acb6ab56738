package matchfile_test

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"calcetto-tracker/internal/matchfile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook builds a match workbook from raw sheet rows so tests can
// produce both valid and deliberately broken files.
func writeWorkbook(t *testing.T, path string, sheets map[string][][]any) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	first := true
	for name, rows := range sheets {
		if first {
			require.NoError(t, f.SetSheetName("Sheet1", name))
			first = false
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for i := range rows {
			row := rows[i]
			require.NoError(t, f.SetSheetRow(name, fmt.Sprintf("A%d", i+1), &row))
		}
	}
	require.NoError(t, f.SaveAs(path))
}

func validSheets() map[string][][]any {
	return map[string][][]any{
		"meta": {
			{"key", "value"},
			{"date", "2026-05-10"},
			{"note", "friendly"},
		},
		"players": {
			{"team", "player", "goals", "assists"},
			{"A", "Ana", 2, 1},
			{"A", "Bruno", 0, 0},
			{"B", "Carla", 1, 2},
			{"B", "Dario", 1, 0},
		},
	}
}

func TestParseValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "2026-05-10__abc__match.xlsx")
	writeWorkbook(t, path, validSheets())

	m, err := matchfile.Parse(path)
	require.NoError(t, err)

	assert.Equal(t, "2026-05-10__abc__match", m.MatchID)
	assert.Equal(t, "2026-05-10__abc__match.xlsx", m.FileName)
	assert.Equal(t, time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC), m.Date)
	assert.Equal(t, "friendly", m.Note)
	require.Len(t, m.Players, 4)
	assert.Equal(t, matchfile.PlayerRow{Team: "A", Player: "Ana", Goals: 2, Assists: 1}, m.Players[0])
	assert.Nil(t, m.GoalsAOverride)
	assert.Nil(t, m.GoalsBOverride)
	assert.Equal(t, 2, m.GoalsA())
	assert.Equal(t, 2, m.GoalsB())
	assert.Equal(t, matchfile.WinnerDraw, m.Winner())
}

func TestParseLegacyFileWithoutAssistsColumn(t *testing.T) {
	sheets := validSheets()
	sheets["players"] = [][]any{
		{"team", "player", "goals"},
		{"A", "Ana", 3},
		{"B", "Carla", 1},
	}
	path := filepath.Join(t.TempDir(), "legacy.xlsx")
	writeWorkbook(t, path, sheets)

	m, err := matchfile.Parse(path)
	require.NoError(t, err)
	for _, row := range m.Players {
		assert.Equal(t, 0, row.Assists)
	}
	assert.Equal(t, matchfile.WinnerA, m.Winner())
}

func TestParseScoreOverrides(t *testing.T) {
	sheets := validSheets()
	sheets["meta"] = append(sheets["meta"], []any{"goals_a", 2}, []any{"goals_b", 2})
	sheets["players"] = [][]any{
		{"team", "player", "goals", "assists"},
		{"A", "Ana", 3, 0},
		{"B", "Carla", 1, 0},
	}
	path := filepath.Join(t.TempDir(), "override.xlsx")
	writeWorkbook(t, path, sheets)

	m, err := matchfile.Parse(path)
	require.NoError(t, err)
	require.NotNil(t, m.GoalsAOverride)
	require.NotNil(t, m.GoalsBOverride)

	// The overrides are authoritative: a draw even though summed goals differ.
	assert.Equal(t, 2, m.GoalsA())
	assert.Equal(t, 2, m.GoalsB())
	assert.Equal(t, matchfile.WinnerDraw, m.Winner())
}

func TestParseLoneScoreOverrideDoesNotDecideResult(t *testing.T) {
	sheets := validSheets()
	sheets["meta"] = append(sheets["meta"], []any{"goals_a", 5})
	sheets["players"] = [][]any{
		{"team", "player", "goals", "assists"},
		{"A", "Ana", 1, 0},
		{"B", "Carla", 2, 0},
	}
	path := filepath.Join(t.TempDir(), "half-recorded.xlsx")
	writeWorkbook(t, path, sheets)

	m, err := matchfile.Parse(path)
	require.NoError(t, err)
	require.NotNil(t, m.GoalsAOverride)
	require.Nil(t, m.GoalsBOverride)

	// Without both recorded scores the summed player goals decide.
	assert.Equal(t, 1, m.GoalsA())
	assert.Equal(t, 2, m.GoalsB())
	assert.Equal(t, matchfile.WinnerB, m.Winner())
}

func TestParseContainerFailures(t *testing.T) {
	dir := t.TempDir()

	t.Run("unreadable file", func(t *testing.T) {
		path := filepath.Join(dir, "garbage.xlsx")
		require.NoError(t, writeGarbage(path))

		_, err := matchfile.Parse(path)
		require.Error(t, err)
		assert.IsType(t, &matchfile.ParseError{}, err)
	})

	t.Run("wrong sheet names", func(t *testing.T) {
		path := filepath.Join(dir, "sheets.xlsx")
		writeWorkbook(t, path, map[string][][]any{
			"info":    {{"key", "value"}},
			"players": {{"team", "player", "goals"}},
		})

		_, err := matchfile.Parse(path)
		require.Error(t, err)
		assert.IsType(t, &matchfile.ParseError{}, err)
		assert.Contains(t, err.Error(), "meta and players")
	})

	t.Run("missing players sheet", func(t *testing.T) {
		path := filepath.Join(dir, "single.xlsx")
		writeWorkbook(t, path, map[string][][]any{
			"meta": {{"key", "value"}, {"date", "2026-05-10"}},
		})

		_, err := matchfile.Parse(path)
		require.Error(t, err)
		assert.IsType(t, &matchfile.ParseError{}, err)
	})
}

func TestParseSchemaFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(sheets map[string][][]any)
		reason string
	}{
		{
			name: "missing date",
			mutate: func(sheets map[string][][]any) {
				sheets["meta"] = [][]any{{"key", "value"}, {"note", "x"}}
			},
			reason: "date",
		},
		{
			name: "malformed date",
			mutate: func(sheets map[string][][]any) {
				sheets["meta"][1] = []any{"date", "10/05/2026"}
			},
			reason: "YYYY-MM-DD",
		},
		{
			name: "negative goals override",
			mutate: func(sheets map[string][][]any) {
				sheets["meta"] = append(sheets["meta"], []any{"goals_a", -1})
			},
			reason: "goals_a",
		},
		{
			name: "non-integer goals override",
			mutate: func(sheets map[string][][]any) {
				sheets["meta"] = append(sheets["meta"], []any{"goals_b", "two"})
			},
			reason: "goals_b",
		},
		{
			name: "unknown team label",
			mutate: func(sheets map[string][][]any) {
				sheets["players"][1] = []any{"C", "Ana", 1, 0}
			},
			reason: "team must be 'A' or 'B'",
		},
		{
			name: "duplicate player",
			mutate: func(sheets map[string][][]any) {
				sheets["players"][2] = []any{"A", "Ana", 1, 0}
			},
			reason: "duplicate player",
		},
		{
			name: "negative goals",
			mutate: func(sheets map[string][][]any) {
				sheets["players"][1] = []any{"A", "Ana", -2, 0}
			},
			reason: "goals",
		},
		{
			name: "negative assists",
			mutate: func(sheets map[string][][]any) {
				sheets["players"][1] = []any{"A", "Ana", 2, -1}
			},
			reason: "assists",
		},
		{
			name: "unexpected columns",
			mutate: func(sheets map[string][][]any) {
				sheets["players"][0] = []any{"team", "name", "goals"}
			},
			reason: "columns",
		},
		{
			name: "one-sided match",
			mutate: func(sheets map[string][][]any) {
				sheets["players"] = [][]any{
					{"team", "player", "goals", "assists"},
					{"A", "Ana", 1, 0},
					{"A", "Bruno", 0, 0},
				}
			},
			reason: "each team",
		},
		{
			name: "too few rows",
			mutate: func(sheets map[string][][]any) {
				sheets["players"] = [][]any{
					{"team", "player", "goals", "assists"},
					{"A", "Ana", 1, 0},
				}
			},
			reason: "at least 2 rows",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheets := validSheets()
			tt.mutate(sheets)
			path := filepath.Join(t.TempDir(), "bad.xlsx")
			writeWorkbook(t, path, sheets)

			_, err := matchfile.Parse(path)
			require.Error(t, err)
			assert.IsType(t, &matchfile.SchemaError{}, err)
			assert.Contains(t, err.Error(), tt.reason)
		})
	}
}

func TestRejectClassifiesStage(t *testing.T) {
	dir := t.TempDir()

	parsePath := filepath.Join(dir, "broken.xlsx")
	require.NoError(t, writeGarbage(parsePath))
	_, parseErr := matchfile.Parse(parsePath)
	rejected := matchfile.Reject(parsePath, parseErr)
	assert.Equal(t, matchfile.StageParse, rejected.Stage)
	assert.Equal(t, "broken.xlsx", rejected.Path)

	sheets := validSheets()
	sheets["meta"][1] = []any{"date", "never"}
	schemaPath := filepath.Join(dir, "schema.xlsx")
	writeWorkbook(t, schemaPath, sheets)
	_, schemaErr := matchfile.Parse(schemaPath)
	rejected = matchfile.Reject(schemaPath, schemaErr)
	assert.Equal(t, matchfile.StageSchema, rejected.Stage)
	assert.Contains(t, rejected.Reason, "YYYY-MM-DD")
}
