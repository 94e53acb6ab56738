package matchfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// Write serializes a new match workbook into dir and returns the record it
// will load back as. Rows are assumed already validated by the caller; the
// writer only owns the file format. The team scores are written into the
// meta sheet so later edits to player rows cannot silently change a
// recorded result.
//
// The workbook is written to a temporary name and renamed into place, so a
// failed write never leaves a partial file for the loader to trip over.
func Write(dir string, date time.Time, note string, rows []PlayerRow) (*Match, error) {
	goalsA := sumGoals(filterTeam(rows, TeamA))
	goalsB := sumGoals(filterTeam(rows, TeamB))

	matchID := fmt.Sprintf("%s__%s__match", date.Format("2006-01-02"), shortID())
	fileName := matchID + ".xlsx"
	finalPath := filepath.Join(dir, fileName)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "meta"); err != nil {
		return nil, fmt.Errorf("failed to build workbook: %w", err)
	}
	if _, err := f.NewSheet("players"); err != nil {
		return nil, fmt.Errorf("failed to build workbook: %w", err)
	}

	metaRows := [][]any{
		{"key", "value"},
		{"date", date.Format("2006-01-02")},
		{"note", note},
		{"goals_a", goalsA},
		{"goals_b", goalsB},
	}
	for i, row := range metaRows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow("meta", cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write meta sheet: %w", err)
		}
	}

	header := []any{"team", "player", "goals", "assists"}
	if err := f.SetSheetRow("players", "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write players sheet: %w", err)
	}
	for i, r := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		row := []any{r.Team, r.Player, r.Goals, r.Assists}
		if err := f.SetSheetRow("players", cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write players sheet: %w", err)
		}
	}

	tmpPath := finalPath + ".tmp"
	if err := f.SaveAs(tmpPath); err != nil {
		return nil, fmt.Errorf("failed to save match workbook: %w", err)
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("failed to finalize match workbook: %w", err)
	}

	log.Info("Wrote match workbook", "file", fileName, "date", date.Format("2006-01-02"))

	return &Match{
		MatchID:        matchID,
		FileName:       fileName,
		SourcePath:     finalPath,
		Date:           date,
		Note:           note,
		Players:        append([]PlayerRow(nil), rows...),
		GoalsAOverride: &goalsA,
		GoalsBOverride: &goalsB,
	}, nil
}

func filterTeam(rows []PlayerRow, team string) []PlayerRow {
	var out []PlayerRow
	for _, r := range rows {
		if r.Team == team {
			out = append(out, r)
		}
	}
	return out
}

// shortID keeps the required filename format while avoiding collisions for
// matches recorded within the same second.
func shortID() string {
	return strings.Split(uuid.NewString(), "-")[0]
}
