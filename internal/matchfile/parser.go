package matchfile

import (
	"errors"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// rawTables is the untyped result of the container parse: the meta sheet as
// key/value pairs and the players sheet as header + rows. Nothing in here is
// validated yet; only the validator turns it into a Match.
type rawTables struct {
	meta       map[string]string
	playerCols []string
	playerRows [][]string
}

// Parse reads one match workbook and validates it into a Match. The returned
// error is a *ParseError when the file is not a readable meta+players
// container and a *SchemaError when it is readable but violates the match
// contract. Validation is all-or-nothing; a partially valid record never
// escapes.
func Parse(path string) (*Match, error) {
	raw, err := readTables(path)
	if err != nil {
		return nil, err
	}
	return validate(path, raw)
}

// Reject wraps a Parse failure into the rejection entry shown on the debug
// listing.
func Reject(path string, err error) RejectedFile {
	stage := StageSchema
	var pe *ParseError
	if errors.As(err, &pe) {
		stage = StageParse
	}
	reason := err.Error()
	var se *SchemaError
	if errors.As(err, &se) {
		reason = se.Reason
	} else if pe != nil {
		reason = pe.Reason
	}
	return RejectedFile{
		Path:   filepath.Base(path),
		Stage:  stage,
		Reason: reason,
	}
}

func readTables(path string) (*rawTables, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, parseErrorf("cannot open workbook: %v", err)
	}
	defer f.Close()

	sheets := append([]string(nil), f.GetSheetList()...)
	sort.Strings(sheets)
	if len(sheets) != 2 || sheets[0] != "meta" || sheets[1] != "players" {
		return nil, parseErrorf("workbook must contain exactly two sheets: meta and players")
	}

	metaRows, err := f.GetRows("meta")
	if err != nil {
		return nil, parseErrorf("cannot read meta sheet: %v", err)
	}
	if len(metaRows) == 0 || len(metaRows[0]) != 2 {
		return nil, parseErrorf("meta sheet must have 2 columns")
	}
	meta := make(map[string]string)
	for _, row := range metaRows[1:] {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		value := ""
		if len(row) > 1 {
			value = strings.TrimSpace(row[1])
		}
		meta[strings.TrimSpace(row[0])] = value
	}

	playerRows, err := f.GetRows("players")
	if err != nil {
		return nil, parseErrorf("cannot read players sheet: %v", err)
	}
	if len(playerRows) == 0 {
		return nil, parseErrorf("players sheet is empty")
	}

	cols := make([]string, len(playerRows[0]))
	for i, c := range playerRows[0] {
		cols[i] = strings.TrimSpace(c)
	}

	return &rawTables{
		meta:       meta,
		playerCols: cols,
		playerRows: playerRows[1:],
	}, nil
}

func validate(path string, raw *rawTables) (*Match, error) {
	dateStr, ok := raw.meta["date"]
	if !ok {
		return nil, schemaErrorf("meta sheet must include key 'date'")
	}
	matchDate, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, schemaErrorf("meta date must be in format YYYY-MM-DD")
	}

	var goalsAOverride, goalsBOverride *int
	if v, ok := raw.meta["goals_a"]; ok {
		n, err := parseStat(v)
		if err != nil {
			return nil, schemaErrorf("meta goals_a must be a non-negative integer")
		}
		goalsAOverride = &n
	}
	if v, ok := raw.meta["goals_b"]; ok {
		n, err := parseStat(v)
		if err != nil {
			return nil, schemaErrorf("meta goals_b must be a non-negative integer")
		}
		goalsBOverride = &n
	}

	hasAssists := false
	switch {
	case equalCols(raw.playerCols, []string{"team", "player", "goals"}):
	case equalCols(raw.playerCols, []string{"team", "player", "goals", "assists"}):
		hasAssists = true
	default:
		return nil, schemaErrorf("players sheet columns must be [team player goals] or [team player goals assists]")
	}

	if len(raw.playerRows) < 2 {
		return nil, schemaErrorf("players sheet must contain at least 2 rows")
	}

	var rows []PlayerRow
	seen := make(map[string]bool)
	counts := map[string]int{TeamA: 0, TeamB: 0}

	for i, cells := range raw.playerRows {
		// Sheet row number for error messages, counting the header.
		rowNum := i + 2

		team := cellAt(cells, 0)
		player := cellAt(cells, 1)

		if team != TeamA && team != TeamB {
			return nil, schemaErrorf("row %d: team must be 'A' or 'B'", rowNum)
		}
		if player == "" {
			return nil, schemaErrorf("row %d: player cannot be empty", rowNum)
		}
		if seen[player] {
			return nil, schemaErrorf("row %d: duplicate player '%s' in match", rowNum, player)
		}

		goalsCell := cellAt(cells, 2)
		if goalsCell == "" {
			return nil, schemaErrorf("row %d: goals cannot be empty", rowNum)
		}
		goals, err := parseStat(goalsCell)
		if err != nil {
			return nil, schemaErrorf("row %d: goals must be an integer >= 0", rowNum)
		}

		assists := 0
		if hasAssists {
			// An empty assists cell means zero; the column predates the
			// stat and old files were backfilled loosely.
			if cell := cellAt(cells, 3); cell != "" {
				assists, err = parseStat(cell)
				if err != nil {
					return nil, schemaErrorf("row %d: assists must be an integer >= 0", rowNum)
				}
			}
		}

		seen[player] = true
		counts[team]++
		rows = append(rows, PlayerRow{Team: team, Player: player, Goals: goals, Assists: assists})
	}

	if counts[TeamA] == 0 || counts[TeamB] == 0 {
		return nil, schemaErrorf("players sheet must contain at least one player in each team")
	}

	fileName := filepath.Base(path)
	return &Match{
		MatchID:        strings.TrimSuffix(fileName, filepath.Ext(fileName)),
		FileName:       fileName,
		SourcePath:     path,
		Date:           matchDate,
		Note:           raw.meta["note"],
		Players:        rows,
		GoalsAOverride: goalsAOverride,
		GoalsBOverride: goalsBOverride,
	}, nil
}

func cellAt(cells []string, i int) string {
	if i >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[i])
}

// parseStat parses a non-negative integer stat cell. Numeric cells can come
// back from the sheet as float strings like "2.0", so those are accepted as
// long as they are integral.
func parseStat(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0, errors.New("negative")
		}
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	n := int(f)
	if float64(n) != f {
		return 0, errors.New("not an integer")
	}
	if n < 0 {
		return 0, errors.New("negative")
	}
	return n, nil
}

func equalCols(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !strings.EqualFold(a[i], b[i]) {
			return false
		}
	}
	return true
}
