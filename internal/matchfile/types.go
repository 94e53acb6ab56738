package matchfile

import "time"

// Team labels used in the players sheet.
const (
	TeamA = "A"
	TeamB = "B"
)

// Winner values derived from a match score. Never stored in the file.
const (
	WinnerA    = "A"
	WinnerB    = "B"
	WinnerDraw = "Draw"
)

// PlayerRow is one line of the players sheet: which side a player was on
// and their counting stats for the match.
type PlayerRow struct {
	Team    string `json:"team"`
	Player  string `json:"player"`
	Goals   int    `json:"goals"`
	Assists int    `json:"assists"`
}

// Match is one fully validated match record. It is immutable once parsed;
// the ID is the source file name without extension, so renaming a workbook
// changes its identity. That is an accepted limitation of the file layout.
type Match struct {
	MatchID    string      `json:"match_id"`
	FileName   string      `json:"file_name"`
	SourcePath string      `json:"source_path"`
	Date       time.Time   `json:"date"`
	Note       string      `json:"note"`
	Players    []PlayerRow `json:"players"`

	// Score overrides from the meta sheet. They are authoritative over the
	// summed player goals only as a pair; a lone override is ignored.
	GoalsAOverride *int `json:"goals_a_override,omitempty"`
	GoalsBOverride *int `json:"goals_b_override,omitempty"`
}

// TeamARows returns the rows for team A in sheet order.
func (m *Match) TeamARows() []PlayerRow {
	return m.teamRows(TeamA)
}

// TeamBRows returns the rows for team B in sheet order.
func (m *Match) TeamBRows() []PlayerRow {
	return m.teamRows(TeamB)
}

func (m *Match) teamRows(team string) []PlayerRow {
	var rows []PlayerRow
	for _, r := range m.Players {
		if r.Team == team {
			rows = append(rows, r)
		}
	}
	return rows
}

// GoalsA is team A's score: the recorded override when both teams carry
// one, otherwise the sum of the team's player goals. The overrides only
// count as a pair so a half-recorded score cannot skew the result.
func (m *Match) GoalsA() int {
	if m.hasScoreOverride() {
		return *m.GoalsAOverride
	}
	return sumGoals(m.TeamARows())
}

// GoalsB is team B's score, mirroring GoalsA.
func (m *Match) GoalsB() int {
	if m.hasScoreOverride() {
		return *m.GoalsBOverride
	}
	return sumGoals(m.TeamBRows())
}

func (m *Match) hasScoreOverride() bool {
	return m.GoalsAOverride != nil && m.GoalsBOverride != nil
}

// Winner derives the match result from the scores. A draw is a valid outcome.
func (m *Match) Winner() string {
	a, b := m.GoalsA(), m.GoalsB()
	switch {
	case a > b:
		return WinnerA
	case b > a:
		return WinnerB
	default:
		return WinnerDraw
	}
}

func sumGoals(rows []PlayerRow) int {
	total := 0
	for _, r := range rows {
		total += r.Goals
	}
	return total
}

// RejectedFile records a match file that failed parsing or validation. These
// are surfaced on a debug view and never hide the rest of the listing.
type RejectedFile struct {
	Path   string `json:"path"`
	Stage  string `json:"stage"`
	Reason string `json:"reason"`
}

// Rejection stages. Parse means the file was not a readable two-sheet
// container; schema means it was readable but violated the match contract.
const (
	StageParse  = "parse"
	StageSchema = "schema"
)
