package stats

import "calcetto-tracker/internal/matchfile"

// PlayerStats is the per-player aggregate over every visible match a player
// appeared in. Recomputed on each query; never persisted.
type PlayerStats struct {
	Name          string  `json:"name"`
	Matches       int     `json:"matches"`
	Wins          int     `json:"wins"`
	Draws         int     `json:"draws"`
	Losses        int     `json:"losses"`
	GoalsScored   int     `json:"goals_scored"`
	Assists       int     `json:"assists"`
	GoalsConceded int     `json:"goals_conceded"`
	WinRate       float64 `json:"win_rate"`
	GoalsPerMatch float64 `json:"goals_per_match"`
	Rating        float64 `json:"rating"`
}

// MatchView is the presentation shape of one match with its derived score
// and result.
type MatchView struct {
	MatchID string                `json:"match_id"`
	Date    string                `json:"date"`
	Note    string                `json:"note"`
	GoalsA  int                   `json:"goals_a"`
	GoalsB  int                   `json:"goals_b"`
	Winner  string                `json:"winner"`
	TeamA   []matchfile.PlayerRow `json:"team_a"`
	TeamB   []matchfile.PlayerRow `json:"team_b"`
}

// Dashboard bundles every ranking the presentation layer shows.
type Dashboard struct {
	TopScorers           []PlayerStats `json:"top_scorers"`
	TopAssists           []PlayerStats `json:"top_assists"`
	GoalsPerMatchRanking []PlayerStats `json:"goals_per_match_ranking"`
	WinRateRanking       []PlayerStats `json:"win_rate_ranking"`
	RatingRanking        []PlayerStats `json:"rating_ranking"`
	LatestMatches        []MatchView   `json:"latest_matches"`
}

// TimelinePoint is one step of a player's chronological rating series.
type TimelinePoint struct {
	Date   string  `json:"date"`
	Rating float64 `json:"rating"`
}

// Series is one labelled value track of the cumulative per-player chart.
type Series struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}
