// Package stats computes per-player aggregates and rankings from the active
// match set. Everything here is a pure function of its inputs: recomputing
// from the same matches yields identical output, with no clock or randomness
// involved.
package stats

import (
	"math"
	"sort"
	"strings"

	"calcetto-tracker/internal/matchfile"
	"calcetto-tracker/internal/roster"
)

const rankingSize = 10

// ratingScale turns a win rate into the placeholder rating. The rating is an
// explicitly unfinished metric standing in for a future proper algorithm:
// winRate * 1000, deterministic and monotonic in win rate.
const ratingScale = 1000.0

// Compute aggregates stats for every roster player plus any name that
// appears in a match without being on the roster yet.
func Compute(matches []*matchfile.Match, players []roster.Player) map[string]*PlayerStats {
	byName := make(map[string]*PlayerStats, len(players))
	for _, p := range players {
		byName[p.Name] = &PlayerStats{Name: p.Name}
	}
	get := func(name string) *PlayerStats {
		if s, ok := byName[name]; ok {
			return s
		}
		s := &PlayerStats{Name: name}
		byName[name] = s
		return s
	}

	for _, m := range matches {
		goalsA, goalsB := m.GoalsA(), m.GoalsB()

		accumulate := func(rows []matchfile.PlayerRow, scored, conceded int) {
			for _, row := range rows {
				s := get(row.Player)
				s.Matches++
				s.GoalsScored += row.Goals
				s.Assists += row.Assists
				s.GoalsConceded += conceded
				switch {
				case scored > conceded:
					s.Wins++
				case scored < conceded:
					s.Losses++
				default:
					s.Draws++
				}
			}
		}

		accumulate(m.TeamARows(), goalsA, goalsB)
		accumulate(m.TeamBRows(), goalsB, goalsA)
	}

	for _, s := range byName {
		if s.Matches > 0 {
			s.WinRate = float64(s.Wins) / float64(s.Matches)
			s.GoalsPerMatch = float64(s.GoalsScored) / float64(s.Matches)
		}
		s.Rating = s.WinRate * ratingScale
	}
	return byName
}

// BuildDashboard computes every ranking over the given matches and roster.
// Matches are expected in repository order (date ascending).
func BuildDashboard(matches []*matchfile.Match, players []roster.Player) Dashboard {
	byName := Compute(matches, players)
	all := make([]PlayerStats, 0, len(byName))
	for _, s := range byName {
		all = append(all, *s)
	}

	topScorers := rank(all, func(a, b PlayerStats) bool {
		if a.GoalsScored != b.GoalsScored {
			return a.GoalsScored > b.GoalsScored
		}
		if a.Assists != b.Assists {
			return a.Assists > b.Assists
		}
		return nameLess(a, b)
	})

	topAssists := rank(all, func(a, b PlayerStats) bool {
		if a.Assists != b.Assists {
			return a.Assists > b.Assists
		}
		if a.GoalsScored != b.GoalsScored {
			return a.GoalsScored > b.GoalsScored
		}
		return nameLess(a, b)
	})

	played := make([]PlayerStats, 0, len(all))
	for _, s := range all {
		if s.Matches >= 1 {
			played = append(played, s)
		}
	}

	goalsPerMatch := rank(played, func(a, b PlayerStats) bool {
		if a.GoalsPerMatch != b.GoalsPerMatch {
			return a.GoalsPerMatch > b.GoalsPerMatch
		}
		if a.Matches != b.Matches {
			return a.Matches > b.Matches
		}
		return nameLess(a, b)
	})

	winRate := rank(played, func(a, b PlayerStats) bool {
		if a.WinRate != b.WinRate {
			return a.WinRate > b.WinRate
		}
		if a.Matches != b.Matches {
			return a.Matches > b.Matches
		}
		return nameLess(a, b)
	})

	rating := rank(all, func(a, b PlayerStats) bool {
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		if a.Matches != b.Matches {
			return a.Matches > b.Matches
		}
		return nameLess(a, b)
	})

	return Dashboard{
		TopScorers:           topScorers,
		TopAssists:           topAssists,
		GoalsPerMatchRanking: goalsPerMatch,
		WinRateRanking:       winRate,
		RatingRanking:        rating,
		LatestMatches:        latestViews(matches, rankingSize),
	}
}

// ToView derives the presentation shape of a match.
func ToView(m *matchfile.Match) MatchView {
	return MatchView{
		MatchID: m.MatchID,
		Date:    m.Date.Format("2006-01-02"),
		Note:    m.Note,
		GoalsA:  m.GoalsA(),
		GoalsB:  m.GoalsB(),
		Winner:  m.Winner(),
		TeamA:   m.TeamARows(),
		TeamB:   m.TeamBRows(),
	}
}

// PlayerMatchViews returns the matches one player took part in, oldest
// first, in presentation shape. Backs the per-player match filter.
func PlayerMatchViews(matches []*matchfile.Match, playerName string) []MatchView {
	relevant := playerMatches(matches, playerName)
	views := make([]MatchView, 0, len(relevant))
	for _, m := range relevant {
		views = append(views, ToView(m))
	}
	return views
}

// Timeline returns the placeholder rating after each match a player took
// part in, oldest first.
func Timeline(matches []*matchfile.Match, playerName string) []TimelinePoint {
	relevant := playerMatches(matches, playerName)

	wins, played := 0, 0
	timeline := make([]TimelinePoint, 0, len(relevant))
	for _, m := range relevant {
		outcome := outcomeFor(m, playerName)
		played++
		if outcome > 0 {
			wins++
		}
		rating := float64(wins) / float64(played) * ratingScale
		timeline = append(timeline, TimelinePoint{
			Date:   m.Date.Format("2006-01-02"),
			Rating: round(rating, 2),
		})
	}
	return timeline
}

// CumulativeSeries builds the per-match cumulative chart tracks for one
// player: rating, outcomes, goals, assists, conceded and win rate.
func CumulativeSeries(matches []*matchfile.Match, playerName string) ([]string, map[string]Series) {
	relevant := playerMatches(matches, playerName)

	series := map[string]Series{
		"rating":          {Label: "Rating (placeholder)"},
		"wins":            {Label: "Wins"},
		"draws":           {Label: "Draws"},
		"losses":          {Label: "Losses"},
		"goals_scored":    {Label: "Goals Scored"},
		"goals_per_match": {Label: "Goals per Match"},
		"assists":         {Label: "Assists"},
		"goals_conceded":  {Label: "Goals Conceded"},
		"win_rate":        {Label: "Win Rate %"},
	}
	push := func(key string, v float64) {
		s := series[key]
		s.Values = append(s.Values, v)
		series[key] = s
	}

	var labels []string
	wins, draws, losses := 0, 0, 0
	goals, assists, conceded := 0, 0, 0

	for _, m := range relevant {
		onTeamA := onTeam(m.TeamARows(), playerName)
		switch outcomeFor(m, playerName) {
		case 1:
			wins++
		case -1:
			losses++
		default:
			draws++
		}

		for _, r := range m.Players {
			if r.Player == playerName {
				goals += r.Goals
				assists += r.Assists
			}
		}
		if onTeamA {
			conceded += m.GoalsB()
		} else {
			conceded += m.GoalsA()
		}

		played := wins + draws + losses
		winRate := float64(wins) / float64(played)

		labels = append(labels, m.Date.Format("2006-01-02"))
		push("rating", round(winRate*ratingScale, 2))
		push("wins", float64(wins))
		push("draws", float64(draws))
		push("losses", float64(losses))
		push("goals_scored", float64(goals))
		push("goals_per_match", round(float64(goals)/float64(played), 3))
		push("assists", float64(assists))
		push("goals_conceded", float64(conceded))
		push("win_rate", round(winRate*100, 2))
	}

	return labels, series
}

// playerMatches filters and chronologically orders the matches a player
// appeared in, with the match ID as tiebreak for determinism.
func playerMatches(matches []*matchfile.Match, playerName string) []*matchfile.Match {
	var relevant []*matchfile.Match
	for _, m := range matches {
		if onTeam(m.Players, playerName) {
			relevant = append(relevant, m)
		}
	}
	sort.Slice(relevant, func(i, j int) bool {
		if !relevant[i].Date.Equal(relevant[j].Date) {
			return relevant[i].Date.Before(relevant[j].Date)
		}
		return relevant[i].MatchID < relevant[j].MatchID
	})
	return relevant
}

// outcomeFor classifies a match for one player: 1 win, 0 draw, -1 loss.
func outcomeFor(m *matchfile.Match, playerName string) int {
	goalsA, goalsB := m.GoalsA(), m.GoalsB()
	if goalsA == goalsB {
		return 0
	}
	aWon := goalsA > goalsB
	if onTeam(m.TeamARows(), playerName) == aWon {
		return 1
	}
	return -1
}

func onTeam(rows []matchfile.PlayerRow, playerName string) bool {
	for _, r := range rows {
		if r.Player == playerName {
			return true
		}
	}
	return false
}

func rank(all []PlayerStats, less func(a, b PlayerStats) bool) []PlayerStats {
	ranked := append([]PlayerStats(nil), all...)
	sort.Slice(ranked, func(i, j int) bool { return less(ranked[i], ranked[j]) })
	if len(ranked) > rankingSize {
		ranked = ranked[:rankingSize]
	}
	return ranked
}

func nameLess(a, b PlayerStats) bool {
	return strings.ToLower(a.Name) < strings.ToLower(b.Name)
}

func latestViews(matches []*matchfile.Match, n int) []MatchView {
	views := make([]MatchView, 0, n)
	for i := len(matches) - 1; i >= 0 && len(views) < n; i-- {
		views = append(views, ToView(matches[i]))
	}
	return views
}

func round(v float64, places int) float64 {
	factor := math.Pow10(places)
	return math.Round(v*factor) / factor
}
