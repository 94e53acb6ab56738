package matches

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"calcetto-tracker/internal/matchfile"
	"calcetto-tracker/internal/metrics"
	"calcetto-tracker/internal/registry"
	"calcetto-tracker/internal/roster"

	"github.com/charmbracelet/log"
)

// New creates a new MatchStore.
func New(resolver PathResolver, players roster.PlayerStore, deleted registry.DeletedStore, metricsSvc metrics.Metrics) MatchStore {
	return &store{
		resolver: resolver,
		players:  players,
		deleted:  deleted,
		metrics:  metricsSvc,
	}
}

// ListActive re-derives the visible match set from the files currently on
// disk: resolve the root, scan and validate everything, drop soft-deleted
// IDs, then sort by date with the match ID as tiebreak so the order is
// stable across reloads. Rejections are returned untouched; they were never
// admitted, so the soft-delete overlay does not apply to them.
func (s *store) ListActive() ([]*matchfile.Match, []matchfile.RejectedFile, error) {
	start := time.Now()
	s.metrics.IncLoaderRuns()

	paths, err := s.resolver.Resolve()
	if err != nil {
		return nil, nil, err
	}

	loaded, rejected, err := matchfile.LoadDir(paths.MatchesDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan matches dir: %w", err)
	}
	s.metrics.AddFilesRejected(float64(len(rejected)))

	deleted, err := s.deleted.Load()
	if err != nil {
		return nil, nil, err
	}

	var active []*matchfile.Match
	for _, m := range loaded {
		if deleted[m.MatchID] {
			continue
		}
		active = append(active, m)
	}

	sort.Slice(active, func(i, j int) bool {
		if !active[i].Date.Equal(active[j].Date) {
			return active[i].Date.Before(active[j].Date)
		}
		return active[i].MatchID < active[j].MatchID
	})

	s.metrics.ObserveListDuration(time.Since(start).Seconds())
	log.Debug("Listed active matches", "root", paths.Kind, "active", len(active), "rejected", len(rejected))
	return active, rejected, nil
}

// Create writes a new match workbook after enforcing the interactive
// composition rules: exactly five roster-known players per team, no
// duplicates across the match, no negative stats. Nothing is written when
// validation fails.
func (s *store) Create(date time.Time, note string, teamA, teamB []matchfile.PlayerRow) (*matchfile.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.buildRows(teamA, teamB)
	if err != nil {
		return nil, err
	}

	paths, err := s.resolver.Resolve()
	if err != nil {
		return nil, err
	}

	match, err := matchfile.Write(paths.MatchesDir, date, note, rows)
	if err != nil {
		return nil, err
	}

	s.metrics.IncMatchesCreated()
	log.Info("Created match", "matchID", match.MatchID, "root", paths.Kind)
	return match, nil
}

// SoftDelete delegates to the soft-delete registry. The source workbook
// stays on disk and remains loadable; it is filtered out post-load.
func (s *store) SoftDelete(matchID string) error {
	if err := s.deleted.MarkDeleted(matchID); err != nil {
		return err
	}
	s.metrics.IncSoftDeletes()
	return nil
}

func (s *store) buildRows(teamA, teamB []matchfile.PlayerRow) ([]matchfile.PlayerRow, error) {
	if len(teamA) != TeamSize || len(teamB) != TeamSize {
		return nil, fmt.Errorf("%w: each team must have exactly %d players", ErrInvalidComposition, TeamSize)
	}

	rows := make([]matchfile.PlayerRow, 0, 2*TeamSize)
	for _, r := range teamA {
		r.Team = matchfile.TeamA
		rows = append(rows, r)
	}
	for _, r := range teamB {
		r.Team = matchfile.TeamB
		rows = append(rows, r)
	}

	seen := make(map[string]bool, len(rows))
	for i := range rows {
		name := strings.Join(strings.Fields(rows[i].Player), " ")
		if name == "" {
			return nil, fmt.Errorf("%w: player name cannot be empty", ErrInvalidComposition)
		}
		rows[i].Player = name

		key := strings.ToLower(name)
		if seen[key] {
			return nil, fmt.Errorf("%w: duplicate player '%s'", ErrInvalidComposition, name)
		}
		seen[key] = true

		known, err := s.players.Exists(name)
		if err != nil {
			return nil, err
		}
		if !known {
			return nil, fmt.Errorf("%w: unknown player '%s'", ErrInvalidComposition, name)
		}

		if rows[i].Goals < 0 {
			return nil, fmt.Errorf("%w: goals must be >= 0", ErrInvalidComposition)
		}
		if rows[i].Assists < 0 {
			return nil, fmt.Errorf("%w: assists must be >= 0", ErrInvalidComposition)
		}
	}

	return rows, nil
}
