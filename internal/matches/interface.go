package matches

import (
	"time"

	"calcetto-tracker/internal/datasource"
	"calcetto-tracker/internal/matchfile"
)

// PathResolver yields the active data root for each operation.
type PathResolver interface {
	Resolve() (datasource.Paths, error)
}

// MatchStore defines the interface for the match repository.
type MatchStore interface {
	// ListActive returns the visible matches oldest-first together with the
	// rejection list from the same scan.
	ListActive() ([]*matchfile.Match, []matchfile.RejectedFile, error)
	// Create validates the interactive team composition and serializes a
	// new match workbook under the resolved root.
	Create(date time.Time, note string, teamA, teamB []matchfile.PlayerRow) (*matchfile.Match, error)
	// SoftDelete hides a match from all views without touching its file.
	SoftDelete(matchID string) error
}
