package datasource

import "path/filepath"

// Kind says which root a resolution picked.
type Kind string

const (
	KindReal Kind = "real"
	KindMock Kind = "mock"
)

// Paths is the resolved view of one data root. Every repository operates on
// a Paths value and never sees the other root.
type Paths struct {
	Kind        Kind   `json:"kind"`
	Root        string `json:"root"`
	PlayersFile string `json:"players_file"`
	MatchesDir  string `json:"matches_dir"`
	DeletedFile string `json:"deleted_file"`
}

// NewPaths lays out the standard file locations under a data root.
func NewPaths(kind Kind, root string) Paths {
	return Paths{
		Kind:        kind,
		Root:        root,
		PlayersFile: filepath.Join(root, "players.csv"),
		MatchesDir:  filepath.Join(root, "matches"),
		DeletedFile: filepath.Join(root, "deleted_matches.json"),
	}
}
