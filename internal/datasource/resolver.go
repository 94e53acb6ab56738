package datasource

import (
	"encoding/csv"
	"fmt"
	"os"

	"calcetto-tracker/internal/matchfile"

	"github.com/charmbracelet/log"
)

// Resolver picks between the real data root and the mock one. The real root
// wins only when it holds a non-empty roster and at least one loadable match
// workbook; until then the mock root is served. The check is re-run on every
// call so dropping real data in switches the source on the next read.
type Resolver struct {
	real Paths
	mock Paths
}

// New builds a resolver over the two candidate roots.
func New(realRoot, mockRoot string) *Resolver {
	return &Resolver{
		real: NewPaths(KindReal, realRoot),
		mock: NewPaths(KindMock, mockRoot),
	}
}

// Resolve returns the active root for this read/write cycle, bootstrapping
// the directory layout of both roots on the way.
func (r *Resolver) Resolve() (Paths, error) {
	if err := EnsureLayout(r.real); err != nil {
		return Paths{}, fmt.Errorf("failed to prepare real data root: %w", err)
	}
	if err := EnsureLayout(r.mock); err != nil {
		return Paths{}, fmt.Errorf("failed to prepare mock data root: %w", err)
	}
	if r.hasUsableData(r.real) {
		return r.real, nil
	}
	return r.mock, nil
}

func (r *Resolver) hasUsableData(p Paths) bool {
	if !rosterHasPlayers(p.PlayersFile) {
		return false
	}
	matches, _, err := matchfile.LoadDir(p.MatchesDir)
	if err != nil {
		log.Error("Failed to scan matches dir during resolution", "dir", p.MatchesDir, "error", err)
		return false
	}
	return len(matches) > 0
}

// rosterHasPlayers reports whether the roster csv has at least one data row
// under its header. A missing or unreadable roster counts as empty.
func rosterHasPlayers(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return false
	}
	return len(records) > 1
}

// EnsureLayout creates the directory skeleton and empty store files for a
// root so every later read finds well-formed files.
func EnsureLayout(p Paths) error {
	if err := os.MkdirAll(p.MatchesDir, 0o755); err != nil {
		return err
	}
	if _, err := os.Stat(p.PlayersFile); os.IsNotExist(err) {
		if err := os.WriteFile(p.PlayersFile, []byte("id,name\n"), 0o644); err != nil {
			return err
		}
	}
	if _, err := os.Stat(p.DeletedFile); os.IsNotExist(err) {
		if err := os.WriteFile(p.DeletedFile, []byte("[]"), 0o644); err != nil {
			return err
		}
	}
	return nil
}
