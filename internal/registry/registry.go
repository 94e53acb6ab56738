// Package registry persists the soft-delete set: match IDs hidden from every
// view while their source workbooks stay on disk untouched.
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"calcetto-tracker/internal/datasource"

	"github.com/charmbracelet/log"
)

// PathResolver yields the active data root for each operation. The real and
// mock roots keep independent registries.
type PathResolver interface {
	Resolve() (datasource.Paths, error)
}

// DeletedStore defines the interface for the soft-delete registry.
type DeletedStore interface {
	Load() (map[string]bool, error)
	MarkDeleted(matchID string) error
}

type store struct {
	resolver PathResolver
	mu       sync.Mutex
}

// New creates a DeletedStore over the resolved data root.
func New(resolver PathResolver) DeletedStore {
	return &store{resolver: resolver}
}

// Load reads the whole registry as a membership set.
func (s *store) Load() (map[string]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	paths, err := s.resolver.Resolve()
	if err != nil {
		return nil, err
	}
	return loadIDs(paths.DeletedFile)
}

// MarkDeleted adds a match ID to the registry and persists it. Marking an
// already-deleted ID is a no-op.
func (s *store) MarkDeleted(matchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	paths, err := s.resolver.Resolve()
	if err != nil {
		return err
	}
	ids, err := loadIDs(paths.DeletedFile)
	if err != nil {
		return err
	}
	if ids[matchID] {
		log.Debug("Match already soft-deleted", "matchID", matchID)
		return nil
	}

	ids[matchID] = true
	if err := saveIDs(paths.DeletedFile, ids); err != nil {
		return err
	}
	log.Info("Soft-deleted match", "matchID", matchID, "root", paths.Kind)
	return nil
}

func loadIDs(path string) (map[string]bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read soft-delete registry: %w", err)
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("soft-delete registry is not a JSON list: %w", err)
	}

	ids := make(map[string]bool, len(list))
	for _, id := range list {
		ids[id] = true
	}
	return ids, nil
}

// saveIDs rewrites the registry wholesale, sorted for stable diffs, via a
// temp file so a failed write cannot corrupt the previous state.
func saveIDs(path string, ids map[string]bool) error {
	list := make([]string, 0, len(ids))
	for id := range ids {
		list = append(list, id)
	}
	sort.Strings(list)

	raw, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write soft-delete registry: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace soft-delete registry: %w", err)
	}
	return nil
}
