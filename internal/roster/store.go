package roster

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// New creates a new PlayerStore over the resolved data root.
func New(resolver PathResolver) PlayerStore {
	return &store{resolver: resolver}
}

// List returns the roster in file order.
func (s *store) List() ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	paths, err := s.resolver.Resolve()
	if err != nil {
		return nil, err
	}
	return loadPlayers(paths.PlayersFile)
}

// Add appends a new player, failing with ErrDuplicatePlayer when the name
// matches an existing one case-insensitively. The roster file is rewritten
// whole via a temp file, so a failed write leaves the previous roster
// intact and nothing is mutated on a validation failure.
func (s *store) Add(name string) (Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cleaned := normalizeSpaces(name)
	if cleaned == "" {
		return Player{}, ErrEmptyName
	}

	paths, err := s.resolver.Resolve()
	if err != nil {
		return Player{}, err
	}
	players, err := loadPlayers(paths.PlayersFile)
	if err != nil {
		return Player{}, err
	}

	key := nameKey(cleaned)
	nextID := 0
	for _, p := range players {
		if nameKey(p.Name) == key {
			return Player{}, fmt.Errorf("%w: %s", ErrDuplicatePlayer, p.Name)
		}
		if p.ID > nextID {
			nextID = p.ID
		}
	}

	player := Player{ID: nextID + 1, Name: cleaned}
	players = append(players, player)
	if err := savePlayers(paths.PlayersFile, players); err != nil {
		return Player{}, err
	}

	log.Info("Added player to roster", "name", player.Name, "id", player.ID)
	return player, nil
}

// Exists reports whether a name is on the roster, using the same
// case-insensitive comparison as Add.
func (s *store) Exists(name string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	paths, err := s.resolver.Resolve()
	if err != nil {
		return false, err
	}
	players, err := loadPlayers(paths.PlayersFile)
	if err != nil {
		return false, err
	}

	key := nameKey(normalizeSpaces(name))
	for _, p := range players {
		if nameKey(p.Name) == key {
			return true, nil
		}
	}
	return false, nil
}

func loadPlayers(path string) ([]Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster file: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	if len(records[0]) != 2 || records[0][0] != "id" || records[0][1] != "name" {
		return nil, fmt.Errorf("roster file must have columns [id name]")
	}

	var players []Player
	for i, rec := range records[1:] {
		id, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil {
			return nil, fmt.Errorf("roster row %d: invalid player id %q", i+2, rec[0])
		}
		players = append(players, Player{ID: id, Name: strings.TrimSpace(rec[1])})
	}
	return players, nil
}

func savePlayers(path string, players []Player) error {
	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create roster file: %w", err)
	}

	w := csv.NewWriter(f)
	records := [][]string{{"id", "name"}}
	for _, p := range players {
		records = append(records, []string{strconv.Itoa(p.ID), p.Name})
	}
	if err := w.WriteAll(records); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write roster file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close roster file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace roster file: %w", err)
	}
	return nil
}

// normalizeSpaces trims and collapses runs of inner whitespace, so
// " Ana  Rossi " and "Ana Rossi" are the same written name.
func normalizeSpaces(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

func nameKey(name string) string {
	return strings.ToLower(name)
}
