package roster

import "calcetto-tracker/internal/datasource"

// PathResolver yields the active data root for each operation.
type PathResolver interface {
	Resolve() (datasource.Paths, error)
}

// PlayerStore defines the interface for interacting with the player roster.
type PlayerStore interface {
	List() ([]Player, error)
	Add(name string) (Player, error)
	Exists(name string) (bool, error)
}
