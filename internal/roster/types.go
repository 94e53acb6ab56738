package roster

import (
	"errors"
	"sync"
)

// Player is one roster member. Names are the identity key and are unique
// case-insensitively; the numeric id exists for the legacy csv tooling.
type Player struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ErrDuplicatePlayer is returned by Add when a name already exists on the
// roster, compared case-insensitively after whitespace normalization.
var ErrDuplicatePlayer = errors.New("player name already exists")

// ErrEmptyName is returned by Add when the name is blank after trimming.
var ErrEmptyName = errors.New("player name cannot be empty")

// store handles all roster file operations.
type store struct {
	resolver PathResolver
	mu       sync.RWMutex
}
