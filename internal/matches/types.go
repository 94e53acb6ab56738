package matches

import (
	"errors"
	"sync"

	"calcetto-tracker/internal/metrics"
	"calcetto-tracker/internal/registry"
	"calcetto-tracker/internal/roster"
)

// TeamSize is the required number of players per side on the interactive
// creation path. Imported workbooks are allowed uneven team sizes; this
// stricter rule applies only to matches entered through Create.
const TeamSize = 5

// ErrInvalidComposition is returned by Create for any team-composition
// failure: wrong team size, duplicate or unknown players, negative stats.
// Nothing is written when it is returned.
var ErrInvalidComposition = errors.New("invalid match composition")

type store struct {
	resolver PathResolver
	players  roster.PlayerStore
	deleted  registry.DeletedStore
	metrics  metrics.Metrics
	mu       sync.Mutex
}
