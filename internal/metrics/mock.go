package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu             sync.Mutex
	loaderRuns     int
	filesRejected  float64
	listDurations  []float64
	matchesCreated int
	playersAdded   int
	softDeletes    int
	startupTime    float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		listDurations: make([]float64, 0),
	}
}

func (m *Mock) IncLoaderRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loaderRuns++
}

func (m *Mock) AddFilesRejected(count float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.filesRejected += count
}

func (m *Mock) ObserveListDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listDurations = append(m.listDurations, seconds)
}

func (m *Mock) IncMatchesCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesCreated++
}

func (m *Mock) IncPlayersAdded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playersAdded++
}

func (m *Mock) IncSoftDeletes() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.softDeletes++
}

func (m *Mock) SetStartupTime(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = seconds
}

// LoaderRuns returns the number of times IncLoaderRuns was called.
func (m *Mock) LoaderRuns() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loaderRuns
}

// FilesRejected returns the accumulated rejected-file count.
func (m *Mock) FilesRejected() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.filesRejected
}

// MatchesCreated returns the number of times IncMatchesCreated was called.
func (m *Mock) MatchesCreated() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesCreated
}

// SoftDeletes returns the number of times IncSoftDeletes was called.
func (m *Mock) SoftDeletes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.softDeletes
}
