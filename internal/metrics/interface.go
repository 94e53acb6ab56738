package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncLoaderRuns()
	AddFilesRejected(count float64)
	ObserveListDuration(seconds float64)
	IncMatchesCreated()
	IncPlayersAdded()
	IncSoftDeletes()
	SetStartupTime(seconds float64)
}
