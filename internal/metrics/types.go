package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	LoaderRuns         prometheus.Counter
	FilesRejected      prometheus.Counter
	ListDuration       prometheus.Histogram
	MatchesCreated     prometheus.Counter
	PlayersAdded       prometheus.Counter
	SoftDeletes        prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}
