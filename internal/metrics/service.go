package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		LoaderRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "calcetto_loader_runs_total",
			Help: "The total number of times the match directory has been scanned.",
		}),
		FilesRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "calcetto_files_rejected_total",
			Help: "The total number of match files rejected by parsing or validation.",
		}),
		ListDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "calcetto_list_duration_seconds",
			Help:    "The duration of a full scan-validate-sort listing cycle.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		MatchesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "calcetto_matches_created_total",
			Help: "The total number of matches created through the interactive path.",
		}),
		PlayersAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "calcetto_players_added_total",
			Help: "The total number of players added to the roster.",
		}),
		SoftDeletes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "calcetto_soft_deletes_total",
			Help: "The total number of soft-delete operations.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "calcetto_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.LoaderRuns,
		s.FilesRejected,
		s.ListDuration,
		s.MatchesCreated,
		s.PlayersAdded,
		s.SoftDeletes,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncLoaderRuns() {
	s.LoaderRuns.Inc()
}

func (s *Service) AddFilesRejected(count float64) {
	s.FilesRejected.Add(count)
}

func (s *Service) ObserveListDuration(seconds float64) {
	s.ListDuration.Observe(seconds)
}

func (s *Service) IncMatchesCreated() {
	s.MatchesCreated.Inc()
}

func (s *Service) IncPlayersAdded() {
	s.PlayersAdded.Inc()
}

func (s *Service) IncSoftDeletes() {
	s.SoftDeletes.Inc()
}

func (s *Service) SetStartupTime(seconds float64) {
	s.StartupTimeSeconds.Set(seconds)
}
