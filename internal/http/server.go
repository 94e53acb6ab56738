package http

import (
	"net/http"

	"calcetto-tracker/internal/config"
	"calcetto-tracker/internal/datasource"
	"calcetto-tracker/internal/matches"
	"calcetto-tracker/internal/metrics"
	"calcetto-tracker/internal/roster"
)

func NewServer(players roster.PlayerStore, matchStore matches.MatchStore, resolver *datasource.Resolver, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Players:        players,
		Matches:        matchStore,
		Resolver:       resolver,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/datasource", Chain(s.DataSourceHandler(), paramsMiddleware))
	s.Router.Handle("/players", Chain(s.PlayersHandler(), paramsMiddleware))
	s.Router.Handle("/matches", Chain(s.MatchesHandler(), paramsMiddleware))
	s.Router.Handle("/matches/delete", Chain(s.SoftDeleteHandler(), paramsMiddleware))
	s.Router.Handle("/rejected", Chain(s.RejectedFilesHandler(), paramsMiddleware))
	s.Router.Handle("/stats", Chain(s.StatsHandler(), paramsMiddleware))
	s.Router.Handle("/stats/timeline", Chain(s.TimelineHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
