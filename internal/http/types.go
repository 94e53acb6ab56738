package http

import (
	"net/http"

	"calcetto-tracker/internal/config"
	"calcetto-tracker/internal/datasource"
	"calcetto-tracker/internal/matches"
	"calcetto-tracker/internal/matchfile"
	"calcetto-tracker/internal/metrics"
	"calcetto-tracker/internal/roster"
	"calcetto-tracker/internal/stats"
)

type Server struct {
	Players        roster.PlayerStore
	Matches        matches.MatchStore
	Resolver       *datasource.Resolver
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
}

// addPlayerRequest is the body of POST /players.
type addPlayerRequest struct {
	Name string `json:"name"`
}

// createMatchRequest is the body of POST /matches. Team membership is given
// per side; the repository stamps the team labels.
type createMatchRequest struct {
	Date  string                `json:"date"`
	Note  string                `json:"note"`
	TeamA []matchfile.PlayerRow `json:"team_a"`
	TeamB []matchfile.PlayerRow `json:"team_b"`
}

// timelineResponse is the body of GET /stats/timeline.
type timelineResponse struct {
	Player string                  `json:"player"`
	Labels []string                `json:"labels"`
	Rating []stats.TimelinePoint   `json:"rating"`
	Series map[string]stats.Series `json:"series"`
}
