package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"calcetto-tracker/internal/matches"
	"calcetto-tracker/internal/matchfile"
	"calcetto-tracker/internal/roster"
	"calcetto-tracker/internal/stats"

	"github.com/charmbracelet/log"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) DataSourceHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		paths, err := s.Resolver.Resolve()
		if err != nil {
			log.Error("Failed to resolve data root", "error", err)
			http.Error(w, "Failed to resolve data root", http.StatusInternalServerError)
			return
		}
		writeJSON(w, paths)
	}
}

// PlayersHandler serves the roster: GET lists it, POST adds a player.
func (s *Server) PlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			players, err := s.Players.List()
			if err != nil {
				log.Error("Failed to list players", "error", err)
				http.Error(w, "Failed to list players", http.StatusInternalServerError)
				return
			}
			writeJSON(w, players)
		case http.MethodPost:
			var req addPlayerRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "Invalid request body", http.StatusBadRequest)
				return
			}
			player, err := s.Players.Add(req.Name)
			if err != nil {
				switch {
				case errors.Is(err, roster.ErrDuplicatePlayer):
					http.Error(w, err.Error(), http.StatusConflict)
				case errors.Is(err, roster.ErrEmptyName):
					http.Error(w, err.Error(), http.StatusBadRequest)
				default:
					log.Error("Failed to add player", "error", err)
					http.Error(w, "Failed to add player", http.StatusInternalServerError)
				}
				return
			}
			s.Metrics.IncPlayersAdded()
			writeJSONStatus(w, http.StatusCreated, player)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// MatchesHandler serves the match list: GET returns the active set as views,
// optionally narrowed to one player via ?player=, POST creates a new match
// from the interactive path.
func (s *Server) MatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			active, _, err := s.Matches.ListActive()
			if err != nil {
				log.Error("Failed to list matches", "error", err)
				http.Error(w, "Failed to list matches", http.StatusInternalServerError)
				return
			}
			if player := r.URL.Query().Get("player"); player != "" {
				writeJSON(w, stats.PlayerMatchViews(active, player))
				return
			}
			views := make([]stats.MatchView, 0, len(active))
			for _, m := range active {
				views = append(views, stats.ToView(m))
			}
			writeJSON(w, views)
		case http.MethodPost:
			var req createMatchRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "Invalid request body", http.StatusBadRequest)
				return
			}
			date, err := time.Parse("2006-01-02", req.Date)
			if err != nil {
				http.Error(w, "date must be in format YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			match, err := s.Matches.Create(date, req.Note, req.TeamA, req.TeamB)
			if err != nil {
				if errors.Is(err, matches.ErrInvalidComposition) {
					http.Error(w, err.Error(), http.StatusBadRequest)
					return
				}
				log.Error("Failed to create match", "error", err, "requestID", requestIDFromContext(r))
				http.Error(w, "Failed to create match", http.StatusInternalServerError)
				return
			}
			writeJSONStatus(w, http.StatusCreated, stats.ToView(match))
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

func (s *Server) SoftDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		matchID := r.URL.Query().Get("matchID")
		if matchID == "" {
			http.Error(w, "matchID is required", http.StatusBadRequest)
			return
		}
		if err := s.Matches.SoftDelete(matchID); err != nil {
			log.Error("Failed to soft-delete match", "error", err, "matchID", matchID)
			http.Error(w, "Failed to soft-delete match", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Soft-deleted match %s", matchID)
	}
}

func (s *Server) RejectedFilesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, rejected, err := s.Matches.ListActive()
		if err != nil {
			log.Error("Failed to list rejected files", "error", err)
			http.Error(w, "Failed to list rejected files", http.StatusInternalServerError)
			return
		}
		if rejected == nil {
			rejected = []matchfile.RejectedFile{}
		}
		writeJSON(w, rejected)
	}
}

func (s *Server) StatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		active, _, err := s.Matches.ListActive()
		if err != nil {
			log.Error("Failed to compute statistics", "error", err)
			http.Error(w, "Failed to compute statistics", http.StatusInternalServerError)
			return
		}
		players, err := s.Players.List()
		if err != nil {
			log.Error("Failed to load roster for statistics", "error", err)
			http.Error(w, "Failed to compute statistics", http.StatusInternalServerError)
			return
		}
		writeJSON(w, stats.BuildDashboard(active, players))
	}
}

func (s *Server) TimelineHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player := r.URL.Query().Get("player")
		if player == "" {
			http.Error(w, "player is required", http.StatusBadRequest)
			return
		}
		active, _, err := s.Matches.ListActive()
		if err != nil {
			log.Error("Failed to compute timeline", "error", err, "player", player)
			http.Error(w, "Failed to compute timeline", http.StatusInternalServerError)
			return
		}
		labels, series := stats.CumulativeSeries(active, player)
		writeJSON(w, timelineResponse{
			Player: player,
			Labels: labels,
			Rating: stats.Timeline(active, player),
			Series: series,
		})
	}
}

func writeJSON(w http.ResponseWriter, payload any) {
	writeJSONStatus(w, http.StatusOK, payload)
}

func writeJSONStatus(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}
