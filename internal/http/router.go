package http

import (
	nethttp "net/http"

	"github.com/JerelRocktaschel/jumpshot/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("GET /health", handler.Health)

	mux.HandleFunc("GET /teams", handler.Teams)
	mux.HandleFunc("GET /teams/{id}/leaders", handler.TeamLeaders)
	mux.HandleFunc("GET /teams/{id}/schedule", handler.TeamSchedule)
	mux.HandleFunc("GET /teams/{abbr}/logo", handler.TeamLogo)

	mux.HandleFunc("GET /players", handler.Players)
	mux.HandleFunc("GET /players/{id}/summary", handler.PlayerSummary)
	mux.HandleFunc("GET /players/{id}/headshot", handler.PlayerHeadshot)

	mux.HandleFunc("GET /schedule", handler.Schedule)
	mux.HandleFunc("GET /games/{id}/boxscore", handler.Boxscore)
	mux.HandleFunc("GET /games/{id}/leadtracker", handler.LeadTracker)

	mux.HandleFunc("GET /standings", handler.Standings)
	mux.HandleFunc("GET /coaches", handler.Coaches)
	mux.HandleFunc("GET /rankings", handler.Rankings)
	mux.HandleFunc("GET /leaders", handler.Leaders)

	return mux
}
