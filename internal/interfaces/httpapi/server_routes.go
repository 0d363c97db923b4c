package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/users", handler.RegisterUser)
	mux.HandleFunc("GET /v1/users", handler.ListUsers)
	mux.HandleFunc("GET /v1/users/{userID}", handler.GetUser)
	mux.HandleFunc("GET /v1/users/{userID}/tournaments/{tournamentID}/picks", handler.GetUserTournamentPicks)

	mux.HandleFunc("POST /v1/golfers", handler.AddGolfer)
	mux.HandleFunc("GET /v1/golfers", handler.ListGolfers)

	mux.HandleFunc("POST /v1/tournaments", handler.CreateTournament)
	mux.HandleFunc("GET /v1/tournaments", handler.ListTournaments)
	mux.HandleFunc("GET /v1/tournaments/open", handler.ListOpenTournaments)
	mux.HandleFunc("POST /v1/tournaments/load-schedule", handler.LoadSchedule)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}", handler.GetTournament)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/golfers", handler.GetTournamentField)
	mux.HandleFunc("POST /v1/tournaments/{tournamentID}/earnings", handler.LoadEarnings)

	mux.HandleFunc("POST /v1/picks", handler.SubmitPicks)

	mux.HandleFunc("GET /v1/scoreboard", handler.GetScoreboard)
	mux.HandleFunc("GET /v1/scoreboard/detailed", handler.GetDetailedScoreboard)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/sync-earnings/{tournamentID}", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunSyncEarningsJob)))
	mux.Handle("POST /v1/internal/jobs/sweep-earnings", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunSweepEarningsJob)))
}
