package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metricsHandler http.Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/matches", handler.SubmitMatch)
	mux.HandleFunc("POST /v1/matches/preview", handler.PreviewMatch)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/players", handler.CreatePlayer)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/duplicate-check", handler.CheckDuplicatePlayer)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("PUT /v1/players/{playerID}", handler.UpdatePlayer)
	mux.HandleFunc("GET /v1/players/{playerID}/rating-history", handler.GetPlayerRatingHistory)
}

func registerDirectoryRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/clubs", handler.CreateClub)
	mux.HandleFunc("GET /v1/clubs", handler.ListClubs)
	mux.HandleFunc("GET /v1/clubs/{clubID}", handler.GetClub)
	mux.HandleFunc("GET /v1/countries", handler.ListCountries)
	mux.HandleFunc("GET /v1/countries/{countryID}/national-teams", handler.ListNationalTeams)
	mux.HandleFunc("GET /v1/positions", handler.ListPositions)
}
