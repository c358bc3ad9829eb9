package handlers

import (
	"net/http"
	"strconv"

	"donorboard/internal/leaderboard"
)

// DonorsList serves the public leaderboard: donors ordered by total with
// optional search, county filter, sort controls, and pagination.
func (a *App) DonorsList(w http.ResponseWriter, r *http.Request) {
	donors, err := a.Donors.ListByTotal(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("failed to load donors for leaderboard")
		a.error(w, http.StatusInternalServerError, "internal", "failed to fetch donors")
		return
	}

	q := r.URL.Query()
	query := leaderboard.Query{
		Search: q.Get("search"),
		County: q.Get("county"),
		SortBy: q.Get("sort"),
		Asc:    q.Get("dir") == "asc",
		Page:   intParam(q.Get("page"), 1),
	}
	query.PerPage = intParam(q.Get("per_page"), leaderboard.DefaultPerPage)

	filtered := leaderboard.Filter(donors, query)
	a.json(w, http.StatusOK, leaderboard.Paginate(filtered, query.Page, query.PerPage))
}

// DonorsCounties returns the distinct county list for the filter dropdown.
func (a *App) DonorsCounties(w http.ResponseWriter, r *http.Request) {
	donors, err := a.Donors.List(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("failed to load donors for county list")
		a.error(w, http.StatusInternalServerError, "internal", "failed to fetch counties")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"counties": leaderboard.Counties(donors)})
}

func intParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
