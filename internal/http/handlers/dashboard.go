package handlers

import (
	"net/http"
	"time"

	"donorboard/internal/dashboard"
	"donorboard/internal/domain"
)

// DashboardStats returns the summary statistics block. Gateway read failures
// are logged and rendered as zeroed statistics rather than an error, so the
// dashboard always paints.
func (a *App) DashboardStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	donations, err := a.Donations.List(ctx)
	if err != nil {
		a.Logger.Error().Err(err).Msg("failed to load donations for stats")
		a.json(w, http.StatusOK, dashboard.Stats{})
		return
	}
	donors, err := a.Donors.List(ctx)
	if err != nil {
		a.Logger.Error().Err(err).Msg("failed to load donors for stats")
		a.json(w, http.StatusOK, dashboard.Stats{})
		return
	}
	a.json(w, http.StatusOK, dashboard.BuildStats(donors, donations, time.Now()))
}

// DashboardMonthly returns the 12-bucket series for the current year.
func (a *App) DashboardMonthly(w http.ResponseWriter, r *http.Request) {
	donations, err := a.Donations.List(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("failed to load donations for monthly series")
		a.json(w, http.StatusOK, dashboard.BuildMonthly(nil, time.Now()))
		return
	}
	a.json(w, http.StatusOK, dashboard.BuildMonthly(donations, time.Now()))
}

// DashboardRecentDonors returns the newest donations joined with donor info.
func (a *App) DashboardRecentDonors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	donations, err := a.Donations.ListRecentByDate(ctx, 20)
	if err != nil {
		a.Logger.Error().Err(err).Msg("failed to load recent donations")
		a.json(w, http.StatusOK, map[string]any{"items": []dashboard.RecentDonor{}})
		return
	}
	donors, err := a.Donors.ListByIDs(ctx, donorIDs(donations))
	if err != nil {
		// Rows still render with placeholder donor fields.
		a.Logger.Error().Err(err).Msg("failed to load donors for recent donations")
	}
	rows := dashboard.JoinRecentDonors(donations, dashboard.DonorsByID(donors))
	a.json(w, http.StatusOK, map[string]any{"items": rows})
}

// DashboardActivity returns the recent feed and the notification subset
// newer than the client-persisted last check passed as ?since=RFC3339.
func (a *App) DashboardActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var lastCheck time.Time
	if since := r.URL.Query().Get("since"); since != "" {
		parsed, err := time.Parse(time.RFC3339, since)
		if err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", "since must be an RFC3339 timestamp")
			return
		}
		lastCheck = parsed
	}

	donations, err := a.Donations.ListRecentByCreation(ctx, 10)
	if err != nil {
		a.Logger.Error().Err(err).Msg("failed to load donations for activity feed")
		a.json(w, http.StatusOK, dashboard.Feed{Recent: []dashboard.Activity{}, Notifications: []dashboard.Activity{}})
		return
	}
	donors, err := a.Donors.ListByIDs(ctx, donorIDs(donations))
	if err != nil {
		a.Logger.Error().Err(err).Msg("failed to load donors for activity feed")
	}

	// The milestone check needs the lifetime total, not just the recent page.
	all, err := a.Donations.List(ctx)
	if err != nil {
		a.Logger.Error().Err(err).Msg("failed to load donations for goal progress")
	}
	var total float64
	for _, d := range all {
		total += d.Amount
	}

	feed := dashboard.BuildActivity(donations, dashboard.DonorsByID(donors), total, lastCheck, time.Now())
	a.json(w, http.StatusOK, feed)
}

func donorIDs(donations []domain.Donation) []string {
	seen := make(map[string]struct{}, len(donations))
	ids := make([]string, 0, len(donations))
	for _, d := range donations {
		if _, ok := seen[d.DonorID]; ok {
			continue
		}
		seen[d.DonorID] = struct{}{}
		ids = append(ids, d.DonorID)
	}
	return ids
}
