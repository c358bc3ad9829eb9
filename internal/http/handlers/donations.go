package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"donorboard/internal/domain"
	"donorboard/internal/service"
)

type donationRequest struct {
	DonorName     string   `json:"donor_name" validate:"required"`
	Amount        float64  `json:"amount" validate:"required,gt=0"`
	City          string   `json:"city"`
	County        string   `json:"county"`
	Latitude      *string  `json:"latitude" validate:"omitempty,latitude"`
	Longitude     *string  `json:"longitude" validate:"omitempty,longitude"`
	Date          string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Matched       bool     `json:"matched"`
	MatchedAmount *float64 `json:"matched_amount" validate:"omitempty,gt=0"`
}

// DonationsCreate records a donation, creating the donor on first gift.
func (a *App) DonationsCreate(w http.ResponseWriter, r *http.Request) {
	var req donationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := a.Validate.Struct(req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	created, err := a.Service.Add(r.Context(), service.AddDonationInput{
		DonorName:     req.DonorName,
		Amount:        req.Amount,
		City:          req.City,
		County:        req.County,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Date:          req.Date,
		Matched:       req.Matched,
		MatchedAmount: req.MatchedAmount,
	})
	if err != nil {
		a.Logger.Error().Err(err).Msg("add donation failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to add donation")
		return
	}
	a.json(w, http.StatusCreated, created)
}

// DonationsUpdate rewrites a donation and adjusts the donor total by the
// amount delta.
func (a *App) DonationsUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req donationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := a.Validate.Struct(req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	err := a.Service.Edit(r.Context(), id, service.EditDonationInput{
		DonorName:     req.DonorName,
		Amount:        req.Amount,
		City:          req.City,
		County:        req.County,
		Date:          req.Date,
		Matched:       req.Matched,
		MatchedAmount: req.MatchedAmount,
	})
	if errors.Is(err, domain.ErrNotFound) {
		a.error(w, http.StatusNotFound, "not_found", "donation not found")
		return
	}
	if err != nil {
		a.Logger.Error().Err(err).Str("donation_id", id).Msg("update donation failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to update donation")
		return
	}
	a.json(w, http.StatusOK, map[string]string{"message": "donation updated"})
}

// DonationsDelete removes a donation, and the donor too when it was their
// last one.
func (a *App) DonationsDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := a.Service.Delete(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		a.error(w, http.StatusNotFound, "not_found", "donation not found")
		return
	}
	if err != nil {
		a.Logger.Error().Err(err).Str("donation_id", id).Msg("delete donation failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to delete donation")
		return
	}
	a.json(w, http.StatusOK, map[string]string{"message": "donation deleted"})
}

// DonationsMatch flags one donation matched at its own amount.
func (a *App) DonationsMatch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := a.Service.Match(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		a.error(w, http.StatusNotFound, "not_found", "donation not found")
		return
	}
	if err != nil {
		a.Logger.Error().Err(err).Str("donation_id", id).Msg("match donation failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to match donation")
		return
	}
	a.json(w, http.StatusOK, map[string]string{"message": "donation matched"})
}

// DonationsQuickMatch matches every pending donation. Partial failures leave
// applied updates in place and surface the first error.
func (a *App) DonationsQuickMatch(w http.ResponseWriter, r *http.Request) {
	matched, err := a.Service.QuickMatch(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("quick match failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to match pending donations")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"matched": matched})
}
