package handlers

import (
	"encoding/json"
	"net/http"
)

type geocodeRequest struct {
	City   string `json:"city" validate:"required"`
	County string `json:"county" validate:"required"`
}

type geocodeResponse struct {
	Latitude  *string `json:"latitude"`
	Longitude *string `json:"longitude"`
}

// Geocode proxies a city/county lookup to the address search service.
// A miss comes back as null coordinates, not an error.
func (a *App) Geocode(w http.ResponseWriter, r *http.Request) {
	var req geocodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := a.Validate.Struct(req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "city and county are required")
		return
	}

	coords, err := a.Geocoder.Lookup(r.Context(), req.City, req.County)
	if err != nil {
		a.Logger.Error().Err(err).Msg("geocoding failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to fetch coordinates")
		return
	}

	var resp geocodeResponse
	if coords != nil {
		resp.Latitude = &coords.Latitude
		resp.Longitude = &coords.Longitude
	}
	a.json(w, http.StatusOK, resp)
}
