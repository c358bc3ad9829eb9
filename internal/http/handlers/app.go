package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"donorboard/internal/domain"
	"donorboard/internal/geocode"
	"donorboard/internal/service"
)

// Geocoder resolves a city/county pair to coordinates.
type Geocoder interface {
	Lookup(ctx context.Context, city, county string) (*geocode.Coordinates, error)
}

// App carries the handler dependencies.
type App struct {
	Logger    zerolog.Logger
	Donors    domain.DonorRepository
	Donations domain.DonationRepository
	Admins    domain.AdminRepository
	Service   *service.DonationService
	Transfer  *service.TransferService
	Geocoder  Geocoder
	Validate  *validator.Validate
}

// NewApp wires the handler container.
func NewApp(logger zerolog.Logger, donors domain.DonorRepository, donations domain.DonationRepository, admins domain.AdminRepository, svc *service.DonationService, transfer *service.TransferService, geocoder Geocoder) *App {
	return &App{
		Logger:    logger,
		Donors:    donors,
		Donations: donations,
		Admins:    admins,
		Service:   svc,
		Transfer:  transfer,
		Geocoder:  geocoder,
		Validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]string{"error": code, "message": message})
}
