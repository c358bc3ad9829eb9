package handlers

import (
	"context"

	"github.com/rs/zerolog"

	"donorboard/internal/domain"
	"donorboard/internal/geocode"
	"donorboard/internal/service"
)

// Function-field stubs for the repository interfaces. Unset fields return
// empty results, so each test only wires what it exercises.

type stubDonorRepo struct {
	list      func(ctx context.Context) ([]domain.Donor, error)
	getByName func(ctx context.Context, name string) (*domain.Donor, error)
	create    func(ctx context.Context, donor *domain.Donor) (*domain.Donor, error)
	update    func(ctx context.Context, id string, patch map[string]any) error
}

func (r *stubDonorRepo) List(ctx context.Context) ([]domain.Donor, error) {
	if r.list != nil {
		return r.list(ctx)
	}
	return nil, nil
}

func (r *stubDonorRepo) ListByTotal(ctx context.Context) ([]domain.Donor, error) {
	return r.List(ctx)
}

func (r *stubDonorRepo) ListByIDs(ctx context.Context, ids []string) ([]domain.Donor, error) {
	return r.List(ctx)
}

func (r *stubDonorRepo) GetByID(ctx context.Context, id string) (*domain.Donor, error) {
	return nil, domain.ErrNotFound
}

func (r *stubDonorRepo) GetByName(ctx context.Context, name string) (*domain.Donor, error) {
	if r.getByName != nil {
		return r.getByName(ctx, name)
	}
	return nil, domain.ErrNotFound
}

func (r *stubDonorRepo) Create(ctx context.Context, donor *domain.Donor) (*domain.Donor, error) {
	if r.create != nil {
		return r.create(ctx, donor)
	}
	created := *donor
	created.ID = "donor-stub"
	return &created, nil
}

func (r *stubDonorRepo) Update(ctx context.Context, id string, patch map[string]any) error {
	if r.update != nil {
		return r.update(ctx, id, patch)
	}
	return nil
}

func (r *stubDonorRepo) Delete(ctx context.Context, id string) error { return nil }

type stubDonationRepo struct {
	list    func(ctx context.Context) ([]domain.Donation, error)
	getByID func(ctx context.Context, id string) (*domain.Donation, error)
	create  func(ctx context.Context, donation *domain.Donation) (*domain.Donation, error)
}

func (r *stubDonationRepo) List(ctx context.Context) ([]domain.Donation, error) {
	if r.list != nil {
		return r.list(ctx)
	}
	return nil, nil
}

func (r *stubDonationRepo) ListRecentByDate(ctx context.Context, limit int) ([]domain.Donation, error) {
	return r.List(ctx)
}

func (r *stubDonationRepo) ListRecentByCreation(ctx context.Context, limit int) ([]domain.Donation, error) {
	return r.List(ctx)
}

func (r *stubDonationRepo) ListByDonor(ctx context.Context, donorID string) ([]domain.Donation, error) {
	return r.List(ctx)
}

func (r *stubDonationRepo) ListUnmatched(ctx context.Context) ([]domain.Donation, error) {
	return r.List(ctx)
}

func (r *stubDonationRepo) GetByID(ctx context.Context, id string) (*domain.Donation, error) {
	if r.getByID != nil {
		return r.getByID(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (r *stubDonationRepo) Create(ctx context.Context, donation *domain.Donation) (*domain.Donation, error) {
	if r.create != nil {
		return r.create(ctx, donation)
	}
	created := *donation
	created.ID = "donation-stub"
	return &created, nil
}

func (r *stubDonationRepo) Update(ctx context.Context, id string, patch map[string]any) error {
	return nil
}

func (r *stubDonationRepo) Delete(ctx context.Context, id string) error { return nil }

type stubAdminRepo struct{}

func (stubAdminRepo) IsAdmin(ctx context.Context, userID string) (bool, error) { return true, nil }

type stubGeocoder struct {
	coords *geocode.Coordinates
	err    error
}

func (g stubGeocoder) Lookup(ctx context.Context, city, county string) (*geocode.Coordinates, error) {
	return g.coords, g.err
}

func newTestApp(donors *stubDonorRepo, donations *stubDonationRepo) *App {
	logger := zerolog.Nop()
	return NewApp(
		logger,
		donors,
		donations,
		stubAdminRepo{},
		service.NewDonationService(donors, donations, logger),
		service.NewTransferService(donors, donations, logger),
		stubGeocoder{},
	)
}
