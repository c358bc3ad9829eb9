package service

import (
	"context"
	"fmt"

	"donorboard/internal/domain"
)

// In-memory repository fakes. Patches apply the same column names the
// gateway implementations send.

type fakeDonorRepo struct {
	donors    map[string]*domain.Donor
	seq       int
	createErr error
	updateErr error
}

func newFakeDonorRepo() *fakeDonorRepo {
	return &fakeDonorRepo{donors: map[string]*domain.Donor{}}
}

func (r *fakeDonorRepo) List(ctx context.Context) ([]domain.Donor, error) {
	var out []domain.Donor
	for _, d := range r.donors {
		out = append(out, *d)
	}
	return out, nil
}

func (r *fakeDonorRepo) ListByTotal(ctx context.Context) ([]domain.Donor, error) {
	return r.List(ctx)
}

func (r *fakeDonorRepo) ListByIDs(ctx context.Context, ids []string) ([]domain.Donor, error) {
	var out []domain.Donor
	for _, id := range ids {
		if d, ok := r.donors[id]; ok {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDonorRepo) GetByID(ctx context.Context, id string) (*domain.Donor, error) {
	d, ok := r.donors[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *d
	return &out, nil
}

func (r *fakeDonorRepo) GetByName(ctx context.Context, name string) (*domain.Donor, error) {
	for _, d := range r.donors {
		if d.Name == name {
			out := *d
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeDonorRepo) Create(ctx context.Context, donor *domain.Donor) (*domain.Donor, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.seq++
	created := *donor
	created.ID = fmt.Sprintf("donor-%d", r.seq)
	r.donors[created.ID] = &created
	out := created
	return &out, nil
}

func (r *fakeDonorRepo) Update(ctx context.Context, id string, patch map[string]any) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	d, ok := r.donors[id]
	if !ok {
		return domain.ErrNotFound
	}
	for col, v := range patch {
		switch col {
		case "total_donated":
			d.TotalDonated = v.(float64)
		case "name":
			d.Name = v.(string)
		case "city":
			d.City = stringOrEmpty(v)
		case "county":
			d.County = stringOrEmpty(v)
		case "latitude":
			lat := v.(string)
			d.Latitude = &lat
		case "longitude":
			lon := v.(string)
			d.Longitude = &lon
		}
	}
	return nil
}

func (r *fakeDonorRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.donors[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.donors, id)
	return nil
}

type fakeDonationRepo struct {
	donations map[string]*domain.Donation
	seq       int
	createErr error
	updateErr error
}

func newFakeDonationRepo() *fakeDonationRepo {
	return &fakeDonationRepo{donations: map[string]*domain.Donation{}}
}

func (r *fakeDonationRepo) List(ctx context.Context) ([]domain.Donation, error) {
	var out []domain.Donation
	for _, d := range r.donations {
		out = append(out, *d)
	}
	return out, nil
}

func (r *fakeDonationRepo) ListRecentByDate(ctx context.Context, limit int) ([]domain.Donation, error) {
	return r.List(ctx)
}

func (r *fakeDonationRepo) ListRecentByCreation(ctx context.Context, limit int) ([]domain.Donation, error) {
	return r.List(ctx)
}

func (r *fakeDonationRepo) ListByDonor(ctx context.Context, donorID string) ([]domain.Donation, error) {
	var out []domain.Donation
	for _, d := range r.donations {
		if d.DonorID == donorID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDonationRepo) ListUnmatched(ctx context.Context) ([]domain.Donation, error) {
	var out []domain.Donation
	for _, d := range r.donations {
		if !d.Matched {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDonationRepo) GetByID(ctx context.Context, id string) (*domain.Donation, error) {
	d, ok := r.donations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *d
	return &out, nil
}

func (r *fakeDonationRepo) Create(ctx context.Context, donation *domain.Donation) (*domain.Donation, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.seq++
	created := *donation
	created.ID = fmt.Sprintf("donation-%d", r.seq)
	r.donations[created.ID] = &created
	out := created
	return &out, nil
}

func (r *fakeDonationRepo) Update(ctx context.Context, id string, patch map[string]any) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	d, ok := r.donations[id]
	if !ok {
		return domain.ErrNotFound
	}
	for col, v := range patch {
		switch col {
		case "amount":
			d.Amount = v.(float64)
		case "donation_date":
			d.DonationDate = v.(string)
		case "matched":
			d.Matched = v.(bool)
		case "matched_amount":
			if v == nil {
				d.MatchedAmount = nil
			} else {
				amount := v.(float64)
				d.MatchedAmount = &amount
			}
		}
	}
	return nil
}

func (r *fakeDonationRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.donations[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.donations, id)
	return nil
}

func stringOrEmpty(v any) string {
	if v == nil {
		return ""
	}
	return v.(string)
}
