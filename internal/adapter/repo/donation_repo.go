package repo

import (
	"context"
	"fmt"

	"github.com/supabase-community/postgrest-go"

	"donorboard/internal/domain"
)

// DonationRepositoryPostgrest implements DonationRepository against the
// hosted `donations` collection.
type DonationRepositoryPostgrest struct {
	client *postgrest.Client
}

// NewDonationRepository creates a new donation repo.
func NewDonationRepository(client *postgrest.Client) *DonationRepositoryPostgrest {
	return &DonationRepositoryPostgrest{client: client}
}

// List returns every donation row.
func (r *DonationRepositoryPostgrest) List(ctx context.Context) ([]domain.Donation, error) {
	var donations []domain.Donation
	_, err := r.client.From("donations").Select("*", "", false).ExecuteTo(&donations)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	return donations, nil
}

// ListRecentByDate returns the newest donations by donation date.
func (r *DonationRepositoryPostgrest) ListRecentByDate(ctx context.Context, limit int) ([]domain.Donation, error) {
	var donations []domain.Donation
	_, err := r.client.From("donations").
		Select("*", "", false).
		Order("donation_date", &postgrest.OrderOpts{Ascending: false}).
		Limit(limit, "").
		ExecuteTo(&donations)
	if err != nil {
		return nil, fmt.Errorf("list recent donations: %w", err)
	}
	return donations, nil
}

// ListRecentByCreation returns the newest donations by row creation time,
// the ordering the activity feed is built from.
func (r *DonationRepositoryPostgrest) ListRecentByCreation(ctx context.Context, limit int) ([]domain.Donation, error) {
	var donations []domain.Donation
	_, err := r.client.From("donations").
		Select("*", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Limit(limit, "").
		ExecuteTo(&donations)
	if err != nil {
		return nil, fmt.Errorf("list recent donations: %w", err)
	}
	return donations, nil
}

// ListByDonor returns all donations belonging to one donor.
func (r *DonationRepositoryPostgrest) ListByDonor(ctx context.Context, donorID string) ([]domain.Donation, error) {
	var donations []domain.Donation
	_, err := r.client.From("donations").
		Select("*", "", false).
		Eq("donor_id", donorID).
		ExecuteTo(&donations)
	if err != nil {
		return nil, fmt.Errorf("list donations for donor %s: %w", donorID, err)
	}
	return donations, nil
}

// ListUnmatched returns every donation still pending a match.
func (r *DonationRepositoryPostgrest) ListUnmatched(ctx context.Context) ([]domain.Donation, error) {
	var donations []domain.Donation
	_, err := r.client.From("donations").
		Select("*", "", false).
		Eq("matched", "false").
		ExecuteTo(&donations)
	if err != nil {
		return nil, fmt.Errorf("list unmatched donations: %w", err)
	}
	return donations, nil
}

// GetByID returns a single donation or domain.ErrNotFound.
func (r *DonationRepositoryPostgrest) GetByID(ctx context.Context, id string) (*domain.Donation, error) {
	var donations []domain.Donation
	_, err := r.client.From("donations").
		Select("*", "", false).
		Eq("id", id).
		Limit(1, "").
		ExecuteTo(&donations)
	if err != nil {
		return nil, fmt.Errorf("get donation %s: %w", id, err)
	}
	if len(donations) == 0 {
		return nil, domain.ErrNotFound
	}
	return &donations[0], nil
}

// Create inserts a new donation row and returns the stored representation.
func (r *DonationRepositoryPostgrest) Create(ctx context.Context, donation *domain.Donation) (*domain.Donation, error) {
	payload := map[string]any{
		"donor_id":      donation.DonorID,
		"amount":        donation.Amount,
		"donation_date": donation.DonationDate,
		"matched":       donation.Matched,
	}
	if donation.Matched {
		payload["matched_amount"] = donation.EffectiveMatch()
	}

	var created []domain.Donation
	_, err := r.client.From("donations").
		Insert(payload, false, "", "representation", "").
		ExecuteTo(&created)
	if err != nil {
		return nil, fmt.Errorf("create donation: %w", err)
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("create donation: empty representation")
	}
	return &created[0], nil
}

// Update patches the given columns on one donation row.
func (r *DonationRepositoryPostgrest) Update(ctx context.Context, id string, patch map[string]any) error {
	_, _, err := r.client.From("donations").
		Update(patch, "", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("update donation %s: %w", id, err)
	}
	return nil
}

// Delete removes one donation row.
func (r *DonationRepositoryPostgrest) Delete(ctx context.Context, id string) error {
	_, _, err := r.client.From("donations").
		Delete("", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("delete donation %s: %w", id, err)
	}
	return nil
}
