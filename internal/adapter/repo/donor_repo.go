package repo

import (
	"context"
	"fmt"

	"github.com/supabase-community/postgrest-go"

	"donorboard/internal/domain"
)

// DonorRepositoryPostgrest implements DonorRepository against the hosted
// `donors` collection. Context is accepted to satisfy the repository
// contract; the underlying PostgREST client manages its own timeouts.
type DonorRepositoryPostgrest struct {
	client *postgrest.Client
}

// NewDonorRepository creates a new donor repo.
func NewDonorRepository(client *postgrest.Client) *DonorRepositoryPostgrest {
	return &DonorRepositoryPostgrest{client: client}
}

// List returns every donor row.
func (r *DonorRepositoryPostgrest) List(ctx context.Context) ([]domain.Donor, error) {
	var donors []domain.Donor
	_, err := r.client.From("donors").Select("*", "", false).ExecuteTo(&donors)
	if err != nil {
		return nil, fmt.Errorf("list donors: %w", err)
	}
	return donors, nil
}

// ListByTotal returns every donor ordered by total donated, highest first.
func (r *DonorRepositoryPostgrest) ListByTotal(ctx context.Context) ([]domain.Donor, error) {
	var donors []domain.Donor
	_, err := r.client.From("donors").
		Select("*", "", false).
		Order("total_donated", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&donors)
	if err != nil {
		return nil, fmt.Errorf("list donors by total: %w", err)
	}
	return donors, nil
}

// ListByIDs returns the donors whose ids appear in the given set.
func (r *DonorRepositoryPostgrest) ListByIDs(ctx context.Context, ids []string) ([]domain.Donor, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var donors []domain.Donor
	_, err := r.client.From("donors").
		Select("*", "", false).
		In("id", ids).
		ExecuteTo(&donors)
	if err != nil {
		return nil, fmt.Errorf("list donors by ids: %w", err)
	}
	return donors, nil
}

// GetByID returns a single donor or domain.ErrNotFound.
func (r *DonorRepositoryPostgrest) GetByID(ctx context.Context, id string) (*domain.Donor, error) {
	var donors []domain.Donor
	_, err := r.client.From("donors").
		Select("*", "", false).
		Eq("id", id).
		Limit(1, "").
		ExecuteTo(&donors)
	if err != nil {
		return nil, fmt.Errorf("get donor %s: %w", id, err)
	}
	if len(donors) == 0 {
		return nil, domain.ErrNotFound
	}
	return &donors[0], nil
}

// GetByName returns the donor with the exact given name or domain.ErrNotFound.
// Names carry a unique constraint, so at most one row can match.
func (r *DonorRepositoryPostgrest) GetByName(ctx context.Context, name string) (*domain.Donor, error) {
	var donors []domain.Donor
	_, err := r.client.From("donors").
		Select("*", "", false).
		Eq("name", name).
		Limit(1, "").
		ExecuteTo(&donors)
	if err != nil {
		return nil, fmt.Errorf("get donor by name: %w", err)
	}
	if len(donors) == 0 {
		return nil, domain.ErrNotFound
	}
	return &donors[0], nil
}

// Create inserts a new donor row and returns the stored representation,
// including the generated id. The unique index on name rejects duplicates.
func (r *DonorRepositoryPostgrest) Create(ctx context.Context, donor *domain.Donor) (*domain.Donor, error) {
	payload := map[string]any{
		"name":          donor.Name,
		"total_donated": donor.TotalDonated,
	}
	if donor.City != "" {
		payload["city"] = donor.City
	}
	if donor.County != "" {
		payload["county"] = donor.County
	}
	if donor.Latitude != nil {
		payload["latitude"] = *donor.Latitude
	}
	if donor.Longitude != nil {
		payload["longitude"] = *donor.Longitude
	}

	var created []domain.Donor
	_, err := r.client.From("donors").
		Insert(payload, false, "", "representation", "").
		ExecuteTo(&created)
	if err != nil {
		return nil, fmt.Errorf("create donor: %w", err)
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("create donor: empty representation")
	}
	return &created[0], nil
}

// Update patches the given columns on one donor row.
func (r *DonorRepositoryPostgrest) Update(ctx context.Context, id string, patch map[string]any) error {
	_, _, err := r.client.From("donors").
		Update(patch, "", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("update donor %s: %w", id, err)
	}
	return nil
}

// Delete removes one donor row.
func (r *DonorRepositoryPostgrest) Delete(ctx context.Context, id string) error {
	_, _, err := r.client.From("donors").
		Delete("", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("delete donor %s: %w", id, err)
	}
	return nil
}
