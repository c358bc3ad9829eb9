// Package service implements the admin mutation workflows: short sequences
// of gateway reads and writes that keep each donor's running total equal to
// the sum of their donations. The sequences are not transactional; a write
// failing mid-workflow leaves the earlier writes in place and is surfaced to
// the caller.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"donorboard/internal/domain"
)

// DonationService owns the donor/donation mutation workflows.
type DonationService struct {
	donors    domain.DonorRepository
	donations domain.DonationRepository
	logger    zerolog.Logger
	now       func() time.Time
}

// NewDonationService creates the workflow service.
func NewDonationService(donors domain.DonorRepository, donations domain.DonationRepository, logger zerolog.Logger) *DonationService {
	return &DonationService{
		donors:    donors,
		donations: donations,
		logger:    logger,
		now:       time.Now,
	}
}

// AddDonationInput is the add-donation form payload. Coordinates arrive
// pre-resolved by the geocode endpoint when the form had a city/county.
type AddDonationInput struct {
	DonorName     string
	Amount        float64
	City          string
	County        string
	Latitude      *string
	Longitude     *string
	Date          string
	Matched       bool
	MatchedAmount *float64
}

// Add records a donation for the named donor, creating the donor on first
// donation. An existing donor's total is incremented and empty city, county,
// and coordinate fields are backfilled from the form. The unique constraint
// on donor name rejects the duplicate row if two adds race on a new name.
func (s *DonationService) Add(ctx context.Context, in AddDonationInput) (*domain.Donation, error) {
	date := in.Date
	if date == "" {
		date = s.now().Format("2006-01-02")
	}

	donor, err := s.donors.GetByName(ctx, in.DonorName)
	switch {
	case err == nil:
		patch := map[string]any{
			"total_donated": donor.TotalDonated + in.Amount,
			"updated_at":    s.now().UTC().Format(time.RFC3339),
		}
		if in.City != "" && donor.City == "" {
			patch["city"] = in.City
		}
		if in.County != "" && donor.County == "" {
			patch["county"] = in.County
		}
		if in.Latitude != nil && in.Longitude != nil && !donor.HasLocation() {
			patch["latitude"] = *in.Latitude
			patch["longitude"] = *in.Longitude
		}
		if err := s.donors.Update(ctx, donor.ID, patch); err != nil {
			return nil, err
		}
	case errors.Is(err, domain.ErrNotFound):
		donor, err = s.donors.Create(ctx, &domain.Donor{
			Name:         in.DonorName,
			TotalDonated: in.Amount,
			City:         in.City,
			County:       in.County,
			Latitude:     in.Latitude,
			Longitude:    in.Longitude,
		})
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	donation := &domain.Donation{
		DonorID:      donor.ID,
		Amount:       in.Amount,
		DonationDate: date,
		Matched:      in.Matched,
	}
	if in.Matched {
		amount := in.Amount
		if in.MatchedAmount != nil && *in.MatchedAmount > 0 {
			amount = *in.MatchedAmount
		}
		donation.MatchedAmount = &amount
	}
	created, err := s.donations.Create(ctx, donation)
	if err != nil {
		// The donor total was already bumped; log the gap, per the
		// documented non-transactional failure window.
		s.logger.Error().Err(err).Str("donor_id", donor.ID).Msg("donation insert failed after donor update")
		return nil, err
	}
	return created, nil
}

// EditDonationInput is the edit-donation form payload.
type EditDonationInput struct {
	DonorName     string
	Amount        float64
	City          string
	County        string
	Date          string
	Matched       bool
	MatchedAmount *float64
}

// Edit rewrites a donation and adjusts the owning donor's total by the
// amount delta. The donor row is written first; a donation write failure
// after that is logged and surfaced without rollback.
func (s *DonationService) Edit(ctx context.Context, id string, in EditDonationInput) error {
	current, err := s.donations.GetByID(ctx, id)
	if err != nil {
		return err
	}

	donor, err := s.donors.GetByID(ctx, current.DonorID)
	if err != nil {
		return err
	}

	delta := in.Amount - current.Amount
	donorPatch := map[string]any{
		"total_donated": donor.TotalDonated + delta,
	}
	if in.DonorName != "" {
		donorPatch["name"] = in.DonorName
	}
	donorPatch["city"] = nullable(in.City)
	donorPatch["county"] = nullable(in.County)
	if err := s.donors.Update(ctx, donor.ID, donorPatch); err != nil {
		return err
	}

	patch := map[string]any{
		"amount":  in.Amount,
		"matched": in.Matched,
	}
	if in.Date != "" {
		patch["donation_date"] = in.Date
	}
	if in.Matched {
		amount := in.Amount
		if in.MatchedAmount != nil && *in.MatchedAmount > 0 {
			amount = *in.MatchedAmount
		}
		patch["matched_amount"] = amount
	} else {
		patch["matched_amount"] = nil
	}
	if err := s.donations.Update(ctx, id, patch); err != nil {
		s.logger.Error().Err(err).Str("donation_id", id).Msg("donation update failed after donor total adjustment")
		return err
	}
	return nil
}

// Delete removes a donation. Deleting a donor's only donation removes the
// donor row as well; otherwise the donor total is decremented by the deleted
// amount.
func (s *DonationService) Delete(ctx context.Context, id string) error {
	donation, err := s.donations.GetByID(ctx, id)
	if err != nil {
		return err
	}

	siblings, err := s.donations.ListByDonor(ctx, donation.DonorID)
	if err != nil {
		return err
	}

	if err := s.donations.Delete(ctx, id); err != nil {
		return err
	}

	if len(siblings) <= 1 {
		if err := s.donors.Delete(ctx, donation.DonorID); err != nil {
			// The donation is already gone; keep the donor and report.
			s.logger.Error().Err(err).Str("donor_id", donation.DonorID).Msg("failed to delete donor after last donation")
		}
		return nil
	}

	donor, err := s.donors.GetByID(ctx, donation.DonorID)
	if err != nil {
		s.logger.Error().Err(err).Str("donor_id", donation.DonorID).Msg("failed to load donor for total decrement")
		return nil
	}
	patch := map[string]any{"total_donated": donor.TotalDonated - donation.Amount}
	if err := s.donors.Update(ctx, donor.ID, patch); err != nil {
		s.logger.Error().Err(err).Str("donor_id", donor.ID).Msg("failed to decrement donor total")
	}
	return nil
}

// Match flags one donation matched with the matched amount equal to the
// donation amount.
func (s *DonationService) Match(ctx context.Context, id string) error {
	donation, err := s.donations.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.donations.Update(ctx, id, map[string]any{
		"matched":        true,
		"matched_amount": donation.Amount,
	})
}

// QuickMatch flags every pending donation matched, one update per row issued
// concurrently. The first failure aborts the wait and is returned; updates
// already applied stay applied. Returns how many donations were pending.
func (s *DonationService) QuickMatch(ctx context.Context) (int, error) {
	pending, err := s.donations.ListUnmatched(ctx)
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, d := range pending {
		g.Go(func() error {
			return s.donations.Update(ctx, d.ID, map[string]any{
				"matched":        true,
				"matched_amount": d.Amount,
			})
		})
	}
	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("quick match: %w", err)
	}
	return len(pending), nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
