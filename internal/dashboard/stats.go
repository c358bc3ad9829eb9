// Package dashboard derives the admin dashboard view-models from raw donor
// and donation rows. Everything here is pure computation over slices the
// gateway already fetched; nothing is persisted.
package dashboard

import (
	"time"

	"donorboard/internal/domain"
)

const (
	// GoalAmount is the fixed fundraising target in dollars.
	GoalAmount = 50000.0

	// CaliforniaCounties is the number of counties in California, the
	// denominator for statewide reach. A domain fact, not derived from data.
	CaliforniaCounties = 58
)

// Stats is the summary block rendered at the top of the admin dashboard.
type Stats struct {
	TotalDonations       float64 `json:"total_donations"`
	TotalDonors          int     `json:"total_donors"`
	MatchedFunds         float64 `json:"matched_funds"`
	CountiesReached      int     `json:"counties_reached"`
	TodaysDonations      float64 `json:"todays_donations"`
	NewDonorsToday       int     `json:"new_donors_today"`
	AverageDonation      float64 `json:"average_donation"`
	GoalProgress         float64 `json:"goal_progress"`
	DonationsGrowth      float64 `json:"donations_growth"`
	NewDonorsGrowth      int     `json:"new_donors_growth"`
	MatchRate            float64 `json:"match_rate"`
	CaliforniaPercentage float64 `json:"california_percentage"`
}

// BuildStats computes the summary statistics for the given row snapshots.
// Ratios over empty sets come back as zero rather than NaN.
func BuildStats(donors []domain.Donor, donations []domain.Donation, now time.Time) Stats {
	today := now.Format("2006-01-02")
	windowStart := now.AddDate(0, 0, -30).Format("2006-01-02")

	var totalDonations, matchedFunds, todaysDonations, recentDonations float64
	matchedCount := 0
	for _, d := range donations {
		totalDonations += d.Amount
		matchedFunds += d.EffectiveMatch()
		if d.Matched {
			matchedCount++
		}
		if d.DonationDate == today {
			todaysDonations += d.Amount
		}
		// ISO date strings order lexicographically.
		if d.DonationDate >= windowStart {
			recentDonations += d.Amount
		}
	}

	counties := map[string]struct{}{}
	newDonorsToday := 0
	recentDonors := 0
	for _, d := range donors {
		if d.County != "" {
			counties[d.County] = struct{}{}
		}
		created := d.CreatedAt.Format("2006-01-02")
		if created == today {
			newDonorsToday++
		}
		if created >= windowStart {
			recentDonors++
		}
	}

	averageDonation := 0.0
	matchRate := 0.0
	if len(donations) > 0 {
		averageDonation = totalDonations / float64(len(donations))
		matchRate = float64(matchedCount) / float64(len(donations)) * 100
	}

	// Growth compares the trailing window against everything before it;
	// an empty remainder reports zero instead of an undefined ratio.
	donationsGrowth := 0.0
	if previous := totalDonations - recentDonations; previous > 0 {
		donationsGrowth = (recentDonations - previous) / previous * 100
	}

	return Stats{
		TotalDonations:       totalDonations,
		TotalDonors:          len(donors),
		MatchedFunds:         matchedFunds,
		CountiesReached:      len(counties),
		TodaysDonations:      todaysDonations,
		NewDonorsToday:       newDonorsToday,
		AverageDonation:      averageDonation,
		GoalProgress:         totalDonations / GoalAmount * 100,
		DonationsGrowth:      donationsGrowth,
		NewDonorsGrowth:      recentDonors,
		MatchRate:            matchRate,
		CaliforniaPercentage: float64(len(counties)) / CaliforniaCounties * 100,
	}
}
