package dashboard

import (
	"time"

	"donorboard/internal/domain"
)

var monthLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// MonthlyBucket holds the donation and matched sums for one calendar month.
type MonthlyBucket struct {
	Month     string  `json:"month"`
	Donations float64 `json:"donations"`
	Matched   float64 `json:"matched"`
}

// BuildMonthly buckets donations into the twelve months of the current
// calendar year. Donations dated in other years are left out; undated or
// malformed rows are skipped.
func BuildMonthly(donations []domain.Donation, now time.Time) []MonthlyBucket {
	buckets := make([]MonthlyBucket, len(monthLabels))
	for i, label := range monthLabels {
		buckets[i] = MonthlyBucket{Month: label}
	}

	year := now.Year()
	for _, d := range donations {
		date, err := time.Parse("2006-01-02", d.DonationDate)
		if err != nil || date.Year() != year {
			continue
		}
		i := int(date.Month()) - 1
		buckets[i].Donations += d.Amount
		buckets[i].Matched += d.EffectiveMatch()
	}

	return buckets
}
