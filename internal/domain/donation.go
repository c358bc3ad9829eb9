package domain

import "time"

// Donation is a single dated contribution tied to one donor. DonationDate is
// the ISO calendar date string the store keeps for `date` columns; CreatedAt
// is the row creation timestamp used for activity feed ordering.
type Donation struct {
	ID            string    `json:"id,omitempty"`
	DonorID       string    `json:"donor_id"`
	Amount        float64   `json:"amount"`
	DonationDate  string    `json:"donation_date"`
	Matched       bool      `json:"matched"`
	MatchedAmount *float64  `json:"matched_amount"`
	CreatedAt     time.Time `json:"created_at"`
}

// EffectiveMatch returns the matched amount, defaulting to the donation
// amount when the donation is flagged matched without an explicit override.
func (d Donation) EffectiveMatch() float64 {
	if !d.Matched {
		return 0
	}
	if d.MatchedAmount != nil {
		return *d.MatchedAmount
	}
	return d.Amount
}
