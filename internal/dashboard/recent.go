package dashboard

import "donorboard/internal/domain"

// Donation display statuses.
const (
	StatusMatched = "MATCHED"
	StatusPending = "PENDING"
)

// RecentDonor is one row of the recent donors table: a donation joined with
// its owning donor, with placeholders where the donor row is missing.
type RecentDonor struct {
	ID        string  `json:"id"`
	DonorID   string  `json:"donor_id"`
	DonorName string  `json:"donor_name"`
	Amount    float64 `json:"amount"`
	City      string  `json:"city"`
	County    string  `json:"county"`
	Date      string  `json:"date"`
	Status    string  `json:"status"`
}

// JoinRecentDonors maps donations to table rows, preserving order.
func JoinRecentDonors(donations []domain.Donation, donors map[string]domain.Donor) []RecentDonor {
	rows := make([]RecentDonor, 0, len(donations))
	for _, d := range donations {
		row := RecentDonor{
			ID:        d.ID,
			DonorID:   d.DonorID,
			DonorName: "Unknown Donor",
			Amount:    d.Amount,
			City:      "N/A",
			County:    "N/A",
			Date:      d.DonationDate,
			Status:    StatusPending,
		}
		if d.Matched {
			row.Status = StatusMatched
		}
		if donor, ok := donors[d.DonorID]; ok {
			row.DonorName = donor.Name
			if donor.City != "" {
				row.City = donor.City
			}
			if donor.County != "" {
				row.County = donor.County
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// DonorsByID indexes donors for the join.
func DonorsByID(donors []domain.Donor) map[string]domain.Donor {
	m := make(map[string]domain.Donor, len(donors))
	for _, d := range donors {
		m[d.ID] = d
	}
	return m
}
