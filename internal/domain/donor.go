package domain

import "time"

// Donor represents a named contributor and their running donation total.
// Rows live in the hosted `donors` collection; the total is maintained by
// the mutation workflows, not by the store itself.
type Donor struct {
	ID           string    `json:"id,omitempty"`
	Name         string    `json:"name"`
	TotalDonated float64   `json:"total_donated"`
	City         string    `json:"city,omitempty"`
	County       string    `json:"county,omitempty"`
	Latitude     *string   `json:"latitude,omitempty"`
	Longitude    *string   `json:"longitude,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasLocation reports whether the donor carries geocoded coordinates.
func (d Donor) HasLocation() bool {
	return d.Latitude != nil && d.Longitude != nil
}
