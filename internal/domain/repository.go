package domain

import "context"

// DonorRepository defines access methods for donor rows.
type DonorRepository interface {
	List(ctx context.Context) ([]Donor, error)
	ListByTotal(ctx context.Context) ([]Donor, error)
	ListByIDs(ctx context.Context, ids []string) ([]Donor, error)
	GetByID(ctx context.Context, id string) (*Donor, error)
	GetByName(ctx context.Context, name string) (*Donor, error)
	Create(ctx context.Context, donor *Donor) (*Donor, error)
	Update(ctx context.Context, id string, patch map[string]any) error
	Delete(ctx context.Context, id string) error
}

// DonationRepository defines access methods for donation rows.
type DonationRepository interface {
	List(ctx context.Context) ([]Donation, error)
	ListRecentByDate(ctx context.Context, limit int) ([]Donation, error)
	ListRecentByCreation(ctx context.Context, limit int) ([]Donation, error)
	ListByDonor(ctx context.Context, donorID string) ([]Donation, error)
	ListUnmatched(ctx context.Context) ([]Donation, error)
	GetByID(ctx context.Context, id string) (*Donation, error)
	Create(ctx context.Context, donation *Donation) (*Donation, error)
	Update(ctx context.Context, id string, patch map[string]any) error
	Delete(ctx context.Context, id string) error
}

// AdminRepository answers role lookups against the admins collection.
type AdminRepository interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}
