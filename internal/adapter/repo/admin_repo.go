package repo

import (
	"context"
	"fmt"

	"github.com/supabase-community/postgrest-go"
)

// AdminRepositoryPostgrest answers role lookups against the `admins`
// collection, keyed by the Supabase auth user id.
type AdminRepositoryPostgrest struct {
	client *postgrest.Client
}

// NewAdminRepository creates a new admin repo.
func NewAdminRepository(client *postgrest.Client) *AdminRepositoryPostgrest {
	return &AdminRepositoryPostgrest{client: client}
}

type adminRow struct {
	UserID string `json:"user_id"`
}

// IsAdmin reports whether the user id has an admins row.
func (r *AdminRepositoryPostgrest) IsAdmin(ctx context.Context, userID string) (bool, error) {
	var rows []adminRow
	_, err := r.client.From("admins").
		Select("user_id", "", false).
		Eq("user_id", userID).
		Limit(1, "").
		ExecuteTo(&rows)
	if err != nil {
		return false, fmt.Errorf("admin lookup for %s: %w", userID, err)
	}
	return len(rows) > 0, nil
}
