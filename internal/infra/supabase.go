package infra

import (
	"fmt"

	"github.com/supabase-community/postgrest-go"
)

// NewPostgrestClient builds a PostgREST client for the hosted Supabase
// project. The service key is sent both as apikey and bearer token so the
// gateway operates with full table access; row-level policies still apply to
// the public anon role used by browser clients.
func NewPostgrestClient(cfg *Config) (*postgrest.Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	headers := map[string]string{
		"apikey":        cfg.SupabaseServiceKey,
		"Authorization": "Bearer " + cfg.SupabaseServiceKey,
	}

	client := postgrest.NewClient(cfg.SupabaseURL+"/rest/v1", "public", headers)
	if client.ClientError != nil {
		return nil, fmt.Errorf("init postgrest client: %w", client.ClientError)
	}

	return client, nil
}
