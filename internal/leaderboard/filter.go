// Package leaderboard implements the client-side search, county filter,
// sorting, and pagination for the public donor leaderboard.
package leaderboard

import (
	"sort"
	"strings"

	"donorboard/internal/domain"
)

// Sort keys.
const (
	SortByTotal = "total"
	SortByName  = "name"
)

// DefaultPerPage mirrors the six-item pages of the public view.
const DefaultPerPage = 6

// Query captures the leaderboard controls.
type Query struct {
	Search  string
	County  string
	SortBy  string
	Asc     bool
	Page    int
	PerPage int
}

// Filter applies search and county filtering plus ordering, returning a new
// slice. Search is a case-insensitive substring match on the donor name;
// county is an exact match. Unknown sort keys fall back to total donated,
// highest first.
func Filter(donors []domain.Donor, q Query) []domain.Donor {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]domain.Donor, 0, len(donors))
	for _, d := range donors {
		if search != "" && !strings.Contains(strings.ToLower(d.Name), search) {
			continue
		}
		if q.County != "" && d.County != q.County {
			continue
		}
		out = append(out, d)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		var less bool
		switch q.SortBy {
		case SortByName:
			an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
			if an == bn {
				return false // ties keep the incoming order
			}
			less = an < bn
		default:
			if a.TotalDonated == b.TotalDonated {
				return false
			}
			less = a.TotalDonated < b.TotalDonated
		}
		if q.Asc {
			return less
		}
		return !less
	})

	return out
}

// Counties returns the distinct non-empty county values, sorted.
func Counties(donors []domain.Donor) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, d := range donors {
		if d.County == "" {
			continue
		}
		if _, ok := seen[d.County]; ok {
			continue
		}
		seen[d.County] = struct{}{}
		out = append(out, d.County)
	}
	sort.Strings(out)
	return out
}

// Page is one leaderboard page plus its pagination envelope.
type Page struct {
	Items      []domain.Donor `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PerPage    int            `json:"per_page"`
	TotalPages int            `json:"total_pages"`
}

// Paginate slices the filtered result. Page numbers are 1-based; out-of-range
// pages clamp to the valid range, and a non-positive per-page uses the default.
func Paginate(donors []domain.Donor, page, perPage int) Page {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	totalPages := (len(donors) + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > len(donors) {
		start = len(donors)
	}
	if end > len(donors) {
		end = len(donors)
	}

	return Page{
		Items:      donors[start:end],
		Total:      len(donors),
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}
}
