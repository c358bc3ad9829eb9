package dashboard

import (
	"testing"

	"donorboard/internal/domain"
)

func TestBuildMonthly_TwelveBucketsForCurrentYear(t *testing.T) {
	now := date("2026-08-31")
	donations := []domain.Donation{
		{DonationDate: "2026-01-15", Amount: 100},
		{DonationDate: "2026-01-20", Amount: 50, Matched: true, MatchedAmount: amount(25)},
		{DonationDate: "2026-08-01", Amount: 300, Matched: true},
		{DonationDate: "2025-12-31", Amount: 999},
		{DonationDate: "", Amount: 10},
		{DonationDate: "not-a-date", Amount: 10},
	}

	buckets := BuildMonthly(donations, now)

	if len(buckets) != 12 {
		t.Fatalf("buckets = %d, want 12", len(buckets))
	}
	if buckets[0].Month != "Jan" || buckets[11].Month != "Dec" {
		t.Fatalf("bucket labels = %s..%s, want Jan..Dec", buckets[0].Month, buckets[11].Month)
	}

	jan := buckets[0]
	if jan.Donations != 150 {
		t.Errorf("Jan donations = %v, want 150", jan.Donations)
	}
	if jan.Matched != 25 {
		t.Errorf("Jan matched = %v, want 25", jan.Matched)
	}

	aug := buckets[7]
	if aug.Donations != 300 {
		t.Errorf("Aug donations = %v, want 300", aug.Donations)
	}
	// Matched without an explicit amount falls back to the donation amount.
	if aug.Matched != 300 {
		t.Errorf("Aug matched = %v, want 300", aug.Matched)
	}

	dec := buckets[11]
	if dec.Donations != 0 || dec.Matched != 0 {
		t.Errorf("Dec bucket = %+v, want zero (prior-year row excluded)", dec)
	}
}

func TestBuildMonthly_EmptyInput(t *testing.T) {
	buckets := BuildMonthly(nil, date("2026-08-31"))

	if len(buckets) != 12 {
		t.Fatalf("buckets = %d, want 12", len(buckets))
	}
	for _, b := range buckets {
		if b.Donations != 0 || b.Matched != 0 {
			t.Fatalf("bucket %s = %+v, want zeros", b.Month, b)
		}
	}
}
