package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"donorboard/internal/domain"
)

func newTestTransfer(donors *fakeDonorRepo, donations *fakeDonationRepo) *TransferService {
	s := NewTransferService(donors, donations, zerolog.Nop())
	s.now = func() time.Time {
		return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	}
	return s
}

func TestExportCSV(t *testing.T) {
	donors := newFakeDonorRepo()
	donations := newFakeDonationRepo()
	s := newTestTransfer(donors, donations)

	donorID := seedDonor(t, donors, domain.Donor{Name: "Alice Johnson", TotalDonated: 150.5, City: "Fresno", County: "Fresno County"})
	seedDonation(t, donations, domain.Donation{DonorID: donorID, Amount: 100, DonationDate: "2026-07-01"})
	seedDonation(t, donations, domain.Donation{DonorID: donorID, Amount: 50.5, DonationDate: "2026-08-15"})

	var buf strings.Builder
	if err := s.ExportCSV(context.Background(), &buf); err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("export lines = %d, want header + 1 row:\n%s", len(lines), buf.String())
	}
	if lines[0] != "Donor Name,Total Donated,City,County,Number of Donations,Last Donation Date" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "Alice Johnson,150.5,Fresno,Fresno County,2,2026-08-15" {
		t.Errorf("row = %q", lines[1])
	}
}

func TestExportCSV_DonorWithoutDonations(t *testing.T) {
	donors := newFakeDonorRepo()
	donations := newFakeDonationRepo()
	s := newTestTransfer(donors, donations)

	seedDonor(t, donors, domain.Donor{Name: "Bob Smith", TotalDonated: 0})

	var buf strings.Builder
	if err := s.ExportCSV(context.Background(), &buf); err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Bob Smith,0,,,0,N/A") {
		t.Errorf("export missing N/A row:\n%s", buf.String())
	}
}

func TestImportCSV(t *testing.T) {
	donors := newFakeDonorRepo()
	donations := newFakeDonationRepo()
	s := newTestTransfer(donors, donations)

	existingID := seedDonor(t, donors, domain.Donor{Name: "Alice Johnson", TotalDonated: 100})

	input := strings.Join([]string{
		"Donor Name,Total Donated,City,County",
		"Alice Johnson,50,Fresno,Fresno County",
		"Bob Smith,200,Clovis,Fresno County",
		",not-a-number",
	}, "\n")

	res, err := s.ImportCSV(context.Background(), strings.NewReader(input))
	if err != nil {
		t.Fatalf("ImportCSV() error = %v", err)
	}
	if res.Imported != 2 || res.Errors != 1 {
		t.Fatalf("result = %+v, want 2 imported / 1 error", res)
	}

	alice, _ := donors.GetByID(context.Background(), existingID)
	if alice.TotalDonated != 150 {
		t.Errorf("Alice total = %v, want 150", alice.TotalDonated)
	}
	if alice.City != "Fresno" || alice.County != "Fresno County" {
		t.Errorf("Alice location = %q/%q, want backfilled", alice.City, alice.County)
	}

	bob, err := donors.GetByName(context.Background(), "Bob Smith")
	if err != nil {
		t.Fatalf("Bob not created: %v", err)
	}
	if bob.TotalDonated != 200 || bob.City != "Clovis" {
		t.Errorf("Bob = %+v", bob)
	}
}

func TestImportCSV_HeaderValidation(t *testing.T) {
	tests := []struct {
		name   string
		header string
		ok     bool
	}{
		{"exact", "Donor Name,Total Donated,City,County", true},
		{"case and spacing ignored", "donor name , TOTAL DONATED,city,COUNTY", true},
		{"extra columns allowed", "Donor Name,Total Donated,City,County,Notes", true},
		{"missing amount column", "Donor Name,City,County", false},
		{"unrelated file", "id,value", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestTransfer(newFakeDonorRepo(), newFakeDonationRepo())
			_, err := s.ImportCSV(context.Background(), strings.NewReader(tc.header+"\n"))
			if tc.ok && err != nil {
				t.Fatalf("ImportCSV() error = %v, want accepted header", err)
			}
			if !tc.ok && err == nil {
				t.Fatal("ImportCSV() expected header rejection")
			}
		})
	}
}

func TestReport(t *testing.T) {
	donors := newFakeDonorRepo()
	donations := newFakeDonationRepo()
	s := newTestTransfer(donors, donations)

	aliceID := seedDonor(t, donors, domain.Donor{
		Name:         "Alice Johnson",
		TotalDonated: 1500,
		County:       "Fresno County",
		CreatedAt:    time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
	})
	bobID := seedDonor(t, donors, domain.Donor{
		Name:         "Bob Smith",
		TotalDonated: 500,
		County:       "Los Angeles County",
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	matched := 1000.0
	seedDonation(t, donations, domain.Donation{DonorID: aliceID, Amount: 1500, DonationDate: "2026-08-25", Matched: true, MatchedAmount: &matched})
	seedDonation(t, donations, domain.Donation{DonorID: bobID, Amount: 500, DonationDate: "2026-06-01"})

	var buf strings.Builder
	if err := s.Report(context.Background(), &buf); err != nil {
		t.Fatalf("Report() error = %v", err)
	}
	got := buf.String()

	for _, want := range []string{
		"DONATION CAMPAIGN REPORT",
		"Generated on: 8/31/2026",
		"- Total Donors: 2",
		"- Total Donations: $2,000",
		"- Matched Funds: $1,000",
		"- Match Rate: 50.0%",
		"- Average Donation: $1000.00",
		"- Counties Reached: 2",
		"1. Alice Johnson - $1,500",
		"2. Bob Smith - $500",
		"RECENT ACTIVITY (Last 30 days):",
		"- New Donors: 1",
		"- Donations in Last 30 Days: $1,500",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
}
