package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"donorboard/internal/dashboard"
	"donorboard/internal/domain"
)

var exportHeader = []string{"Donor Name", "Total Donated", "City", "County", "Number of Donations", "Last Donation Date"}

// importHeader is what an import file must carry, matched case- and
// whitespace-insensitively. Values are read positionally.
var importHeader = []string{"Donor Name", "Total Donated", "City", "County"}

// TransferService handles CSV export/import and the plain-text report.
type TransferService struct {
	donors    domain.DonorRepository
	donations domain.DonationRepository
	logger    zerolog.Logger
	now       func() time.Time
}

// NewTransferService creates the transfer service.
func NewTransferService(donors domain.DonorRepository, donations domain.DonationRepository, logger zerolog.Logger) *TransferService {
	return &TransferService{
		donors:    donors,
		donations: donations,
		logger:    logger,
		now:       time.Now,
	}
}

// ExportCSV writes the fixed-column donor export, joining each donor against
// a snapshot of all donations taken at call time.
func (s *TransferService) ExportCSV(ctx context.Context, w io.Writer) error {
	donors, err := s.donors.List(ctx)
	if err != nil {
		return err
	}
	donations, err := s.donations.List(ctx)
	if err != nil {
		return err
	}

	byDonor := map[string][]domain.Donation{}
	for _, d := range donations {
		byDonor[d.DonorID] = append(byDonor[d.DonorID], d)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("write export header: %w", err)
	}
	for _, donor := range donors {
		rows := byDonor[donor.ID]
		lastDate := "N/A"
		for _, d := range rows {
			if lastDate == "N/A" || d.DonationDate > lastDate {
				lastDate = d.DonationDate
			}
		}
		record := []string{
			donor.Name,
			strconv.FormatFloat(donor.TotalDonated, 'f', -1, 64),
			donor.City,
			donor.County,
			strconv.Itoa(len(rows)),
			lastDate,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write export row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportResult aggregates per-row outcomes of a CSV import.
type ImportResult struct {
	Imported int `json:"imported"`
	Errors   int `json:"errors"`
}

// ImportCSV reads donor rows and applies each one independently: an existing
// donor (matched by exact name) gets the amount added to their total and
// empty location fields backfilled; a new name becomes a new donor row.
// Malformed rows count as errors and the rest of the file still runs.
func (s *TransferService) ImportCSV(ctx context.Context, r io.Reader) (ImportResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return ImportResult{}, fmt.Errorf("read import header: %w", err)
	}
	if !validImportHeader(header) {
		return ImportResult{}, fmt.Errorf("csv must have columns: %s", strings.Join(importHeader, ", "))
	}

	var res ImportResult
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			res.Errors++
			continue
		}
		if err := s.importRow(ctx, record); err != nil {
			s.logger.Warn().Err(err).Msg("import row failed")
			res.Errors++
			continue
		}
		res.Imported++
	}
	return res, nil
}

func (s *TransferService) importRow(ctx context.Context, record []string) error {
	if len(record) < 2 {
		return fmt.Errorf("row needs at least name and amount")
	}
	name := strings.TrimSpace(record[0])
	amount, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
	if name == "" || err != nil {
		return fmt.Errorf("invalid name or amount")
	}
	var city, county string
	if len(record) > 2 {
		city = strings.TrimSpace(record[2])
	}
	if len(record) > 3 {
		county = strings.TrimSpace(record[3])
	}

	donor, err := s.donors.GetByName(ctx, name)
	if err == nil {
		patch := map[string]any{
			"total_donated": donor.TotalDonated + amount,
			"updated_at":    s.now().UTC().Format(time.RFC3339),
		}
		if city != "" && donor.City == "" {
			patch["city"] = city
		}
		if county != "" && donor.County == "" {
			patch["county"] = county
		}
		return s.donors.Update(ctx, donor.ID, patch)
	}

	_, err = s.donors.Create(ctx, &domain.Donor{
		Name:         name,
		TotalDonated: amount,
		City:         city,
		County:       county,
	})
	return err
}

func validImportHeader(header []string) bool {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = normalizeHeader(h)
	}
	for _, want := range importHeader {
		found := false
		for _, h := range normalized {
			if strings.Contains(h, normalizeHeader(want)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func normalizeHeader(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "")
}

// Report writes the fixed-format campaign report: summary statistics, the
// top ten donors by total, and the trailing-30-day activity block.
func (s *TransferService) Report(ctx context.Context, w io.Writer) error {
	donors, err := s.donors.List(ctx)
	if err != nil {
		return err
	}
	donations, err := s.donations.List(ctx)
	if err != nil {
		return err
	}

	now := s.now()
	var totalDonations, totalMatched float64
	matchedCount := 0
	for _, d := range donations {
		totalDonations += d.Amount
		totalMatched += d.EffectiveMatch()
		if d.Matched {
			matchedCount++
		}
	}
	matchRate := 0.0
	averageDonation := 0.0
	if len(donations) > 0 {
		matchRate = float64(matchedCount) / float64(len(donations)) * 100
		averageDonation = totalDonations / float64(len(donations))
	}
	counties := map[string]struct{}{}
	for _, d := range donors {
		if d.County != "" {
			counties[d.County] = struct{}{}
		}
	}

	ranked := make([]domain.Donor, len(donors))
	copy(ranked, donors)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalDonated > ranked[j].TotalDonated
	})
	if len(ranked) > 10 {
		ranked = ranked[:10]
	}

	thirtyDaysAgo := now.AddDate(0, 0, -30)
	cutoff := thirtyDaysAgo.Format("2006-01-02")
	newDonors := 0
	for _, d := range donors {
		if !d.CreatedAt.Before(thirtyDaysAgo) {
			newDonors++
		}
	}
	var recentAmount float64
	for _, d := range donations {
		if d.DonationDate >= cutoff {
			recentAmount += d.Amount
		}
	}

	var b strings.Builder
	b.WriteString("DONATION CAMPAIGN REPORT\n")
	fmt.Fprintf(&b, "Generated on: %s\n\n", now.Format("1/2/2006"))
	b.WriteString("SUMMARY STATISTICS:\n")
	fmt.Fprintf(&b, "- Total Donors: %d\n", len(donors))
	fmt.Fprintf(&b, "- Total Donations: $%s\n", dashboard.FormatAmount(totalDonations))
	fmt.Fprintf(&b, "- Matched Funds: $%s\n", dashboard.FormatAmount(totalMatched))
	fmt.Fprintf(&b, "- Match Rate: %.1f%%\n", matchRate)
	fmt.Fprintf(&b, "- Average Donation: $%.2f\n", averageDonation)
	fmt.Fprintf(&b, "- Counties Reached: %d\n\n", len(counties))
	b.WriteString("TOP DONORS:\n")
	for i, donor := range ranked {
		fmt.Fprintf(&b, "%d. %s - $%s\n", i+1, donor.Name, dashboard.FormatAmount(donor.TotalDonated))
	}
	b.WriteString("\nRECENT ACTIVITY (Last 30 days):\n")
	fmt.Fprintf(&b, "- New Donors: %d\n", newDonors)
	fmt.Fprintf(&b, "- Donations in Last 30 Days: $%s\n", dashboard.FormatAmount(recentAmount))

	_, err = io.WriteString(w, b.String())
	return err
}
