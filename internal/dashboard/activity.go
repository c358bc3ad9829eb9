package dashboard

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"donorboard/internal/domain"
)

// Activity kinds, in feed precedence order.
const (
	ActivityDonation = "donation"
	ActivityMatch    = "match"
	ActivityGoal     = "goal"
)

// feedLimit bounds how many entries are displayed; the builder receives up
// to twice as many donations and trims after expansion.
const feedLimit = 5

// goalMilestoneThreshold is the goal percentage at which the synthetic
// milestone entry appears.
const goalMilestoneThreshold = 90.0

// Activity is one human-readable feed entry. It is derived at read time and
// never stored; Timestamp is already rendered relative to now.
type Activity struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
}

// Feed carries the bounded recent feed plus the notification subset newer
// than the client's last check.
type Feed struct {
	Recent        []Activity `json:"recent"`
	Notifications []Activity `json:"notifications"`
	Unread        bool       `json:"unread"`
}

var moneyPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatAmount renders a dollar amount with US grouping, dropping the cents
// when the value is whole.
func FormatAmount(amount float64) string {
	if amount == math.Trunc(amount) {
		return moneyPrinter.Sprintf("%.0f", amount)
	}
	return moneyPrinter.Sprintf("%.2f", amount)
}

// BuildActivity expands recent donations (newest first) into feed entries: a
// "new donation" entry per donation plus a "matched" entry when applicable,
// and a synthetic goal milestone once total donations reach 90% of the goal.
// The milestone is always treated as new regardless of lastCheck. A zero
// lastCheck marks every entry as new.
func BuildActivity(donations []domain.Donation, donors map[string]domain.Donor, totalDonations float64, lastCheck, now time.Time) Feed {
	var all, fresh []Activity

	appendEntry := func(entry Activity, isNew bool) {
		all = append(all, entry)
		if isNew {
			fresh = append(fresh, entry)
		}
	}

	for _, d := range donations {
		name := "Unknown Donor"
		if donor, ok := donors[d.DonorID]; ok {
			name = donor.Name
		}
		timestamp := TimeAgo(d.CreatedAt, now)
		isNew := d.CreatedAt.After(lastCheck)

		appendEntry(Activity{
			ID:        "donation-" + d.ID,
			Type:      ActivityDonation,
			Message:   fmt.Sprintf("New donation from %s - $%s", name, FormatAmount(d.Amount)),
			Timestamp: timestamp,
			Icon:      "✅",
			Color:     "green",
		}, isNew)

		if d.Matched {
			appendEntry(Activity{
				ID:        "match-" + d.ID,
				Type:      ActivityMatch,
				Message:   fmt.Sprintf("Donation matched for %s - $%s", name, FormatAmount(d.EffectiveMatch())),
				Timestamp: timestamp,
				Icon:      "🤝",
				Color:     "yellow",
			}, isNew)
		}
	}

	if progress := totalDonations / GoalAmount * 100; progress >= goalMilestoneThreshold {
		appendEntry(Activity{
			ID:        "goal-milestone",
			Type:      ActivityGoal,
			Message:   fmt.Sprintf("Fundraising goal reached %.1f%% - Almost there!", progress),
			Timestamp: "Recently",
			Icon:      "🎯",
			Color:     "purple",
		}, true)
	}

	return Feed{
		Recent:        trim(all, feedLimit),
		Notifications: trim(fresh, feedLimit),
		Unread:        len(fresh) > 0,
	}
}

// TimeAgo renders a coarse human-relative timestamp.
func TimeAgo(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return plural(int(diff.Minutes()), "minute")
	case diff < 24*time.Hour:
		return plural(int(diff.Hours()), "hour")
	default:
		return plural(int(diff.Hours()/24), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

func trim(items []Activity, limit int) []Activity {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
