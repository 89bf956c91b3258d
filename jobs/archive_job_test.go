package jobs

import (
	"testing"
	"time"

	"github.com/arshia84/bazaarche/models"
)

func TestWarnedSinceRenewal(t *testing.T) {
	now := time.Now()
	ad := models.Ad{UpdatedAt: now.AddDate(0, 0, -26)}

	cases := []struct {
		name     string
		warnedAt time.Time
		want     bool
	}{
		{"warned after entering the window", now.AddDate(0, 0, -1), true},
		{"warned the moment the basis was set", ad.UpdatedAt, true},
		{"warned before the last renewal", now.AddDate(0, 0, -40), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := warnedSinceRenewal(ad, tc.warnedAt); got != tc.want {
				t.Errorf("warnedSinceRenewal(updated %v, warned %v) = %v, want %v",
					ad.UpdatedAt, tc.warnedAt, got, tc.want)
			}
		})
	}
}

// Reading a warning does not consume it. The dedup keys on when the warning
// was issued relative to the ad's renewal, so a read warning from this cycle
// still suppresses a repeat, and only renewing the ad re-arms it.
func TestWarningSuppressionSurvivesRead(t *testing.T) {
	now := time.Now()
	ad := models.Ad{UpdatedAt: now.AddDate(0, 0, -26)}
	warnedAt := now.AddDate(0, 0, -1)

	if !warnedSinceRenewal(ad, warnedAt) {
		t.Fatal("a warning from this cycle must suppress a repeat")
	}

	// Renewal moves the basis past the warning.
	ad.UpdatedAt = now
	if warnedSinceRenewal(ad, warnedAt) {
		t.Fatal("renewing the ad must re-arm the warning")
	}
}
