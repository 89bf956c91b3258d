package services

import (
	"strings"
	"testing"
	"time"

	"github.com/arshia84/bazaarche/models"
	"github.com/google/uuid"
)

func daysAgo(n int) time.Time {
	return time.Now().AddDate(0, 0, -n)
}

func TestShouldArchive(t *testing.T) {
	cases := []struct {
		name  string
		basis time.Time
		want  bool
	}{
		{"fresh ad", daysAgo(1), false},
		{"ten days old", daysAgo(10), false},
		{"just inside a month", daysAgo(20), false},
		{"thirty-five days old", daysAgo(35), true},
		{"exactly one month old", time.Now().AddDate(0, -1, 0), true},
		{"year old", daysAgo(365), true},
		{"just renewed", time.Now(), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ShouldArchive(tc.basis); got != tc.want {
				t.Errorf("ShouldArchive(%v) = %v, want %v", tc.basis, got, tc.want)
			}
		})
	}
}

func TestNeedsWarning(t *testing.T) {
	if NeedsWarning(daysAgo(24)) {
		t.Error("ad 24 days old should not need a warning yet")
	}
	if !NeedsWarning(daysAgo(26)) {
		t.Error("ad 26 days old should need a warning")
	}
}

// The warning threshold must never lag the archive threshold: anything
// archivable is already inside the warning window.
func TestWarningPrecedesArchive(t *testing.T) {
	for days := 0; days < 400; days += 3 {
		basis := daysAgo(days)
		if ShouldArchive(basis) && !NeedsWarning(basis) {
			t.Fatalf("ad %d days old is archivable but not in warning window", days)
		}
	}
}

func TestDaysUntilArchive(t *testing.T) {
	for days := 0; days < 400; days += 5 {
		basis := daysAgo(days)
		got := DaysUntilArchive(basis)
		if got < 0 {
			t.Fatalf("DaysUntilArchive(%d days ago) = %d, want >= 0", days, got)
		}
		if ShouldArchive(basis) && got != 0 {
			t.Fatalf("DaysUntilArchive(%d days ago) = %d, want 0 for archivable ad", days, got)
		}
	}

	// A brand new ad has roughly a month left, never zero.
	if got := DaysUntilArchive(time.Now()); got < 28 || got > 31 {
		t.Errorf("DaysUntilArchive(now) = %d, want 28..31", got)
	}
}

func TestDaysUntilArchiveCountsDown(t *testing.T) {
	prev := DaysUntilArchive(time.Now())
	for days := 1; days < 40; days++ {
		cur := DaysUntilArchive(daysAgo(days))
		if cur > prev {
			t.Fatalf("DaysUntilArchive increased from %d to %d at age %d days", prev, cur, days)
		}
		prev = cur
	}
}

// Month-length boundaries normalize unevenly in calendar arithmetic, so the
// countdown has to be derived from the same cutoff as the archive predicate.
// Late March is the worst case: a month before Mar 30 lands on Mar 2, past
// ads from Mar 1.
func TestDaysUntilArchiveMatchesShouldArchive(t *testing.T) {
	nows := []time.Time{
		time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC),
		time.Date(2026, time.February, 28, 23, 59, 0, 0, time.UTC),
		time.Date(2026, time.March, 1, 0, 1, 0, 0, time.UTC),
		time.Date(2026, time.March, 30, 12, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 31, 12, 0, 0, 0, time.UTC),
		time.Date(2026, time.May, 31, 12, 0, 0, 0, time.UTC),
		time.Date(2026, time.July, 31, 6, 30, 0, 0, time.UTC),
		time.Date(2024, time.March, 29, 12, 0, 0, 0, time.UTC),
	}
	for _, now := range nows {
		for hours := -24 * 70; hours <= 0; hours += 7 {
			basis := now.Add(time.Duration(hours) * time.Hour)
			days := daysUntilArchiveAt(basis, now)
			if days < 0 {
				t.Fatalf("daysUntilArchiveAt(%v, %v) = %d, want >= 0", basis, now, days)
			}
			if archivable := shouldArchiveAt(basis, now); archivable != (days == 0) {
				t.Fatalf("now=%v basis=%v: shouldArchive=%v but daysUntilArchive=%d",
					now, basis, archivable, days)
			}
		}
	}

	// The concrete boundary: on Mar 30 an ad from Mar 1 is past the cutoff
	// (Mar 2) and must show zero days left.
	now := time.Date(2026, time.March, 30, 12, 0, 0, 0, time.UTC)
	basis := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	if !shouldArchiveAt(basis, now) {
		t.Fatal("ad from Mar 1 should be archivable on Mar 30")
	}
	if got := daysUntilArchiveAt(basis, now); got != 0 {
		t.Fatalf("daysUntilArchiveAt(Mar 1, Mar 30) = %d, want 0", got)
	}
}

func TestArchiveRenewPreconditions(t *testing.T) {
	archiveCases := []struct {
		status  string
		wantErr error
	}{
		{models.AdStatusPending, nil},
		{models.AdStatusActive, nil},
		{models.AdStatusExpired, nil},
		{models.AdStatusRejected, nil},
		{models.AdStatusArchived, ErrAdAlreadyArchived},
	}
	for _, tc := range archiveCases {
		if err := CanArchive(tc.status); err != tc.wantErr {
			t.Errorf("CanArchive(%q) = %v, want %v", tc.status, err, tc.wantErr)
		}
	}

	renewCases := []struct {
		status  string
		wantErr error
	}{
		{models.AdStatusArchived, nil},
		{models.AdStatusExpired, nil},
		{models.AdStatusActive, ErrAdNotRenewable},
		{models.AdStatusPending, ErrAdNotRenewable},
		{models.AdStatusRejected, ErrAdNotRenewable},
	}
	for _, tc := range renewCases {
		if err := CanRenew(tc.status); err != tc.wantErr {
			t.Errorf("CanRenew(%q) = %v, want %v", tc.status, err, tc.wantErr)
		}
	}
}

// A stale ad goes through the whole cycle: archivable, archived, renewed,
// and the renewal resets the age basis so it is not archivable again.
func TestArchiveRenewRoundTrip(t *testing.T) {
	basis := daysAgo(35)
	status := models.AdStatusActive

	if !ShouldArchive(basis) {
		t.Fatal("35-day-old active ad should be archivable")
	}
	if err := CanArchive(status); err != nil {
		t.Fatalf("CanArchive(active) = %v, want nil", err)
	}
	status = models.AdStatusArchived

	if err := CanArchive(status); err != ErrAdAlreadyArchived {
		t.Fatalf("CanArchive(archived) = %v, want ErrAdAlreadyArchived", err)
	}
	if err := CanRenew(status); err != nil {
		t.Fatalf("CanRenew(archived) = %v, want nil", err)
	}
	status = models.AdStatusActive
	basis = time.Now()

	if ShouldArchive(basis) {
		t.Fatal("a just-renewed ad must not be archivable")
	}
	if err := CanRenew(status); err != ErrAdNotRenewable {
		t.Fatalf("CanRenew(active) = %v, want ErrAdNotRenewable", err)
	}
}

func TestArchiveNotice(t *testing.T) {
	ad := models.Ad{
		ID:    uuid.New(),
		Title: "Vintage bicycle",
	}

	title, message, data := archiveNotice(ad)
	if title == "" {
		t.Error("archive notice must have a title")
	}
	if !strings.Contains(message, ad.Title) {
		t.Errorf("archive notice message %q should mention the ad title", message)
	}
	if data["ad_id"] != ad.ID.String() {
		t.Errorf("archive notice data ad_id = %v, want %s", data["ad_id"], ad.ID)
	}
	if data["status"] != models.AdStatusArchived {
		t.Errorf("archive notice data status = %v, want archived", data["status"])
	}
}
