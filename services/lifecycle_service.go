package services

import (
	"errors"
	"log"
	"time"

	"github.com/arshia84/bazaarche/database"
	"github.com/arshia84/bazaarche/models"
	"github.com/google/uuid"
)

// An active ad is archived once its age basis is a full calendar month old.
// The warning window opens at 25 days, so owners get roughly five days of
// notice (more in 31-day months).
const archiveWarningDays = 25

var (
	ErrAdAlreadyArchived = errors.New("ad is already archived")
	ErrAdNotRenewable    = errors.New("only archived or expired ads can be renewed")
)

func archiveCutoff(now time.Time) time.Time {
	return now.AddDate(0, -1, 0)
}

func warningCutoff(now time.Time) time.Time {
	return now.AddDate(0, 0, -archiveWarningDays)
}

func shouldArchiveAt(t, now time.Time) bool {
	return !t.After(archiveCutoff(now))
}

func needsWarningAt(t, now time.Time) bool {
	return !t.After(warningCutoff(now))
}

// daysUntilArchiveAt counts the days until the archive cutoff catches up
// with t. It walks the same cutoff shouldArchiveAt uses, so it is zero
// exactly when the ad is archivable, including at month-length boundaries
// where calendar arithmetic normalizes unevenly.
func daysUntilArchiveAt(t, now time.Time) int {
	days := 0
	for t.After(archiveCutoff(now.AddDate(0, 0, days))) {
		days++
	}
	return days
}

// ShouldArchive reports whether an ad whose age basis is t has reached the
// one-calendar-month archive threshold.
func ShouldArchive(t time.Time) bool {
	return shouldArchiveAt(t, time.Now())
}

// NeedsWarning reports whether an ad whose age basis is t is inside the
// pre-archive warning window.
func NeedsWarning(t time.Time) bool {
	return needsWarningAt(t, time.Now())
}

// DaysUntilArchive returns the whole days left before an ad with age basis t
// is archived, clamped at zero once the threshold has passed.
func DaysUntilArchive(t time.Time) int {
	return daysUntilArchiveAt(t, time.Now())
}

// CanArchive checks the archive precondition: archiving an already archived
// ad is rejected; any other status is allowed so moderators can pull pending
// or rejected ads out of circulation too.
func CanArchive(status string) error {
	if status == models.AdStatusArchived {
		return ErrAdAlreadyArchived
	}
	return nil
}

// CanRenew checks the renew precondition: only archived or expired ads can
// come back.
func CanRenew(status string) error {
	if status != models.AdStatusArchived && status != models.AdStatusExpired {
		return ErrAdNotRenewable
	}
	return nil
}

// ArchiveAd transitions an ad to archived.
func ArchiveAd(adID uuid.UUID) error {
	var ad models.Ad
	if err := database.DB.First(&ad, "id = ?", adID).Error; err != nil {
		return err
	}
	if err := CanArchive(ad.Status); err != nil {
		return err
	}
	return database.DB.Model(&ad).Update("status", models.AdStatusArchived).Error
}

// RenewAd reactivates an archived or expired ad and refreshes its updated
// timestamp, which restarts the archive clock.
func RenewAd(adID uuid.UUID) error {
	var ad models.Ad
	if err := database.DB.First(&ad, "id = ?", adID).Error; err != nil {
		return err
	}
	if err := CanRenew(ad.Status); err != nil {
		return err
	}
	return database.DB.Model(&ad).Updates(map[string]interface{}{
		"status":     models.AdStatusActive,
		"updated_at": time.Now(),
	}).Error
}

// ListAdsNeedingArchive returns active ads past the archive threshold.
// updated_at is the age basis so that renewal (and moderation approval)
// restart the clock.
func ListAdsNeedingArchive() ([]models.Ad, error) {
	var ads []models.Ad
	err := database.DB.
		Where("status = ? AND updated_at < ?", models.AdStatusActive, archiveCutoff(time.Now())).
		Find(&ads).Error
	return ads, err
}

// ListAdsNeedingWarning returns active ads inside the warning window.
func ListAdsNeedingWarning() ([]models.Ad, error) {
	var ads []models.Ad
	err := database.DB.
		Where("status = ? AND updated_at < ?", models.AdStatusActive, warningCutoff(time.Now())).
		Find(&ads).Error
	return ads, err
}

func CountAdsByStatus(status string) (int64, error) {
	var count int64
	err := database.DB.Model(&models.Ad{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// archiveNotice builds the owner notification for an ad archived by the sweep.
func archiveNotice(ad models.Ad) (title, message string, data map[string]interface{}) {
	title = "Ad archived"
	message = "Your listing \"" + ad.Title + "\" was archived because it is over a month old. You can renew it from your account page."
	data = map[string]interface{}{
		"ad_id":    ad.ID.String(),
		"ad_title": ad.Title,
		"status":   models.AdStatusArchived,
	}
	return title, message, data
}

// SweepStaleAds archives every active ad past the archive threshold and
// notifies each owner. The daily cron job and the manual admin trigger both
// run this same sweep.
func SweepStaleAds() ([]models.Ad, error) {
	ads, err := ListAdsNeedingArchive()
	if err != nil {
		return nil, err
	}
	if len(ads) == 0 {
		return ads, nil
	}

	if err := database.DB.
		Model(&models.Ad{}).
		Where("status = ? AND updated_at < ?", models.AdStatusActive, archiveCutoff(time.Now())).
		Update("status", models.AdStatusArchived).Error; err != nil {
		return nil, err
	}

	for _, ad := range ads {
		title, message, data := archiveNotice(ad)
		if err := CreateNotification(ad.UserID, models.NotificationTypeAdStatus, title, message, data); err != nil {
			log.Printf("Error notifying owner of archived ad %s: %v", ad.ID, err)
		}
	}

	return ads, nil
}
