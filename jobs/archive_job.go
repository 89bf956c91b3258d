package jobs

import (
	"database/sql"
	"log"
	"time"

	"github.com/arshia84/bazaarche/database"
	"github.com/arshia84/bazaarche/models"
	"github.com/arshia84/bazaarche/notifications"
	"github.com/arshia84/bazaarche/services"
)

// ArchiveStaleAds archives every active ad older than one calendar month and
// notifies each owner. Runs daily.
func ArchiveStaleAds() {
	log.Println("Running job: ArchiveStaleAds...")

	ads, err := services.SweepStaleAds()
	if err != nil {
		log.Printf("Error archiving stale ads: %v", err)
		return
	}

	if len(ads) == 0 {
		log.Println("No ads need archiving.")
		return
	}

	log.Printf("Archived %d ad(s).", len(ads))
}

// warnedSinceRenewal reports whether a warning issued at warnedAt still
// covers the ad. A renewal refreshes the ad's updated timestamp past the
// warning, so the owner is warned again on the next pass through the window.
func warnedSinceRenewal(ad models.Ad, warnedAt time.Time) bool {
	return !warnedAt.Before(ad.UpdatedAt)
}

// SendArchiveWarnings notifies owners of active ads inside the warning
// window. An owner is warned once per ad per cycle, whether or not they read
// the notification; renewing the ad re-arms the warning.
func SendArchiveWarnings() {
	log.Println("Running job: SendArchiveWarnings...")

	ads, err := services.ListAdsNeedingWarning()
	if err != nil {
		log.Printf("Error fetching ads needing warning: %v", err)
		return
	}

	if len(ads) == 0 {
		log.Println("No ads need an archive warning.")
		return
	}

	warned := 0
	for _, ad := range ads {
		var lastWarned sql.NullTime
		err := database.DB.
			Model(&models.Notification{}).
			Select("MAX(created_at)").
			Where("user_id = ? AND type = ? AND data->>'ad_id' = ?",
				ad.UserID, models.NotificationTypeWarning, ad.ID.String()).
			Scan(&lastWarned).Error
		if err != nil {
			log.Printf("Error checking existing warning for ad %s: %v", ad.ID, err)
			continue
		}
		if lastWarned.Valid && warnedSinceRenewal(ad, lastWarned.Time) {
			continue
		}

		daysLeft := services.DaysUntilArchive(ad.UpdatedAt)
		if err := services.CreateNotification(
			ad.UserID,
			models.NotificationTypeWarning,
			"Ad will be archived soon",
			"Your listing \""+ad.Title+"\" will be archived soon. Renew it to keep it visible.",
			map[string]interface{}{"ad_id": ad.ID.String(), "ad_title": ad.Title, "days_until_archive": daysLeft},
		); err != nil {
			log.Printf("Error creating warning notification for ad %s: %v", ad.ID, err)
			continue
		}

		var owner models.User
		if err := database.DB.First(&owner, "id = ?", ad.UserID).Error; err == nil {
			go notifications.SendArchiveWarningEmail(owner.FullName, owner.Email, ad.Title, daysLeft)
		}

		warned++
	}

	log.Printf("Sent %d archive warning(s).", warned)
}
