package services

import (
	"log"

	"github.com/sirdesai22/campus-events/internal/models"
	"gorm.io/gorm"
)

// CreateEvent stores a new event and enqueues it for the discovery index.
func CreateEvent(db *gorm.DB, ev *models.Event) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ev).Error; err != nil {
			return err
		}
		if err := AddOutboxEvent(tx, "event", ev.ID, "UPSERT", ev); err != nil {
			return err
		}
		log.Printf("📤 Outbox event recorded for event %s", ev.Title)
		return nil
	})
}

// CreateUser stores a new user and enqueues it for the search index.
// Password is expected to arrive already hashed; hashing is the auth
// layer's job, not ours.
func CreateUser(db *gorm.DB, u *models.User) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			return err
		}
		if err := AddOutboxEvent(tx, "user", u.ID, "UPSERT", u); err != nil {
			return err
		}
		log.Printf("📤 Outbox event recorded for user %s", u.Name)
		return nil
	})
}
