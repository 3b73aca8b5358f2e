package services

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/sirdesai22/campus-events/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrAlreadyRegistered is returned when the user already holds an active
// registration for the event. Uniqueness lives here, at write time; the
// dashboard never assumes it.
var ErrAlreadyRegistered = errors.New("already registered for this event")

// CreateRegistration writes a registration for (userID, eventID),
// snapshotting the event's current ticket price into PricePaid and the
// owning admin for later authorization checks.
func CreateRegistration(db *gorm.DB, eventID, userID uuid.UUID, name, contact string, academic datatypes.JSON) (*models.Registration, error) {
	var reg models.Registration
	err := db.Transaction(func(tx *gorm.DB) error {
		var ev models.Event
		if err := tx.First(&ev, "id = ?", eventID).Error; err != nil {
			return err
		}

		var active int64
		tx.Model(&models.Registration{}).
			Where("event_id = ? AND user_id = ? AND status <> ?", eventID, userID, models.StatusCancelled).
			Count(&active)
		if active > 0 {
			return ErrAlreadyRegistered
		}

		var pricePaid float64
		if ev.TicketPrice != nil {
			pricePaid = *ev.TicketPrice
		}
		reg = models.Registration{
			EventID:   eventID,
			UserID:    userID,
			AdminID:   ev.CreatedBy,
			Name:      name,
			Contact:   contact,
			Academic:  academic,
			Status:    models.StatusRegistered,
			PricePaid: pricePaid,
		}
		if err := tx.Create(&reg).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("📤 Registration recorded for event %s", eventID)
	return &reg, nil
}
