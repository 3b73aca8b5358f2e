package db

import (
	"encoding/json"
	"log"
	"time"

	"github.com/sirdesai22/campus-events/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func Seed(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		log.Println("🌱 Data already exists, skipping seed.")
		return
	}

	// Wrap in a transaction for atomicity
	db.Transaction(func(tx *gorm.DB) error {
		// 1️⃣ Create an admin and a student
		admin := models.User{
			Name:     "prathamesh",
			Email:    "admin@example.com",
			Password: "$2a$10$seeded-hash-placeholder",
			Role:     models.RoleAdmin,
			College:  "PESU",
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}
		student := models.User{
			Name:     "ananya",
			Email:    "student@example.com",
			Password: "$2a$10$seeded-hash-placeholder",
			Role:     models.RoleStudent,
			College:  "PESU",
		}
		if err := tx.Create(&student).Error; err != nil {
			return err
		}

		// 2️⃣ Create an event
		entry := 150.0
		ev := models.Event{
			Title:       "DevFest",
			Description: "Annual developer festival",
			Location:    "Bengaluru",
			Date:        time.Now().Add(7 * 24 * time.Hour),
			TicketPrice: &entry,
			CreatedBy:   admin.ID,
		}
		if err := tx.Create(&ev).Error; err != nil {
			return err
		}

		// 3️⃣ Register the student (now we have real IDs)
		academic, _ := json.Marshal(map[string]string{"branch": "CSE", "semester": "5"})
		reg := models.Registration{
			EventID:   ev.ID,
			UserID:    student.ID,
			AdminID:   admin.ID,
			Name:      student.Name,
			Contact:   "9999999999",
			Academic:  datatypes.JSON(academic),
			Status:    models.StatusRegistered,
			PricePaid: entry,
		}
		if err := tx.Create(&reg).Error; err != nil {
			return err
		}

		log.Println("🌱 Sample data inserted successfully.")
		return nil
	})
}
