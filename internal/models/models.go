package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// User roles. Role is fixed at signup; nothing in this service mutates it.
const (
	RoleStudent      = "student"
	RoleAdmin        = "admin"
	RoleCollegeAdmin = "college admin"
)

// ---------------- USERS ----------------
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // hash, never serialized
	Role      string    `gorm:"default:'student'" json:"role"`
	College   string    `json:"college"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

// ---------------- EVENTS ----------------
// Status (upcoming/completed) is derived from Date at read time, never stored.
type Event struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string    `gorm:"index;not null" json:"title"`
	Description string    `json:"description"`
	Date        time.Time `gorm:"index;not null" json:"date"`
	Location    string    `json:"location"`
	TicketPrice *float64  `json:"ticketPrice"` // nil means free
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null" json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"-"`
}

// Registration statuses.
const (
	StatusRegistered = "registered"
	StatusAttended   = "attended"
	StatusCancelled  = "cancelled"
)

// ---------------- REGISTRATIONS ----------------
type Registration struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EventID   uuid.UUID      `gorm:"type:uuid;index;not null" json:"eventId"`
	UserID    uuid.UUID      `gorm:"type:uuid;index;not null" json:"userId"`
	AdminID   uuid.UUID      `gorm:"type:uuid;index" json:"adminId"` // event owner, denormalized for auth checks
	Name      string         `json:"name"`
	Contact   string         `json:"contact"`
	Academic  datatypes.JSON `json:"academic"` // form fields: branch, semester, usn...
	Status    string         `gorm:"default:'registered'" json:"status"`
	PricePaid float64        `json:"pricePaid"` // event price snapshotted at registration time
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"-"`
}

// ---------------- OUTBOX (search index sync) ----------------
type Outbox struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	EntityType string    `gorm:"index;not null"`
	EntityID   uuid.UUID `gorm:"type:uuid;not null"`
	Op         string    `gorm:"not null"` // UPSERT | DELETE
	Payload    datatypes.JSON
	CreatedAt  time.Time
	Processed  bool `gorm:"default:false"`
}
