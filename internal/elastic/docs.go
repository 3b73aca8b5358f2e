// internal/elastic/docs.go
package elastic

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sirdesai22/campus-events/internal/models"
)

type EventDoc struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date"`
	TicketPrice float64   `json:"ticket_price"`
	CreatedBy   uuid.UUID `json:"created_by"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func BuildEventDoc(e models.Event) ([]byte, error) {
	var price float64
	if e.TicketPrice != nil {
		price = *e.TicketPrice
	}
	return json.Marshal(EventDoc{
		Title: e.Title, Description: e.Description, Location: e.Location,
		Date: e.Date, TicketPrice: price, CreatedBy: e.CreatedBy, UpdatedAt: e.UpdatedAt,
	})
}

type UserDoc struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	College   string    `json:"college"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BuildUserDoc indexes profile fields only; the password hash never
// reaches Elasticsearch.
func BuildUserDoc(u models.User) ([]byte, error) {
	return json.Marshal(UserDoc{
		Name: u.Name, Email: u.Email, Role: u.Role, College: u.College, UpdatedAt: u.UpdatedAt,
	})
}
