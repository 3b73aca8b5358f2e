package dashboard

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirdesai22/campus-events/internal/models"
)

// Derived event statuses. Never persisted; always recomputed from the
// event date so they cannot go stale.
const (
	StatusUpcoming  = "upcoming"
	StatusCompleted = "completed"
)

// EventStatus derives the lifecycle status of an event at time now.
func EventStatus(date, now time.Time) string {
	if date.Before(now) {
		return StatusCompleted
	}
	return StatusUpcoming
}

type EnrichedEvent struct {
	models.Event
	Registered int     `json:"registered"`
	Revenue    float64 `json:"revenue"`
	Status     string  `json:"status"`
	Capacity   int     `json:"capacity"`
}

// enrichEvents left-joins registration counts onto every event. Events
// nobody registered for still appear, with zero count and revenue.
// Result is ordered by event date, most recent/future first.
func enrichEvents(events []models.Event, regs []models.Registration, now time.Time, capacity int) []EnrichedEvent {
	counts := make(map[uuid.UUID]int, len(events))
	for _, reg := range regs {
		counts[reg.EventID]++
	}

	out := make([]EnrichedEvent, 0, len(events))
	for _, e := range events {
		var price float64
		if e.TicketPrice != nil {
			price = *e.TicketPrice
		}
		n := counts[e.ID]
		out = append(out, EnrichedEvent{
			Event:      e,
			Registered: n,
			Revenue:    float64(n) * price,
			Status:     EventStatus(e.Date, now),
			Capacity:   capacity,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

type UserSummary struct {
	models.User
	EventCount int `json:"eventCount"`
}

// summarizeUsers attaches each user's registration count. Password never
// leaves the model (json:"-").
func summarizeUsers(users []models.User, regs []models.Registration) []UserSummary {
	counts := make(map[uuid.UUID]int, len(users))
	for _, reg := range regs {
		counts[reg.UserID]++
	}
	out := make([]UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, UserSummary{User: u, EventCount: counts[u.ID]})
	}
	return out
}
