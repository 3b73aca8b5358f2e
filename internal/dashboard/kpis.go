package dashboard

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sirdesai22/campus-events/internal/models"
)

func (b *Builder) addKPIs(r *Report, events []models.Event, regs []models.Registration, users []models.User, now time.Time) {
	r.TotalEvents = len(events)
	r.TotalRegistrations = len(regs)
	r.TotalUsers = len(users)
	for _, e := range events {
		if !e.Date.Before(now) {
			r.ActiveEvents++
		}
	}
	r.TotalRevenue = totalRevenue(events, regs, b.PriceSource)
	r.Growth = growth(regs, now)
}

func totalRevenue(events []models.Event, regs []models.Registration, src PriceSource) float64 {
	if src == PriceRegistrationSnapshot {
		var sum float64
		for _, reg := range regs {
			sum += reg.PricePaid
		}
		return sum
	}
	// eventCurrent: join each registration to its event's current price.
	price := make(map[uuid.UUID]float64, len(events))
	for _, e := range events {
		if e.TicketPrice != nil {
			price[e.ID] = *e.TicketPrice
		}
	}
	var sum float64
	for _, reg := range regs {
		sum += price[reg.EventID] // orphaned registrations contribute 0
	}
	return sum
}

// growth compares registration volume in [now-30d, now] against
// [now-60d, now-30d). A zero previous window yields 100 if anything
// registered recently, otherwise 0, so there is no division by zero.
func growth(regs []models.Registration, now time.Time) int {
	recentStart := now.AddDate(0, 0, -30)
	previousStart := now.AddDate(0, 0, -60)

	var recent, previous int
	for _, reg := range regs {
		t := reg.CreatedAt
		switch {
		case !t.Before(recentStart) && !t.After(now):
			recent++
		case !t.Before(previousStart) && t.Before(recentStart):
			previous++
		}
	}
	if previous == 0 {
		if recent > 0 {
			return 100
		}
		return 0
	}
	return int(math.Round(float64(recent-previous) / float64(previous) * 100))
}
