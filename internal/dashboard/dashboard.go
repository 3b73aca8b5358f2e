package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/sirdesai22/campus-events/internal/models"
)

// PriceSource picks where revenue numbers come from. Ticket prices live on
// the event and can be edited after people registered, so "current price"
// and "price actually paid" can disagree.
type PriceSource string

const (
	PriceEventCurrent         PriceSource = "eventCurrent"         // join to the event's current ticket price
	PriceRegistrationSnapshot PriceSource = "registrationSnapshot" // sum the price captured at registration time
)

// Store is the read-only snapshot a report is computed from.
type Store interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
	ListRegistrations(ctx context.Context) ([]models.Registration, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// Builder assembles the admin dashboard report. It keeps no state between
// requests; every BuildReport is a fresh read-and-compute pass.
type Builder struct {
	Store           Store
	PriceSource     PriceSource
	DefaultCapacity int              // events carry no capacity column, this stands in
	Now             func() time.Time // nil means time.Now; tests pin it
}

type Report struct {
	TotalEvents        int             `json:"totalEvents"`
	ActiveEvents       int             `json:"activeEvents"`
	TotalRegistrations int             `json:"totalRegistrations"`
	TotalUsers         int             `json:"totalUsers"`
	TotalRevenue       float64         `json:"totalRevenue"`
	Growth             int             `json:"growth"`
	Events             []EnrichedEvent `json:"events"`
	Users              []UserSummary   `json:"users"`
	RecentActivity     []ActivityItem  `json:"recentActivity"`
	Trends             []TrendBucket   `json:"trends"`
}

const fallbackCapacity = 100

func (b *Builder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

func (b *Builder) capacity() int {
	if b.DefaultCapacity > 0 {
		return b.DefaultCapacity
	}
	return fallbackCapacity
}

// BuildReport reads the three collections once and runs the four
// computations over that snapshot. If any read fails the whole report
// fails; partial reports are never returned.
func (b *Builder) BuildReport(ctx context.Context) (*Report, error) {
	events, err := b.Store.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	regs, err := b.Store.ListRegistrations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	users, err := b.Store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	now := b.now()
	r := &Report{}
	b.addKPIs(r, events, regs, users, now)
	r.Events = enrichEvents(events, regs, now, b.capacity())
	r.Users = summarizeUsers(users, regs)
	r.RecentActivity = composeActivity(regs, users, events)
	r.Trends = bucketTrends(regs, now)
	return r, nil
}
