package dashboard

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirdesai22/campus-events/internal/models"
)

// Icons are fixed markers matched by the dashboard client.
const (
	iconRegistration = "ticket"
	iconUserJoined   = "user-plus"
)

const unknownLabel = "Unknown"

const (
	feedRegistrations = 3
	feedUsers         = 2
)

// ActivityItem is one row of the recent-activity feed. Registration and
// user-join entries share the shape; Time is the common sort key.
type ActivityItem struct {
	ID     string    `json:"id"`
	Action string    `json:"action"`
	User   string    `json:"user"`
	Event  string    `json:"event"`
	Time   time.Time `json:"time"`
	Icon   string    `json:"icon"`
}

// composeActivity merges the newest registrations and newest users into
// one feed, newest first. The two sources are disjoint, so no dedup.
// A registration whose user or event was deleted shows "Unknown" instead
// of failing the report.
func composeActivity(regs []models.Registration, users []models.User, events []models.Event) []ActivityItem {
	userName := make(map[uuid.UUID]string, len(users))
	for _, u := range users {
		userName[u.ID] = u.Name
	}
	eventTitle := make(map[uuid.UUID]string, len(events))
	for _, e := range events {
		eventTitle[e.ID] = e.Title
	}

	items := make([]ActivityItem, 0, feedRegistrations+feedUsers)
	for _, reg := range newestRegistrations(regs, feedRegistrations) {
		items = append(items, registrationActivity(reg, userName, eventTitle))
	}
	for _, u := range newestUsers(users, feedUsers) {
		items = append(items, userJoinActivity(u))
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Time.After(items[j].Time) })
	return items
}

func registrationActivity(reg models.Registration, userName, eventTitle map[uuid.UUID]string) ActivityItem {
	user, ok := userName[reg.UserID]
	if !ok {
		user = unknownLabel
	}
	event, ok := eventTitle[reg.EventID]
	if !ok {
		event = unknownLabel
	}
	return ActivityItem{
		ID:     reg.ID.String(),
		Action: "New registration",
		User:   user,
		Event:  event,
		Time:   reg.CreatedAt,
		Icon:   iconRegistration,
	}
}

func userJoinActivity(u models.User) ActivityItem {
	return ActivityItem{
		ID:     u.ID.String(),
		Action: "New user joined",
		User:   u.Name,
		Event:  "Platform",
		Time:   u.CreatedAt,
		Icon:   iconUserJoined,
	}
}

func newestRegistrations(regs []models.Registration, n int) []models.Registration {
	sorted := make([]models.Registration, len(regs))
	copy(sorted, regs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].CreatedAt.After(sorted[j].CreatedAt) })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func newestUsers(users []models.User, n int) []models.User {
	sorted := make([]models.User, len(users))
	copy(sorted, users)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].CreatedAt.After(sorted[j].CreatedAt) })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
