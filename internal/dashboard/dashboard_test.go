package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirdesai22/campus-events/internal/models"
)

// memStore is an in-memory snapshot for tests. Setting one of the err
// fields makes the corresponding read fail.
type memStore struct {
	events []models.Event
	regs   []models.Registration
	users  []models.User

	eventsErr error
	regsErr   error
	usersErr  error
}

func (s *memStore) ListEvents(context.Context) ([]models.Event, error) {
	return s.events, s.eventsErr
}

func (s *memStore) ListRegistrations(context.Context) ([]models.Registration, error) {
	return s.regs, s.regsErr
}

func (s *memStore) ListUsers(context.Context) ([]models.User, error) {
	return s.users, s.usersErr
}

// testNow is pinned so status, growth and trends are deterministic.
var testNow = time.Date(2026, time.September, 15, 12, 0, 0, 0, time.UTC)

func testBuilder(s *memStore) *Builder {
	return &Builder{Store: s, Now: func() time.Time { return testNow }}
}

func price(p float64) *float64 { return &p }

func event(title string, date time.Time, ticketPrice *float64) models.Event {
	return models.Event{ID: uuid.New(), Title: title, Date: date, TicketPrice: ticketPrice, CreatedBy: uuid.New()}
}

func registration(eventID, userID uuid.UUID, createdAt time.Time) models.Registration {
	return models.Registration{ID: uuid.New(), EventID: eventID, UserID: userID, Status: models.StatusRegistered, CreatedAt: createdAt}
}

func user(name string, createdAt time.Time) models.User {
	return models.User{ID: uuid.New(), Name: name, Email: name + "@example.com", Role: models.RoleStudent, CreatedAt: createdAt}
}

func TestBuildReportCounts(t *testing.T) {
	past := event("GoConf", testNow.AddDate(0, 0, -5), price(50))
	future := event("Hackathon", testNow.AddDate(0, 0, 5), nil)
	u := user("asha", testNow.AddDate(0, 0, -3))

	s := &memStore{
		events: []models.Event{past, future},
		users:  []models.User{u},
		regs: []models.Registration{
			registration(past.ID, u.ID, testNow.AddDate(0, 0, -4)),
			registration(future.ID, u.ID, testNow.AddDate(0, 0, -1)),
		},
	}

	r, err := testBuilder(s).BuildReport(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, r.TotalEvents)
	assert.Equal(t, 1, r.ActiveEvents)
	assert.Equal(t, 2, r.TotalRegistrations)
	assert.Equal(t, 1, r.TotalUsers)
	assert.Equal(t, 50.0, r.TotalRevenue) // nil price counts as 0
}

func TestBuildReportIdempotent(t *testing.T) {
	e := event("Tech Talk", testNow.AddDate(0, 0, 2), price(20))
	u := user("ravi", testNow.AddDate(0, -2, 0))
	s := &memStore{
		events: []models.Event{e},
		users:  []models.User{u},
		regs:   []models.Registration{registration(e.ID, u.ID, testNow.AddDate(0, 0, -7))},
	}
	b := testBuilder(s)

	first, err := b.BuildReport(context.Background())
	require.NoError(t, err)
	second, err := b.BuildReport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuildReportFailsAtomically(t *testing.T) {
	boom := errors.New("connection refused")
	for name, s := range map[string]*memStore{
		"events":        {eventsErr: boom},
		"registrations": {regsErr: boom},
		"users":         {usersErr: boom},
	} {
		t.Run(name, func(t *testing.T) {
			r, err := testBuilder(s).BuildReport(context.Background())
			require.ErrorIs(t, err, boom)
			assert.Nil(t, r) // nothing partial
		})
	}
}

func TestBuildReportEmptyStore(t *testing.T) {
	r, err := testBuilder(&memStore{}).BuildReport(context.Background())
	require.NoError(t, err)

	assert.Zero(t, r.TotalEvents)
	assert.Zero(t, r.TotalRevenue)
	assert.Zero(t, r.Growth)
	assert.Empty(t, r.Events)
	assert.Empty(t, r.RecentActivity)
	assert.Len(t, r.Trends, 7)
}
