package dashboard

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirdesai22/campus-events/internal/models"
)

func TestComposeActivityInterleaving(t *testing.T) {
	// registrations at T1 > T2 > T3, users at T4 > T5, with
	// T1 > T4 > T2 > T5 > T3 expected in the merged feed
	t1 := testNow.Add(-1 * time.Minute)
	t2 := testNow.Add(-3 * time.Minute)
	t3 := testNow.Add(-5 * time.Minute)
	t4 := testNow.Add(-2 * time.Minute)
	t5 := testNow.Add(-4 * time.Minute)

	e := event("Robotics Expo", testNow.AddDate(0, 0, 1), nil)
	u := user("divya", testNow.AddDate(0, 0, -10))

	regs := []models.Registration{
		registration(e.ID, u.ID, t3),
		registration(e.ID, u.ID, t1),
		registration(e.ID, u.ID, t2),
	}
	users := []models.User{u, user("sam", t4), user("lena", t5)}

	out := composeActivity(regs, users, []models.Event{e})
	require.Len(t, out, 5)

	wantTimes := []time.Time{t1, t4, t2, t5, t3}
	for i, item := range out {
		assert.True(t, item.Time.Equal(wantTimes[i]), "item %d out of order", i)
	}
	assert.Equal(t, "New registration", out[0].Action)
	assert.Equal(t, "Robotics Expo", out[0].Event)
	assert.Equal(t, "New user joined", out[1].Action)
	assert.Equal(t, "Platform", out[1].Event)
	assert.Equal(t, "sam", out[1].User)
}

func TestComposeActivityTakesNewestOnly(t *testing.T) {
	e := event("Quiz Night", testNow, nil)
	var regs []models.Registration
	for i := 0; i < 10; i++ {
		regs = append(regs, registration(e.ID, uuid.New(), testNow.Add(-time.Duration(i)*time.Hour)))
	}
	var users []models.User
	for i := 0; i < 6; i++ {
		users = append(users, user("u", testNow.Add(-time.Duration(i)*time.Minute)))
	}

	out := composeActivity(regs, users, []models.Event{e})
	assert.Len(t, out, 5) // 3 registrations + 2 users, never more
}

func TestComposeActivityShrinksNeverPads(t *testing.T) {
	u := user("first", testNow)
	out := composeActivity(nil, []models.User{u}, nil)
	require.Len(t, out, 1)
	assert.Equal(t, "New user joined", out[0].Action)

	assert.Empty(t, composeActivity(nil, nil, nil))
}

func TestComposeActivityOrphanedRegistration(t *testing.T) {
	// user and event were deleted after the registration was written
	reg := registration(uuid.New(), uuid.New(), testNow)
	out := composeActivity([]models.Registration{reg}, nil, nil)

	require.Len(t, out, 1)
	assert.Equal(t, unknownLabel, out[0].User)
	assert.Equal(t, unknownLabel, out[0].Event)
	assert.Equal(t, reg.ID.String(), out[0].ID)
}

func TestOrphansStillCounted(t *testing.T) {
	s := &memStore{regs: []models.Registration{registration(uuid.New(), uuid.New(), testNow)}}
	r, err := testBuilder(s).BuildReport(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, r.TotalRegistrations)
}
