package dashboard

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirdesai22/campus-events/internal/models"
)

func TestEnrichEventsCompleteness(t *testing.T) {
	popular := event("DevFest", testNow.AddDate(0, 0, 10), price(25))
	empty := event("Poetry Night", testNow.AddDate(0, 0, 3), price(10))
	done := event("Orientation", testNow.AddDate(0, 0, -20), nil)

	regs := []models.Registration{
		registration(popular.ID, uuid.New(), testNow.AddDate(0, 0, -1)),
		registration(popular.ID, uuid.New(), testNow.AddDate(0, 0, -2)),
		registration(popular.ID, uuid.New(), testNow.AddDate(0, 0, -3)),
	}

	out := enrichEvents([]models.Event{done, popular, empty}, regs, testNow, 100)
	require.Len(t, out, 3) // one entry per event, zero-registration ones included

	// sorted by date descending
	assert.Equal(t, "DevFest", out[0].Title)
	assert.Equal(t, "Poetry Night", out[1].Title)
	assert.Equal(t, "Orientation", out[2].Title)

	assert.Equal(t, 3, out[0].Registered)
	assert.Equal(t, 75.0, out[0].Revenue)
	assert.Equal(t, StatusUpcoming, out[0].Status)

	assert.Equal(t, 0, out[1].Registered)
	assert.Equal(t, 0.0, out[1].Revenue)

	assert.Equal(t, StatusCompleted, out[2].Status)
	for _, e := range out {
		assert.Equal(t, 100, e.Capacity)
	}
}

func TestEventStatusDerived(t *testing.T) {
	assert.Equal(t, StatusCompleted, EventStatus(testNow.Add(-1), testNow))
	assert.Equal(t, StatusUpcoming, EventStatus(testNow, testNow)) // today is not completed yet
	assert.Equal(t, StatusUpcoming, EventStatus(testNow.Add(1), testNow))
}

func TestBuilderCapacityOverride(t *testing.T) {
	b := testBuilder(&memStore{})
	assert.Equal(t, 100, b.capacity())
	b.DefaultCapacity = 250
	assert.Equal(t, 250, b.capacity())
}

func TestSummarizeUsers(t *testing.T) {
	u1 := user("meera", testNow)
	u2 := user("karan", testNow)
	regs := []models.Registration{
		registration(uuid.New(), u1.ID, testNow),
		registration(uuid.New(), u1.ID, testNow),
	}

	out := summarizeUsers([]models.User{u1, u2}, regs)
	require.Len(t, out, 2)
	assert.Equal(t, 2, out[0].EventCount)
	assert.Equal(t, 0, out[1].EventCount)
}
