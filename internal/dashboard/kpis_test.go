package dashboard

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sirdesai22/campus-events/internal/models"
)

func regsAt(times ...time.Time) []models.Registration {
	out := make([]models.Registration, 0, len(times))
	for _, ts := range times {
		out = append(out, registration(uuid.New(), uuid.New(), ts))
	}
	return out
}

func TestGrowthBoundaries(t *testing.T) {
	inRecent := testNow.AddDate(0, 0, -10)
	inPrevious := testNow.AddDate(0, 0, -40)

	t.Run("both windows empty", func(t *testing.T) {
		assert.Equal(t, 0, growth(nil, testNow))
	})

	t.Run("previous empty, recent nonzero", func(t *testing.T) {
		assert.Equal(t, 100, growth(regsAt(inRecent, inRecent), testNow))
	})

	t.Run("10 then 15 is 50 percent", func(t *testing.T) {
		var regs []models.Registration
		for i := 0; i < 10; i++ {
			regs = append(regs, registration(uuid.New(), uuid.New(), inPrevious))
		}
		for i := 0; i < 15; i++ {
			regs = append(regs, registration(uuid.New(), uuid.New(), inRecent))
		}
		assert.Equal(t, 50, growth(regs, testNow))
	})

	t.Run("shrinking volume goes negative", func(t *testing.T) {
		regs := regsAt(inPrevious, inPrevious, inPrevious, inPrevious, inRecent)
		assert.Equal(t, -75, growth(regs, testNow))
	})

	t.Run("window edges", func(t *testing.T) {
		// exactly now-30d belongs to the recent window, just before it
		// to the previous one
		edge := testNow.AddDate(0, 0, -30)
		assert.Equal(t, 100, growth(regsAt(edge), testNow))
		// just before the edge lands in the previous window; anything
		// older than 60 days is outside both
		assert.Equal(t, -100, growth(regsAt(edge.Add(-time.Second), testNow.AddDate(0, 0, -90)), testNow))
	})
}

func TestTotalRevenueAdditivity(t *testing.T) {
	paid := event("Concert", testNow, price(150))
	free := event("Meetup", testNow, nil)

	regs := []models.Registration{
		registration(paid.ID, uuid.New(), testNow),
		registration(paid.ID, uuid.New(), testNow),
		registration(free.ID, uuid.New(), testNow),
		registration(uuid.New(), uuid.New(), testNow), // orphan, event deleted
	}
	events := []models.Event{paid, free}

	assert.Equal(t, 300.0, totalRevenue(events, regs, PriceEventCurrent))
}

func TestTotalRevenueSnapshotSource(t *testing.T) {
	e := event("Workshop", testNow, price(80)) // price was raised after the fact
	r1 := registration(e.ID, uuid.New(), testNow)
	r1.PricePaid = 50
	r2 := registration(e.ID, uuid.New(), testNow)
	r2.PricePaid = 50

	regs := []models.Registration{r1, r2}
	events := []models.Event{e}

	assert.Equal(t, 160.0, totalRevenue(events, regs, PriceEventCurrent))
	assert.Equal(t, 100.0, totalRevenue(events, regs, PriceRegistrationSnapshot))
}
