package store

import (
	"sync"
	"time"

	"github.com/csakala/tableside/internal/models"
)

// captureSink records every emitted event message for assertions.
type captureSink struct {
	mu       sync.Mutex
	messages []models.EventMessage
}

func (c *captureSink) WriteMessage(topic string, msg []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, models.EventMessage{Topic: topic, Message: msg})
	return nil
}

func (c *captureSink) Close() error { return nil }

func (c *captureSink) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}

func testConfig() *models.Config {
	return &models.Config{
		RestaurantName:  "Tuleni Restaurant",
		RestaurantID:    "tuleni",
		DefaultLanguage: "en",
		DefaultCurrency: "ZMW",
		MaxMenuPrice:    200,
	}
}

func newTestStore() (*Store, *captureSink) {
	out := &captureSink{}
	s := New(testConfig(), nil, out, nil)
	return s, out
}

// newTestStoreAt pins the store clock for time-sensitive assertions.
func newTestStoreAt(now time.Time) (*Store, *captureSink) {
	s, out := newTestStore()
	s.now = func() time.Time { return now }
	return s, out
}

func nshima() models.MenuItem {
	return models.MenuItem{
		ID:        "nshima-beef",
		Name:      "Nshima with Beef Stew",
		Price:     45.00,
		Category:  "mains",
		Available: true,
		PrepTime:  10,
	}
}

func grilledChicken() models.MenuItem {
	return models.MenuItem{
		ID:         "grilled-chicken",
		Name:       "Grilled Chicken",
		Price:      85.00,
		Category:   "grills",
		Available:  true,
		PrepTime:   20,
		SpiceLevel: models.SpiceLevelHot,
	}
}

func validDraft() models.OrderDraft {
	return models.OrderDraft{
		CustomerName:  "Mutale Banda",
		CustomerPhone: "+260971234567",
	}
}
