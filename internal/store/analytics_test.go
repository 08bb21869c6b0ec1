package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csakala/tableside/internal/models"
)

// completeOrder places a cart and walks the order to completed.
func completeOrder(t *testing.T, s *Store, items ...models.MenuItem) models.Order {
	t.Helper()
	s.SetTableNumber(4)
	for _, item := range items {
		s.AddToCart(item)
	}
	order, err := s.PlaceOrder(validDraft())
	require.NoError(t, err)
	for _, status := range []string{
		models.OrderStatusConfirmed,
		models.OrderStatusPreparing,
		models.OrderStatusReady,
		models.OrderStatusDelivered,
		models.OrderStatusCompleted,
	} {
		require.NoError(t, s.UpdateOrderStatus(order.ID, status))
	}
	got, _ := s.Order(order.ID)
	return got
}

func TestAnalyticsEmptyStore(t *testing.T) {
	s, _ := newTestStore()
	a := s.Analytics()

	assert.Zero(t, a.TotalOrders)
	assert.Zero(t, a.TotalRevenue)
	assert.Zero(t, a.AverageOrderValue, "no divide by zero on an empty store")
	assert.Zero(t, a.ConversionRate)
	assert.Empty(t, a.PopularItems)
	assert.Empty(t, a.PeakHours)
	assert.Len(t, a.DailyRevenue, 7, "trailing week is always present")
}

func TestAnalyticsCompletedOnly(t *testing.T) {
	s, _ := newTestStore()

	completeOrder(t, s, nshima(), nshima())

	// a pending order contributes to counters but not revenue
	s.AddToCart(grilledChicken())
	_, err := s.PlaceOrder(validDraft())
	require.NoError(t, err)

	a := s.Analytics()
	assert.Equal(t, 1, a.TotalOrders)
	assert.Equal(t, 90.00, a.TotalRevenue)
	assert.Equal(t, 90.00, a.AverageOrderValue)
	assert.Equal(t, 1, a.PendingCount)
	assert.Equal(t, 50.0, a.ConversionRate)

	require.Len(t, a.PopularItems, 1)
	assert.Equal(t, "nshima-beef", a.PopularItems[0].Item.ID)
	assert.Equal(t, 2, a.PopularItems[0].Quantity)
	assert.Equal(t, 90.00, a.PopularItems[0].Revenue)
}

func TestAnalyticsCancelledExcluded(t *testing.T) {
	s, _ := newTestStore()
	s.SetTableNumber(2)
	s.AddToCart(nshima())
	order, err := s.PlaceOrder(validDraft())
	require.NoError(t, err)
	require.NoError(t, s.CancelOrder(order.ID))

	a := s.Analytics()
	assert.Zero(t, a.TotalOrders)
	assert.Zero(t, a.TotalRevenue)
	assert.Zero(t, a.PendingCount)
	assert.Zero(t, a.ConversionRate)
}

func TestPopularItemsRanking(t *testing.T) {
	s, _ := newTestStore()

	// twelve distinct items, item i ordered with quantity i+1
	for i := 0; i < 12; i++ {
		item := models.MenuItem{
			ID:        fmt.Sprintf("dish-%02d", i),
			Name:      fmt.Sprintf("Dish %d", i),
			Price:     10.00,
			Category:  "mains",
			Available: true,
			PrepTime:  5,
		}
		s.SetTableNumber(1)
		for q := 0; q <= i; q++ {
			s.AddToCart(item)
		}
		order, err := s.PlaceOrder(validDraft())
		require.NoError(t, err)
		for _, status := range []string{
			models.OrderStatusConfirmed,
			models.OrderStatusPreparing,
			models.OrderStatusReady,
			models.OrderStatusDelivered,
			models.OrderStatusCompleted,
		} {
			require.NoError(t, s.UpdateOrderStatus(order.ID, status))
		}
	}

	full := s.Analytics()
	require.Len(t, full.PopularItems, 10, "extended view caps at ten")
	assert.Equal(t, "dish-11", full.PopularItems[0].Item.ID)
	assert.Equal(t, 12, full.PopularItems[0].Quantity)
	for i := 1; i < len(full.PopularItems); i++ {
		assert.GreaterOrEqual(t, full.PopularItems[i-1].Quantity, full.PopularItems[i].Quantity)
	}

	summary := s.AnalyticsSummary()
	assert.Len(t, summary.PopularItems, 5, "summary view caps at five")
	assert.Equal(t, full.PopularItems[:5], summary.PopularItems)
}

func TestPeakHours(t *testing.T) {
	base := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	s, _ := newTestStoreAt(base)

	// two lunch orders, one evening order
	for _, hour := range []int{12, 12, 19} {
		s.now = func() time.Time { return base.Add(time.Duration(hour) * time.Hour) }
		completeOrder(t, s, nshima())
	}

	a := s.Analytics()
	require.Len(t, a.PeakHours, 2)
	assert.Equal(t, models.PeakHour{Hour: 12, Orders: 2}, a.PeakHours[0])
	assert.Equal(t, models.PeakHour{Hour: 19, Orders: 1}, a.PeakHours[1])
}

func TestCategoryStats(t *testing.T) {
	s, _ := newTestStore()
	completeOrder(t, s, nshima(), nshima(), grilledChicken())

	a := s.Analytics()
	require.Len(t, a.CategoryStats, 2)
	assert.Equal(t, models.CategoryStat{Category: "mains", Quantity: 2, Revenue: 90.00}, a.CategoryStats[0])
	assert.Equal(t, models.CategoryStat{Category: "grills", Quantity: 1, Revenue: 85.00}, a.CategoryStats[1])
}

func TestDailyRevenue(t *testing.T) {
	now := time.Date(2025, time.March, 10, 15, 0, 0, 0, time.UTC)
	s, _ := newTestStoreAt(now)

	// one order today, one two days ago, one outside the window
	s.now = func() time.Time { return now }
	completeOrder(t, s, nshima())
	s.now = func() time.Time { return now.AddDate(0, 0, -2) }
	completeOrder(t, s, grilledChicken())
	s.now = func() time.Time { return now.AddDate(0, 0, -10) }
	completeOrder(t, s, nshima())

	// recompute against today's clock
	s.now = func() time.Time { return now }
	s.SetTableNumber(1)
	s.AddToCart(nshima())
	extra, err := s.PlaceOrder(validDraft())
	require.NoError(t, err)
	require.NoError(t, s.CancelOrder(extra.ID))

	a := s.Analytics()
	require.Len(t, a.DailyRevenue, 7)

	assert.Equal(t, time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC), a.DailyRevenue[0].Date, "window starts six days back")
	assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), a.DailyRevenue[6].Date, "window ends today")

	assert.Equal(t, 45.00, a.DailyRevenue[6].Revenue)
	assert.Equal(t, 1, a.DailyRevenue[6].Orders)
	assert.Equal(t, 85.00, a.DailyRevenue[4].Revenue)

	var total float64
	for _, day := range a.DailyRevenue {
		total += day.Revenue
	}
	assert.Equal(t, 130.00, total, "old order falls outside the trailing week")
}
