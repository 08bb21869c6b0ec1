package store

import (
	"sort"
	"time"

	"github.com/csakala/tableside/internal/models"
)

const (
	popularItemsExtended = 10
	popularItemsSummary  = 5
	peakHoursCap         = 5
	dailyRevenueDays     = 7
)

// Analytics returns the cached snapshot; it is recomputed after every command
// that changes the order list, never on read.
func (s *Store) Analytics() models.Analytics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.analytics
}

// AnalyticsSummary is the condensed dashboard view: popular items capped at
// five instead of ten.
func (s *Store) AnalyticsSummary() models.Analytics {
	a := s.Analytics()
	if len(a.PopularItems) > popularItemsSummary {
		a.PopularItems = a.PopularItems[:popularItemsSummary]
	}
	return a
}

// computeAnalytics derives the snapshot from the order list. Only completed
// orders count toward revenue and popularity; other statuses appear solely in
// the operational counters. Must be called with the mutex held.
func (s *Store) computeAnalytics() models.Analytics {
	var completed []*models.Order
	pending := 0
	for i := range s.orders {
		switch s.orders[i].Status {
		case models.OrderStatusCompleted:
			completed = append(completed, &s.orders[i])
		case models.OrderStatusPending:
			pending++
		}
	}

	a := models.Analytics{
		TotalOrders:  len(completed),
		PendingCount: pending,
	}
	for _, o := range completed {
		a.TotalRevenue += o.Total
	}
	if a.TotalOrders > 0 {
		a.AverageOrderValue = a.TotalRevenue / float64(a.TotalOrders)
	}
	if len(s.orders) > 0 {
		a.ConversionRate = float64(len(completed)) / float64(len(s.orders)) * 100
	}

	a.PopularItems = popularItems(completed, popularItemsExtended)
	a.PeakHours = peakHours(completed)
	a.CategoryStats = categoryStats(completed)
	a.DailyRevenue = dailyRevenue(completed, s.now())
	return a
}

func popularItems(completed []*models.Order, limit int) []models.PopularItem {
	byID := make(map[string]*models.PopularItem)
	var order []string
	for _, o := range completed {
		for i := range o.Items {
			line := &o.Items[i]
			p, ok := byID[line.ID]
			if !ok {
				p = &models.PopularItem{Item: line.MenuItem}
				byID[line.ID] = p
				order = append(order, line.ID)
			}
			p.Quantity += line.Quantity
			p.Revenue += line.LineTotal()
		}
	}

	items := make([]models.PopularItem, 0, len(order))
	for _, id := range order {
		items = append(items, *byID[id])
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Quantity > items[j].Quantity })
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

func peakHours(completed []*models.Order) []models.PeakHour {
	counts := make(map[int]int)
	for _, o := range completed {
		counts[o.Timestamp.Hour()]++
	}

	hours := make([]models.PeakHour, 0, len(counts))
	for hour := 0; hour < 24; hour++ {
		if counts[hour] > 0 {
			hours = append(hours, models.PeakHour{Hour: hour, Orders: counts[hour]})
		}
	}
	sort.SliceStable(hours, func(i, j int) bool { return hours[i].Orders > hours[j].Orders })
	if len(hours) > peakHoursCap {
		hours = hours[:peakHoursCap]
	}
	return hours
}

func categoryStats(completed []*models.Order) []models.CategoryStat {
	byCategory := make(map[string]*models.CategoryStat)
	var order []string
	for _, o := range completed {
		for i := range o.Items {
			line := &o.Items[i]
			stat, ok := byCategory[line.Category]
			if !ok {
				stat = &models.CategoryStat{Category: line.Category}
				byCategory[line.Category] = stat
				order = append(order, line.Category)
			}
			stat.Quantity += line.Quantity
			stat.Revenue += line.LineTotal()
		}
	}

	stats := make([]models.CategoryStat, 0, len(order))
	for _, cat := range order {
		stats = append(stats, *byCategory[cat])
	}
	return stats
}

// dailyRevenue covers the trailing seven calendar days, oldest first.
func dailyRevenue(completed []*models.Order, now time.Time) []models.DailyRevenue {
	days := make([]models.DailyRevenue, dailyRevenueDays)
	year, month, day := now.Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, now.Location())

	for i := 0; i < dailyRevenueDays; i++ {
		days[i].Date = today.AddDate(0, 0, i-dailyRevenueDays+1)
	}
	for _, o := range completed {
		for i := range days {
			dayStart := days[i].Date
			dayEnd := dayStart.AddDate(0, 0, 1)
			if !o.Timestamp.Before(dayStart) && o.Timestamp.Before(dayEnd) {
				days[i].Revenue += o.Total
				days[i].Orders++
				break
			}
		}
	}
	return days
}
