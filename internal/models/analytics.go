package models

import "time"

// Analytics is derived from the order list and never stored; only completed
// orders count toward revenue and popularity.
type Analytics struct {
	TotalOrders       int             `json:"total_orders"`
	TotalRevenue      float64         `json:"total_revenue"`
	AverageOrderValue float64         `json:"average_order_value"`
	PendingCount      int             `json:"pending_count"`
	ConversionRate    float64         `json:"conversion_rate"` // completed / all, percent
	PopularItems      []PopularItem   `json:"popular_items"`
	PeakHours         []PeakHour      `json:"peak_hours"`
	CategoryStats     []CategoryStat  `json:"category_stats"`
	DailyRevenue      []DailyRevenue  `json:"daily_revenue"`
}

type PopularItem struct {
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
	Revenue  float64  `json:"revenue"`
}

type PeakHour struct {
	Hour   int `json:"hour"` // 0-23
	Orders int `json:"orders"`
}

type CategoryStat struct {
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type DailyRevenue struct {
	Date    time.Time `json:"date"`
	Revenue float64   `json:"revenue"`
	Orders  int       `json:"orders"`
}
