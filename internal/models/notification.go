package models

import "time"

type Notification struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	Timestamp    time.Time `json:"timestamp"`
	Read         bool      `json:"read"`
	OrderID      string    `json:"order_id,omitempty"`
	RestaurantID string    `json:"restaurant_id,omitempty"`
	Priority     string    `json:"priority"`
}
