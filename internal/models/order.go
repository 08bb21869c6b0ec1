package models

import "time"

type Order struct {
	ID            string     `json:"id"`
	TableNumber   int        `json:"table_number"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone"`
	CustomerEmail string     `json:"customer_email,omitempty"`
	Items         []CartItem `json:"items"`
	Total         float64    `json:"total"`
	Status        string     `json:"status"`
	Timestamp     time.Time  `json:"timestamp"`
	EstimatedTime int        `json:"estimated_time"` // minutes until ready
	Notes         string     `json:"notes,omitempty"`
	PaymentMethod string     `json:"payment_method,omitempty"`
	PaymentStatus string     `json:"payment_status,omitempty"`
	DeliveryType  string     `json:"delivery_type"`
	Priority      string     `json:"priority,omitempty"`
	RestaurantID  string     `json:"restaurant_id,omitempty"`
	ZoneID        string     `json:"zone_id,omitempty"`
	Currency      string     `json:"currency,omitempty"`
}

// OrderDraft carries the caller-supplied fields of a new order; id, timestamp,
// items, total and estimate are filled in at placement time.
type OrderDraft struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email,omitempty"`
	Notes         string `json:"notes,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"`
	DeliveryType  string `json:"delivery_type,omitempty"`
	Priority      string `json:"priority,omitempty"`
}

// OrderFilter narrows order list queries; zero values mean "no restriction".
type OrderFilter struct {
	Status        string
	PaymentStatus string
	Search        string // matches customer name, phone or order id
	From          time.Time
	To            time.Time
}

const (
	OrderSortTimestamp = "timestamp"
	OrderSortTotal     = "total"
	OrderSortStatus    = "status"
)
