package store

import "errors"

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrMissingContact     = errors.New("customer name and phone are required")
	ErrNoTableNumber      = errors.New("no table number assigned")
	ErrNegativeQuantity   = errors.New("quantity must not be negative")
	ErrUnknownStatus      = errors.New("unknown order status")
	ErrIllegalTransition  = errors.New("illegal order status transition")
	ErrOrderNotCancelable = errors.New("order can only be cancelled while pending")
)
