package domain

import "time"

type OrderStatus int

const (
	OrderStatusUnpaid OrderStatus = 0
	OrderStatusPaid   OrderStatus = 1
)

type Order struct {
	Number       string
	Prime        string
	Price        int64
	Attraction   AttractionSnapshot
	Date         string
	Time         string
	ContactName  string
	ContactEmail string
	ContactPhone string
	Status       OrderStatus
	CreatedAt    time.Time
}

// Contact is the buyer's contact snapshot attached to an order.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Trip is the attraction/date/time snapshot an order is placed for.
type Trip struct {
	Attraction AttractionSnapshot `json:"attraction"`
	Date       string             `json:"date"`
	Time       string             `json:"time"`
}
