package domain

// Booking is the single pending cart slot a member may hold before checkout.
type Booking struct {
	AttractionID int64
	Date         string
	Time         string
	Price        int64
	MemberID     int64
}

// BookingDetail is a booking joined with its attraction snapshot, as served
// to the client.
type BookingDetail struct {
	Attraction AttractionSnapshot `json:"attraction"`
	Date       string             `json:"date"`
	Time       string             `json:"time"`
	Price      int64              `json:"price"`
}
