package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusOverdue   BookingStatus = "overdue"
)

// Booking reserves one unit of a variation for a half-open [StartDate,
// EndDate) window. Every status except cancelled consumes inventory.
type Booking struct {
	ID             string        `json:"id"`
	TenantID       string        `json:"tenant_id"`
	VariationID    string        `json:"variation_id"`
	CustomerName   string        `json:"customer_name"`
	CustomerEmail  string        `json:"customer_email"`
	StartDate      time.Time     `json:"start_date"`
	EndDate        time.Time     `json:"end_date"`
	Status         BookingStatus `json:"status"`
	TotalCostCents int32         `json:"total_cost_cents"`
	CreatedOn      time.Time     `json:"created_on"`
	UpdatedOn      time.Time     `json:"updated_on"`
}

// ConsumesInventory reports whether the booking counts against a tracked
// variation's quantity.
func (b *Booking) ConsumesInventory() bool {
	return b.Status != BookingStatusCancelled
}

// Availability is the answer to "is this variation free for this window".
type Availability struct {
	Available      bool  `json:"available"`
	TotalQuantity  int32 `json:"total_quantity"`
	BookedQuantity int32 `json:"booked_quantity"`
}

// AvailableQuantity is the number of units still free.
func (a Availability) AvailableQuantity() int32 {
	return a.TotalQuantity - a.BookedQuantity
}
