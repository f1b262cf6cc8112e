package events

import "time"

const (
	TypeRentalCreated  = "rental_created"
	TypeRentalReturned = "rental_returned"
	TypeRentalOverdue  = "rental_overdue"
)

type RentalEvent struct {
	Type         string    `json:"type"`
	RentalID     int64     `json:"rental_id"`
	CustomerID   int64     `json:"customer_id"`
	CarID        int64     `json:"car_id"`
	CustomerName string    `json:"customer_name"`
	TotalCost    float64   `json:"total_cost,omitempty"`
	ReturnDate   time.Time `json:"return_date"`
	OccurredAt   time.Time `json:"occurred_at"`
}
