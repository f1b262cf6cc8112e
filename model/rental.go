// model/rental.go
package model

import "time"

// Rental links a customer to a car for a date range. ReturnDate holds
// the planned end date until the car comes back, then the actual return
// timestamp overwrites it.
type Rental struct {
	ID              int64     `json:"id"`
	CustomerID      int64     `json:"customer_id"`
	CarID           int64     `json:"car_id"`
	RentDate        time.Time `json:"rent_date"`
	ReturnDate      time.Time `json:"return_date"`
	CustomerName    string    `json:"customer_name"`
	Phone           string    `json:"phone"`
	LicenseNumber   string    `json:"license_number"`
	BankDetails     string    `json:"bank_details"`
	PickupLocation  string    `json:"pickup_location"`
	DropoffLocation string    `json:"dropoff_location"`
}

type Payment struct {
	ID            int64     `json:"id"`
	CustomerID    int64     `json:"customer_id"`
	RentalID      int64     `json:"rental_id"`
	AmountPaid    float64   `json:"amount_paid"`
	PaymentMethod string    `json:"payment_method"`
	PaymentDate   time.Time `json:"payment_date"`
}
