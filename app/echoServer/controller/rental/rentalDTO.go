package rental

import "time"

const dateLayout = "2006-01-02"

type BookingReq struct {
	CustomerName    string `json:"customer_name" validate:"required,min=2,max=100"`
	Phone           string `json:"phone" validate:"required,min=10,max=15"`
	LicenseNumber   string `json:"license_number" validate:"required"`
	BankDetails     string `json:"bank_details" validate:"required"`
	PickupLocation  string `json:"pickup_location" validate:"required"`
	DropoffLocation string `json:"dropoff_location" validate:"required"`
	StartDate       string `json:"start_date" validate:"required"`
	EndDate         string `json:"end_date" validate:"required"`
}

// Dates parses the YYYY-MM-DD fields; both must be well formed.
func (r BookingReq) Dates() (start, end time.Time, err error) {
	start, err = time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return
	}
	end, err = time.Parse(dateLayout, r.EndDate)
	return
}
