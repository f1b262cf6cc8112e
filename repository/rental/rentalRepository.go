package rental

import (
	"context"
	"database/sql"
	"time"

	"github.com/shashank1027/car-rental-system/model"
)

// MyRentalRow mirrors the customer dashboard projection: the rental
// joined with its car.
type MyRentalRow struct {
	RentalID     int64           `json:"rental_id"`
	Model        string          `json:"model"`
	LicensePlate string          `json:"license_plate"`
	CarStatus    model.CarStatus `json:"car_status"`
	RentDate     time.Time       `json:"rent_date"`
	ReturnDate   time.Time       `json:"return_date"`
	CarID        int64           `json:"car_id"`
}

// AdminRentalRow joins every rental with its customer and car.
type AdminRentalRow struct {
	RentalID      int64     `json:"rental_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	Model         string    `json:"model"`
	LicensePlate  string    `json:"license_plate"`
	RentDate      time.Time `json:"rent_date"`
	ReturnDate    time.Time `json:"return_date"`
}

type OverdueRow struct {
	RentalID     int64
	CustomerID   int64
	CarID        int64
	CustomerName string
	ReturnDate   time.Time
}

type Repo interface {
	// Booking (all inside one caller-owned transaction)
	RentCar(ctx context.Context, tx *sql.Tx, carID int64) (int64, error)
	InsertRental(ctx context.Context, tx *sql.Tx, r *model.Rental) error
	InsertPayment(ctx context.Context, tx *sql.Tx, p *model.Payment) error

	// Return
	GetOwnerAndCar(ctx context.Context, tx *sql.Tx, rentalID int64) (ownerID, carID int64, err error)
	MarkReturned(ctx context.Context, tx *sql.Tx, rentalID int64, at time.Time) error
	FreeCar(ctx context.Context, tx *sql.Tx, carID int64) error

	// Listings
	ListMine(ctx context.Context, customerID int64) ([]MyRentalRow, error)
	ListAll(ctx context.Context) ([]AdminRentalRow, error)

	// Overdue sweep
	ClaimOverdue(ctx context.Context, before time.Time) ([]OverdueRow, error)
}

type repo struct {
	db *sql.DB
}

func New(db *sql.DB) Repo { return &repo{db: db} }

// Booking

// RentCar flips the car to Rented only from Available; zero rows
// affected means the car was taken (or gone) and the booking must fail.
func (r *repo) RentCar(ctx context.Context, tx *sql.Tx, carID int64) (int64, error) {
	const q = `
		UPDATE cars
		SET status = $2
		WHERE id = $1
		AND status = $3`
	res, err := tx.ExecContext(ctx, q, carID, model.CarRented, model.CarAvailable)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repo) InsertRental(ctx context.Context, tx *sql.Tx, m *model.Rental) error {
	const q = `
		INSERT INTO rentals (customer_id, car_id, rent_date, return_date, customer_name, phone, license_number, bank_details, pickup_location, dropoff_location)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id`
	return tx.QueryRowContext(ctx, q,
		m.CustomerID, m.CarID, m.RentDate, m.ReturnDate,
		m.CustomerName, m.Phone, m.LicenseNumber, m.BankDetails,
		m.PickupLocation, m.DropoffLocation,
	).Scan(&m.ID)
}

func (r *repo) InsertPayment(ctx context.Context, tx *sql.Tx, p *model.Payment) error {
	const q = `
		INSERT INTO payments (customer_id, rental_id, amount_paid, payment_method, payment_date)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id`
	return tx.QueryRowContext(ctx, q,
		p.CustomerID, p.RentalID, p.AmountPaid, p.PaymentMethod, p.PaymentDate,
	).Scan(&p.ID)
}

// Return

func (r *repo) GetOwnerAndCar(ctx context.Context, tx *sql.Tx, rentalID int64) (int64, int64, error) {
	const q = `
		SELECT customer_id, car_id
		FROM rentals
		WHERE id = $1
		FOR UPDATE`
	var ownerID, carID int64
	err := tx.QueryRowContext(ctx, q, rentalID).Scan(&ownerID, &carID)
	return ownerID, carID, err
}

func (r *repo) MarkReturned(ctx context.Context, tx *sql.Tx, rentalID int64, at time.Time) error {
	const q = `
		UPDATE rentals
		SET return_date = $2
		WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, rentalID, at)
	return err
}

// FreeCar sets the car back to Available regardless of its current
// status, so a double return stays harmless.
func (r *repo) FreeCar(ctx context.Context, tx *sql.Tx, carID int64) error {
	const q = `
		UPDATE cars
		SET status = $2
		WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, carID, model.CarAvailable)
	return err
}

// Listings

func (r *repo) ListMine(ctx context.Context, customerID int64) ([]MyRentalRow, error) {
	const q = `
		SELECT r.id, c.model, c.license_plate, c.status, r.rent_date, r.return_date, c.id
		FROM rentals r
		JOIN cars c ON r.car_id = c.id
		WHERE r.customer_id = $1
		ORDER BY r.rent_date DESC`
	rows, err := r.db.QueryContext(ctx, q, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MyRentalRow
	for rows.Next() {
		var m MyRentalRow
		if err := rows.Scan(
			&m.RentalID, &m.Model, &m.LicensePlate, &m.CarStatus,
			&m.RentDate, &m.ReturnDate, &m.CarID,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *repo) ListAll(ctx context.Context) ([]AdminRentalRow, error) {
	const q = `
		SELECT r.id, cu.name, cu.email, c.model, c.license_plate, r.rent_date, r.return_date
		FROM rentals r
		JOIN customers cu ON r.customer_id = cu.id
		JOIN cars c ON r.car_id = c.id
		ORDER BY r.rent_date DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AdminRentalRow
	for rows.Next() {
		var a AdminRentalRow
		if err := rows.Scan(
			&a.RentalID, &a.CustomerName, &a.CustomerEmail,
			&a.Model, &a.LicensePlate, &a.RentDate, &a.ReturnDate,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Overdue sweep

// ClaimOverdue flags not-yet-notified rentals whose planned return date
// has passed while the car is still out, and returns them exactly once.
func (r *repo) ClaimOverdue(ctx context.Context, before time.Time) ([]OverdueRow, error) {
	const q = `
		UPDATE rentals
		SET overdue_notified = TRUE
		WHERE id IN (
			SELECT r.id
			FROM rentals r
			JOIN cars c ON c.id = r.car_id AND c.status = $2
			WHERE r.return_date < $1
			AND NOT r.overdue_notified
		)
		RETURNING id, customer_id, car_id, customer_name, return_date`
	rows, err := r.db.QueryContext(ctx, q, before, model.CarRented)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []OverdueRow
	for rows.Next() {
		var o OverdueRow
		if err := rows.Scan(&o.RentalID, &o.CustomerID, &o.CarID, &o.CustomerName, &o.ReturnDate); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
