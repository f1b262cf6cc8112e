package rentalsvc

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/shashank1027/car-rental-system/model"
	"github.com/shashank1027/car-rental-system/repository/events"
	rentalrepo "github.com/shashank1027/car-rental-system/repository/rental"
)

// DailyRate prices every rental; it is not per-car.
const DailyRate = 50.0

// errors used by controllers

type ErrCode string

const (
	ErrInvalidDates   ErrCode = "INVALID_DATES"
	ErrCarNotFound    ErrCode = "CAR_NOT_FOUND"
	ErrCarUnavailable ErrCode = "CAR_UNAVAILABLE"
	ErrNotOwner       ErrCode = "NOT_OWNER"
	ErrNotFound       ErrCode = "NOT_FOUND"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// dto

type BookingInput struct {
	CustomerName    string
	Phone           string
	LicenseNumber   string
	BankDetails     string
	PickupLocation  string
	DropoffLocation string
	StartDate       time.Time
	EndDate         time.Time
}

type Confirmation struct {
	RentalID     int64     `json:"rental_id"`
	Model        string    `json:"model"`
	LicensePlate string    `json:"license_plate"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Days         int       `json:"days"`
	TotalCost    float64   `json:"total_cost"`
}

// row shapes = repository shapes
type MyRentalRow = rentalrepo.MyRentalRow
type AdminRentalRow = rentalrepo.AdminRentalRow

type Repo interface {
	RentCar(ctx context.Context, tx *sql.Tx, carID int64) (int64, error)
	InsertRental(ctx context.Context, tx *sql.Tx, r *model.Rental) error
	InsertPayment(ctx context.Context, tx *sql.Tx, p *model.Payment) error

	GetOwnerAndCar(ctx context.Context, tx *sql.Tx, rentalID int64) (ownerID, carID int64, err error)
	MarkReturned(ctx context.Context, tx *sql.Tx, rentalID int64, at time.Time) error
	FreeCar(ctx context.Context, tx *sql.Tx, carID int64) error

	ListMine(ctx context.Context, customerID int64) ([]MyRentalRow, error)
	ListAll(ctx context.Context) ([]AdminRentalRow, error)
}

type Cars interface {
	Detail(ctx context.Context, id int64) (*model.Car, error)
}

type Cache interface {
	InvalidateCars(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value any) error
}

type Service interface {
	// Book creates a rental and its payment and rents out the car, all
	// in one transaction.
	Book(ctx context.Context, customerID, carID int64, in BookingInput) (*Confirmation, error)

	// Return frees the car and stamps the rental's return date.
	// Customers can only return their own rentals; admins can return any.
	Return(ctx context.Context, customerID, rentalID int64, admin bool) error

	MyRentals(ctx context.Context, customerID int64) ([]MyRentalRow, error)
	AllRentals(ctx context.Context) ([]AdminRentalRow, error)
}

// ----- Service implementation -----

type service struct {
	db       *sql.DB
	r        Repo
	cars     Cars
	cache    Cache
	producer Producer
	topic    string
}

func New(db *sql.DB, r Repo, cars Cars, cache Cache, producer Producer, topic string) Service {
	return &service{db: db, r: r, cars: cars, cache: cache, producer: producer, topic: topic}
}

func (s *service) Book(ctx context.Context, customerID, carID int64, in BookingInput) (*Confirmation, error) {
	days := calendarDays(in.StartDate, in.EndDate)
	if days <= 0 {
		return nil, makeErr(ErrInvalidDates)
	}
	totalCost := float64(days) * DailyRate

	car, err := s.cars.Detail(ctx, carID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrCarNotFound)
		}
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// Available -> Rented, guarded: a concurrent booking of the same
	// car loses here instead of double-booking it.
	n, err := s.r.RentCar(ctx, tx, carID)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		err = makeErr(ErrCarUnavailable)
		return nil, err
	}

	rental := &model.Rental{
		CustomerID:      customerID,
		CarID:           carID,
		RentDate:        in.StartDate,
		ReturnDate:      in.EndDate,
		CustomerName:    in.CustomerName,
		Phone:           in.Phone,
		LicenseNumber:   in.LicenseNumber,
		BankDetails:     in.BankDetails,
		PickupLocation:  in.PickupLocation,
		DropoffLocation: in.DropoffLocation,
	}
	if err = s.r.InsertRental(ctx, tx, rental); err != nil {
		return nil, err
	}

	payment := &model.Payment{
		CustomerID:    customerID,
		RentalID:      rental.ID,
		AmountPaid:    totalCost,
		PaymentMethod: "Bank Transfer",
		PaymentDate:   time.Now(),
	}
	if err = s.r.InsertPayment(ctx, tx, payment); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.publish(ctx, events.RentalEvent{
		Type:         events.TypeRentalCreated,
		RentalID:     rental.ID,
		CustomerID:   customerID,
		CarID:        carID,
		CustomerName: in.CustomerName,
		TotalCost:    totalCost,
		ReturnDate:   in.EndDate,
		OccurredAt:   time.Now(),
	})

	return &Confirmation{
		RentalID:     rental.ID,
		Model:        car.Model,
		LicensePlate: car.LicensePlate,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Days:         days,
		TotalCost:    totalCost,
	}, nil
}

func (s *service) Return(ctx context.Context, customerID, rentalID int64, admin bool) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	owner, carID, err := s.r.GetOwnerAndCar(ctx, tx, rentalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return makeErr(ErrNotFound)
		}
		return err
	}
	if !admin && owner != customerID {
		return makeErr(ErrNotOwner)
	}

	// Returning twice just refreshes return_date; the car ends up
	// Available either way.
	if err = s.r.FreeCar(ctx, tx, carID); err != nil {
		return err
	}
	now := time.Now()
	if err = s.r.MarkReturned(ctx, tx, rentalID, now); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return err
	}

	s.invalidate(ctx)
	s.publish(ctx, events.RentalEvent{
		Type:       events.TypeRentalReturned,
		RentalID:   rentalID,
		CustomerID: owner,
		CarID:      carID,
		ReturnDate: now,
		OccurredAt: now,
	})
	return nil
}

func (s *service) MyRentals(ctx context.Context, customerID int64) ([]MyRentalRow, error) {
	return s.r.ListMine(ctx, customerID)
}

func (s *service) AllRentals(ctx context.Context) ([]AdminRentalRow, error) {
	return s.r.ListAll(ctx)
}

func (s *service) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateCars(ctx)
	}
}

// publish is best effort; a dead broker never fails the request.
func (s *service) publish(ctx context.Context, ev events.RentalEvent) {
	if s.producer == nil || s.topic == "" {
		return
	}
	if err := s.producer.Publish(ctx, s.topic, strconv.FormatInt(ev.RentalID, 10), ev); err != nil {
		slog.Warn("rental event publish failed", "type", ev.Type, "rental_id", ev.RentalID, "err", err)
	}
}

// calendarDays mirrors (end - start).days on date-only values.
func calendarDays(start, end time.Time) int {
	return int(end.Sub(start) / (24 * time.Hour))
}
