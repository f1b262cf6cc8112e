package carsvc

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/shashank1027/car-rental-system/model"
)

type ErrCode string

const (
	ErrNotFound ErrCode = "NOT_FOUND"
	ErrBadInput ErrCode = "BAD_INPUT"
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

type Repo interface {
	Create(ctx context.Context, carModel, licensePlate string) (int64, error)
	List(ctx context.Context) ([]model.Car, error)
	Detail(ctx context.Context, id int64) (*model.Car, error)
	Delete(ctx context.Context, id int64) (int64, error)
	SetStatus(ctx context.Context, id int64, status model.CarStatus) (int64, error)
}

type Cache interface {
	GetCars(ctx context.Context) ([]model.Car, error)
	SetCars(ctx context.Context, cars []model.Car) error
	InvalidateCars(ctx context.Context) error
}

type Service interface {
	List(ctx context.Context) ([]model.Car, error)
	Detail(ctx context.Context, id int64) (*model.Car, error)

	// Admin inventory operations
	Add(ctx context.Context, carModel, licensePlate string) (int64, error)
	Delete(ctx context.Context, id int64) error
	MarkUnavailable(ctx context.Context, id int64) (*model.Car, error)
}

type service struct {
	r     Repo
	cache Cache
}

func New(r Repo, cache Cache) Service { return &service{r: r, cache: cache} }

func (s *service) List(ctx context.Context) ([]model.Car, error) {
	if s.cache != nil {
		if cars, err := s.cache.GetCars(ctx); err == nil && cars != nil {
			return cars, nil
		}
	}
	cars, err := s.r.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil && len(cars) > 0 {
		_ = s.cache.SetCars(ctx, cars)
	}
	return cars, nil
}

func (s *service) Detail(ctx context.Context, id int64) (*model.Car, error) {
	c, err := s.r.Detail(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return c, nil
}

func (s *service) Add(ctx context.Context, carModel, licensePlate string) (int64, error) {
	if strings.TrimSpace(carModel) == "" || strings.TrimSpace(licensePlate) == "" {
		return 0, makeErr(ErrBadInput)
	}
	id, err := s.r.Create(ctx, carModel, licensePlate)
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx)
	return id, nil
}

// Delete is unconditional: rentals referencing the car are left alone.
func (s *service) Delete(ctx context.Context, id int64) error {
	n, err := s.r.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return makeErr(ErrNotFound)
	}
	s.invalidate(ctx)
	return nil
}

func (s *service) MarkUnavailable(ctx context.Context, id int64) (*model.Car, error) {
	n, err := s.r.SetStatus(ctx, id, model.CarNotAvailable)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, makeErr(ErrNotFound)
	}
	s.invalidate(ctx)
	return s.r.Detail(ctx, id)
}

func (s *service) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateCars(ctx)
	}
}
