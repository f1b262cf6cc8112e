// service/car/carService_test.go
package carsvc_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shashank1027/car-rental-system/model"
	carsvc "github.com/shashank1027/car-rental-system/service/car"
)

type repoMock struct {
	createFn    func(ctx context.Context, carModel, licensePlate string) (int64, error)
	listFn      func(ctx context.Context) ([]model.Car, error)
	detailFn    func(ctx context.Context, id int64) (*model.Car, error)
	deleteFn    func(ctx context.Context, id int64) (int64, error)
	setStatusFn func(ctx context.Context, id int64, status model.CarStatus) (int64, error)

	listCalls int
}

func (m *repoMock) Create(ctx context.Context, carModel, licensePlate string) (int64, error) {
	return m.createFn(ctx, carModel, licensePlate)
}
func (m *repoMock) List(ctx context.Context) ([]model.Car, error) {
	m.listCalls++
	return m.listFn(ctx)
}
func (m *repoMock) Detail(ctx context.Context, id int64) (*model.Car, error) {
	return m.detailFn(ctx, id)
}
func (m *repoMock) Delete(ctx context.Context, id int64) (int64, error) {
	return m.deleteFn(ctx, id)
}
func (m *repoMock) SetStatus(ctx context.Context, id int64, status model.CarStatus) (int64, error) {
	return m.setStatusFn(ctx, id, status)
}

type cacheMock struct {
	cars        []model.Car
	sets        int
	invalidates int
}

func (c *cacheMock) GetCars(ctx context.Context) ([]model.Car, error) { return c.cars, nil }
func (c *cacheMock) SetCars(ctx context.Context, cars []model.Car) error {
	c.sets++
	c.cars = cars
	return nil
}
func (c *cacheMock) InvalidateCars(ctx context.Context) error {
	c.invalidates++
	c.cars = nil
	return nil
}

func TestList_CacheHit(t *testing.T) {
	cached := []model.Car{{ID: 1, Model: "Swift", LicensePlate: "KA-01", Status: model.CarAvailable}}
	m := &repoMock{}
	c := &cacheMock{cars: cached}
	s := carsvc.New(m, c)

	got, err := s.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, cached, got)
	require.Zero(t, m.listCalls, "cache hit must not touch the repository")
}

func TestList_CacheMissPopulates(t *testing.T) {
	fromDB := []model.Car{{ID: 2, Model: "i20", LicensePlate: "KA-02", Status: model.CarRented}}
	m := &repoMock{listFn: func(ctx context.Context) ([]model.Car, error) { return fromDB, nil }}
	c := &cacheMock{}
	s := carsvc.New(m, c)

	got, err := s.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, fromDB, got)
	require.Equal(t, 1, m.listCalls)
	require.Equal(t, 1, c.sets)
}

func TestAdd_Validation(t *testing.T) {
	s := carsvc.New(&repoMock{}, nil)
	_, err := s.Add(context.Background(), "", "KA-03")
	require.Equal(t, carsvc.ErrBadInput, carsvc.Code(err))
	_, err = s.Add(context.Background(), "Swift", " ")
	require.Equal(t, carsvc.ErrBadInput, carsvc.Code(err))
}

func TestAdd_InvalidatesCache(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, carModel, licensePlate string) (int64, error) {
			require.Equal(t, "Swift", carModel)
			require.Equal(t, "KA-03", licensePlate)
			return 7, nil
		},
	}
	c := &cacheMock{cars: []model.Car{{ID: 1}}}
	s := carsvc.New(m, c)

	id, err := s.Add(context.Background(), "Swift", "KA-03")
	require.NoError(t, err)
	require.Equal(t, int64(7), id)
	require.Equal(t, 1, c.invalidates)
}

func TestDelete_NotFound(t *testing.T) {
	m := &repoMock{deleteFn: func(ctx context.Context, id int64) (int64, error) { return 0, nil }}
	s := carsvc.New(m, &cacheMock{})

	err := s.Delete(context.Background(), 99)
	require.Equal(t, carsvc.ErrNotFound, carsvc.Code(err))
}

func TestDelete_Success(t *testing.T) {
	m := &repoMock{deleteFn: func(ctx context.Context, id int64) (int64, error) { return 1, nil }}
	c := &cacheMock{}
	s := carsvc.New(m, c)

	require.NoError(t, s.Delete(context.Background(), 3))
	require.Equal(t, 1, c.invalidates)
}

func TestMarkUnavailable(t *testing.T) {
	var gotStatus model.CarStatus
	m := &repoMock{
		setStatusFn: func(ctx context.Context, id int64, status model.CarStatus) (int64, error) {
			gotStatus = status
			return 1, nil
		},
		detailFn: func(ctx context.Context, id int64) (*model.Car, error) {
			return &model.Car{ID: id, Model: "Swift", Status: model.CarNotAvailable}, nil
		},
	}
	c := &cacheMock{}
	s := carsvc.New(m, c)

	car, err := s.MarkUnavailable(context.Background(), 4)
	require.NoError(t, err)
	require.Equal(t, model.CarNotAvailable, gotStatus)
	require.Equal(t, model.CarNotAvailable, car.Status)
	require.Equal(t, 1, c.invalidates)
}

func TestDetail_NotFound(t *testing.T) {
	m := &repoMock{detailFn: func(ctx context.Context, id int64) (*model.Car, error) {
		return nil, sql.ErrNoRows
	}}
	s := carsvc.New(m, nil)

	_, err := s.Detail(context.Background(), 123)
	require.Equal(t, carsvc.ErrNotFound, carsvc.Code(err))
}
