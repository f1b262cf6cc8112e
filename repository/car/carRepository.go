package carrepo

import (
	"context"
	"database/sql"

	"github.com/shashank1027/car-rental-system/model"
)

type Repo interface {
	Create(ctx context.Context, carModel, licensePlate string) (int64, error)
	List(ctx context.Context) ([]model.Car, error)
	Detail(ctx context.Context, id int64) (*model.Car, error)
	Delete(ctx context.Context, id int64) (int64, error)
	SetStatus(ctx context.Context, id int64, status model.CarStatus) (int64, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, carModel, licensePlate string) (int64, error) {
	const q = `
		INSERT INTO cars (model, license_plate, status)
		VALUES ($1,$2,$3)
		RETURNING id`
	var id int64
	if err := r.db.QueryRowContext(ctx, q, carModel, licensePlate, model.CarAvailable).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repo) List(ctx context.Context) ([]model.Car, error) {
	const q = `
		SELECT id, model, license_plate, status
		FROM cars
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Car
	for rows.Next() {
		var c model.Car
		if err := rows.Scan(&c.ID, &c.Model, &c.LicensePlate, &c.Status); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *repo) Detail(ctx context.Context, id int64) (*model.Car, error) {
	const q = `
		SELECT id, model, license_plate, status
		FROM cars
		WHERE id = $1`
	var c model.Car
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.Model, &c.LicensePlate, &c.Status); err != nil {
		return nil, err
	}
	return &c, nil
}

// Delete is unconditional: rentals referencing the car keep their car_id.
func (r *repo) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repo) SetStatus(ctx context.Context, id int64, status model.CarStatus) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE cars SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
