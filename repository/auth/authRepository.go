package auth

import (
	"context"
	"database/sql"

	"github.com/shashank1027/car-rental-system/model"
)

type Repo interface {
	Create(ctx context.Context, u *model.User) error
	ByEmail(ctx context.Context, email string) (*model.User, error)
	ByID(ctx context.Context, id int64) (*model.User, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) Create(ctx context.Context, u *model.User) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO customers(name, email, password, role)
		VALUES ($1,$2,$3,$4)
		RETURNING id`,
		u.Name, u.Email, u.PasswordHash, u.Role,
	).Scan(&u.ID)
}

func (r *repo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := r.db.QueryRowContext(ctx, `
        SELECT id, name, email, password, role
        FROM customers
        WHERE lower(email) = lower($1)`,
		email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.User, error) {
	u := &model.User{}
	err := r.db.QueryRowContext(ctx, `
        SELECT id, name, email, password, role
        FROM customers
        WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role)
	if err != nil {
		return nil, err
	}
	return u, nil
}
