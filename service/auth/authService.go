package authsvc

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/shashank1027/car-rental-system/model"
	authrepo "github.com/shashank1027/car-rental-system/repository/auth"
	"github.com/shashank1027/car-rental-system/util/hash"
	jwtutil "github.com/shashank1027/car-rental-system/util/jwt"
)

// errors used by controllers

type ErrCode string

const (
	ErrEmailTaken   ErrCode = "EMAIL_TAKEN"
	ErrInvalidCreds ErrCode = "INVALID_CREDENTIALS"
	ErrNotAdmin     ErrCode = "NOT_ADMIN"
	ErrBadInput     ErrCode = "BAD_INPUT"
	ErrNotFound     ErrCode = "NOT_FOUND"
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

const tokenTTLHours = 24

type Service interface {
	Register(ctx context.Context, req model.RegisterReq) (*model.User, error)
	Login(ctx context.Context, req model.LoginReq) (*model.User, string, error)

	// AdminLogin is Login restricted to admin accounts.
	AdminLogin(ctx context.Context, req model.LoginReq) (*model.User, string, error)

	// Profile loads the account behind an authenticated token.
	Profile(ctx context.Context, id int64) (*model.User, error)
}

type service struct {
	r      authrepo.Repo
	secret string
}

func New(r authrepo.Repo, secret string) Service { return &service{r: r, secret: secret} }

func (s *service) Register(ctx context.Context, req model.RegisterReq) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || strings.TrimSpace(req.Name) == "" || len(req.Password) < 6 {
		return nil, makeErr(ErrBadInput)
	}

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hashed,
		Role:         model.RoleCustomer,
	}

	if err := s.r.Create(ctx, u); err != nil {
		if isDuplicateEmail(err) {
			return nil, makeErr(ErrEmailTaken)
		}
		return nil, err
	}
	return u, nil
}

func (s *service) Login(ctx context.Context, req model.LoginReq) (*model.User, string, error) {
	return s.login(ctx, req, false)
}

func (s *service) AdminLogin(ctx context.Context, req model.LoginReq) (*model.User, string, error) {
	return s.login(ctx, req, true)
}

// login never distinguishes an unknown email from a wrong password.
func (s *service) login(ctx context.Context, req model.LoginReq, adminOnly bool) (*model.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, "", makeErr(ErrBadInput)
	}

	u, err := s.r.ByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, "", makeErr(ErrInvalidCreds)
	}
	if !hash.Check(u.PasswordHash, req.Password) {
		return nil, "", makeErr(ErrInvalidCreds)
	}
	if adminOnly && u.Role != model.RoleAdmin {
		return nil, "", makeErr(ErrNotAdmin)
	}

	token, err := jwtutil.Issue(s.secret, u.ID, u.Email, string(u.Role), tokenTTLHours)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *service) Profile(ctx context.Context, id int64) (*model.User, error) {
	u, err := s.r.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	if u == nil {
		return nil, makeErr(ErrNotFound)
	}
	return u, nil
}

func isDuplicateEmail(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		cn := strings.ToLower(pgErr.ConstraintName)
		msg := strings.ToLower(pgErr.Message)
		return strings.Contains(cn, "customers_email") || strings.Contains(msg, "email")
	}
	return false
}
