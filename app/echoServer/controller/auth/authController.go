// app/echoServer/controller/auth/authController.go
package auth

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/shashank1027/car-rental-system/app/echoServer/jwtx"
	"github.com/shashank1027/car-rental-system/model"
	authsvc "github.com/shashank1027/car-rental-system/service/auth"
)

type TokenDenylist interface {
	DenyToken(ctx context.Context, jti string, ttl time.Duration) error
}

type Controller struct {
	Svc  authsvc.Service
	Deny TokenDenylist
	V    *validator.Validate
	Log  *slog.Logger
}

// Register a new customer
// @Summary      Register customer
// @Description  Create a customer account; email must be unused
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload  body  model.RegisterReq  true  "Register payload"
// @Success      201  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      409  {object}  map[string]any "email already registered"
// @Router       /v1/users/register [post]
func (ct *Controller) Register(c echo.Context) error {
	var req model.RegisterReq
	if err := c.Bind(&req); err != nil {
		ct.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := ct.V.Struct(req); err != nil {
		ct.Log.Warn("validation failed", "path", c.Path(), "err", err)
		return echo.NewHTTPError(http.StatusBadRequest, "validation error")
	}

	u, err := ct.Svc.Register(c.Request().Context(), req)
	if err != nil {
		switch authsvc.Code(err) {
		case authsvc.ErrEmailTaken:
			return echo.NewHTTPError(http.StatusConflict, "email already registered")
		case authsvc.ErrBadInput:
			return echo.NewHTTPError(http.StatusBadRequest, "bad input")
		default:
			ct.Log.Error("register failed",
				"err", err,
				"req_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"path", c.Path(),
			)
			return echo.NewHTTPError(http.StatusInternalServerError, "register failed")
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "account created successfully",
		"user":    u,
	})
}

// Login
// @Summary      Login
// @Description  Login with email + password, returns JWT
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload  body  model.LoginReq  true  "Login payload"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Router       /v1/users/login [post]
func (ct *Controller) Login(c echo.Context) error {
	return ct.login(c, false)
}

// AdminLogin
// @Summary      Admin login
// @Description  Login restricted to admin accounts
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload  body  model.LoginReq  true  "Login payload"
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Failure      403  {object}  map[string]any "not an admin account"
// @Router       /v1/admin/login [post]
func (ct *Controller) AdminLogin(c echo.Context) error {
	return ct.login(c, true)
}

func (ct *Controller) login(c echo.Context, admin bool) error {
	var req model.LoginReq
	if err := c.Bind(&req); err != nil {
		ct.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := ct.V.Struct(req); err != nil {
		ct.Log.Warn("validation failed", "path", c.Path(), "err", err)
		return echo.NewHTTPError(http.StatusBadRequest, "validation error")
	}

	do := ct.Svc.Login
	if admin {
		do = ct.Svc.AdminLogin
	}
	u, token, err := do(c.Request().Context(), req)
	if err != nil {
		switch authsvc.Code(err) {
		case authsvc.ErrInvalidCreds, authsvc.ErrBadInput:
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
		case authsvc.ErrNotAdmin:
			return echo.NewHTTPError(http.StatusForbidden, "access denied: not an admin account")
		default:
			ct.Log.Error("login failed",
				"err", err,
				"req_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"path", c.Path(),
			)
			return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "login successful",
		"token":   token,
		"role":    u.Role,
	})
}

// Me
// @Summary      Current account
// @Description  Profile of the account behind the presented token
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Failure      404  {object}  map[string]any "account no longer exists"
// @Security     BearerAuth
// @Router       /v1/users/me [get]
func (ct *Controller) Me(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}
	u, err := ct.Svc.Profile(c.Request().Context(), uid)
	if err != nil {
		if authsvc.Code(err) == authsvc.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "account not found")
		}
		ct.Log.Error("profile failed", "err", err, "user_id", uid)
		return echo.NewHTTPError(http.StatusInternalServerError, "profile failed")
	}
	return c.JSON(http.StatusOK, echo.Map{"user": u})
}

// Logout
// @Summary      Logout
// @Description  Invalidate the presented token
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Security     BearerAuth
// @Router       /v1/users/logout [post]
func (ct *Controller) Logout(c echo.Context) error {
	jti, ttl, err := jwtx.TokenIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}
	if err := ct.Deny.DenyToken(c.Request().Context(), jti, ttl); err != nil {
		ct.Log.Error("logout failed", "err", err, "jti", jti)
		return echo.NewHTTPError(http.StatusInternalServerError, "logout failed")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "you have been logged out"})
}
