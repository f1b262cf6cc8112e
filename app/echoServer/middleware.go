// app/echoServer/middleware.go
package echoServer

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/shashank1027/car-rental-system/app/echoServer/jwtx"
)

func RegisterMiddlewares(e *echo.Echo) {

	e.Use(middleware.Recover())

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))

	e.Use(Slog())
}

func Slog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			lat := time.Since(start).Milliseconds()

			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			slog.Info("http",
				"method", c.Request().Method,
				"path", c.Path(),
				"status", c.Response().Status,
				"latency_ms", lat,
				"req_id", rid,
				"ip", c.RealIP(),
				"ua", c.Request().UserAgent(),
			)
			return err
		}
	}
}

type TokenDenylist interface {
	IsTokenDenied(ctx context.Context, jti string) (bool, error)
}

// RejectDeniedTokens turns away tokens whose jti was denylisted by
// logout. Runs after the JWT middleware has verified the signature.
func RejectDeniedTokens(deny TokenDenylist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			jti, _, err := jwtx.TokenIDFromContext(c)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
			}
			denied, err := deny.IsTokenDenied(c.Request().Context(), jti)
			if err != nil {
				// Redis being down should not lock everyone out.
				slog.Warn("denylist check failed", "err", err)
				return next(c)
			}
			if denied {
				return echo.NewHTTPError(http.StatusUnauthorized, "session ended")
			}
			return next(c)
		}
	}
}

// RequireRole is the single authorization guard: every role-gated route
// goes through here instead of ad-hoc checks inside handlers.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			got, err := jwtx.RoleFromContext(c)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
			}
			if got != role {
				return echo.NewHTTPError(http.StatusForbidden, "access denied: admins only")
			}
			return next(c)
		}
	}
}
