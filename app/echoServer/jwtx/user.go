// app/echoServer/jwtx/user.go
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

func claims(c echo.Context) (jwt.MapClaims, error) {
	tok, ok := c.Get("user").(*jwt.Token)
	if !ok || tok == nil {
		return nil, errors.New("no jwt token in context")
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid jwt claims")
	}
	return mc, nil
}

func UserIDFromContext(c echo.Context) (int64, error) {
	mc, err := claims(c)
	if err != nil {
		return 0, err
	}
	if f, ok := mc["sub"].(float64); ok {
		return int64(f), nil
	}
	return 0, errors.New("sub missing in claims")
}

func RoleFromContext(c echo.Context) (string, error) {
	mc, err := claims(c)
	if err != nil {
		return "", err
	}
	if s, ok := mc["role"].(string); ok && s != "" {
		return s, nil
	}
	return "", errors.New("role missing in claims")
}

// TokenIDFromContext returns the jti and how long the token is still
// good for, which is exactly the denylist TTL logout needs.
func TokenIDFromContext(c echo.Context) (string, time.Duration, error) {
	mc, err := claims(c)
	if err != nil {
		return "", 0, err
	}
	jti, ok := mc["jti"].(string)
	if !ok || jti == "" {
		return "", 0, errors.New("jti missing in claims")
	}
	exp, ok := mc["exp"].(float64)
	if !ok {
		return "", 0, errors.New("exp missing in claims")
	}
	return jti, time.Until(time.Unix(int64(exp), 0)), nil
}
