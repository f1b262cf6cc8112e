package echoServer

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/shashank1027/car-rental-system/app/echoServer/controller/auth"
	"github.com/shashank1027/car-rental-system/app/echoServer/controller/car"
	"github.com/shashank1027/car-rental-system/app/echoServer/controller/rental"
)

type C struct {
	Auth   *auth.Controller
	Car    *car.Controller
	Rental *rental.Controller

	JWTSecret string
	Denylist  TokenDenylist
}

func Register(e *echo.Echo, c C) {
	// Public
	e.GET("/", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, echo.Map{
			"service": "car-rental",
			"message": "welcome, please register or log in",
		})
	})

	pub := e.Group("/v1")
	pub.POST("/users/register", c.Auth.Register)
	pub.POST("/users/login", c.Auth.Login)
	pub.POST("/admin/login", c.Auth.AdminLogin)

	// Authenticated
	authed := e.Group("/v1")
	authed.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(c.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization",
	}))
	authed.Use(RejectDeniedTokens(c.Denylist))

	authed.POST("/users/logout", c.Auth.Logout)
	authed.GET("/users/me", c.Auth.Me)
	authed.GET("/dashboard", c.Rental.Dashboard)

	authed.GET("/cars", c.Car.List)
	authed.GET("/cars/:id", c.Car.Detail)
	authed.POST("/cars/:id/bookings", c.Rental.Book)

	authed.POST("/rentals/:id/return", c.Rental.Return)
	authed.GET("/rentals/my", c.Rental.MyRentals)

	// Admin
	admin := authed.Group("/admin", RequireRole("admin"))
	admin.GET("/cars", c.Car.List)
	admin.POST("/cars", c.Car.Add)
	admin.DELETE("/cars/:id", c.Car.Delete)
	admin.POST("/cars/:id/unavailable", c.Car.MarkUnavailable)
	admin.GET("/rentals", c.Rental.AllRentals)
}
