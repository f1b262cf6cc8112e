package rental

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/shashank1027/car-rental-system/app/echoServer/jwtx"
	"github.com/shashank1027/car-rental-system/model"
	carsvc "github.com/shashank1027/car-rental-system/service/car"
	rentalsvc "github.com/shashank1027/car-rental-system/service/rental"
)

type Controller struct {
	Svc  rentalsvc.Service
	Cars carsvc.Service
	V    *validator.Validate
	Log  *slog.Logger
}

// POST /v1/cars/:id/bookings
func (h *Controller) Book(c echo.Context) error {
	carID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || carID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid car id"})
	}

	var req BookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	start, end, err := req.Dates()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "dates must be YYYY-MM-DD"})
	}

	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthenticated"})
	}

	out, err := h.Svc.Book(c.Request().Context(), uid, carID, rentalsvc.BookingInput{
		CustomerName:    req.CustomerName,
		Phone:           req.Phone,
		LicenseNumber:   req.LicenseNumber,
		BankDetails:     req.BankDetails,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		StartDate:       start,
		EndDate:         end,
	})
	if err != nil {
		switch rentalsvc.Code(err) {
		case rentalsvc.ErrInvalidDates:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "end date must be after start date"})
		case rentalsvc.ErrCarNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "car not found"})
		case rentalsvc.ErrCarUnavailable:
			return c.JSON(http.StatusConflict, echo.Map{"message": "car is not available"})
		default:
			h.Log.Error("booking create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "booking confirmed",
		"booking": out,
	})
}

// POST /v1/rentals/:id/return
func (h *Controller) Return(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthenticated"})
	}
	role, err := jwtx.RoleFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthenticated"})
	}

	if err := h.Svc.Return(c.Request().Context(), uid, id, role == string(model.RoleAdmin)); err != nil {
		switch rentalsvc.Code(err) {
		case rentalsvc.ErrNotOwner:
			return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
		case rentalsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "rental not found"})
		default:
			h.Log.Error("rental return", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "car returned successfully"})
}

// GET /v1/rentals/my
func (h *Controller) MyRentals(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthenticated"})
	}
	rows, err := h.Svc.MyRentals(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("my rentals", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/dashboard
func (h *Controller) Dashboard(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthenticated"})
	}
	cars, err := h.Cars.List(c.Request().Context())
	if err != nil {
		h.Log.Error("dashboard cars", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	rentals, err := h.Svc.MyRentals(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("dashboard rentals", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"cars":    cars,
		"rentals": rentals,
	})
}

// GET /v1/admin/rentals  (admin)
func (h *Controller) AllRentals(c echo.Context) error {
	rows, err := h.Svc.AllRentals(c.Request().Context())
	if err != nil {
		h.Log.Error("all rentals", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}
