package car

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	carsvc "github.com/shashank1027/car-rental-system/service/car"
)

type Controller struct {
	Svc carsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /v1/cars
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("car list error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/cars/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	row, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		if carsvc.Code(err) == carsvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "car not found"})
		}
		h.Log.Error("car detail error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, row)
}

// POST /v1/admin/cars  (admin)
func (h *Controller) Add(c echo.Context) error {
	var req AddCarReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	id, err := h.Svc.Add(c.Request().Context(), req.Model, req.LicensePlate)
	if err != nil {
		if carsvc.Code(err) == carsvc.ErrBadInput {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		}
		h.Log.Error("car add error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id, "message": "car added successfully"})
}

// DELETE /v1/admin/cars/:id  (admin)
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		if carsvc.Code(err) == carsvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "car not found"})
		}
		h.Log.Error("car delete error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "car deleted successfully"})
}

// POST /v1/admin/cars/:id/unavailable  (admin)
func (h *Controller) MarkUnavailable(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	row, err := h.Svc.MarkUnavailable(c.Request().Context(), id)
	if err != nil {
		if carsvc.Code(err) == carsvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "car not found"})
		}
		h.Log.Error("car mark unavailable error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "car marked as not available", "car": row})
}
