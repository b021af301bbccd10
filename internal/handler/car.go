package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-dealership/internal/repository"
)

// CarHandler serves the public inventory endpoints.
type CarHandler struct {
	Cars *repository.CarRepo
}

// GetCars handles GET /api/cars.  Both query parameters are optional
// and combine conjunctively: `featured` is tri-state ("true"
// case-insensitively enables the true filter, any other value the
// false filter) and `make` is a substring match.  The response is a
// JSON array, empty rather than null when nothing matches.
func (h *CarHandler) GetCars(c echo.Context) error {
	filter := repository.CarFilter{
		Featured: repository.ParseFeatured(c.QueryParam("featured")),
		Make:     c.QueryParam("make"),
	}
	cars, err := h.Cars.List(c.Request().Context(), filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, cars)
}

// GetCar handles GET /api/cars/:id.
func (h *CarHandler) GetCar(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	car, err := h.Cars.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Car not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, car)
}
