package handler

import (
	"database/sql"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-dealership/internal/database"
)

// AdminHandler exposes operator-only maintenance endpoints.  The router
// registers these behind a bearer-token check.
type AdminHandler struct {
	DB      *sql.DB
	Dialect database.Dialect
}

// Seed handles GET /api/seed: it re-runs schema creation and the
// zero-row seeding check.  Seeding is strictly idempotent, so calling
// this against a populated catalog changes nothing and reports
// seeded=false.
func (h *AdminHandler) Seed(c echo.Context) error {
	ctx := c.Request().Context()
	if err := database.EnsureSchema(ctx, h.DB, h.Dialect); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": err.Error()})
	}
	seeded, err := database.SeedIfEmpty(ctx, h.DB, h.Dialect)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Database initialized",
		"seeded":  seeded,
	})
}
