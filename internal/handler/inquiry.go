package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-dealership/internal/model"
	"github.com/iliyamo/car-dealership/internal/notifier"
	"github.com/iliyamo/car-dealership/internal/repository"
)

// InquiryHandler accepts customer inquiries, persists them and relays a
// notification to the operator.
type InquiryHandler struct {
	Inquiries *repository.InquiryRepo
	Notifier  notifier.Notifier
}

type inquiryRequest struct {
	CarID   *int64  `json:"car_id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Message *string `json:"message"`
}

// SubmitInquiry handles POST /api/inquiry.  Name and email must be
// non-empty; validation happens before any storage write.  The
// notification is attempted inline after the insert, and its failure
// neither rolls back the row nor fails the request — the inquiry is
// already durably stored, so only a diagnostic is logged.
func (h *InquiryHandler) SubmitInquiry(c echo.Context) error {
	var req inquiryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Name and email are required"})
	}

	inq := model.Inquiry{
		CarID:   req.CarID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	if err := h.Inquiries.Create(c.Request().Context(), &inq); err != nil {
		if errors.Is(err, repository.ErrUnknownCar) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown car_id"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	if err := h.Notifier.Notify(c.Request().Context(), inq); err != nil {
		c.Logger().Errorf("inquiry %d stored but notification failed: %v", inq.ID, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "message": "Inquiry received"})
}
