package handler

import (
	"log/slog"
	"net/http"

	"heritage/internal/delivery/http/response"
	"heritage/internal/domain/entity"
	"heritage/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReservationHandler holds dependencies for the table booking handlers.
type ReservationHandler struct {
	uc     usecase.ReservationUsecase
	logger *slog.Logger
}

// NewReservationHandler is the constructor for ReservationHandler, injected by Fx.
func NewReservationHandler(uc usecase.ReservationUsecase, logger *slog.Logger) *ReservationHandler {
	return &ReservationHandler{
		uc:     uc,
		logger: logger,
	}
}

// reservationView is the confirmation returned after a booking.
type reservationView struct {
	ID        string `json:"id"`
	QRCodeURL string `json:"qrCodeUrl"`
}

// Create handles the reservation form submission.
func (h *ReservationHandler) Create(c echo.Context) error {
	var input *usecase.ReservationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reservation input")
	}

	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	confirmation, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	view := reservationView{
		ID:        confirmation.ID.String(),
		QRCodeURL: "/reservations/" + confirmation.ID.String() + "/qr",
	}

	return response.Success(c, http.StatusCreated, view, "Reservation confirmed")
}

// TimeSlots lists the reservable service slots the form offers.
func (h *ReservationHandler) TimeSlots(c echo.Context) error {
	return response.Success(c, http.StatusOK, entity.TimeSlots, "Time slots retrieved successfully")
}

// ConfirmationQR streams the confirmation QR code PNG for a booking.
func (h *ReservationHandler) ConfirmationQR(c echo.Context) error {
	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid reservation id")
	}

	png, err := h.uc.ConfirmationQR(reservationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
