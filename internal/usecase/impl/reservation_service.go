package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"heritage/config"
	"heritage/internal/domain/entity"
	"heritage/internal/domain/gateway"
	"heritage/internal/domain/service"
	"heritage/internal/usecase"
	"heritage/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const reservationDateLayout = "2006-01-02"

// reservationService implements the ReservationUsecase interface.
type reservationService struct {
	gw     gateway.Gateway
	qr     service.QRCodeService
	cfg    *config.ReservationConfig
	logger *slog.Logger
}

// NewReservationService is the constructor for reservationService.
func NewReservationService(gw gateway.Gateway, qr service.QRCodeService, cfg *config.Config, logger *slog.Logger) usecase.ReservationUsecase {
	return &reservationService{
		gw:     gw,
		qr:     qr,
		cfg:    cfg.Reservation,
		logger: logger,
	}
}

// Create validates the booking form and submits it to the gateway. All
// fields are validated independently so the response reports every
// failing field at once.
func (srv *reservationService) Create(ctx context.Context, input *usecase.ReservationInput) (*usecase.ReservationConfirmation, error) {
	reservation, err := srv.reservationFromInput(input)
	if err != nil {
		return nil, err
	}

	if err := srv.gw.CreateReservation(ctx, reservation); err != nil {
		return nil, errors.Wrap(err, "failed to create reservation")
	}

	confirmation := &usecase.ReservationConfirmation{ID: uuid.New()}
	srv.logger.Info("reservation created",
		slog.String("reservationId", confirmation.ID.String()),
		slog.String("date", input.Date),
		slog.String("time", reservation.Time))

	return confirmation, nil
}

// ConfirmationQR renders the confirmation QR code for a booking.
func (srv *reservationService) ConfirmationQR(reservationID uuid.UUID) ([]byte, error) {
	png, err := srv.qr.GenerateReservationQR(reservationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate confirmation QR code")
	}

	return png, nil
}

// reservationFromInput runs the form validators and converts the form
// strings into the booking entity.
func (srv *reservationService) reservationFromInput(input *usecase.ReservationInput) (entity.Reservation, error) {
	fieldErrs := usecase.FieldErrors{}

	name := strings.TrimSpace(input.FullName)
	if name == "" {
		fieldErrs["fullName"] = "Name is required"
	}

	phone := strings.TrimSpace(input.PhoneNumber)
	switch {
	case phone == "":
		fieldErrs["phoneNumber"] = "Phone number is required"
	case !util.IsTenDigitPhone(phone):
		fieldErrs["phoneNumber"] = "Please enter a valid 10-digit phone number"
	}

	var date time.Time
	if strings.TrimSpace(input.Date) == "" {
		fieldErrs["date"] = "Date is required"
	} else {
		parsed, err := time.Parse(reservationDateLayout, strings.TrimSpace(input.Date))
		if err != nil {
			fieldErrs["date"] = "Please enter a valid date"
		} else {
			date = parsed
		}
	}

	slot := strings.TrimSpace(input.Time)
	switch {
	case slot == "":
		fieldErrs["time"] = "Time is required"
	case !entity.IsReservableSlot(slot):
		fieldErrs["time"] = "Please choose one of the available time slots"
	}

	var guests int
	guestsRaw := strings.TrimSpace(input.NumberOfGuests)
	switch {
	case guestsRaw == "":
		fieldErrs["numberOfGuests"] = "Number of guests is required"
	default:
		parsed, err := strconv.Atoi(guestsRaw)
		switch {
		case err != nil:
			fieldErrs["numberOfGuests"] = "Number of guests is required"
		case parsed < 1:
			fieldErrs["numberOfGuests"] = "At least 1 guest is required"
		case srv.cfg != nil && srv.cfg.MaxGuests > 0 && parsed > srv.cfg.MaxGuests:
			fieldErrs["numberOfGuests"] = fmt.Sprintf("At most %d guests per reservation", srv.cfg.MaxGuests)
		default:
			guests = parsed
		}
	}

	if err := fieldErrs.OrNil(); err != nil {
		return entity.Reservation{}, err
	}

	return entity.Reservation{
		FullName:       name,
		PhoneNumber:    util.NormalizePhone(phone),
		Date:           date,
		Time:           slot,
		NumberOfGuests: guests,
		Notes:          strings.TrimSpace(input.Notes),
	}, nil
}
