package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"heritage/config"
	"heritage/internal/domain/entity"
	mockGw "heritage/internal/mocks/gateway"
	mockSvc "heritage/internal/mocks/service"
	"heritage/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestReservationService(t *testing.T) (usecase.ReservationUsecase, *mockGw.MockGateway, *mockSvc.MockQRCodeService) {
	gw := mockGw.NewMockGateway(t)
	qr := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{Reservation: &config.ReservationConfig{MaxGuests: 20}}

	return NewReservationService(gw, qr, cfg, logger), gw, qr
}

func validReservationInput() *usecase.ReservationInput {
	return &usecase.ReservationInput{
		FullName:       "Asha Verma",
		PhoneNumber:    "9876543210",
		Date:           "2026-09-12",
		Time:           "19:30",
		NumberOfGuests: "4",
		Notes:          "window table",
	}
}

func TestReservationService_Create_Success(t *testing.T) {
	service, gw, _ := createTestReservationService(t)

	ctx := context.Background()
	expectedDate, err := time.Parse("2006-01-02", "2026-09-12")
	require.NoError(t, err)

	gw.EXPECT().
		CreateReservation(ctx, entity.Reservation{
			FullName:       "Asha Verma",
			PhoneNumber:    "9876543210",
			Date:           expectedDate,
			Time:           "19:30",
			NumberOfGuests: 4,
			Notes:          "window table",
		}).
		Return(nil)

	confirmation, err := service.Create(ctx, validReservationInput())

	require.NoError(t, err)
	require.NotNil(t, confirmation)
	assert.NotEqual(t, uuid.Nil, confirmation.ID)
}

func TestReservationService_Create_AllFieldsReported(t *testing.T) {
	service, _, _ := createTestReservationService(t)

	_, err := service.Create(context.Background(), &usecase.ReservationInput{})

	var fieldErrs usecase.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "Name is required", fieldErrs["fullName"])
	assert.Equal(t, "Phone number is required", fieldErrs["phoneNumber"])
	assert.Equal(t, "Date is required", fieldErrs["date"])
	assert.Equal(t, "Time is required", fieldErrs["time"])
	assert.Equal(t, "Number of guests is required", fieldErrs["numberOfGuests"])
}

func TestReservationService_Create_PhoneValidation(t *testing.T) {
	service, gw, _ := createTestReservationService(t)
	ctx := context.Background()

	input := validReservationInput()
	input.PhoneNumber = "12345"
	_, err := service.Create(ctx, input)

	var fieldErrs usecase.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "Please enter a valid 10-digit phone number", fieldErrs["phoneNumber"])

	// Whitespace inside an otherwise valid number is ignored and the
	// stored number is normalized.
	gw.EXPECT().
		CreateReservation(ctx, mock.MatchedBy(func(r entity.Reservation) bool {
			return r.PhoneNumber == "9876543210"
		})).
		Return(nil)

	input = validReservationInput()
	input.PhoneNumber = "98765 43210"
	_, err = service.Create(ctx, input)
	require.NoError(t, err)
}

func TestReservationService_Create_GuestValidation(t *testing.T) {
	service, _, _ := createTestReservationService(t)

	tests := []struct {
		name   string
		guests string
		want   string
	}{
		{name: "zero guests", guests: "0", want: "At least 1 guest is required"},
		{name: "negative guests", guests: "-2", want: "At least 1 guest is required"},
		{name: "not a number", guests: "four", want: "Number of guests is required"},
		{name: "over the limit", guests: "21", want: "At most 20 guests per reservation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validReservationInput()
			input.NumberOfGuests = tt.guests

			_, err := service.Create(context.Background(), input)

			var fieldErrs usecase.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			assert.Equal(t, tt.want, fieldErrs["numberOfGuests"])
		})
	}
}

func TestReservationService_Create_InvalidSlot(t *testing.T) {
	service, _, _ := createTestReservationService(t)

	input := validReservationInput()
	input.Time = "15:00"

	_, err := service.Create(context.Background(), input)

	var fieldErrs usecase.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "time")
}

func TestReservationService_Create_GatewayError(t *testing.T) {
	service, gw, _ := createTestReservationService(t)

	ctx := context.Background()
	gw.EXPECT().CreateReservation(ctx, mock.Anything).Return(errors.New("gateway down"))

	confirmation, err := service.Create(ctx, validReservationInput())

	assert.Error(t, err)
	assert.Nil(t, confirmation)
	assert.Contains(t, err.Error(), "failed to create reservation")
}

func TestReservationService_ConfirmationQR(t *testing.T) {
	service, _, qr := createTestReservationService(t)

	reservationID := uuid.New()
	qr.EXPECT().GenerateReservationQR(reservationID).Return([]byte{0x89, 0x50, 0x4e, 0x47}, nil)

	png, err := service.ConfirmationQR(reservationID)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
