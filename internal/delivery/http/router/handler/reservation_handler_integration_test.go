package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"heritage/config"
	httpvalidator "heritage/internal/delivery/http/validator"
	"heritage/internal/domain/entity"
	"heritage/internal/infra/qrcode"
	mockGw "heritage/internal/mocks/gateway"
	"heritage/internal/usecase"
	"heritage/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestReservationHandler(t *testing.T) (*ReservationHandler, *mockGw.MockGateway) {
	gw := mockGw.NewMockGateway(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Reservation: &config.ReservationConfig{MaxGuests: 20}}
	service := impl.NewReservationService(gw, qrcode.NewQRCodeService(128, "M"), cfg, logger)

	return NewReservationHandler(service, logger), gw
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = httpvalidator.New()

	return e
}

func TestReservationHandler_Create_Integration(t *testing.T) {
	handler, gw := createTestReservationHandler(t)

	gw.EXPECT().
		CreateReservation(mock.Anything, mock.MatchedBy(func(r entity.Reservation) bool {
			return r.FullName == "Asha Verma" && r.Time == "19:30" && r.NumberOfGuests == 4
		})).
		Return(nil)

	body := `{"fullName":"Asha Verma","phoneNumber":"9876543210","date":"2026-09-12","time":"19:30","numberOfGuests":"4"}`

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "qrCodeUrl")
}

func TestReservationHandler_Create_InvalidForm(t *testing.T) {
	handler, _ := createTestReservationHandler(t)

	body := `{"fullName":"","phoneNumber":"12345","date":"2026-09-12","time":"19:30","numberOfGuests":"4"}`

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)

	// Validation failures propagate as errors for the central error
	// handler to render with every failing field.
	var fieldErrs usecase.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "fullName")
	assert.Contains(t, fieldErrs, "phoneNumber")
}

func TestReservationHandler_Create_RejectsOversizedName(t *testing.T) {
	handler, _ := createTestReservationHandler(t)

	body := `{"fullName":"` + strings.Repeat("a", 150) + `","phoneNumber":"9876543210","date":"2026-09-12","time":"19:30","numberOfGuests":"4"}`

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestReservationHandler_Create_RejectsMalformedDate(t *testing.T) {
	handler, _ := createTestReservationHandler(t)

	body := `{"fullName":"Asha Verma","phoneNumber":"9876543210","date":"12-09-2026","time":"19:30","numberOfGuests":"4"}`

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestReservationHandler_ConfirmationQR_InvalidID(t *testing.T) {
	handler, _ := createTestReservationHandler(t)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/reservations/not-a-uuid/qr", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, handler.ConfirmationQR(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
