package usecase

import (
	"context"

	"github.com/google/uuid"
)

// ReservationUsecase handles table booking submissions.
type ReservationUsecase interface {
	// Create validates the reservation form (all fields independently,
	// returning every failing field) and books the table on the
	// gateway. The returned confirmation is local: reservations are
	// never read back.
	Create(ctx context.Context, input *ReservationInput) (*ReservationConfirmation, error)

	// ConfirmationQR renders the confirmation QR code for a booking.
	ConfirmationQR(reservationID uuid.UUID) ([]byte, error)
}

// ReservationInput defines the reservation form data as submitted.
// Date and guest count arrive as strings straight from the form.
type ReservationInput struct {
	FullName       string `json:"fullName" validate:"omitempty,max=100"`
	PhoneNumber    string `json:"phoneNumber" validate:"omitempty,max=20"`
	Date           string `json:"date" validate:"omitempty,datetime=2006-01-02"` // "2006-01-02"
	Time           string `json:"time" validate:"omitempty,max=5"`               // "HH:MM", one of the service slots
	NumberOfGuests string `json:"numberOfGuests" validate:"omitempty,max=6"`
	Notes          string `json:"notes" validate:"omitempty,max=500"`
}

// ReservationConfirmation is returned after a successful booking.
type ReservationConfirmation struct {
	ID uuid.UUID `json:"id"`
}
