package service

import "github.com/google/uuid"

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateReservationQR generates a confirmation QR code for a reservation
	GenerateReservationQR(reservationID uuid.UUID) ([]byte, error)

	// ParseReservationQR parses QR code data and returns the reservation ID
	ParseReservationQR(qrData string) (uuid.UUID, error)
}
