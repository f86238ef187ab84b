package qrcode

import (
	"encoding/json"
	"fmt"

	"heritage/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	ReservationID string `json:"reservation_id"`
	Type          string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateReservationQR generates a confirmation QR code for a reservation
func (s *qrcodeService) GenerateReservationQR(reservationID uuid.UUID) ([]byte, error) {
	data := QRCodeData{
		ReservationID: reservationID.String(),
		Type:          "reservation",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseReservationQR parses QR code data and returns the reservation ID
func (s *qrcodeService) ParseReservationQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != "reservation" {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	reservationID, err := uuid.Parse(data.ReservationID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse reservation ID: %w", err)
	}

	return reservationID, nil
}
