package util

import (
	"testing"

	"heritage/internal/domain/entity"
)

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		price    entity.Paise
		expected string
	}{
		{name: "whole rupees", price: 29500, expected: "₹295.00"},
		{name: "with paise", price: 29550, expected: "₹295.50"},
		{name: "under a rupee", price: 75, expected: "₹0.75"},
		{name: "zero", price: 0, expected: "₹0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatPrice(tt.price); got != tt.expected {
				t.Fatalf("FormatPrice(%d) = %s, want %s", tt.price, got, tt.expected)
			}
		})
	}
}

func TestParsePrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected entity.Paise
		wantErr  bool
	}{
		{name: "whole rupees", input: "295.00", expected: 29500},
		{name: "no decimals", input: "295", expected: 29500},
		{name: "single fractional digit", input: "12.5", expected: 1250},
		{name: "no whole part", input: ".75", expected: 75},
		{name: "half paisa rounds up", input: "1.005", expected: 101},
		{name: "smallest half paisa rounds up", input: "0.005", expected: 1},
		{name: "float artifact half rounds up", input: "2.675", expected: 268},
		{name: "just below half rounds down", input: "1.0049", expected: 100},
		{name: "trailing digits past half stay down", input: "1.00499", expected: 100},
		{name: "surrounding whitespace", input: " 12.50 ", expected: 1250},
		{name: "empty", input: "", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "two decimal points", input: "1.2.3", wantErr: true},
		{name: "exponent notation", input: "1e3", wantErr: true},
		{name: "lone decimal point", input: ".", wantErr: true},
		{name: "negative", input: "-5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParsePrice(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePrice(%q) expected error, got %d", tt.input, got)
				}

				return
			}
			if err != nil {
				t.Fatalf("ParsePrice(%q) returned error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Fatalf("ParsePrice(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParsePrice_RoundTripsWithFormatPrice(t *testing.T) {
	t.Parallel()

	got, err := ParsePrice("295.00")
	if err != nil {
		t.Fatal(err)
	}
	if got != 29500 {
		t.Fatalf("ParsePrice(\"295.00\") = %d, want 29500", got)
	}
	if formatted := FormatPrice(got); formatted != "₹295.00" {
		t.Fatalf("FormatPrice(%d) = %s, want ₹295.00", got, formatted)
	}
}

func TestIsTenDigitPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "valid", input: "9876543210", want: true},
		{name: "valid with spaces", input: "98765 43210", want: true},
		{name: "too short", input: "12345", want: false},
		{name: "too long", input: "98765432100", want: false},
		{name: "letters", input: "98765abcde", want: false},
		{name: "empty", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsTenDigitPhone(tt.input); got != tt.want {
				t.Fatalf("IsTenDigitPhone(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
