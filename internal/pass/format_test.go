package pass

import "testing"

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#FF0000", "rgb(255, 0, 0)"},
		{"#1C1C1E", "rgb(28, 28, 30)"},
		{"#FFFFFF", "rgb(255, 255, 255)"},
		{"8E8E93", "rgb(142, 142, 147)"},
		{"notacolor", "rgb(0, 0, 0)"},
		{"#GGGGGG", "rgb(0, 0, 0)"},
		{"#FFF", "rgb(0, 0, 0)"},
		{"", "rgb(0, 0, 0)"},
	}
	for _, tc := range tests {
		if got := HexToRGB(tc.in); got != tc.want {
			t.Errorf("HexToRGB(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeBarcodeFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "PKBarcodeFormatQR"},
		{"QR", "PKBarcodeFormatQR"},
		{"PDF417", "PKBarcodeFormatPDF417"},
		{"Aztec", "PKBarcodeFormatAztec"},
		{"Code128", "PKBarcodeFormatCode128"},
		{"PKBarcodeFormatQR", "PKBarcodeFormatQR"},
	}
	for _, tc := range tests {
		if got := NormalizeBarcodeFormat(tc.in); got != tc.want {
			t.Errorf("NormalizeBarcodeFormat(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := formatDate("2026-03-15T19:30:00Z"); got != "Mar 15, 2026" {
		t.Errorf("formatDate = %q", got)
	}
	if got := formatDate("2026-03-05"); got != "Mar 05, 2026" {
		t.Errorf("formatDate date-only = %q", got)
	}
	// непарсящийся вход проходит насквозь
	if got := formatDate("next friday"); got != "next friday" {
		t.Errorf("formatDate passthrough = %q", got)
	}
}

func TestFormatTimeAndDateTime(t *testing.T) {
	if got := formatTime("2026-03-15T19:30:00Z"); got != "19:30" {
		t.Errorf("formatTime = %q", got)
	}
	if got := formatDateTime("2026-03-15T19:30:00Z"); got != "Mar 15, 19:30" {
		t.Errorf("formatDateTime = %q", got)
	}
}

func TestToISODate(t *testing.T) {
	if got := toISODate("2026-03-15"); got != "2026-03-15T00:00:00Z" {
		t.Errorf("toISODate = %q", got)
	}
	if got := toISODate("garbage"); got != "garbage" {
		t.Errorf("toISODate passthrough = %q", got)
	}
}
