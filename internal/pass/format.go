package pass

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// HexToRGB переводит "#RRGGBB" в строку "rgb(r, g, b)".
// Невалидный вход даёт "rgb(0, 0, 0)", а не ошибку.
func HexToRGB(hexColor string) string {
	h := strings.TrimPrefix(strings.TrimSpace(hexColor), "#")
	if len(h) != 6 {
		return "rgb(0, 0, 0)"
	}
	r, err1 := strconv.ParseUint(h[0:2], 16, 8)
	g, err2 := strconv.ParseUint(h[2:4], 16, 8)
	b, err3 := strconv.ParseUint(h[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return "rgb(0, 0, 0)"
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

// NormalizeBarcodeFormat приводит короткие имена (QR, PDF417, Aztec, Code128)
// к константам PKBarcodeFormat*; пустой вход — QR
func NormalizeBarcodeFormat(format string) string {
	switch strings.TrimSpace(format) {
	case "", "QR", "qr":
		return "PKBarcodeFormatQR"
	case "PDF417", "pdf417":
		return "PKBarcodeFormatPDF417"
	case "Aztec", "aztec":
		return "PKBarcodeFormatAztec"
	case "Code128", "code128":
		return "PKBarcodeFormatCode128"
	}
	return format
}

// layout-ы принимаемых строк даты: RFC3339, без зоны, только дата
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// formatDate — "Jan 02, 2006"; непарсящийся вход возвращается как есть
func formatDate(s string) string {
	if t, ok := parseDate(s); ok {
		return t.Format("Jan 02, 2006")
	}
	return s
}

// formatTime — "15:04"
func formatTime(s string) string {
	if t, ok := parseDate(s); ok {
		return t.Format("15:04")
	}
	return s
}

// formatDateTime — "Jan 02, 15:04"
func formatDateTime(s string) string {
	if t, ok := parseDate(s); ok {
		return t.Format("Jan 02, 15:04")
	}
	return s
}

// toISODate — RFC3339 для relevantDate/expirationDate
func toISODate(s string) string {
	if t, ok := parseDate(s); ok {
		return t.Format(time.RFC3339)
	}
	return s
}
