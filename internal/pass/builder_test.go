package pass

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/needsomevibe/passcard/pass-service/internal/models"
)

var testCfg = Config{
	PassTypeIdentifier: "pass.com.needsomevibe.passcard",
	TeamIdentifier:     "XFL8CQ52JZ",
	OrganizationName:   "PassCard",
}

func TestBuildDescriptorEventTicket(t *testing.T) {
	ticket := models.Ticket{
		OrganizationName: "Acme",
		BarcodeMessage:   "ABC123",
		BarcodeFormat:    "QR",
		Variant: models.EventTicket{
			EventName:    "Launch",
			EventDate:    "2026-03-15T19:30:00Z",
			EventTime:    "2026-03-15T19:30:00Z",
			VenueName:    "Main Hall",
			VenueAddress: "1 Main St",
			SeatSection:  "A",
			SeatRow:      "12",
			SeatNumber:   "7",
			TicketHolder: "Jordan Lee",
		},
	}

	d := BuildDescriptor(ticket, "PASS-1", testCfg, "")

	if d.FormatVersion != 1 || d.SerialNumber != "PASS-1" {
		t.Fatalf("envelope: %+v", d)
	}
	if d.OrganizationName != "Acme" {
		t.Errorf("organizationName = %q", d.OrganizationName)
	}
	if d.Description != "Launch" {
		t.Errorf("description = %q, want event name fallback", d.Description)
	}
	if d.RelevantDate != "2026-03-15T19:30:00Z" {
		t.Errorf("relevantDate = %q", d.RelevantDate)
	}
	wantBarcodes := []models.Barcode{{Format: "PKBarcodeFormatQR", Message: "ABC123", MessageEncoding: "iso-8859-1"}}
	if diff := cmp.Diff(wantBarcodes, d.Barcodes); diff != "" {
		t.Errorf("barcodes (-want +got):\n%s", diff)
	}

	c := d.EventTicket
	if c == nil {
		t.Fatal("eventTicket content missing")
	}
	wantPrimary := []models.Field{{Key: "event", Label: "EVENT", Value: "Launch"}}
	if diff := cmp.Diff(wantPrimary, c.PrimaryFields); diff != "" {
		t.Errorf("primaryFields (-want +got):\n%s", diff)
	}
	wantHeader := []models.Field{{Key: "time", Label: "TIME", Value: "19:30"}}
	if diff := cmp.Diff(wantHeader, c.HeaderFields); diff != "" {
		t.Errorf("headerFields (-want +got):\n%s", diff)
	}
	wantSecondary := []models.Field{
		{Key: "venue", Label: "VENUE", Value: "Main Hall"},
		{Key: "date", Label: "DATE", Value: "Mar 15, 2026"},
	}
	if diff := cmp.Diff(wantSecondary, c.SecondaryFields); diff != "" {
		t.Errorf("secondaryFields (-want +got):\n%s", diff)
	}
	wantAux := []models.Field{
		{Key: "seat", Label: "SEAT", Value: "Sec A, Row 12, Seat 7"},
		{Key: "holder", Label: "ATTENDEE", Value: "Jordan Lee"},
	}
	if diff := cmp.Diff(wantAux, c.AuxiliaryFields); diff != "" {
		t.Errorf("auxiliaryFields (-want +got):\n%s", diff)
	}
	wantBack := []models.Field{
		{Key: "organization", Label: "Issued by", Value: "Acme"},
		{Key: "address", Label: "Address", Value: "1 Main St"},
		{Key: "generated", Label: "Generated by", Value: "PassCard App"},
	}
	if diff := cmp.Diff(wantBack, c.BackFields); diff != "" {
		t.Errorf("backFields (-want +got):\n%s", diff)
	}
}

func TestBuildDescriptorSeatSummaryPartial(t *testing.T) {
	d := BuildDescriptor(models.Ticket{Variant: models.EventTicket{EventName: "X", SeatRow: "4"}}, "S", testCfg, "")
	aux := d.EventTicket.AuxiliaryFields
	if len(aux) != 1 || aux[0].Value != "Row 4" {
		t.Fatalf("auxiliaryFields = %+v", aux)
	}
}

func TestBuildDescriptorBoardingPass(t *testing.T) {
	ticket := models.Ticket{
		Variant: models.BoardingPass{
			OriginCode:      "JFK",
			DestinationCode: "LAX",
			DepartureTime:   "2026-05-01T08:45:00Z",
			PassengerName:   "Sam Carter",
			FlightNumber:    "AA100",
			SeatNumber:      "14C",
			SeatClass:       "Economy",
			BoardingGroup:   "3",
			Gate:            "B22",
		},
	}

	d := BuildDescriptor(ticket, "S", testCfg, "")
	c := d.BoardingPass
	if c == nil {
		t.Fatal("boardingPass content missing")
	}
	if c.TransitType != "PKTransitTypeAir" {
		t.Errorf("transitType = %q", c.TransitType)
	}
	// без городов label'ы падают в FROM/TO
	wantPrimary := []models.Field{
		{Key: "origin", Label: "FROM", Value: "JFK"},
		{Key: "destination", Label: "TO", Value: "LAX"},
	}
	if diff := cmp.Diff(wantPrimary, c.PrimaryFields); diff != "" {
		t.Errorf("primaryFields (-want +got):\n%s", diff)
	}
	if d.RelevantDate != "2026-05-01T08:45:00Z" {
		t.Errorf("relevantDate = %q", d.RelevantDate)
	}
	wantAux := []models.Field{
		{Key: "flight", Label: "FLIGHT", Value: "AA100"},
		{Key: "seat", Label: "SEAT", Value: "14C"},
		{Key: "class", Label: "CLASS", Value: "Economy"},
		{Key: "group", Label: "GROUP", Value: "3"},
	}
	if diff := cmp.Diff(wantAux, c.AuxiliaryFields); diff != "" {
		t.Errorf("auxiliaryFields (-want +got):\n%s", diff)
	}
}

func TestBuildDescriptorBoardingPassCityLabels(t *testing.T) {
	d := BuildDescriptor(models.Ticket{Variant: models.BoardingPass{
		OriginCode: "JFK", OriginCity: "New York",
		DestinationCode: "LAX", DestinationCity: "Los Angeles",
	}}, "S", testCfg, "")
	p := d.BoardingPass.PrimaryFields
	if p[0].Label != "New York" || p[1].Label != "Los Angeles" {
		t.Fatalf("city labels: %+v", p)
	}
}

func TestBuildDescriptorCoupon(t *testing.T) {
	ticket := models.Ticket{
		Variant: models.Coupon{
			StoreName:      "Acme Store",
			CouponTitle:    "Spring Sale",
			DiscountAmount: "20% OFF",
			PromoCode:      "SPRING20",
			ExpirationDate: "2026-06-30",
		},
	}

	d := BuildDescriptor(ticket, "S", testCfg, "")
	c := d.Coupon
	wantPrimary := []models.Field{{Key: "offer", Label: "Acme Store", Value: "20% OFF"}}
	if diff := cmp.Diff(wantPrimary, c.PrimaryFields); diff != "" {
		t.Errorf("primaryFields (-want +got):\n%s", diff)
	}
	wantSecondary := []models.Field{
		{Key: "title", Label: "PROMOTION", Value: "Spring Sale"},
		{Key: "code", Label: "CODE", Value: "SPRING20"},
	}
	if diff := cmp.Diff(wantSecondary, c.SecondaryFields); diff != "" {
		t.Errorf("secondaryFields (-want +got):\n%s", diff)
	}
	if d.ExpirationDate != "2026-06-30T00:00:00Z" {
		t.Errorf("expirationDate = %q", d.ExpirationDate)
	}
}

func TestBuildDescriptorCouponTitleOnly(t *testing.T) {
	// без скидки заголовок занимает primary, secondary title не дублируется
	d := BuildDescriptor(models.Ticket{Variant: models.Coupon{CouponTitle: "Free Coffee"}}, "S", testCfg, "")
	c := d.Coupon
	if c.PrimaryFields[0].Value != "Free Coffee" || c.PrimaryFields[0].Label != "OFFER" {
		t.Fatalf("primaryFields = %+v", c.PrimaryFields)
	}
	if len(c.SecondaryFields) != 0 {
		t.Fatalf("secondaryFields = %+v", c.SecondaryFields)
	}
}

func TestBuildDescriptorStoreCard(t *testing.T) {
	d := BuildDescriptor(models.Ticket{Variant: models.StoreCard{
		CardholderName:  "Robin Diaz",
		PointsBalance:   "4200",
		MembershipLevel: "Gold",
		MemberSince:     "2020-01-15",
	}}, "S", testCfg, "")
	c := d.StoreCard
	if c.PrimaryFields[0].Key != "balance" || c.PrimaryFields[0].Value != "4200" {
		t.Fatalf("primaryFields = %+v", c.PrimaryFields)
	}
	wantSecondary := []models.Field{
		{Key: "level", Label: "LEVEL", Value: "Gold"},
		{Key: "name", Label: "NAME", Value: "Robin Diaz"},
	}
	if diff := cmp.Diff(wantSecondary, c.SecondaryFields); diff != "" {
		t.Errorf("secondaryFields (-want +got):\n%s", diff)
	}
}

func TestBuildDescriptorStoreCardNoPoints(t *testing.T) {
	d := BuildDescriptor(models.Ticket{Variant: models.StoreCard{CardholderName: "Robin Diaz"}}, "S", testCfg, "")
	c := d.StoreCard
	if c.PrimaryFields[0].Key != "member" || c.PrimaryFields[0].Label != "MEMBER" {
		t.Fatalf("primaryFields = %+v", c.PrimaryFields)
	}
	if len(c.SecondaryFields) != 0 {
		t.Fatalf("secondaryFields = %+v", c.SecondaryFields)
	}
}

func TestBuildDescriptorGeneric(t *testing.T) {
	d := BuildDescriptor(models.Ticket{Variant: models.Generic{
		PrimaryLabel: "MEMBER", PrimaryValue: "Alex",
		SecondaryLabel: "ID", SecondaryValue: "42",
	}}, "S", testCfg, "")
	c := d.Generic
	if c.PrimaryFields[0].Label != "MEMBER" || c.PrimaryFields[0].Value != "Alex" {
		t.Fatalf("primaryFields = %+v", c.PrimaryFields)
	}
	if c.SecondaryFields[0].Label != "ID" || c.SecondaryFields[0].Value != "42" {
		t.Fatalf("secondaryFields = %+v", c.SecondaryFields)
	}
	if len(c.AuxiliaryFields) != 0 {
		t.Fatalf("auxiliaryFields = %+v", c.AuxiliaryFields)
	}
}

func TestBuildDescriptorDefaults(t *testing.T) {
	d := BuildDescriptor(models.Ticket{}, "PASS-42", testCfg, "")
	if d.OrganizationName != "PassCard" {
		t.Errorf("organizationName = %q", d.OrganizationName)
	}
	if d.Description != "Pass" {
		t.Errorf("description = %q", d.Description)
	}
	if d.BackgroundColor != "rgb(28, 28, 30)" || d.ForegroundColor != "rgb(255, 255, 255)" || d.LabelColor != "rgb(142, 142, 147)" {
		t.Errorf("colors: %s / %s / %s", d.BackgroundColor, d.ForegroundColor, d.LabelColor)
	}
	// сообщение штрих-кода дефолтится в серийник
	if d.Barcodes[0].Message != "PASS-42" {
		t.Errorf("barcode message = %q", d.Barcodes[0].Message)
	}
	if d.EventTicket == nil {
		t.Error("nil variant must default to eventTicket")
	}
}

func TestBuildDescriptorWebService(t *testing.T) {
	cfg := testCfg
	cfg.WebServiceURL = "https://passes.example.com"
	d := BuildDescriptor(models.Ticket{}, "S", cfg, "deadbeef")
	if d.WebServiceURL != "https://passes.example.com" || d.AuthenticationToken != "deadbeef" {
		t.Fatalf("webServiceURL=%q token=%q", d.WebServiceURL, d.AuthenticationToken)
	}

	d = BuildDescriptor(models.Ticket{}, "S", testCfg, "deadbeef")
	if d.WebServiceURL != "" || d.AuthenticationToken != "" {
		t.Fatalf("token must not attach without webServiceURL")
	}
}

func TestBuildDescriptorDeterministic(t *testing.T) {
	ticket := models.Ticket{
		OrganizationName: "Acme",
		Description:      "desc",
		Variant:          models.EventTicket{EventName: "Launch", EventDate: "2026-03-15"},
	}
	a := BuildDescriptor(ticket, "PASS-1", testCfg, "tok")
	b := BuildDescriptor(ticket, "PASS-1", testCfg, "tok")

	aj, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		t.Fatal(err)
	}
	bj, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(aj, bj) {
		t.Error("identical input must produce byte-identical pass.json")
	}
}
