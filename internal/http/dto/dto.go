package dto

// TicketPayload — плоское JSON-представление билета от мобильного клиента.
// Ровно один набор вариантных полей имеет смысл одновременно; маппинг в
// доменную сумму делает ToTicket.
type TicketPayload struct {
	TicketType       string `json:"ticketType"`
	OrganizationName string `json:"organizationName"`
	Description      string `json:"description"`
	LogoText         string `json:"logoText"`
	BackgroundColor  string `json:"backgroundColor"`
	ForegroundColor  string `json:"foregroundColor"`
	LabelColor       string `json:"labelColor"`
	BarcodeMessage   string `json:"barcodeMessage"`
	BarcodeFormat    string `json:"barcodeFormat"`

	// eventTicket
	EventName    string `json:"eventName"`
	EventDate    string `json:"eventDate"`
	EventTime    string `json:"eventTime"`
	VenueName    string `json:"venueName"`
	VenueAddress string `json:"venueAddress"`
	SeatSection  string `json:"seatSection"`
	SeatRow      string `json:"seatRow"`
	TicketHolder string `json:"ticketHolder"`

	// boardingPass
	OriginCode       string `json:"originCode"`
	OriginCity       string `json:"originCity"`
	DestinationCode  string `json:"destinationCode"`
	DestinationCity  string `json:"destinationCity"`
	PassengerName    string `json:"passengerName"`
	DepartureTime    string `json:"departureTime"`
	FlightNumber     string `json:"flightNumber"`
	SeatClass        string `json:"seatClass"`
	BoardingGroup    string `json:"boardingGroup"`
	Gate             string `json:"gate"`
	ConfirmationCode string `json:"confirmationCode"`

	// eventTicket и boardingPass
	SeatNumber string `json:"seatNumber"`

	// coupon
	StoreName          string `json:"storeName"`
	CouponTitle        string `json:"couponTitle"`
	DiscountAmount     string `json:"discountAmount"`
	PromoCode          string `json:"promoCode"`
	ExpirationDate     string `json:"expirationDate"`
	TermsAndConditions string `json:"termsAndConditions"`

	// storeCard
	CardholderName  string `json:"cardholderName"`
	PointsBalance   string `json:"pointsBalance"`
	MembershipLevel string `json:"membershipLevel"`
	MemberSince     string `json:"memberSince"`

	// generic
	PrimaryLabel   string `json:"primaryLabel"`
	PrimaryValue   string `json:"primaryValue"`
	SecondaryLabel string `json:"secondaryLabel"`
	SecondaryValue string `json:"secondaryValue"`
}

// CreatePassRequest — тело POST /api/passes/create и PUT /api/passes/:serial
type CreatePassRequest struct {
	Ticket                *TicketPayload `json:"ticket"`
	DeviceID              string         `json:"deviceId"`
	LogoImageBase64       string         `json:"logoImageBase64"`
	IconImageBase64       string         `json:"iconImageBase64"`
	BackgroundImageBase64 string         `json:"backgroundImageBase64"`
	ThumbnailImageBase64  string         `json:"thumbnailImageBase64"`
	StripImageBase64      string         `json:"stripImageBase64"`
}

// PassSummaryResponse — элемент списка GET /api/passes
type PassSummaryResponse struct {
	SerialNumber string `json:"serialNumber"`
	EventName    string `json:"eventName"`
	CreatedAt    string `json:"createdAt"`
}

// HealthResponse — ответ GET /health
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// UpdatedPassesResponse — ответ стаба списка обновлённых пассов
type UpdatedPassesResponse struct {
	LastUpdated   string   `json:"lastUpdated"`
	SerialNumbers []string `json:"serialNumbers"`
}
