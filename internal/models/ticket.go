package models

// TicketKind — вид пасса Apple Wallet; совпадает с ключом контент-блока в pass.json
type TicketKind string

const (
	KindEventTicket  TicketKind = "eventTicket"
	KindBoardingPass TicketKind = "boardingPass"
	KindCoupon       TicketKind = "coupon"
	KindStoreCard    TicketKind = "storeCard"
	KindGeneric      TicketKind = "generic"
)

// Variant — закрытое множество видов билета
type Variant interface {
	Kind() TicketKind
}

// Ticket — канонический вход генератора: общий конверт + вариант.
// Неизменяем после передачи в пайплайн.
type Ticket struct {
	OrganizationName string
	Description      string
	LogoText         string
	BackgroundColor  string
	ForegroundColor  string
	LabelColor       string
	BarcodeMessage   string
	BarcodeFormat    string
	Variant          Variant
}

// Kind возвращает вид билета; без варианта билет считается eventTicket
func (t Ticket) Kind() TicketKind {
	if t.Variant == nil {
		return KindEventTicket
	}
	return t.Variant.Kind()
}

// EventName — имя события для сводки list(); пусто для остальных видов
func (t Ticket) EventName() string {
	if ev, ok := t.Variant.(EventTicket); ok {
		return ev.EventName
	}
	return ""
}

type EventTicket struct {
	EventName    string
	EventDate    string
	EventTime    string
	VenueName    string
	VenueAddress string
	SeatSection  string
	SeatRow      string
	SeatNumber   string
	TicketHolder string
}

func (EventTicket) Kind() TicketKind { return KindEventTicket }

type BoardingPass struct {
	OriginCode       string
	OriginCity       string
	DestinationCode  string
	DestinationCity  string
	PassengerName    string
	DepartureTime    string
	FlightNumber     string
	SeatNumber       string
	SeatClass        string
	BoardingGroup    string
	Gate             string
	ConfirmationCode string
}

func (BoardingPass) Kind() TicketKind { return KindBoardingPass }

type Coupon struct {
	StoreName          string
	CouponTitle        string
	DiscountAmount     string
	PromoCode          string
	ExpirationDate     string
	TermsAndConditions string
}

func (Coupon) Kind() TicketKind { return KindCoupon }

type StoreCard struct {
	CardholderName  string
	PointsBalance   string
	MembershipLevel string
	MemberSince     string
}

func (StoreCard) Kind() TicketKind { return KindStoreCard }

type Generic struct {
	PrimaryLabel   string
	PrimaryValue   string
	SecondaryLabel string
	SecondaryValue string
}

func (Generic) Kind() TicketKind { return KindGeneric }
