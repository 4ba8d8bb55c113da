package pass

import (
	"strings"

	"github.com/needsomevibe/passcard/pass-service/internal/models"
)

// Config — процессные идентификаторы пасса; загружаются один раз на старте
type Config struct {
	PassTypeIdentifier string
	TeamIdentifier     string
	OrganizationName   string
	WebServiceURL      string
}

const (
	defaultBackgroundColor = "#1C1C1E"
	defaultForegroundColor = "#FFFFFF"
	defaultLabelColor      = "#8E8E93"

	generatedByValue = "PassCard App"
)

// BuildDescriptor собирает pass.json-структуру из билета.
// Чистая функция: одинаковый вход даёт одинаковый дескриптор;
// authToken прикладывается вызывающим только при настроенном WebServiceURL.
func BuildDescriptor(t models.Ticket, serial string, cfg Config, authToken string) models.PassDescriptor {
	// t — копия по значению: резолвим организацию один раз,
	// backFields ниже используют уже итоговое имя
	t.OrganizationName = firstNonEmpty(t.OrganizationName, cfg.OrganizationName)

	d := models.PassDescriptor{
		FormatVersion:      1,
		PassTypeIdentifier: cfg.PassTypeIdentifier,
		TeamIdentifier:     cfg.TeamIdentifier,
		SerialNumber:       serial,
		OrganizationName:   t.OrganizationName,
		Description:        firstNonEmpty(t.Description, t.EventName(), "Pass"),
		BackgroundColor:    HexToRGB(firstNonEmpty(t.BackgroundColor, defaultBackgroundColor)),
		ForegroundColor:    HexToRGB(firstNonEmpty(t.ForegroundColor, defaultForegroundColor)),
		LabelColor:         HexToRGB(firstNonEmpty(t.LabelColor, defaultLabelColor)),
		LogoText:           t.LogoText,
		Barcodes: []models.Barcode{{
			Format:          NormalizeBarcodeFormat(t.BarcodeFormat),
			Message:         firstNonEmpty(t.BarcodeMessage, serial),
			MessageEncoding: "iso-8859-1",
		}},
	}

	if cfg.WebServiceURL != "" {
		d.WebServiceURL = cfg.WebServiceURL
		d.AuthenticationToken = authToken
	}

	switch v := t.Variant.(type) {
	case models.BoardingPass:
		d.BoardingPass = boardingPassContent(t, v)
		if v.DepartureTime != "" {
			d.RelevantDate = toISODate(v.DepartureTime)
		}
	case models.Coupon:
		d.Coupon = couponContent(t, v)
		if v.ExpirationDate != "" {
			d.ExpirationDate = toISODate(v.ExpirationDate)
		}
	case models.StoreCard:
		d.StoreCard = storeCardContent(t, v)
	case models.Generic:
		d.Generic = genericContent(t, v)
	default:
		// без варианта считаем eventTicket с пустыми полями
		ev, _ := t.Variant.(models.EventTicket)
		d.EventTicket = eventTicketContent(t, ev)
		if ev.EventDate != "" {
			d.RelevantDate = toISODate(ev.EventDate)
		}
	}
	return d
}

func newContent() *models.PassContent {
	return &models.PassContent{
		HeaderFields:    []models.Field{},
		PrimaryFields:   []models.Field{},
		SecondaryFields: []models.Field{},
		AuxiliaryFields: []models.Field{},
		BackFields:      []models.Field{},
	}
}

func eventTicketContent(t models.Ticket, v models.EventTicket) *models.PassContent {
	c := newContent()
	if v.EventTime != "" {
		c.HeaderFields = append(c.HeaderFields, models.Field{Key: "time", Label: "TIME", Value: formatTime(v.EventTime)})
	}
	c.PrimaryFields = append(c.PrimaryFields, models.Field{Key: "event", Label: "EVENT", Value: firstNonEmpty(v.EventName, "Event")})
	if v.VenueName != "" {
		c.SecondaryFields = append(c.SecondaryFields, models.Field{Key: "venue", Label: "VENUE", Value: v.VenueName})
	}
	if v.EventDate != "" {
		c.SecondaryFields = append(c.SecondaryFields, models.Field{Key: "date", Label: "DATE", Value: formatDate(v.EventDate)})
	}
	if seat := seatSummary(v); seat != "" {
		c.AuxiliaryFields = append(c.AuxiliaryFields, models.Field{Key: "seat", Label: "SEAT", Value: seat})
	}
	if v.TicketHolder != "" {
		c.AuxiliaryFields = append(c.AuxiliaryFields, models.Field{Key: "holder", Label: "ATTENDEE", Value: v.TicketHolder})
	}
	appendBackFields(c, t, v.VenueAddress)
	return c
}

// seatSummary собирает "Sec X, Row Y, Seat Z" из присутствующих частей
func seatSummary(v models.EventTicket) string {
	parts := make([]string, 0, 3)
	if v.SeatSection != "" {
		parts = append(parts, "Sec "+v.SeatSection)
	}
	if v.SeatRow != "" {
		parts = append(parts, "Row "+v.SeatRow)
	}
	if v.SeatNumber != "" {
		parts = append(parts, "Seat "+v.SeatNumber)
	}
	return strings.Join(parts, ", ")
}

func boardingPassContent(t models.Ticket, v models.BoardingPass) *models.PassContent {
	c := newContent()
	c.TransitType = "PKTransitTypeAir"
	if v.Gate != "" {
		c.HeaderFields = append(c.HeaderFields, models.Field{Key: "gate", Label: "GATE", Value: v.Gate})
	}
	c.PrimaryFields = append(c.PrimaryFields,
		models.Field{Key: "origin", Label: firstNonEmpty(v.OriginCity, "FROM"), Value: firstNonEmpty(v.OriginCode, "---")},
		models.Field{Key: "destination", Label: firstNonEmpty(v.DestinationCity, "TO"), Value: firstNonEmpty(v.DestinationCode, "---")},
	)
	if v.PassengerName != "" {
		c.SecondaryFields = append(c.SecondaryFields, models.Field{Key: "passenger", Label: "PASSENGER", Value: v.PassengerName})
	}
	if v.DepartureTime != "" {
		c.SecondaryFields = append(c.SecondaryFields, models.Field{Key: "departure", Label: "DEPARTS", Value: formatDateTime(v.DepartureTime)})
	}
	if v.FlightNumber != "" {
		c.AuxiliaryFields = append(c.AuxiliaryFields, models.Field{Key: "flight", Label: "FLIGHT", Value: v.FlightNumber})
	}
	if v.SeatNumber != "" {
		c.AuxiliaryFields = append(c.AuxiliaryFields, models.Field{Key: "seat", Label: "SEAT", Value: v.SeatNumber})
	}
	if v.SeatClass != "" {
		c.AuxiliaryFields = append(c.AuxiliaryFields, models.Field{Key: "class", Label: "CLASS", Value: v.SeatClass})
	}
	if v.BoardingGroup != "" {
		c.AuxiliaryFields = append(c.AuxiliaryFields, models.Field{Key: "group", Label: "GROUP", Value: v.BoardingGroup})
	}
	if v.ConfirmationCode != "" {
		c.BackFields = append(c.BackFields, models.Field{Key: "confirmation", Label: "Confirmation Code", Value: v.ConfirmationCode})
	}
	appendBackFields(c, t, "")
	return c
}

func couponContent(t models.Ticket, v models.Coupon) *models.PassContent {
	c := newContent()
	c.PrimaryFields = append(c.PrimaryFields, models.Field{
		Key:   "offer",
		Label: firstNonEmpty(v.StoreName, "OFFER"),
		Value: firstNonEmpty(v.DiscountAmount, v.CouponTitle, "Special Offer"),
	})
	// заголовок купона уходит во второй ряд, только если скидка уже заняла первый
	if v.CouponTitle != "" && v.DiscountAmount != "" {
		c.SecondaryFields = append(c.SecondaryFields, models.Field{Key: "title", Label: "PROMOTION", Value: v.CouponTitle})
	}
	if v.PromoCode != "" {
		c.SecondaryFields = append(c.SecondaryFields, models.Field{Key: "code", Label: "CODE", Value: v.PromoCode})
	}
	if v.ExpirationDate != "" {
		c.AuxiliaryFields = append(c.AuxiliaryFields, models.Field{Key: "expires", Label: "VALID UNTIL", Value: formatDate(v.ExpirationDate)})
	}
	if v.TermsAndConditions != "" {
		c.BackFields = append(c.BackFields, models.Field{Key: "terms", Label: "Terms & Conditions", Value: v.TermsAndConditions})
	}
	appendBackFields(c, t, "")
	return c
}

func storeCardContent(t models.Ticket, v models.StoreCard) *models.PassContent {
	c := newContent()
	if v.PointsBalance != "" {
		c.PrimaryFields = append(c.PrimaryFields, models.Field{Key: "balance", Label: "POINTS", Value: v.PointsBalance})
	} else {
		c.PrimaryFields = append(c.PrimaryFields, models.Field{Key: "member", Label: "MEMBER", Value: firstNonEmpty(v.CardholderName, "Member")})
	}
	if v.MembershipLevel != "" {
		c.SecondaryFields = append(c.SecondaryFields, models.Field{Key: "level", Label: "LEVEL", Value: v.MembershipLevel})
	}
	if v.CardholderName != "" && v.PointsBalance != "" {
		c.SecondaryFields = append(c.SecondaryFields, models.Field{Key: "name", Label: "NAME", Value: v.CardholderName})
	}
	if v.MemberSince != "" {
		c.AuxiliaryFields = append(c.AuxiliaryFields, models.Field{Key: "since", Label: "MEMBER SINCE", Value: formatDate(v.MemberSince)})
	}
	appendBackFields(c, t, "")
	return c
}

func genericContent(t models.Ticket, v models.Generic) *models.PassContent {
	c := newContent()
	if v.PrimaryValue != "" {
		c.PrimaryFields = append(c.PrimaryFields, models.Field{Key: "primary", Label: v.PrimaryLabel, Value: v.PrimaryValue})
	}
	if v.SecondaryValue != "" {
		c.SecondaryFields = append(c.SecondaryFields, models.Field{Key: "secondary", Label: v.SecondaryLabel, Value: v.SecondaryValue})
	}
	appendBackFields(c, t, "")
	return c
}

// appendBackFields — общий хвост backFields: issued by, адрес, описание, маркер генератора
func appendBackFields(c *models.PassContent, t models.Ticket, venueAddress string) {
	c.BackFields = append(c.BackFields, models.Field{Key: "organization", Label: "Issued by", Value: t.OrganizationName})
	if venueAddress != "" {
		c.BackFields = append(c.BackFields, models.Field{Key: "address", Label: "Address", Value: venueAddress})
	}
	if t.Description != "" {
		c.BackFields = append(c.BackFields, models.Field{Key: "description", Label: "Description", Value: t.Description})
	}
	c.BackFields = append(c.BackFields, models.Field{Key: "generated", Label: "Generated by", Value: generatedByValue})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
