package dto

import (
	"encoding/base64"
	"time"

	"github.com/needsomevibe/passcard/pass-service/internal/models"
	"github.com/needsomevibe/passcard/pass-service/internal/service"
)

// ToTicket преобразует плоский payload в доменный билет-сумму;
// неизвестный или пустой ticketType трактуется как eventTicket
func (p TicketPayload) ToTicket() models.Ticket {
	t := models.Ticket{
		OrganizationName: p.OrganizationName,
		Description:      p.Description,
		LogoText:         p.LogoText,
		BackgroundColor:  p.BackgroundColor,
		ForegroundColor:  p.ForegroundColor,
		LabelColor:       p.LabelColor,
		BarcodeMessage:   p.BarcodeMessage,
		BarcodeFormat:    p.BarcodeFormat,
	}

	switch models.TicketKind(p.TicketType) {
	case models.KindBoardingPass:
		t.Variant = models.BoardingPass{
			OriginCode:       p.OriginCode,
			OriginCity:       p.OriginCity,
			DestinationCode:  p.DestinationCode,
			DestinationCity:  p.DestinationCity,
			PassengerName:    p.PassengerName,
			DepartureTime:    p.DepartureTime,
			FlightNumber:     p.FlightNumber,
			SeatNumber:       p.SeatNumber,
			SeatClass:        p.SeatClass,
			BoardingGroup:    p.BoardingGroup,
			Gate:             p.Gate,
			ConfirmationCode: p.ConfirmationCode,
		}
	case models.KindCoupon:
		t.Variant = models.Coupon{
			StoreName:          p.StoreName,
			CouponTitle:        p.CouponTitle,
			DiscountAmount:     p.DiscountAmount,
			PromoCode:          p.PromoCode,
			ExpirationDate:     p.ExpirationDate,
			TermsAndConditions: p.TermsAndConditions,
		}
	case models.KindStoreCard:
		t.Variant = models.StoreCard{
			CardholderName:  p.CardholderName,
			PointsBalance:   p.PointsBalance,
			MembershipLevel: p.MembershipLevel,
			MemberSince:     p.MemberSince,
		}
	case models.KindGeneric:
		t.Variant = models.Generic{
			PrimaryLabel:   p.PrimaryLabel,
			PrimaryValue:   p.PrimaryValue,
			SecondaryLabel: p.SecondaryLabel,
			SecondaryValue: p.SecondaryValue,
		}
	default:
		t.Variant = models.EventTicket{
			EventName:    p.EventName,
			EventDate:    p.EventDate,
			EventTime:    p.EventTime,
			VenueName:    p.VenueName,
			VenueAddress: p.VenueAddress,
			SeatSection:  p.SeatSection,
			SeatRow:      p.SeatRow,
			SeatNumber:   p.SeatNumber,
			TicketHolder: p.TicketHolder,
		}
	}
	return t
}

// ToImages декодирует base64-картинки запроса. Битая картинка просто
// выпадает из набора (иконку дальше заменит заглушка) — запрос
// из-за неё не падает.
func (r CreatePassRequest) ToImages() models.Images {
	return models.Images{
		Icon:       decodeImage(r.IconImageBase64),
		Logo:       decodeImage(r.LogoImageBase64),
		Background: decodeImage(r.BackgroundImageBase64),
		Thumbnail:  decodeImage(r.ThumbnailImageBase64),
		Strip:      decodeImage(r.StripImageBase64),
	}
}

func decodeImage(encoded string) []byte {
	if encoded == "" {
		return nil
	}
	b, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}
	return b
}

// FromSummaries формирует список для GET /api/passes
func FromSummaries(in []service.PassSummary) []PassSummaryResponse {
	out := make([]PassSummaryResponse, 0, len(in))
	for _, s := range in {
		out = append(out, PassSummaryResponse{
			SerialNumber: s.SerialNumber,
			EventName:    s.EventName,
			CreatedAt:    s.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}
