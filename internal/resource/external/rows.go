package external

import (
	"strings"

	"github.com/Domenick1991/airdesk/internal/domain"
)

const placeholder = "-"

// OfferRow is one offer flattened for the offers table. Only the first
// segment of the first itinerary is shown.
type OfferRow struct {
	ID        string `json:"id"`
	Flight    string `json:"flight"`
	Route     string `json:"route"`
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
	Price     string `json:"price"`
	Code      string `json:"code"`
	Date      string `json:"date"`
}

func ToRows(offers []domain.Offer) []OfferRow {
	rows := make([]OfferRow, 0, len(offers))
	for _, o := range offers {
		rows = append(rows, toRow(o))
	}
	return rows
}

func toRow(o domain.Offer) OfferRow {
	var s domain.Segment
	if len(o.Itineraries) > 0 && len(o.Itineraries[0].Segments) > 0 {
		s = o.Itineraries[0].Segments[0]
	}

	code := str(s.CarrierCode) + str(s.FlightNumber)
	if code == "" {
		code = placeholder
	}

	price := placeholder
	if str(o.Total) != "" && str(o.Currency) != "" {
		price = str(o.Total) + " " + str(o.Currency)
	}

	date := placeholder
	if dep := str(s.DepartureAt); dep != "" {
		date = dep[:min(len(dep), 10)]
	}

	return OfferRow{
		ID:        o.ID,
		Flight:    code,
		Route:     strings.Join([]string{orDash(s.DepartureIata), "→", orDash(s.ArrivalIata)}, " "),
		Departure: orDash(s.DepartureAt),
		Arrival:   orDash(s.ArrivalAt),
		Price:     price,
		Code:      code,
		Date:      date,
	}
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func orDash(p *string) string {
	if v := str(p); v != "" {
		return v
	}
	return placeholder
}
