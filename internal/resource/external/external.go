package external

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/Domenick1991/airdesk/internal/client"
	"github.com/Domenick1991/airdesk/internal/domain"
)

const (
	offersPath     = "/external/search/offers"
	statusPath     = "/external/flights/status"
	bulkStatusPath = "/external/flights/status/bulk"
)

type TravelClass string

const (
	TravelClassEconomy        TravelClass = "ECONOMY"
	TravelClassPremiumEconomy TravelClass = "PREMIUM_ECONOMY"
	TravelClassBusiness       TravelClass = "BUSINESS"
	TravelClassFirst          TravelClass = "FIRST"
)

// SearchParams are the offer search filters. Origin, Destination and Date
// (YYYY-MM-DD) are required; zero values of the rest are not sent.
type SearchParams struct {
	Origin               string
	Destination          string
	Date                 string
	Adults               int
	NonStop              *bool
	Max                  int
	CurrencyCode         string
	TravelClass          TravelClass
	IncludedAirlineCodes string
}

func (p SearchParams) Values() url.Values {
	v := url.Values{
		"origin":      {p.Origin},
		"destination": {p.Destination},
		"date":        {p.Date},
	}
	if p.Adults > 0 {
		v.Set("adults", strconv.Itoa(p.Adults))
	}
	if p.NonStop != nil {
		v.Set("nonStop", strconv.FormatBool(*p.NonStop))
	}
	if p.Max > 0 {
		v.Set("max", strconv.Itoa(p.Max))
	}
	if p.CurrencyCode != "" {
		v.Set("currencyCode", p.CurrencyCode)
	}
	if p.TravelClass != "" {
		v.Set("travelClass", string(p.TravelClass))
	}
	if p.IncludedAirlineCodes != "" {
		v.Set("includedAirlineCodes", p.IncludedAirlineCodes)
	}
	return v
}

type ExternalAPI interface {
	Search(ctx context.Context, params SearchParams) ([]domain.Offer, error)
	Status(ctx context.Context, code, date string) (*domain.FlightStatus, error)
	BulkStatus(ctx context.Context, items []domain.StatusQuery) ([]domain.BulkStatusEntry, error)
}

type Adapter struct {
	client client.Requester
}

func New(c client.Requester) *Adapter {
	return &Adapter{client: c}
}

func (a *Adapter) Search(ctx context.Context, params SearchParams) ([]domain.Offer, error) {
	missing := map[string]string{}
	if strings.TrimSpace(params.Origin) == "" {
		missing["origin"] = "required"
	}
	if strings.TrimSpace(params.Destination) == "" {
		missing["destination"] = "required"
	}
	if strings.TrimSpace(params.Date) == "" {
		missing["date"] = "required"
	}
	if len(missing) > 0 {
		return nil, &client.ValidationError{
			Reason: "origin, destination, and date are required (YYYY-MM-DD)",
			Fields: missing,
		}
	}

	var offers []domain.Offer
	if err := a.client.Get(ctx, offersPath, params.Values(), &offers); err != nil {
		return nil, fmt.Errorf("search offers: %w", err)
	}
	return offers, nil
}

// Status returns nil when the backend has no status for the flight.
func (a *Adapter) Status(ctx context.Context, code, date string) (*domain.FlightStatus, error) {
	var status *domain.FlightStatus
	params := url.Values{"code": {code}, "date": {date}}
	if err := a.client.Get(ctx, statusPath, params, &status); err != nil {
		return nil, fmt.Errorf("flight status %s on %s: %w", code, date, err)
	}
	return status, nil
}

func (a *Adapter) BulkStatus(ctx context.Context, items []domain.StatusQuery) ([]domain.BulkStatusEntry, error) {
	if items == nil {
		items = []domain.StatusQuery{}
	}
	body := struct {
		Items []domain.StatusQuery `json:"items"`
	}{Items: items}

	var result struct {
		Results []domain.BulkStatusEntry `json:"results"`
	}
	if err := a.client.Post(ctx, bulkStatusPath, body, &result); err != nil {
		return nil, fmt.Errorf("bulk flight status: %w", err)
	}
	return result.Results, nil
}

var _ ExternalAPI = (*Adapter)(nil)
