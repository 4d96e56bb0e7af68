package domain

// Offer is a read-only third-party flight offer returned by the search proxy.
// Every scalar may be null upstream.
type Offer struct {
	ID                string      `json:"id"`
	ValidatingCarrier *string     `json:"validatingCarrier"`
	Currency          *string     `json:"currency"`
	Total             *string     `json:"total"`
	Itineraries       []Itinerary `json:"itineraries"`
}

type Itinerary struct {
	Duration *string   `json:"duration"`
	Segments []Segment `json:"segments"`
}

type Segment struct {
	CarrierCode   *string `json:"carrierCode"`
	FlightNumber  *string `json:"flightNumber"`
	DepartureIata *string `json:"departureIata"`
	DepartureAt   *string `json:"departureAt"`
	ArrivalIata   *string `json:"arrivalIata"`
	ArrivalAt     *string `json:"arrivalAt"`
}

type FlightStatus struct {
	CarrierCode        *string `json:"carrierCode"`
	FlightNumber       *string `json:"flightNumber"`
	Status             *string `json:"status"`
	DepartureIata      *string `json:"departureIata"`
	DepartureScheduled *string `json:"departureScheduled"`
	DepartureEstimated *string `json:"departureEstimated"`
	ArrivalIata        *string `json:"arrivalIata"`
	ArrivalScheduled   *string `json:"arrivalScheduled"`
	ArrivalEstimated   *string `json:"arrivalEstimated"`
}

type StatusError string

const (
	StatusErrorInvalidInput StatusError = "INVALID_INPUT"
	StatusErrorPastDate     StatusError = "PAST_DATE"
	StatusErrorNotFound     StatusError = "NOT_FOUND"
)

type StatusQuery struct {
	Code string `json:"code"`
	Date string `json:"date"`
}

type BulkStatusEntry struct {
	Code   string        `json:"code"`
	Date   string        `json:"date"`
	Status *FlightStatus `json:"status"`
	Error  *StatusError  `json:"error"`
}
