package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlightID is the canonical flight identifier. Some backend builds serialize it
// as a string; a string holding a base-10 integer is coerced, anything else is
// rejected.
type FlightID int64

func (id *FlightID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("flight id %q is not an integer", s)
		}
		*id = FlightID(n)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flight id: %w", err)
	}
	*id = FlightID(n)
	return nil
}

type Flight struct {
	ID              FlightID `json:"id"`
	FlightNumber    string   `json:"flightNumber"`
	OriginCode      string   `json:"originCode"`
	OriginName      string   `json:"originName"`
	DestinationCode string   `json:"destinationCode"`
	DestinationName string   `json:"destinationName"`
	DepartureTime   string   `json:"departureTime"`
	ArrivalTime     string   `json:"arrivalTime"`
	TotalSeats      int      `json:"totalSeats"`
	AvailableSeats  int      `json:"availableSeats"`
	Price           float64  `json:"price"`
	Currency        string   `json:"currency"`
}

func (f Flight) Validate() error {
	if f.AvailableSeats > f.TotalSeats {
		return fmt.Errorf("flight %d: available seats %d exceed total seats %d", f.ID, f.AvailableSeats, f.TotalSeats)
	}
	return nil
}
