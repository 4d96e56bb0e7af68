package bookings

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Domenick1991/airdesk/internal/client"
	"github.com/Domenick1991/airdesk/internal/domain"
)

const path = "/bookings"

type BookingAPI interface {
	List(ctx context.Context, flightID *int64) ([]domain.Booking, error)
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
}

// CreateBookingInput names the passenger either by PassengerID or inline.
type CreateBookingInput struct {
	FlightID                int64
	SeatNumber              string
	PassengerID             *int64
	PassengerFirstName      string
	PassengerLastName       string
	PassengerEmail          string
	PassengerPassportNumber string
}

func (in CreateBookingInput) hasInlinePassenger() bool {
	return in.PassengerFirstName != "" || in.PassengerLastName != "" ||
		in.PassengerEmail != "" || in.PassengerPassportNumber != ""
}

func (in CreateBookingInput) Validate() error {
	fields := map[string]string{}
	if in.FlightID <= 0 {
		fields["flightId"] = "required"
	}
	if strings.TrimSpace(in.SeatNumber) == "" {
		fields["seatNumber"] = "required"
	}
	switch {
	case in.PassengerID != nil && in.hasInlinePassenger():
		fields["passengerId"] = "excluded_with_inline_passenger"
	case in.PassengerID == nil && !in.hasInlinePassenger():
		fields["passengerId"] = "required_without_inline_passenger"
	}
	if len(fields) > 0 {
		return &client.ValidationError{Reason: "invalid booking", Fields: fields}
	}
	return nil
}

// Payload is the request body: optional fields that are absent or empty are
// left out entirely.
func (in CreateBookingInput) Payload() map[string]any {
	payload := map[string]any{
		"flightId":   in.FlightID,
		"seatNumber": in.SeatNumber,
	}
	if in.PassengerID != nil {
		payload["passengerId"] = *in.PassengerID
	}
	optional := map[string]string{
		"passengerFirstName":      in.PassengerFirstName,
		"passengerLastName":       in.PassengerLastName,
		"passengerEmail":          in.PassengerEmail,
		"passengerPassportNumber": in.PassengerPassportNumber,
	}
	for key, value := range optional {
		if value != "" {
			payload[key] = value
		}
	}
	return payload
}

type Adapter struct {
	client client.Requester
}

func New(c client.Requester) *Adapter {
	return &Adapter{client: c}
}

// List returns every booking, or only those of flightID when it is set.
func (a *Adapter) List(ctx context.Context, flightID *int64) ([]domain.Booking, error) {
	var params url.Values
	if flightID != nil {
		params = url.Values{"flightId": {strconv.FormatInt(*flightID, 10)}}
	}

	var bookings []domain.Booking
	if err := a.client.Get(ctx, path, params, &bookings); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func (a *Adapter) Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created domain.Booking
	if err := a.client.Post(ctx, path, input.Payload(), &created); err != nil {
		var statusErr *client.HTTPStatusError
		if errors.As(err, &statusErr) && statusErr.Status == http.StatusUnprocessableEntity {
			return nil, &client.ValidationError{Reason: "booking rejected by backend", Err: err}
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return &created, nil
}

var _ BookingAPI = (*Adapter)(nil)
