package flights

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"

	"github.com/Domenick1991/airdesk/internal/client"
	"github.com/Domenick1991/airdesk/internal/domain"
)

const path = "/flights"

type FlightAPI interface {
	List(ctx context.Context, params url.Values) ([]domain.Flight, error)
}

type Adapter struct {
	client client.Requester
}

func New(c client.Requester) *Adapter {
	return &Adapter{client: c}
}

// List returns the flights as a plain slice whether the backend answers with a
// bare array or a paginated envelope.
func (a *Adapter) List(ctx context.Context, params url.Values) ([]domain.Flight, error) {
	var raw json.RawMessage
	if err := a.client.Get(ctx, path, params, &raw); err != nil {
		return nil, fmt.Errorf("list flights: %w", err)
	}

	flights, err := Normalize(raw)
	if err != nil {
		return nil, &client.DecodeError{Method: "GET", Path: path, Err: err}
	}
	return flights, nil
}

// Normalize decodes either shape of the flights response.
func Normalize(raw json.RawMessage) ([]domain.Flight, error) {
	raw = bytes.TrimSpace(raw)
	flights := make([]domain.Flight, 0)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return flights, nil
	}

	switch raw[0] {
	case '[':
		if err := json.Unmarshal(raw, &flights); err != nil {
			return nil, err
		}
	case '{':
		var page domain.Page[domain.Flight]
		if err := json.Unmarshal(raw, &page); err != nil {
			return nil, err
		}
		if page.Content != nil {
			flights = page.Content
		}
	default:
		return nil, fmt.Errorf("unexpected flights payload starting with %q", raw[0])
	}

	return dropInvalid(flights), nil
}

// dropInvalid leaves out flights that break the seat invariant so one bad
// record does not hide the rest of the board.
func dropInvalid(flights []domain.Flight) []domain.Flight {
	valid := flights[:0]
	for _, f := range flights {
		if err := f.Validate(); err != nil {
			log.Printf("flights: skipping flight %d: %v", f.ID, err)
			continue
		}
		valid = append(valid, f)
	}
	return valid
}

var _ FlightAPI = (*Adapter)(nil)
