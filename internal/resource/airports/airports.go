package airports

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Domenick1991/airdesk/internal/client"
	"github.com/Domenick1991/airdesk/internal/domain"
	"github.com/Domenick1991/airdesk/internal/resource"
)

const path = "/airports"

type AirportAPI interface {
	List(ctx context.Context) ([]domain.Airport, error)
	Create(ctx context.Context, input CreateAirportInput) (*domain.Airport, error)
}

// CreateAirportInput is an airport without its id; the backend assigns it.
type CreateAirportInput struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type Adapter struct {
	client client.Requester
}

func New(c client.Requester) *Adapter {
	return &Adapter{client: c}
}

func (a *Adapter) List(ctx context.Context) ([]domain.Airport, error) {
	var airports []domain.Airport
	if err := a.client.Get(ctx, path, resource.FirstPageParams(nil), &airports); err != nil {
		return nil, fmt.Errorf("list airports: %w", err)
	}
	return airports, nil
}

func (a *Adapter) Create(ctx context.Context, input CreateAirportInput) (*domain.Airport, error) {
	var created domain.Airport
	if err := a.client.Post(ctx, path, input, &created); err != nil {
		var statusErr *client.HTTPStatusError
		if errors.As(err, &statusErr) && isRejection(statusErr.Status) {
			return nil, &client.ValidationError{Reason: "airport rejected by backend", Err: err}
		}
		return nil, fmt.Errorf("create airport: %w", err)
	}
	return &created, nil
}

func isRejection(status int) bool {
	return status == http.StatusBadRequest || status == http.StatusUnprocessableEntity
}

var _ AirportAPI = (*Adapter)(nil)
