package passengers

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/Domenick1991/airdesk/internal/client"
	"github.com/Domenick1991/airdesk/internal/domain"
	"github.com/Domenick1991/airdesk/internal/resource"
)

const (
	listPath   = "/passengers"
	searchPath = "/passengers/search"
)

type PassengerAPI interface {
	Search(ctx context.Context, term string) ([]domain.Passenger, error)
}

// candidate is one guess at how the backend wants a free-text search spelled.
type candidate struct {
	path  string
	param string
}

// Compatibility shim: the backend has never documented which query parameter
// its passenger search reads, so Search walks these guesses in order. Replace
// with the single real parameter once the backend contract is confirmed; do not
// extend this list.
var candidates = []candidate{
	{path: listPath, param: "q"},
	{path: listPath, param: "keyword"},
	{path: listPath, param: "query"},
	{path: listPath, param: "name"},
	{path: searchPath, param: "q"},
}

type Adapter struct {
	client client.Requester
}

func New(c client.Requester) *Adapter {
	return &Adapter{client: c}
}

// Search lists passengers, filtered by term when it is not blank. The first
// candidate that answers successfully wins, even with zero results; only the
// last candidate's failure reaches the caller.
func (a *Adapter) Search(ctx context.Context, term string) ([]domain.Passenger, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		passengers, err := a.fetch(ctx, listPath, nil)
		if err != nil {
			return nil, fmt.Errorf("list passengers: %w", err)
		}
		return passengers, nil
	}

	var lastErr error
	for i, c := range candidates {
		passengers, err := a.fetch(ctx, c.path, url.Values{c.param: {term}})
		if err == nil {
			if i > 0 {
				log.Printf("passenger search answered by %s?%s= after %d failed attempts", c.path, c.param, i)
			}
			return passengers, nil
		}
		if ctx.Err() != nil {
			return nil, fmt.Errorf("search passengers: %w", err)
		}
		log.Printf("passenger search via %s?%s= failed: %v", c.path, c.param, err)
		lastErr = err
	}
	return nil, fmt.Errorf("search passengers: %w", lastErr)
}

func (a *Adapter) fetch(ctx context.Context, path string, filter url.Values) ([]domain.Passenger, error) {
	var passengers []domain.Passenger
	if err := a.client.Get(ctx, path, resource.FirstPageParams(filter), &passengers); err != nil {
		return nil, err
	}
	return passengers, nil
}

var _ PassengerAPI = (*Adapter)(nil)
