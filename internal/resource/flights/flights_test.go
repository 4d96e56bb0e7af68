package flights

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/Domenick1991/airdesk/internal/client"
	"github.com/Domenick1991/airdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const flightsJSON = `[
	{"id":1,"flightNumber":"SU100","originCode":"SVO","originName":"Sheremetyevo","destinationCode":"LED","destinationName":"Pulkovo",
	 "departureTime":"2026-10-20T08:00:00Z","arrivalTime":"2026-10-20T09:30:00Z","totalSeats":150,"availableSeats":149,"price":120.5,"currency":"EUR"},
	{"id":"2","flightNumber":"SU200","totalSeats":10,"availableSeats":0}
]`

func TestNormalize_BareAndEnvelopeAgree(t *testing.T) {
	bare, err := Normalize(json.RawMessage(flightsJSON))
	require.NoError(t, err)
	require.Len(t, bare, 2)
	assert.Equal(t, domain.FlightID(2), bare[1].ID)

	envelope := `{"content":` + flightsJSON + `,"totalElements":2,"totalPages":1,"number":0,"size":20}`
	fromPage, err := Normalize(json.RawMessage(envelope))
	require.NoError(t, err)
	assert.Equal(t, bare, fromPage)
}

func TestNormalize_EdgeShapes(t *testing.T) {
	empty, err := Normalize(json.RawMessage(`{"content":null,"totalElements":0}`))
	require.NoError(t, err)
	assert.Empty(t, empty)

	empty, err = Normalize(json.RawMessage(`null`))
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = Normalize(json.RawMessage(`"flights"`))
	assert.Error(t, err)

	kept, err := Normalize(json.RawMessage(`[{"id":1,"totalSeats":1,"availableSeats":2},{"id":2,"totalSeats":3,"availableSeats":3}]`))
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.Equal(t, domain.FlightID(2), kept[0].ID)
}

func TestAdapter_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/flights", r.URL.Path)
		assert.Equal(t, "SVO", r.URL.Query().Get("origin"))
		_, _ = w.Write([]byte(`{"content":` + flightsJSON + `,"totalElements":2,"totalPages":1,"number":0,"size":20}`))
	}))
	defer srv.Close()

	flights, err := New(client.New(srv.URL, time.Second)).List(context.Background(), url.Values{"origin": {"SVO"}})

	require.NoError(t, err)
	assert.Len(t, flights, 2)
	assert.Equal(t, "SU100", flights[0].FlightNumber)
}

func TestAdapter_ListSkipsFlightBreakingSeatInvariant(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"content":[{"id":1,"totalSeats":1,"availableSeats":5},{"id":2,"totalSeats":5,"availableSeats":1}]}`))
	}))
	defer srv.Close()

	got, err := New(client.New(srv.URL, time.Second)).List(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.FlightID(2), got[0].ID)
}

func TestAdapter_ListMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"SU100"}]`))
	}))
	defer srv.Close()

	_, err := New(client.New(srv.URL, time.Second)).List(context.Background(), nil)

	var decodeErr *client.DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}
