package api

import (
	"context"
	"net/url"

	"github.com/Domenick1991/airdesk/internal/domain"
	"github.com/Domenick1991/airdesk/internal/resource/airports"
	"github.com/Domenick1991/airdesk/internal/resource/bookings"
	"github.com/Domenick1991/airdesk/internal/resource/external"
	"github.com/Domenick1991/airdesk/internal/theme"
	"github.com/stretchr/testify/mock"
)

// MockAirportAPI is a mock implementation of airports.AirportAPI
type MockAirportAPI struct {
	mock.Mock
}

func (m *MockAirportAPI) List(ctx context.Context) ([]domain.Airport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func (m *MockAirportAPI) Create(ctx context.Context, input airports.CreateAirportInput) (*domain.Airport, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

type MockFlightAPI struct {
	mock.Mock
}

func (m *MockFlightAPI) List(ctx context.Context, params url.Values) ([]domain.Flight, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

type MockBookingAPI struct {
	mock.Mock
}

func (m *MockBookingAPI) List(ctx context.Context, flightID *int64) ([]domain.Booking, error) {
	args := m.Called(ctx, flightID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingAPI) Create(ctx context.Context, input bookings.CreateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockPassengerAPI struct {
	mock.Mock
}

func (m *MockPassengerAPI) Search(ctx context.Context, term string) ([]domain.Passenger, error) {
	args := m.Called(ctx, term)
	return args.Get(0).([]domain.Passenger), args.Error(1)
}

type MockExternalAPI struct {
	mock.Mock
}

func (m *MockExternalAPI) Search(ctx context.Context, params external.SearchParams) ([]domain.Offer, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.Offer), args.Error(1)
}

func (m *MockExternalAPI) Status(ctx context.Context, code, date string) (*domain.FlightStatus, error) {
	args := m.Called(ctx, code, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlightStatus), args.Error(1)
}

func (m *MockExternalAPI) BulkStatus(ctx context.Context, items []domain.StatusQuery) ([]domain.BulkStatusEntry, error) {
	args := m.Called(ctx, items)
	return args.Get(0).([]domain.BulkStatusEntry), args.Error(1)
}

type MockThemeStore struct {
	mock.Mock
}

func (m *MockThemeStore) Load(ctx context.Context) (theme.Mode, bool, error) {
	args := m.Called(ctx)
	return args.Get(0).(theme.Mode), args.Bool(1), args.Error(2)
}

func (m *MockThemeStore) Save(ctx context.Context, mode theme.Mode) error {
	return m.Called(ctx, mode).Error(0)
}
