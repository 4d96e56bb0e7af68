package domain

type Booking struct {
	ID                      int64   `json:"id"`
	FlightID                int64   `json:"flightId"`
	SeatNumber              string  `json:"seatNumber"`
	PassengerID             *int64  `json:"passengerId,omitempty"`
	PassengerFirstName      *string `json:"passengerFirstName,omitempty"`
	PassengerLastName       *string `json:"passengerLastName,omitempty"`
	PassengerEmail          *string `json:"passengerEmail,omitempty"`
	PassengerPassportNumber *string `json:"passengerPassportNumber,omitempty"`
}
