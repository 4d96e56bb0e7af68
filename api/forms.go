package api

import (
	"reflect"
	"strings"

	"github.com/Domenick1991/airdesk/internal/client"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkForm validates a form after its strings were trimmed.
func checkForm(form any, reason string) error {
	if err := validate.Struct(form); err != nil {
		return client.FromValidator(reason, err)
	}
	return nil
}

type airportForm struct {
	Code    string `json:"code" form:"code" validate:"min=3,max=4,alpha"`
	Name    string `json:"name" form:"name" validate:"min=2"`
	City    string `json:"city" form:"city" validate:"min=2"`
	Country string `json:"country" form:"country" validate:"min=2"`
}

func (f *airportForm) trim() {
	f.Code = strings.TrimSpace(f.Code)
	f.Name = strings.TrimSpace(f.Name)
	f.City = strings.TrimSpace(f.City)
	f.Country = strings.TrimSpace(f.Country)
}

type bookingForm struct {
	FlightID                int64  `json:"flightId" form:"flightId" validate:"gt=0"`
	SeatNumber              string `json:"seatNumber" form:"seatNumber" validate:"min=2"`
	PassengerID             *int64 `json:"passengerId" form:"passengerId" validate:"omitempty,gt=0"`
	PassengerFirstName      string `json:"passengerFirstName" form:"passengerFirstName"`
	PassengerLastName       string `json:"passengerLastName" form:"passengerLastName"`
	PassengerEmail          string `json:"passengerEmail" form:"passengerEmail" validate:"omitempty,email"`
	PassengerPassportNumber string `json:"passengerPassportNumber" form:"passengerPassportNumber"`
}

func (f *bookingForm) trim() {
	f.SeatNumber = strings.TrimSpace(f.SeatNumber)
	f.PassengerFirstName = strings.TrimSpace(f.PassengerFirstName)
	f.PassengerLastName = strings.TrimSpace(f.PassengerLastName)
	f.PassengerEmail = strings.TrimSpace(f.PassengerEmail)
	f.PassengerPassportNumber = strings.TrimSpace(f.PassengerPassportNumber)
}
