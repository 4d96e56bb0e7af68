package domain

type Passenger struct {
	ID             int64   `json:"id"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Email          *string `json:"email,omitempty"`
	PassportNumber *string `json:"passportNumber,omitempty"`
}
