package api

// Cache namespaces. A write invalidates every key under its namespace.
const (
	NamespaceAirports       = "airports"
	NamespaceFlights        = "flights"
	NamespaceBookings       = "bookings"
	NamespacePassengers     = "passengers"
	NamespaceExternalOffers = "external-offers"
	NamespaceFlightStatus   = "flight-status"
)
