package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Airports   *AirportHandler
	Flights    *FlightHandler
	Bookings   *BookingHandler
	Passengers *PassengerHandler
	Offers     *OfferHandler
	Theme      *ThemeHandler
}

func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	group := router.Group("/api")
	h.Airports.Register(group.Group("/airports"))
	h.Flights.Register(group.Group("/flights"))
	h.Bookings.Register(group.Group("/bookings"))
	h.Passengers.Register(group.Group("/passengers"))
	h.Offers.Register(group.Group("/offers"), group.Group("/flight-status"))
	h.Theme.Register(group.Group("/theme"))

	return router
}
