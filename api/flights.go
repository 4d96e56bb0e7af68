package api

import (
	"context"

	"github.com/Domenick1991/airdesk/internal/domain"
	"github.com/Domenick1991/airdesk/internal/query"
	"github.com/Domenick1991/airdesk/internal/resource/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	flights flights.FlightAPI
	cache   *query.Cache
}

func NewFlightHandler(api flights.FlightAPI, cache *query.Cache) *FlightHandler {
	return &FlightHandler{flights: api, cache: cache}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
}

// list forwards any query parameters to the backend; they become part of the
// cache key.
func (h *FlightHandler) list(c *gin.Context) {
	params := c.Request.URL.Query()
	key := query.NewKey(NamespaceFlights)
	if len(params) > 0 {
		key = query.NewKey(NamespaceFlights, map[string][]string(params))
	}

	res, err := query.Get(c.Request.Context(), h.cache, key, func(ctx context.Context) ([]domain.Flight, error) {
		return h.flights.List(ctx, params)
	}, readOptions(c, true)...)
	renderRead(c, res, err)
}
