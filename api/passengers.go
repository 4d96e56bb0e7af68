package api

import (
	"context"
	"strings"

	"github.com/Domenick1991/airdesk/internal/domain"
	"github.com/Domenick1991/airdesk/internal/query"
	"github.com/Domenick1991/airdesk/internal/resource/passengers"
	"github.com/gin-gonic/gin"
)

// minSearchLength keeps one-letter terms from hitting the backend.
const minSearchLength = 2

type PassengerHandler struct {
	passengers passengers.PassengerAPI
	cache      *query.Cache
}

func NewPassengerHandler(api passengers.PassengerAPI, cache *query.Cache) *PassengerHandler {
	return &PassengerHandler{passengers: api, cache: cache}
}

func (h *PassengerHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
}

// SearchEnabled reports whether term may be sent: empty lists everyone,
// otherwise at least two characters are needed.
func SearchEnabled(term string) bool {
	n := len([]rune(strings.TrimSpace(term)))
	return n == 0 || n >= minSearchLength
}

func (h *PassengerHandler) list(c *gin.Context) {
	term := strings.TrimSpace(c.Query("search"))
	key := query.NewKey(NamespacePassengers, term)

	res, err := query.Get(c.Request.Context(), h.cache, key, func(ctx context.Context) ([]domain.Passenger, error) {
		return h.passengers.Search(ctx, term)
	}, readOptions(c, SearchEnabled(term))...)
	renderRead(c, res, err)
}
