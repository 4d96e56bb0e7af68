package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Domenick1991/airdesk/internal/domain"
	"github.com/Domenick1991/airdesk/internal/query"
	"github.com/Domenick1991/airdesk/internal/resource/bookings"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookings bookings.BookingAPI
	cache    *query.Cache
}

func NewBookingHandler(api bookings.BookingAPI, cache *query.Cache) *BookingHandler {
	return &BookingHandler{bookings: api, cache: cache}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.POST("/refresh", h.refresh)
}

// filter reads the optional flightId query parameter and the cache key it
// selects. ok is false when a bad request was already written.
func (h *BookingHandler) filter(c *gin.Context) (flightID *int64, key query.Key, ok bool) {
	keyParam := any("all")
	if raw := c.Query("flightId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid flightId"})
			return nil, query.Key{}, false
		}
		flightID = &id
		keyParam = id
	}
	return flightID, query.NewKey(NamespaceBookings, keyParam), true
}

func (h *BookingHandler) fetcher(flightID *int64) func(context.Context) ([]domain.Booking, error) {
	return func(ctx context.Context) ([]domain.Booking, error) {
		return h.bookings.List(ctx, flightID)
	}
}

func (h *BookingHandler) list(c *gin.Context) {
	flightID, key, ok := h.filter(c)
	if !ok {
		return
	}
	res, err := query.Get(c.Request.Context(), h.cache, key, h.fetcher(flightID), readOptions(c, true)...)
	renderRead(c, res, err)
}

// refresh marks every bookings view stale and reloads the requested one.
func (h *BookingHandler) refresh(c *gin.Context) {
	flightID, key, ok := h.filter(c)
	if !ok {
		return
	}
	h.cache.Invalidate(NamespaceBookings)
	res, err := query.Refetch(c.Request.Context(), h.cache, key, h.fetcher(flightID))
	renderRead(c, res, err)
}

func (h *BookingHandler) create(c *gin.Context) {
	var form bookingForm
	if err := c.ShouldBind(&form); err != nil {
		renderFormError(c, err, "Fix form errors")
		return
	}
	form.trim()
	if err := checkForm(form, "invalid booking"); err != nil {
		renderFormError(c, err, "Fix form errors")
		return
	}

	input := bookings.CreateBookingInput{
		FlightID:                form.FlightID,
		SeatNumber:              form.SeatNumber,
		PassengerID:             form.PassengerID,
		PassengerFirstName:      form.PassengerFirstName,
		PassengerLastName:       form.PassengerLastName,
		PassengerEmail:          form.PassengerEmail,
		PassengerPassportNumber: form.PassengerPassportNumber,
	}
	if err := input.Validate(); err != nil {
		renderFormError(c, err, "Fix form errors")
		return
	}

	created, err := query.Mutate(c.Request.Context(), h.cache, func(ctx context.Context) (*domain.Booking, error) {
		return h.bookings.Create(ctx, input)
	}, NamespaceBookings)
	if err != nil {
		renderMutationError(c, err, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, notification{Message: "Booking created", Data: created})
}
