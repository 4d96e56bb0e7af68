package api

import (
	"context"
	"net/http"

	"github.com/Domenick1991/airdesk/internal/domain"
	"github.com/Domenick1991/airdesk/internal/query"
	"github.com/Domenick1991/airdesk/internal/resource/airports"
	"github.com/gin-gonic/gin"
)

type AirportHandler struct {
	airports airports.AirportAPI
	cache    *query.Cache
}

func NewAirportHandler(api airports.AirportAPI, cache *query.Cache) *AirportHandler {
	return &AirportHandler{airports: api, cache: cache}
}

func (h *AirportHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
}

func (h *AirportHandler) list(c *gin.Context) {
	res, err := query.Get(c.Request.Context(), h.cache, query.NewKey(NamespaceAirports), h.airports.List, readOptions(c, true)...)
	renderRead(c, res, err)
}

func (h *AirportHandler) create(c *gin.Context) {
	var form airportForm
	if err := c.ShouldBind(&form); err != nil {
		renderFormError(c, err, "Fix airport form errors")
		return
	}
	form.trim()
	if err := checkForm(form, "invalid airport"); err != nil {
		renderFormError(c, err, "Fix airport form errors")
		return
	}

	created, err := query.Mutate(c.Request.Context(), h.cache, func(ctx context.Context) (*domain.Airport, error) {
		return h.airports.Create(ctx, airports.CreateAirportInput{
			Code:    form.Code,
			Name:    form.Name,
			City:    form.City,
			Country: form.Country,
		})
	}, NamespaceAirports)
	if err != nil {
		renderMutationError(c, err, "Failed to add airport")
		return
	}

	c.JSON(http.StatusCreated, notification{Message: "Airport added", Data: created})
}
