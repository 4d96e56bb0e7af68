package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/Domenick1991/airdesk/internal/domain"
	"github.com/Domenick1991/airdesk/internal/query"
	"github.com/Domenick1991/airdesk/internal/resource/external"
	"github.com/gin-gonic/gin"
)

const (
	offersPageSize  = 20
	offersFetchSize = 40
	offersCurrency  = "USD"
	invalidFilters  = "Enter origin, destination (3-letter IATA) and a date (YYYY-MM-DD)."
)

type OfferHandler struct {
	external external.ExternalAPI
	cache    *query.Cache
}

func NewOfferHandler(api external.ExternalAPI, cache *query.Cache) *OfferHandler {
	return &OfferHandler{external: api, cache: cache}
}

func (h *OfferHandler) Register(offers, status *gin.RouterGroup) {
	offers.GET("", h.search)
	status.GET("", h.status)
	status.POST("/bulk", h.bulkStatus)
}

type offersPage struct {
	Rows  []external.OfferRow `json:"rows"`
	Total int                 `json:"total"`
	Page  int                 `json:"page"`
	Size  int                 `json:"size"`
}

type offersResponse struct {
	readResponse
	Message string `json:"message,omitempty"`
}

func (h *OfferHandler) search(c *gin.Context) {
	filters := external.Filters{
		Origin:      c.Query("origin"),
		Destination: c.Query("destination"),
		Date:        c.Query("date"),
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	if page < 0 {
		page = 0
	}

	enabled := filters.CanQuery()
	normalized := filters.Normalize()
	key := query.NewKey(NamespaceExternalOffers, normalized)

	nonStop := true
	res, err := query.Get(c.Request.Context(), h.cache, key, func(ctx context.Context) ([]domain.Offer, error) {
		return h.external.Search(ctx, external.SearchParams{
			Origin:       normalized.Origin,
			Destination:  normalized.Destination,
			Date:         normalized.Date,
			CurrencyCode: offersCurrency,
			NonStop:      &nonStop,
			Max:          offersFetchSize,
		})
	}, readOptions(c, enabled)...)
	if err != nil {
		renderRead(c, res, err)
		return
	}

	resp := offersResponse{readResponse: readResponse{Status: res.Status.String(), Stale: res.Stale}}
	if !enabled && !filters.Blank() {
		resp.Message = invalidFilters
	}
	if res.HasData {
		rows := external.ToRows(res.Data)
		start := min(page*offersPageSize, len(rows))
		end := min(start+offersPageSize, len(rows))
		resp.Data = offersPage{Rows: rows[start:end], Total: len(rows), Page: page, Size: offersPageSize}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OfferHandler) status(c *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(c.Query("code")))
	date := strings.TrimSpace(c.Query("date"))
	if code == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code and date are required"})
		return
	}

	key := query.NewKey(NamespaceFlightStatus, code, date)
	res, err := query.Get(c.Request.Context(), h.cache, key, func(ctx context.Context) (*domain.FlightStatus, error) {
		return h.external.Status(ctx, code, date)
	}, readOptions(c, true)...)
	renderRead(c, res, err)
}

type bulkStatusRequest struct {
	Items []domain.StatusQuery `json:"items" binding:"required,min=1,dive"`
}

func (h *OfferHandler) bulkStatus(c *gin.Context) {
	var req bulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := h.external.BulkStatus(c.Request.Context(), req.Items)
	if err != nil {
		renderMutationError(c, err, "Failed to load flight statuses")
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}
