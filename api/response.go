package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Domenick1991/airdesk/internal/client"
	"github.com/Domenick1991/airdesk/internal/query"
	"github.com/gin-gonic/gin"
)

const genericReadError = "Something went wrong while loading data"

type readResponse struct {
	Status string `json:"status"`
	Stale  bool   `json:"stale"`
	Data   any    `json:"data"`
	Error  string `json:"error,omitempty"`
}

type notification struct {
	Message string            `json:"message,omitempty"`
	Error   string            `json:"error,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
	Data    any               `json:"data,omitempty"`
}

// readOptions lets a caller opt into stale-while-revalidate with the standard
// "Cache-Control: max-stale" request directive. Without it a read of
// invalidated data waits for the refetch, so a page reloaded after a write
// shows that write.
func readOptions(c *gin.Context, enabled bool) []query.Option {
	opts := []query.Option{query.Enabled(enabled)}
	if !acceptsStale(c.GetHeader("Cache-Control")) {
		opts = append(opts, query.AwaitFresh())
	}
	return opts
}

func acceptsStale(cacheControl string) bool {
	for _, directive := range strings.Split(cacheControl, ",") {
		name, _, _ := strings.Cut(strings.TrimSpace(directive), "=")
		if strings.EqualFold(name, "max-stale") {
			return true
		}
	}
	return false
}

// renderRead writes a cache result. A failed read is an inline error state,
// never a crash.
func renderRead[T any](c *gin.Context, res query.Result[T], err error) {
	if err != nil {
		if errors.Is(err, context.Canceled) {
			c.AbortWithStatus(499)
			return
		}
		c.JSON(http.StatusBadGateway, readResponse{
			Status: query.StatusError.String(),
			Data:   dataOrNil(res),
			Error:  client.UserMessage(err, genericReadError),
		})
		return
	}
	c.JSON(http.StatusOK, readResponse{
		Status: res.Status.String(),
		Stale:  res.Stale,
		Data:   dataOrNil(res),
	})
}

func dataOrNil[T any](res query.Result[T]) any {
	if !res.HasData {
		return nil
	}
	return res.Data
}

// renderMutationError reports a failed write as a notification carrying the
// backend's message when it sent one.
func renderMutationError(c *gin.Context, err error, fallback string) {
	c.JSON(mutationStatus(err), notification{Error: client.UserMessage(err, fallback)})
}

func mutationStatus(err error) int {
	var statusErr *client.HTTPStatusError
	var validationErr *client.ValidationError
	switch {
	case errors.As(err, &statusErr) && statusErr.Status < http.StatusInternalServerError:
		return statusErr.Status
	case errors.As(err, &validationErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

func renderFormError(c *gin.Context, err error, message string) {
	resp := notification{Error: message}
	var validationErr *client.ValidationError
	if errors.As(err, &validationErr) {
		resp.Fields = validationErr.Fields
	}
	c.JSON(http.StatusBadRequest, resp)
}
