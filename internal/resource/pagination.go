// Package resource holds the per-resource backend adapters.
package resource

import (
	"net/url"
	"strconv"
)

// Every list call the dashboard makes asks for the first page of 50.
const (
	FirstPage   = 0
	DefaultSize = 50
)

// FirstPageParams returns page=0&size=50 merged with extra.
func FirstPageParams(extra url.Values) url.Values {
	params := url.Values{}
	for k, v := range extra {
		params[k] = append([]string(nil), v...)
	}
	params.Set("page", strconv.Itoa(FirstPage))
	params.Set("size", strconv.Itoa(DefaultSize))
	return params
}
