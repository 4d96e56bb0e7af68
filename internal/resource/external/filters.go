package external

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Filters are the offer search inputs as typed into the dashboard.
type Filters struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
}

// Normalize trims the filters and upper-cases the airport codes.
func (f Filters) Normalize() Filters {
	return Filters{
		Origin:      strings.ToUpper(strings.TrimSpace(f.Origin)),
		Destination: strings.ToUpper(strings.TrimSpace(f.Destination)),
		Date:        strings.TrimSpace(f.Date),
	}
}

// CanQuery reports whether a search may be sent: two 3-letter airport codes
// and a YYYY-MM-DD date.
func (f Filters) CanQuery() bool {
	n := f.Normalize()
	return utf8.RuneCountInString(n.Origin) == 3 &&
		utf8.RuneCountInString(n.Destination) == 3 &&
		datePattern.MatchString(f.Date)
}

// Blank reports whether nothing was entered yet.
func (f Filters) Blank() bool {
	n := f.Normalize()
	return n.Origin == "" && n.Destination == "" && n.Date == ""
}
