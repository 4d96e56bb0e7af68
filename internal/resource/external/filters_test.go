package external

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilters_CanQuery(t *testing.T) {
	cases := []struct {
		filters Filters
		want    bool
	}{
		{Filters{Origin: "jfk", Destination: " lhr ", Date: "2026-11-01"}, true},
		{Filters{Origin: "JFK", Destination: "LHR", Date: "2026-1-01"}, false},
		{Filters{Origin: "JFK", Destination: "LHR", Date: "01/11/2026"}, false},
		{Filters{Origin: "JFK", Destination: "LHR", Date: " 2026-11-01"}, false},
		{Filters{Origin: "JFK", Destination: "LHR", Date: "2026-11-01T00:00"}, false},
		{Filters{Origin: "JFKX", Destination: "LHR", Date: "2026-11-01"}, false},
		{Filters{Origin: "JF", Destination: "LHR", Date: "2026-11-01"}, false},
		{Filters{Origin: "JFK", Destination: "", Date: "2026-11-01"}, false},
		{Filters{}, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.filters.CanQuery(), "%+v", tc.filters)
	}
}

func TestFilters_Normalize(t *testing.T) {
	assert.Equal(t, Filters{Origin: "JFK", Destination: "LHR", Date: "2026-11-01"},
		Filters{Origin: " jfk", Destination: "lHr ", Date: "2026-11-01"}.Normalize())
	assert.True(t, Filters{Origin: " "}.Blank())
}
