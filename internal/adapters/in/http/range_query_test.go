package http

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantFrom kernel.EntityID
		wantTo   kernel.EntityID
	}{
		{name: "no bounds yields the first page", query: "", wantFrom: 1, wantTo: 101},
		{name: "from zero acts as one", query: "?from=0&to=3", wantFrom: 1, wantTo: 3},
		{name: "missing to yields one page from from", query: "?from=50", wantFrom: 50, wantTo: 150},
		{name: "narrow range is kept", query: "?from=2&to=5", wantFrom: 2, wantTo: 5},
		{name: "wide range is cut", query: "?from=10&to=1000000", wantFrom: 10, wantTo: 1010},
		{name: "unbounded to is cut", query: "?to=18446744073709551615", wantFrom: 1, wantTo: 1001},
		{name: "page end saturates", query: "?from=18446744073709551610", wantFrom: math.MaxUint64 - 5, wantTo: math.MaxUint64},
		{name: "inverted range is kept for the handler to empty", query: "?from=3&to=1", wantFrom: 3, wantTo: 1},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/orders"+tt.query, nil), httptest.NewRecorder())

			q, err := rangeQuery(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFrom, q.From())
			assert.Equal(t, tt.wantTo, q.To())
		})
	}
}

func TestRangeQuery_RejectsMalformedBounds(t *testing.T) {
	e := echo.New()
	for _, query := range []string{"?from=x", "?to=-1"} {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/orders"+query, nil), httptest.NewRecorder())
		_, err := rangeQuery(c)
		assert.Error(t, err, query)
	}
}
