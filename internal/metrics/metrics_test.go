package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentTransport_CountsRequests(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer upstream.Close()

	reg := NewRegistry()
	client := &http.Client{Transport: reg.InstrumentTransport(nil)}

	for _, path := range []string{"/products", "/products", "/missing"} {
		resp, err := client.Get(upstream.URL + path)
		require.NoError(t, err)
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(reg.UpstreamRequests.WithLabelValues("200", "get")))
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.UpstreamRequests.WithLabelValues("404", "get")))
	assert.Equal(t, 0.0, testutil.ToFloat64(reg.UpstreamInFlight))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	reg := NewRegistry()
	reg.SyncedProducts.Add(3)

	rec := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "storefront_sync_products_published_total 3")
}
