package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordFavoriteMutation(t *testing.T) {
	before := testutil.ToFloat64(favoriteMutations.WithLabelValues("people", "add", "ok"))
	RecordFavoriteMutation("people", "add", "ok")
	assert.Equal(t, before+1, testutil.ToFloat64(favoriteMutations.WithLabelValues("people", "add", "ok")))
}

func TestSetOrphanFavorites(t *testing.T) {
	SetOrphanFavorites("planet", 3)
	assert.Equal(t, 3.0, testutil.ToFloat64(orphanFavorites.WithLabelValues("planet")))
}

func TestHandlerExposesHTTPMetrics(t *testing.T) {
	RequestStarted()
	RequestFinished(http.MethodGet, "/people/:id", http.StatusOK, 12*time.Millisecond)

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `starwars_http_requests_total{method="GET",path="/people/:id",status="200"}`)
}
