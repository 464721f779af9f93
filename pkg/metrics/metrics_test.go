package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func scrape(t *testing.T) string {
	t.Helper()
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestRecordResolution_IsExposed(t *testing.T) {
	RecordResolution("next_dose", OutcomeSeriesComplete)

	body := scrape(t)
	assert.Contains(t, body, `ehr_vaccine_dosing_resolutions_total{operation="next_dose",outcome="series_complete"}`)
}

func TestRecordHTTPRequest_IsExposed(t *testing.T) {
	RecordHTTPRequest(http.MethodGet, "/api/v1/health", "200", 10*time.Millisecond)

	body := scrape(t)
	assert.Contains(t, body, `ehr_vaccine_http_requests_total{method="GET",path="/api/v1/health",status="200"}`)
	assert.Contains(t, body, "ehr_vaccine_http_request_duration_seconds_bucket")
}
