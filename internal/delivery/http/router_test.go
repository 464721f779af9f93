package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ehr-vaccine-service/config"
	"ehr-vaccine-service/internal/delivery/http/handler"
	"ehr-vaccine-service/internal/delivery/http/middleware"
	"ehr-vaccine-service/pkg/jwt"
	"ehr-vaccine-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type emptyTokenStore struct{}

func (emptyTokenStore) Store(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	return nil
}

func (emptyTokenStore) Exists(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	return false, nil
}

func (emptyTokenStore) Revoke(ctx context.Context, userID uuid.UUID, tokenID string) error {
	return nil
}

func newTestRouter() http.Handler {
	log := logrus.New()
	log.SetOutput(io.Discard)
	v := validator.NewValidator()
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Hour})

	r := NewRouter(
		handler.NewAuthHandler(nil, v),
		handler.NewVaccineHandler(nil, v),
		handler.NewPatientHandler(nil, v),
		handler.NewAuditLogHandler(nil),
		middleware.NewAuthMiddleware(jwtService, emptyTokenStore{}),
		middleware.NewLoggingMiddleware(log),
		middleware.NewRecoveryMiddleware(log),
	)
	return r.Setup()
}

func TestRouter_PublicAndProtectedRoutes(t *testing.T) {
	router := newTestRouter()

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/v1/health", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/api/v1/vaccines/next-dose", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/vaccines/schedules", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/patients/1", http.StatusUnauthorized},
		{http.MethodPost, "/api/v1/patients", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/admin/audit-logs", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/nope", http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestRouter_HealthBody(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
