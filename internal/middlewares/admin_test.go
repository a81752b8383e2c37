package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sweetstack/sweet-shop-api/internal/jwt"
	"github.com/sweetstack/sweet-shop-api/internal/models"
)

func TestAdminMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		claims       *jwt.Claims
		expectedCode int
		expectedBody string
		expectNext   bool
	}{
		{
			name:         "no claims is 401",
			claims:       nil,
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"error":"Authentication required"}`,
		},
		{
			name:         "regular user is 403",
			claims:       &jwt.Claims{UserID: 7, Username: "alice", Role: models.RoleUser},
			expectedCode: http.StatusForbidden,
			expectedBody: `{"error":"Admin access required"}`,
		},
		{
			name:         "admin passes through",
			claims:       &jwt.Claims{UserID: 1, Username: "root", Role: models.RoleAdmin},
			expectedCode: http.StatusOK,
			expectNext:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/sweets", nil)
			if tt.claims != nil {
				req = req.WithContext(setClaimsToContext(req.Context(), tt.claims))
			}

			rec := httptest.NewRecorder()
			AdminMiddleware()(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			}
		})
	}
}
