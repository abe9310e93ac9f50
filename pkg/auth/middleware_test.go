package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRequireRole(t *testing.T) {
	jwtService := &JWTService{}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actorID, _ := r.Context().Value(ActorIDKey).(int)
		role, _ := r.Context().Value(RoleKey).(string)
		assert.NotZero(t, actorID)
		assert.NotEmpty(t, role)
		w.WriteHeader(http.StatusOK)
	})

	adminToken, err := jwtService.GenerateJWT(1, RoleAdmin, time.Now().Add(time.Hour))
	assert.NoError(t, err)
	customerToken, err := jwtService.GenerateJWT(5, RoleCustomer, time.Now().Add(time.Hour))
	assert.NoError(t, err)
	expiredToken, err := jwtService.GenerateJWT(1, RoleAdmin, time.Now().Add(-time.Hour))
	assert.NoError(t, err)

	tests := []struct {
		name         string
		roles        []string
		authHeader   string
		expectedCode int
	}{
		{
			name:         "Admin allowed on admin route",
			roles:        []string{RoleAdmin},
			authHeader:   "Bearer " + adminToken,
			expectedCode: http.StatusOK,
		},
		{
			name:         "Customer rejected on admin route",
			roles:        []string{RoleAdmin, RolePartner},
			authHeader:   "Bearer " + customerToken,
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "Any authenticated actor when no roles given",
			roles:        nil,
			authHeader:   "Bearer " + customerToken,
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing header",
			roles:        nil,
			authHeader:   "",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Not a bearer token",
			roles:        nil,
			authHeader:   "Basic dXNlcjpwYXNz",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Expired token",
			roles:        nil,
			authHeader:   "Bearer " + expiredToken,
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				r.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			RequireRole(tt.roles...)(next).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
