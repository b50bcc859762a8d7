package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jinhyuk9714/Back-likelion/internal/rest/middleware"
)

const secret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func authRouter() *gin.Engine {
	r := gin.New()
	r.Use(middleware.AuthMiddleware(secret))
	r.GET("/me", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(middleware.IdentityKey))
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	valid := jwt.RegisteredClaims{
		Subject:   "writer@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	tests := []struct {
		name   string
		header func(t *testing.T) string
		status int
		body   string
	}{
		{
			name:   "valid",
			header: func(t *testing.T) string { return "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), valid) },
			status: http.StatusOK,
			body:   "writer@example.com",
		},
		{
			name:   "missing",
			header: func(*testing.T) string { return "" },
			status: http.StatusUnauthorized,
		},
		{
			name:   "not-bearer",
			header: func(t *testing.T) string { return sign(t, jwt.SigningMethodHS256, []byte(secret), valid) },
			status: http.StatusUnauthorized,
		},
		{
			name:   "wrong-secret",
			header: func(t *testing.T) string { return "Bearer " + sign(t, jwt.SigningMethodHS256, []byte("other"), valid) },
			status: http.StatusUnauthorized,
		},
		{
			name:   "wrong-algorithm",
			header: func(t *testing.T) string { return "Bearer " + sign(t, jwt.SigningMethodHS512, []byte(secret), valid) },
			status: http.StatusUnauthorized,
		},
		{
			name: "expired",
			header: func(t *testing.T) string {
				return "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.RegisteredClaims{
					Subject:   "writer@example.com",
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
				})
			},
			status: http.StatusUnauthorized,
		},
		{
			name: "no-subject",
			header: func(t *testing.T) string {
				return "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.RegisteredClaims{})
			},
			status: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if h := tt.header(t); h != "" {
				req.Header.Set("Authorization", h)
			}
			rec := httptest.NewRecorder()

			authRouter().ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, tt.body, rec.Body.String())
			} else {
				assert.Contains(t, rec.Body.String(), "AUTH-001")
			}
		})
	}
}
