package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/BruksfildServices01/agenda-api/internal/auth"
	"github.com/BruksfildServices01/agenda-api/internal/authz"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

const secret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/whoami", func(c *gin.Context) {
		id := Identity(c)
		c.JSON(http.StatusOK, gin.H{"user": id.UserID, "role": id.Role})
	})
	return r
}

func bearer(t *testing.T, id authz.Identity) string {
	t.Helper()
	tok, err := auth.Sign(secret, id, time.Hour)
	require.NoError(t, err)
	return "Bearer " + tok
}

func do(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter(AuthMiddleware(secret))

	w := do(r, bearer(t, authz.Identity{UserID: "u1", Role: models.RoleClient}))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":"u1","role":"CLIENT"}`, w.Body.String())

	cases := map[string]string{
		"missing":      "",
		"not bearer":   "Basic abc",
		"garbage":      "Bearer not-a-token",
		"wrong secret": func() string {
			tok, _ := auth.Sign("other", authz.Identity{UserID: "u1", Role: models.RoleClient}, time.Hour)
			return "Bearer " + tok
		}(),
		"expired": func() string {
			tok, _ := auth.Sign(secret, authz.Identity{UserID: "u1", Role: models.RoleClient}, -time.Minute)
			return "Bearer " + tok
		}(),
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, http.StatusUnauthorized, do(r, header).Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	r := newRouter(AuthMiddleware(secret), RequireRole(models.RoleAdmin))

	assert.Equal(t, http.StatusOK,
		do(r, bearer(t, authz.Identity{UserID: "a", Role: models.RoleAdmin})).Code)
	assert.Equal(t, http.StatusForbidden,
		do(r, bearer(t, authz.Identity{UserID: "c", Role: models.RoleClient})).Code)

	unauthenticated := newRouter(RequireRole())
	assert.Equal(t, http.StatusUnauthorized, do(unauthenticated, "").Code)
}

func TestCORS(t *testing.T) {
	r := newRouter(CORSMiddleware([]string{"https://app.example"}))

	req := httptest.NewRequest(http.MethodOptions, "/whoami", nil)
	req.Header.Set("Origin", "https://app.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := newRouter(RequestLogger(zap.New(core)))

	w := do(r, "")
	require.Equal(t, http.StatusOK, w.Code)
	reqID := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, reqID)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "request", entry.Message)
	assert.Equal(t, reqID, entry.ContextMap()["request_id"])
	assert.Equal(t, int64(200), entry.ContextMap()["status"])

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(RequestIDHeader, "fixed-id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	r := gin.New()
	r.Use(Recovery(zap.New(core)))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal_error")
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}
