package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcedureName(t *testing.T) {
	r := newTestEngine()

	resp := decode(t, perform(r, http.MethodPost, "/trpc/getCompanies", nil))
	assert.Equal(t, "getCompanies", resp.Data.(map[string]any)["procedure"])

	resp = decode(t, perform(r, http.MethodGet, "/health", nil))
	assert.Equal(t, "", resp.Data.(map[string]any)["procedure"])
}

func TestCORS(t *testing.T) {
	cfg := DefaultCORSConfig()
	cfg.AllowOrigins = []string{"http://localhost:5173"}
	r := newTestEngine(CORS(cfg))

	t.Run("allowed origin", func(t *testing.T) {
		w := perform(r, http.MethodPost, "/trpc/login", map[string]string{"Origin": "http://localhost:5173"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
	})

	t.Run("unknown origin gets no headers", func(t *testing.T) {
		w := perform(r, http.MethodPost, "/trpc/login", map[string]string{"Origin": "http://evil.example"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight answers 204", func(t *testing.T) {
		w := perform(r, http.MethodOptions, "/trpc/login", map[string]string{"Origin": "http://localhost:5173"})
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "43200", w.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("wildcard never allows credentials", func(t *testing.T) {
		wild := DefaultCORSConfig()
		wild.AllowOrigins = []string{"*"}
		w := perform(newTestEngine(CORS(wild)), http.MethodPost, "/trpc/login", map[string]string{"Origin": "http://any.example"})
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("default config allows nothing", func(t *testing.T) {
		assert.Empty(t, DefaultCORSConfig().AllowOrigins)
		assert.Equal(t, 12*time.Hour, DefaultCORSConfig().MaxAge)
	})
}

func TestRequestID(t *testing.T) {
	r := newTestEngine(RequestID())

	w := perform(r, http.MethodPost, "/trpc/login", nil)
	generated := w.Header().Get("X-Request-ID")
	assert.Len(t, generated, 36)

	w = perform(r, http.MethodPost, "/trpc/login", map[string]string{"X-Request-ID": "client-id"})
	assert.Equal(t, "client-id", w.Header().Get("X-Request-ID"))

	long := strings.Repeat("x", 500)
	w = perform(r, http.MethodPost, "/trpc/login", map[string]string{"X-Request-ID": long})
	assert.Len(t, w.Header().Get("X-Request-ID"), MaxRequestIDLength)
}

func TestSecure(t *testing.T) {
	w := perform(newTestEngine(Secure(DefaultSecurityConfig())), http.MethodGet, "/health", nil)
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, w.Header().Get("Content-Security-Policy"))
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))

	cfg := DefaultSecurityConfig()
	cfg.HSTSEnabled = true
	w = perform(newTestEngine(Secure(cfg)), http.MethodGet, "/health", nil)
	assert.Equal(t, "max-age=31536000; includeSubDomains", w.Header().Get("Strict-Transport-Security"))
}

func TestBodyLimit(t *testing.T) {
	r := newTestEngine(RequestID(), BodyLimit(8))

	w := perform(r, http.MethodPost, "/trpc/login", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	req, err := http.NewRequest(http.MethodPost, "/trpc/login", strings.NewReader(`{"email":"someone@example.com"}`))
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, "PAYLOAD_TOO_LARGE", resp.Error.Code)
	assert.NotEmpty(t, resp.Error.RequestID)
}
