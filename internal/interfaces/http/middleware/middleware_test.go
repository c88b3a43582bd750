package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/finstatements/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestEngine mounts a few procedures and /health behind mw. Handlers
// answer 200 with the authenticated user ID when there is one.
func newTestEngine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	ok := func(c *gin.Context) {
		data := gin.H{"procedure": ProcedureName(c)}
		if id, found := GetAuthUserID(c); found {
			data["userId"] = id.String()
		}
		c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
	}
	for _, p := range []string{"login", "register", "getCompanies", "getCurrentUser"} {
		r.POST(RPCBasePath+"/"+p, ok)
	}
	r.GET("/health", ok)
	return r
}

func perform(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func newContextWithHeader(key, value string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	if value != "" {
		c.Request.Header.Set(key, value)
	}
	return c, w
}
