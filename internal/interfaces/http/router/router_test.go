package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRegistrar []Procedure

func (f fakeRegistrar) Procedures() []Procedure { return f }

func ok(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"success": true}) }

func newEngine(t *testing.T) (*gin.Engine, *Router) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	r := NewRouter(engine)
	require.NoError(t, r.Register(fakeRegistrar{
		{Name: "getCompanies", Kind: Query, Handler: ok},
		{Name: "createCompany", Kind: Mutation, Handler: ok},
	}))
	r.Setup()
	return engine, r
}

func serve(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestRouter_Methods(t *testing.T) {
	engine, _ := newEngine(t)

	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/trpc/getCompanies").Code)
	assert.Equal(t, http.StatusOK, serve(engine, http.MethodPost, "/trpc/getCompanies").Code)
	assert.Equal(t, http.StatusOK, serve(engine, http.MethodPost, "/trpc/createCompany").Code)

	w := serve(engine, http.MethodGet, "/trpc/createCompany")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Contains(t, w.Body.String(), "METHOD_NOT_SUPPORTED")
}

func TestRouter_UnknownProcedure(t *testing.T) {
	engine, _ := newEngine(t)

	w := serve(engine, http.MethodPost, "/trpc/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "PROCEDURE_NOT_FOUND")

	w = serve(engine, http.MethodGet, "/elsewhere")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"NOT_FOUND"`)
}

func TestRouter_Registry(t *testing.T) {
	_, r := newEngine(t)

	assert.Equal(t, []string{"createCompany", "getCompanies"}, r.Procedures())
	kind, found := r.KindOf("createCompany")
	assert.True(t, found)
	assert.Equal(t, "mutation", kind.String())

	err := r.Register(fakeRegistrar{{Name: "getCompanies", Kind: Query, Handler: ok}})
	assert.ErrorContains(t, err, "registered twice")

	err = r.Register(fakeRegistrar{{Name: "a/b", Handler: ok}})
	assert.ErrorContains(t, err, "invalid procedure name")
}
