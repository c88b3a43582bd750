// Package router mounts named procedures under the RPC base path.
package router

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/finstatements/backend/internal/interfaces/http/dto"
	"github.com/finstatements/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// Kind tells queries from mutations
type Kind int

const (
	// Query procedures read state and accept GET with an input query
	// parameter or POST with a JSON body
	Query Kind = iota
	// Mutation procedures change state and accept POST only
	Mutation
)

func (k Kind) String() string {
	if k == Mutation {
		return "mutation"
	}
	return "query"
}

// Procedure is one named RPC endpoint
type Procedure struct {
	Name    string
	Kind    Kind
	Handler gin.HandlerFunc
}

// Registrar is implemented by handlers exposing procedures
type Registrar interface {
	Procedures() []Procedure
}

// Router manages procedure registration on a gin engine
type Router struct {
	engine     *gin.Engine
	group      *gin.RouterGroup
	procedures map[string]Kind
}

// NewRouter creates a Router mounting procedures under /trpc
func NewRouter(engine *gin.Engine) *Router {
	return &Router{
		engine:     engine,
		group:      engine.Group(middleware.RPCBasePath),
		procedures: make(map[string]Kind),
	}
}

// Register mounts the procedures of every registrar. Duplicate names are an error.
func (r *Router) Register(registrars ...Registrar) error {
	for _, reg := range registrars {
		for _, p := range reg.Procedures() {
			if err := r.add(p); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Router) add(p Procedure) error {
	if p.Name == "" || strings.ContainsAny(p.Name, "/,") {
		return fmt.Errorf("invalid procedure name %q", p.Name)
	}
	if _, dup := r.procedures[p.Name]; dup {
		return fmt.Errorf("procedure %q registered twice", p.Name)
	}
	r.procedures[p.Name] = p.Kind

	path := "/" + p.Name
	r.group.POST(path, p.Handler)
	if p.Kind == Query {
		r.group.GET(path, p.Handler)
	} else {
		r.group.GET(path, methodNotSupported)
	}
	return nil
}

// Setup answers unknown procedures with the error envelope
func (r *Router) Setup() {
	r.engine.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, middleware.RPCBasePath+"/") {
			middleware.AbortWithError(c, dto.ErrCodeProcedureNotFound, "No procedure found on path "+c.Request.URL.Path)
			return
		}
		c.AbortWithStatusJSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrCodeNotFound, "Not found"))
	})
}

// Procedures lists the registered procedure names in order
func (r *Router) Procedures() []string {
	names := make([]string, 0, len(r.procedures))
	for name := range r.procedures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// KindOf reports the kind of a registered procedure
func (r *Router) KindOf(name string) (Kind, bool) {
	k, ok := r.procedures[name]
	return k, ok
}

func methodNotSupported(c *gin.Context) {
	middleware.AbortWithError(c, dto.ErrCodeMethodNotAllowed, "Mutations must be called with POST")
}
