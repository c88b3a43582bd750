// Package middleware provides the gin middleware of the RPC server.
package middleware

import (
	"strings"

	"github.com/finstatements/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// RPCBasePath is the prefix every procedure is mounted under
const RPCBasePath = "/trpc"

// Context keys shared between middleware and handlers
const (
	RequestIDKey = "request_id"
	ErrorCodeKey = "rpc_error_code"
)

// ProcedureName returns the procedure matched by the route, or "" for
// requests outside the RPC surface
func ProcedureName(c *gin.Context) string {
	name, ok := strings.CutPrefix(c.FullPath(), RPCBasePath+"/")
	if !ok {
		return ""
	}
	return name
}

// GetRequestID returns the request ID assigned by RequestID
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}

// AbortWithError answers with the error envelope and records the code for
// the metrics middleware
func AbortWithError(c *gin.Context, code, message string) {
	c.Set(ErrorCodeKey, code)
	c.AbortWithStatusJSON(dto.GetHTTPStatus(code), dto.NewErrorResponseWithRequestID(code, message, GetRequestID(c)))
}

// procedureSet is a lookup of procedure names
type procedureSet map[string]struct{}

func newProcedureSet(names []string) procedureSet {
	set := make(procedureSet, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

func (s procedureSet) has(name string) bool {
	_, ok := s[name]
	return ok
}
