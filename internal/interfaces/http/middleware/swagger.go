package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/finstatements/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// SwaggerConfig controls access to the API documentation
type SwaggerConfig struct {
	Enabled bool
	// Authenticator, when set, requires a valid session token
	Authenticator Authenticator
	// AllowedIPs holds single IPs or CIDR ranges. Empty allows every client.
	AllowedIPs []string
}

// SwaggerProtection guards the documentation routes. A disabled endpoint
// answers 404 so its existence is not revealed.
func SwaggerProtection(cfg SwaggerConfig) gin.HandlerFunc {
	var nets []*net.IPNet
	for _, entry := range cfg.AllowedIPs {
		entry = strings.TrimSpace(entry)
		if !strings.Contains(entry, "/") {
			if ip := net.ParseIP(entry); ip != nil {
				bits := 8 * net.IPv4len
				if ip.To4() == nil {
					bits = 8 * net.IPv6len
				}
				nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			}
			continue
		}
		if _, network, err := net.ParseCIDR(entry); err == nil {
			nets = append(nets, network)
		}
	}
	restricted := len(cfg.AllowedIPs) > 0

	return func(c *gin.Context) {
		if !cfg.Enabled {
			c.AbortWithStatusJSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrCodeNotFound, "Not found"))
			return
		}
		if restricted && !ipAllowed(net.ParseIP(c.ClientIP()), nets) {
			AbortWithError(c, dto.ErrCodeForbidden, "Access to API documentation is restricted")
			return
		}
		if cfg.Authenticator != nil {
			token := BearerToken(c)
			if token == "" {
				AbortWithError(c, dto.ErrCodeUnauthorized, "Authentication required")
				return
			}
			if _, err := cfg.Authenticator.Authenticate(c.Request.Context(), token); err != nil {
				AbortWithError(c, dto.ErrCodeUnauthorized, "Authentication required")
				return
			}
		}
		c.Next()
	}
}

func ipAllowed(ip net.IP, nets []*net.IPNet) bool {
	if ip == nil {
		return false
	}
	for _, network := range nets {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}
