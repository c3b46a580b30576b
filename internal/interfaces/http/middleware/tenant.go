package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/postalis/backend/internal/domain/identity"
	"github.com/postalis/backend/internal/interfaces/http/dto"
)

const (
	// TenantKeyHeader carries the tenant subdomain on requests that do not
	// arrive through a tenant-specific hostname.
	TenantKeyHeader = "X-Tenant-Subdomain"

	tenantKeyContextKey = "tenant_key"
)

// TenantKey resolves the tenant subdomain for the request and stores it in
// the gin context. The header takes precedence; otherwise the first label of
// the Host header is used. Requests with no resolvable subdomain are
// rejected.
func TenantKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.ToLower(strings.TrimSpace(c.GetHeader(TenantKeyHeader)))
		if key == "" {
			key = hostSubdomain(c.Request.Host)
		}
		if err := identity.ValidateSubdomain(key); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.ErrCodeValidation,
				"Tenant subdomain could not be determined from the request"))
			return
		}
		c.Set(tenantKeyContextKey, key)
		c.Next()
	}
}

// GetTenantKey returns the tenant subdomain resolved by TenantKey
func GetTenantKey(c *gin.Context) string {
	return c.GetString(tenantKeyContextKey)
}

// hostSubdomain returns the first DNS label of a host with at least three
// labels, so "acme.example.com" yields "acme" while "localhost:8080" and
// "example.com" yield nothing.
func hostSubdomain(host string) string {
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	labels := strings.Split(host, ".")
	if len(labels) < 3 {
		return ""
	}
	return strings.ToLower(labels[0])
}
