package middleware

import (
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
)

// IPWhitelist returns a middleware that only allows requests from the
// listed addresses. Entries may be plain IPs or CIDR ranges. An empty
// whitelist allows everyone.
func IPWhitelist(entries []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(entries))
	var nets []*net.IPNet
	for _, e := range entries {
		if _, ipnet, err := net.ParseCIDR(e); err == nil {
			nets = append(nets, ipnet)
			continue
		}
		allowed[e] = true
	}

	permits := func(ipStr string) bool {
		if allowed[ipStr] {
			return true
		}
		ip := net.ParseIP(ipStr)
		if ip == nil {
			return false
		}
		for _, n := range nets {
			if n.Contains(ip) {
				return true
			}
		}
		return false
	}

	return func(c *gin.Context) {
		if len(allowed) == 0 && len(nets) == 0 {
			c.Next()
			return
		}
		if !permits(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied"})
			return
		}
		c.Next()
	}
}
