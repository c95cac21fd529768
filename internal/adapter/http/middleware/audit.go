package middleware

import (
	"net/http"

	"global-crypto-wallet/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuditLog writes one audit event per state-changing wallet request once the
// response is known. Rejected requests are audited too, with their status.
func AuditLog(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead || c.Request.Method == http.MethodOptions {
			return
		}
		action := mapRouteToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}

		log.Info().
			Str("audit_action", action).
			Str("request_id", c.GetString(response.CtxRequestID)).
			Str("subject", c.GetString(CtxSubject)).
			Int("status", c.Writer.Status()).
			Str("client_ip", c.ClientIP()).
			Msg("audit")
	}
}

func mapRouteToAction(route, method string) string {
	if method != http.MethodPost {
		return ""
	}
	switch route {
	case "/api/v1/auth/token":
		return "TOKEN_ISSUE"
	case "/api/v1/wallet/identity/export":
		return "IDENTITY_EXPORT"
	case "/api/v1/wallet/sync":
		return "BALANCE_SYNC"
	case "/api/v1/wallet/transfers":
		return "TRANSFER"
	}
	return ""
}
