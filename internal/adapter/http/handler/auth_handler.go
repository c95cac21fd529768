package handler

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"

	"global-crypto-wallet/internal/adapter/http/dto"
	"global-crypto-wallet/internal/core/ports"
	"global-crypto-wallet/pkg/apperror"
	"global-crypto-wallet/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const operatorSubject = "operator"

// AuthHandler exchanges the operator key for a bearer token.
type AuthHandler struct {
	tokenSvc    ports.TokenService
	walletID    uuid.UUID
	operatorKey [sha256.Size]byte
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(tokenSvc ports.TokenService, walletID uuid.UUID, operatorKey string) *AuthHandler {
	return &AuthHandler{
		tokenSvc:    tokenSvc,
		walletID:    walletID,
		operatorKey: sha256.Sum256([]byte(operatorKey)),
	}
}

// IssueToken handles POST /api/v1/auth/token.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	// Digests keep the comparison constant-time regardless of key length.
	given := sha256.Sum256([]byte(req.OperatorKey))
	if subtle.ConstantTimeCompare(given[:], h.operatorKey[:]) != 1 {
		response.Error(c, apperror.ErrInvalidOperatorKey())
		return
	}

	token, expiry, err := h.tokenSvc.Generate(h.walletID, operatorSubject)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, dto.TokenResponse{
		Token:  token,
		Expiry: expiry.Unix(),
	})
}

// HealthCheck handles GET /health, pinging every configured dependency.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
