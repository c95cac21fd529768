package handler

import (
	"global-crypto-wallet/internal/adapter/http/middleware"
	redisStore "global-crypto-wallet/internal/adapter/storage/redis"
	"global-crypto-wallet/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Wallet         ports.WalletService
	WalletID       uuid.UUID
	TokenSvc       ports.TokenService
	OperatorKey    string
	LedgerEndpoint string
	LedgerAddress  string
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit
	r.Use(middleware.AuditLog(deps.Logger))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.TokenSvc, deps.WalletID, deps.OperatorKey)
	v1.POST("/auth/token", rl("auth_token"), authHandler.IssueToken)

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.WalletID, deps.Logger)
	walletHandler := NewWalletHandler(deps.Wallet, deps.LedgerEndpoint, deps.LedgerAddress)

	wallet := v1.Group("/wallet", jwtAuth)
	{
		wallet.GET("/identity", rl("wallet_read"), walletHandler.Identity)
		wallet.POST("/identity/export", rl("identity_export"), walletHandler.ExportIdentity)
		wallet.GET("/balances", rl("wallet_read"), walletHandler.Balances)
		wallet.GET("/balances/:currency", rl("wallet_read"), walletHandler.Balance)
		wallet.POST("/sync", rl("wallet_sync"), walletHandler.Sync)
		wallet.POST("/transfers", rl("wallet_transfer"), walletHandler.Transfer)
		wallet.GET("/transactions", rl("wallet_read"), walletHandler.Transactions)
	}

	return r
}
