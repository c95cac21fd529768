package handler

import (
	"errors"
	"io"
	"net/http"

	"global-crypto-wallet/internal/adapter/http/dto"
	"global-crypto-wallet/internal/core/domain"
	"global-crypto-wallet/internal/core/ports"
	"global-crypto-wallet/pkg/apperror"
	"global-crypto-wallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler exposes the wallet operations over HTTP.
type WalletHandler struct {
	wallet   ports.WalletService
	endpoint string // default ledger endpoint
	address  string // default sync address
}

// NewWalletHandler creates a new WalletHandler. endpoint and address are
// used when a request leaves them out.
func NewWalletHandler(wallet ports.WalletService, endpoint, address string) *WalletHandler {
	return &WalletHandler{wallet: wallet, endpoint: endpoint, address: address}
}

// Identity handles GET /api/v1/wallet/identity.
func (h *WalletHandler) Identity(c *gin.Context) {
	response.OK(c, h.wallet.Info())
}

// ExportIdentity handles POST /api/v1/wallet/identity/export. Only
// passphrase-protected keys leave the daemon.
func (h *WalletHandler) ExportIdentity(c *gin.Context) {
	var req dto.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	pemBytes, err := h.wallet.ExportPrivateIdentity([]byte(req.Passphrase))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Cache-Control", "no-store")
	response.OK(c, dto.ExportResponse{PrivateKey: string(pemBytes)})
}

// Balances handles GET /api/v1/wallet/balances.
func (h *WalletHandler) Balances(c *gin.Context) {
	response.OK(c, dto.NewBalancesResponse(h.wallet.Balances()))
}

// Balance handles GET /api/v1/wallet/balances/:currency.
func (h *WalletHandler) Balance(c *gin.Context) {
	currency := c.Param("currency")
	response.OK(c, dto.BalanceResponse{
		Currency: currency,
		Balance:  h.wallet.GetBalance(currency).String(),
	})
}

// Sync handles POST /api/v1/wallet/sync. The body is optional.
func (h *WalletHandler) Sync(c *gin.Context) {
	var req dto.SyncRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	endpoint := firstNonEmpty(req.Endpoint, h.endpoint)
	address := firstNonEmpty(req.Address, h.address)

	result := h.wallet.SyncBalance(c.Request.Context(), endpoint, address)
	if !result.Synced() && result.FailureKind == domain.FailureNone {
		response.Error(c, result.Err)
		return
	}

	status := http.StatusOK
	if !result.Synced() {
		status = http.StatusBadGateway
	}
	response.JSON(c, status, dto.SyncResponse{
		Status:      string(result.Status),
		Address:     result.Address,
		Updated:     result.Updated,
		FailureKind: string(result.FailureKind),
	})
}

// Transfer handles POST /api/v1/wallet/transfers.
func (h *WalletHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	amount, err := req.ParseAmount()
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.wallet.Transfer(c.Request.Context(), domain.TransferRequest{
		ToAddress:   req.To,
		Currency:    req.Currency,
		Amount:      amount,
		Endpoint:    firstNonEmpty(req.Endpoint, h.endpoint),
		ReferenceID: req.ReferenceID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	switch {
	case !result.Accepted():
		response.JSON(c, http.StatusBadGateway, dto.NewTransferResponse(result))
	case result.Duplicate:
		response.OK(c, dto.NewTransferResponse(result))
	default:
		response.Created(c, dto.NewTransferResponse(result))
	}
}

// Transactions handles GET /api/v1/wallet/transactions.
func (h *WalletHandler) Transactions(c *gin.Context) {
	history := h.wallet.GetTransactionHistory()
	items := make([]dto.TransactionResponse, 0, len(history))
	for _, r := range history {
		items = append(items, dto.NewTransactionResponse(r))
	}
	response.OK(c, dto.TransactionListResponse{Items: items, Total: len(items)})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
