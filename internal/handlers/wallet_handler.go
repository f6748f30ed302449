package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixa_backend/internal/middleware"
	"fixa_backend/internal/models"
	"fixa_backend/internal/services"
	"fixa_backend/internal/services/dto"
)

type WalletHandler struct {
	*BaseHandler
	walletService *services.WalletService
}

func NewWalletHandler(base *BaseHandler, walletService *services.WalletService) *WalletHandler {
	return &WalletHandler{BaseHandler: base, walletService: walletService}
}

func (h *WalletHandler) RegisterRoutes(r *gin.RouterGroup) {
	wallet := r.Group("/wallet")
	wallet.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleWorker, models.UserRoleBoth, models.UserRoleAdmin))
	{
		wallet.GET("", h.Wallet)
		wallet.GET("/transactions", h.Transactions)
		wallet.GET("/payouts", h.Payouts)
		wallet.POST("/payouts", h.RequestPayout)
	}
}

func (h *WalletHandler) Wallet(c *gin.Context) {
	wallet, err := h.walletService.GetOrCreateWallet(middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, wallet)
}

func (h *WalletHandler) Transactions(c *gin.Context) {
	txns, err := h.walletService.Transactions(middleware.GetUserID(c), ParseLimit(c, 0))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": txns, "total": len(txns)})
}

func (h *WalletHandler) Payouts(c *gin.Context) {
	payouts, err := h.walletService.Payouts(middleware.GetUserID(c), ParseLimit(c, 0))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payouts": payouts, "total": len(payouts)})
}

func (h *WalletHandler) RequestPayout(c *gin.Context) {
	var req dto.PayoutRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	payout, err := h.walletService.RequestPayout(middleware.GetUserID(c), req.Amount, req.Method, req.Details)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payout)
}
