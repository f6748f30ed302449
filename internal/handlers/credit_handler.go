package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixa_backend/internal/middleware"
	"fixa_backend/internal/services"
	"fixa_backend/internal/services/dto"
)

type CreditHandler struct {
	*BaseHandler
	creditService *services.CreditService
}

func NewCreditHandler(base *BaseHandler, creditService *services.CreditService) *CreditHandler {
	return &CreditHandler{BaseHandler: base, creditService: creditService}
}

func (h *CreditHandler) RegisterRoutes(r *gin.RouterGroup) {
	credits := r.Group("/credits")
	credits.Use(middleware.AuthMiddleware())
	{
		credits.GET("/balance", h.Balance)
		credits.GET("/transactions", h.Transactions)
		credits.GET("/packages", h.Packages)
		credits.POST("/purchase", h.Purchase)
	}
}

func (h *CreditHandler) Balance(c *gin.Context) {
	balance, err := h.creditService.GetOrCreateBalance(middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, balance)
}

func (h *CreditHandler) Transactions(c *gin.Context) {
	txns, err := h.creditService.Transactions(middleware.GetUserID(c), ParseLimit(c, 0))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": txns, "total": len(txns)})
}

func (h *CreditHandler) Packages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"packages": h.creditService.Packages()})
}

func (h *CreditHandler) Purchase(c *gin.Context) {
	var req dto.PurchaseCreditsRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	balance, err := h.creditService.Purchase(middleware.GetUserID(c), req.Credits, req.Description)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, balance)
}
