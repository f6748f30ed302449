package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixa_backend/internal/middleware"
	"fixa_backend/internal/models"
	"fixa_backend/internal/services"
)

type BidHandler struct {
	*BaseHandler
	bidService *services.BidService
}

func NewBidHandler(base *BaseHandler, bidService *services.BidService) *BidHandler {
	return &BidHandler{BaseHandler: base, bidService: bidService}
}

func (h *BidHandler) RegisterRoutes(r *gin.RouterGroup) {
	bids := r.Group("/bids")
	bids.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleWorker, models.UserRoleBoth, models.UserRoleAdmin))
	{
		bids.GET("/my", h.MyBids)
		bids.POST("/:bidId/withdraw", h.Withdraw)
	}
}

func (h *BidHandler) MyBids(c *gin.Context) {
	bids, err := h.bidService.ListByWorker(middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bids": bids, "total": len(bids)})
}

func (h *BidHandler) Withdraw(c *gin.Context) {
	if err := h.bidService.Withdraw(c.Param("bidId"), middleware.GetUserID(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bid withdrawn"})
}
