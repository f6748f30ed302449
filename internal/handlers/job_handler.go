package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixa_backend/internal/middleware"
	"fixa_backend/internal/models"
	"fixa_backend/internal/services"
	"fixa_backend/internal/services/dto"
)

type JobHandler struct {
	*BaseHandler
	jobService        *services.JobService
	bidService        *services.BidService
	settlementService *services.SettlementService
}

func NewJobHandler(
	base *BaseHandler,
	jobService *services.JobService,
	bidService *services.BidService,
	settlementService *services.SettlementService,
) *JobHandler {
	return &JobHandler{
		BaseHandler:       base,
		jobService:        jobService,
		bidService:        bidService,
		settlementService: settlementService,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/jobs")
	jobs.Use(middleware.AuthMiddleware())
	{
		jobs.GET("/nearby", h.Nearby)
		jobs.GET("/:jobId", h.GetJob)
	}

	// Client side.
	clients := r.Group("/jobs")
	clients.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleClient, models.UserRoleBoth, models.UserRoleAdmin))
	{
		clients.POST("", h.CreateJob)
		clients.GET("/my", h.MyJobs)
		clients.POST("/:jobId/cancel", h.CancelJob)
		clients.GET("/:jobId/bids", h.ListBids)
		clients.POST("/:jobId/bids/:bidId/accept", h.AcceptBid)
		clients.POST("/:jobId/pay", h.PayJob)
	}

	// Worker side.
	workers := r.Group("/jobs")
	workers.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleWorker, models.UserRoleBoth, models.UserRoleAdmin))
	{
		workers.POST("/:jobId/bids", h.PlaceBid)
	}

	// Either party on the job can request completion.
	participants := r.Group("/jobs")
	participants.Use(middleware.AuthMiddleware())
	{
		participants.POST("/:jobId/complete", h.RequestCompletion)
	}
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	job, err := h.jobService.Create(middleware.GetUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobService.Get(c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Nearby(c *gin.Context) {
	var req dto.NearbyRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}
	jobs, err := h.jobService.Nearby(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "total": len(jobs)})
}

func (h *JobHandler) MyJobs(c *gin.Context) {
	jobs, err := h.jobService.ListByClient(middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "total": len(jobs)})
}

func (h *JobHandler) CancelJob(c *gin.Context) {
	if err := h.jobService.Cancel(c.Param("jobId"), middleware.GetUserID(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job cancelled"})
}

func (h *JobHandler) RequestCompletion(c *gin.Context) {
	if err := h.jobService.RequestCompletion(c.Param("jobId"), middleware.GetUserID(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Completion requested"})
}

func (h *JobHandler) PlaceBid(c *gin.Context) {
	var req dto.PlaceBidRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	bid, err := h.bidService.Place(c.Param("jobId"), middleware.GetUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bid)
}

func (h *JobHandler) ListBids(c *gin.Context) {
	bids, err := h.bidService.ListForJob(c.Param("jobId"), middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bids": bids, "total": len(bids)})
}

func (h *JobHandler) AcceptBid(c *gin.Context) {
	if err := h.settlementService.AcceptBid(c.Param("bidId"), middleware.GetUserID(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bid accepted"})
}

func (h *JobHandler) PayJob(c *gin.Context) {
	result, err := h.settlementService.PayJob(c.Param("jobId"), middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
