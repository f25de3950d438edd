package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/purrify/pricing_api/internal/models"
	"github.com/purrify/pricing_api/internal/pricing"
	"github.com/purrify/pricing_api/internal/service"
	"github.com/purrify/pricing_api/internal/utils"
)

// defaultHorizonMonths is the projection window used when a caller does
// not ask for a specific one.
const defaultHorizonMonths = 12

// SubscriptionHandler handles subscription economics HTTP endpoints.
type SubscriptionHandler struct {
	subscriptionService *service.SubscriptionService
}

// NewSubscriptionHandler constructs a SubscriptionHandler.
func NewSubscriptionHandler(subscriptionService *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// monthsParam reads the optional ?months= projection horizon.
func monthsParam(c *gin.Context) int {
	months := defaultHorizonMonths
	if v := c.Query("months"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			months = n
		}
	}
	return months
}

// GetPlans handles GET /v1/subscription/plans
func (h *SubscriptionHandler) GetPlans(c *gin.Context) {
	utils.Success(c, 200, "Plans retrieved successfully", gin.H{
		"plans": h.subscriptionService.Plans(),
	})
}

// Recommend handles POST /v1/subscription/recommend
func (h *SubscriptionHandler) Recommend(c *gin.Context) {
	var req struct {
		Profile models.CustomerProfile `json:"profile" binding:"required"`
		Months  int                    `json:"months"`
		Locale  string                 `json:"locale"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if req.Months <= 0 {
		req.Months = defaultHorizonMonths
	}
	if req.Locale == "" {
		req.Locale = pricing.DefaultLocale
	}

	rec := h.subscriptionService.Recommend(req.Profile, req.Months, req.Locale)
	utils.Success(c, 200, "Recommendation computed successfully", rec)
}

// GetPlanLTV handles GET /v1/subscription/plans/:id/ltv
func (h *SubscriptionHandler) GetPlanLTV(c *gin.Context) {
	planID := c.Param("id")
	months := monthsParam(c)

	ltv, ok := h.subscriptionService.PlanLTV(planID, months)
	if !ok {
		utils.Error(c, 404, "PLAN_NOT_FOUND", "Unknown plan id")
		return
	}

	utils.Success(c, 200, "Lifetime value computed successfully", gin.H{
		"planId": planID,
		"months": months,
		"ltv":    ltv,
	})
}

// GetUpgrade handles GET /v1/subscription/plans/:id/upgrade
func (h *SubscriptionHandler) GetUpgrade(c *gin.Context) {
	planID := c.Param("id")

	upgrade, ok := h.subscriptionService.UpgradeFor(planID, monthsParam(c))
	if !ok {
		utils.Success(c, 200, "No upgrade available", gin.H{
			"planId":  planID,
			"upgrade": nil,
		})
		return
	}

	utils.Success(c, 200, "Upgrade path retrieved successfully", gin.H{
		"planId":  planID,
		"upgrade": upgrade,
	})
}

// ChurnRisk handles POST /v1/subscription/churn-risk
func (h *SubscriptionHandler) ChurnRisk(c *gin.Context) {
	var req models.SubscriptionAnalytics
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	score := h.subscriptionService.ChurnRisk(req)

	level := "low"
	switch {
	case score >= 0.7:
		level = "high"
	case score >= 0.4:
		level = "medium"
	}

	utils.Success(c, 200, "Churn risk computed successfully", gin.H{
		"score": score,
		"level": level,
	})
}

// GetPaymentLink handles GET /v1/subscription/payment-link?plan=&product=
func (h *SubscriptionHandler) GetPaymentLink(c *gin.Context) {
	planID := c.Query("plan")
	productID := c.Query("product")
	if planID == "" || productID == "" {
		utils.Error(c, 400, "INVALID_REQUEST", "plan and product are required")
		return
	}

	url, err := h.subscriptionService.PaymentLink(c.Request.Context(), planID, productID)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrPlanNotFound):
			utils.Error(c, 404, "PLAN_NOT_FOUND", "Unknown plan id")
		case errors.Is(err, utils.ErrPaymentLinkMissing):
			utils.Error(c, 404, "PAYMENT_LINK_NOT_FOUND", "No payment link registered for this plan and product")
		default:
			utils.Error(c, 502, "LINK_REGISTRY_ERROR", "Failed to resolve payment link")
		}
		return
	}

	utils.Success(c, 200, "Payment link retrieved successfully", gin.H{
		"plan":    planID,
		"product": productID,
		"url":     url,
	})
}

// GetTriggers handles GET /v1/subscription/triggers?day=
func (h *SubscriptionHandler) GetTriggers(c *gin.Context) {
	day := -1
	if v := c.Query("day"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			utils.Error(c, 400, "INVALID_REQUEST", "day must be a non-negative integer")
			return
		}
		day = n
	}

	utils.Success(c, 200, "Triggers retrieved successfully", gin.H{
		"day":      day,
		"triggers": h.subscriptionService.Triggers(day),
	})
}
