package handler

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/purrify/pricing_api/internal/models"
	"github.com/purrify/pricing_api/internal/pricing"
	"github.com/purrify/pricing_api/internal/repository"
	"github.com/purrify/pricing_api/internal/service"
	"github.com/purrify/pricing_api/internal/utils"
)

// CatalogStore is the catalog mutation surface the admin handlers need.
// Satisfied by service.CatalogService; tests substitute a fake.
type CatalogStore interface {
	Catalog() *pricing.Catalog
	UpdatePrices(ctx context.Context, catalogID string, cadPrice float64, usdPrice *float64) error
	UpdateStatus(ctx context.Context, catalogID string, isActive bool) error
	UpsertProduct(ctx context.Context, product *models.Product) error
}

// PlanStore is the plan persistence surface the admin handlers need.
type PlanStore interface {
	GetAll() ([]models.SubscriptionPlan, error)
	UpdateRetentionRate(id string, rate float64) error
}

var (
	_ CatalogStore = (*service.CatalogService)(nil)
	_ PlanStore    = (*repository.PlanRepository)(nil)
)

// CatalogHandler handles admin catalog management endpoints. Price
// mutations go through the catalog service so the in-memory table and the
// cached price ranges stay consistent with the database.
type CatalogHandler struct {
	catalogStore CatalogStore
	planStore    PlanStore
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(catalogStore CatalogStore, planStore PlanStore) *CatalogHandler {
	return &CatalogHandler{catalogStore: catalogStore, planStore: planStore}
}

// ListProducts handles GET /v1/admin/products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	catalog := h.catalogStore.Catalog()
	utils.Success(c, 200, "Products retrieved successfully", gin.H{
		"products": catalog.Products(),
		"aliases":  catalog.Aliases(),
	})
}

// UpdatePricesRequest represents an admin price change for one product.
type UpdatePricesRequest struct {
	PriceCAD float64  `json:"priceCad" binding:"required,gt=0"`
	PriceUSD *float64 `json:"priceUsd" binding:"omitempty,gt=0"`
}

// UpdatePrices handles PUT /v1/admin/products/:catalogId/prices
func (h *CatalogHandler) UpdatePrices(c *gin.Context) {
	var req UpdatePricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	catalogID := c.Param("catalogId")
	err := h.catalogStore.UpdatePrices(c.Request.Context(), catalogID, req.PriceCAD, req.PriceUSD)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Unknown catalog id")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update prices")
		return
	}

	utils.Success(c, 200, "Prices updated successfully", gin.H{
		"catalogId": catalogID,
		"priceCad":  req.PriceCAD,
		"priceUsd":  req.PriceUSD,
	})
}

// UpdateStatusRequest toggles a product's active flag.
type UpdateStatusRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// UpdateStatus handles PUT /v1/admin/products/:catalogId/status. Deactivating
// a product the alias map still references is rejected with 409.
func (h *CatalogHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "isActive is required")
		return
	}

	catalogID := c.Param("catalogId")
	err := h.catalogStore.UpdateStatus(c.Request.Context(), catalogID, *req.IsActive)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Unknown catalog id")
		case errors.Is(err, utils.ErrProductInUse):
			utils.Error(c, 409, "PRODUCT_IN_USE", "Product is referenced by the alias map and cannot be deactivated")
		default:
			utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update product status")
		}
		return
	}

	utils.Success(c, 200, "Product status updated successfully", gin.H{
		"catalogId": catalogID,
		"isActive":  *req.IsActive,
	})
}

// UpsertProduct handles PUT /v1/admin/products/:catalogId
func (h *CatalogHandler) UpsertProduct(c *gin.Context) {
	var req models.Product
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}
	req.CatalogID = c.Param("catalogId")

	if err := h.catalogStore.UpsertProduct(c.Request.Context(), &req); err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to save product")
		return
	}

	utils.Success(c, 200, "Product saved successfully", req)
}

// ListPlans handles GET /v1/admin/plans
func (h *CatalogHandler) ListPlans(c *gin.Context) {
	plans, err := h.planStore.GetAll()
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to list plans")
		return
	}

	utils.Success(c, 200, "Plans retrieved successfully", gin.H{
		"plans": plans,
	})
}

// UpdateRetentionRequest adjusts the assumed monthly retention for a plan.
type UpdateRetentionRequest struct {
	RetentionRate float64 `json:"retentionRate" binding:"required,gt=0,lte=1"`
}

// UpdateRetention handles PUT /v1/admin/plans/:id/retention
func (h *CatalogHandler) UpdateRetention(c *gin.Context) {
	var req UpdateRetentionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "retentionRate must be in (0, 1]")
		return
	}

	id := c.Param("id")
	if err := h.planStore.UpdateRetentionRate(id, req.RetentionRate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.Error(c, 404, "PLAN_NOT_FOUND", "Unknown plan id")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update retention rate")
		return
	}

	utils.Success(c, 200, "Retention rate updated successfully", gin.H{
		"planId":        id,
		"retentionRate": req.RetentionRate,
	})
}
