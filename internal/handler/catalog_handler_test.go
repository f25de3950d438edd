package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purrify/pricing_api/internal/models"
	"github.com/purrify/pricing_api/internal/pricing"
	"github.com/purrify/pricing_api/internal/utils"
)

// fakeCatalogStore records mutations and returns a canned error per catalog
// id, standing in for the database-backed catalog service.
type fakeCatalogStore struct {
	catalog    *pricing.Catalog
	statusErr  map[string]error
	lastID     string
	lastActive bool
}

func (f *fakeCatalogStore) Catalog() *pricing.Catalog { return f.catalog }

func (f *fakeCatalogStore) UpdatePrices(ctx context.Context, catalogID string, cadPrice float64, usdPrice *float64) error {
	return nil
}

func (f *fakeCatalogStore) UpdateStatus(ctx context.Context, catalogID string, isActive bool) error {
	if err := f.statusErr[catalogID]; err != nil {
		return err
	}
	f.lastID = catalogID
	f.lastActive = isActive
	return nil
}

func (f *fakeCatalogStore) UpsertProduct(ctx context.Context, product *models.Product) error {
	return nil
}

// fakePlanStore answers plan queries from a fixed slice.
type fakePlanStore struct {
	plans    []models.SubscriptionPlan
	lastID   string
	lastRate float64
}

func (f *fakePlanStore) GetAll() ([]models.SubscriptionPlan, error) { return f.plans, nil }

func (f *fakePlanStore) UpdateRetentionRate(id string, rate float64) error {
	for _, p := range f.plans {
		if p.ID == id {
			f.lastID = id
			f.lastRate = rate
			return nil
		}
	}
	return sql.ErrNoRows
}

func newCatalogRouter(t *testing.T) (*gin.Engine, *fakeCatalogStore, *fakePlanStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog, err := pricing.NewCatalog(pricing.DefaultProducts())
	require.NoError(t, err)

	catalogStore := &fakeCatalogStore{
		catalog: catalog,
		statusErr: map[string]error{
			"purrify-50g":  utils.ErrProductInUse,
			"purrify-500g": sql.ErrNoRows,
		},
	}
	planStore := &fakePlanStore{
		plans: []models.SubscriptionPlan{
			{ID: "monthly", Name: "Monthly", RetentionRate: 0.90, Priority: 1},
			{ID: "quarterly", Name: "Quarterly", RetentionRate: 0.92, Priority: 2},
		},
	}
	h := NewCatalogHandler(catalogStore, planStore)

	router := gin.New()
	admin := router.Group("/v1/admin")
	{
		admin.GET("/products", h.ListProducts)
		admin.PUT("/products/:catalogId/status", h.UpdateStatus)
		admin.GET("/plans", h.ListPlans)
		admin.PUT("/plans/:id/retention", h.UpdateRetention)
	}
	return router, catalogStore, planStore
}

func putJSON(t *testing.T, router *gin.Engine, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestUpdateRetention(t *testing.T) {
	router, _, planStore := newCatalogRouter(t)

	w, env := putJSON(t, router, "/v1/admin/plans/quarterly/retention", `{"retentionRate": 0.95}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "quarterly", planStore.lastID)
	assert.Equal(t, 0.95, planStore.lastRate)
}

func TestUpdateRetentionUnknownPlan(t *testing.T) {
	router, _, _ := newCatalogRouter(t)

	w, env := putJSON(t, router, "/v1/admin/plans/weekly/retention", `{"retentionRate": 0.95}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "PLAN_NOT_FOUND", env.Error.Code)
}

func TestUpdateRetentionRejectsOutOfRange(t *testing.T) {
	router, _, planStore := newCatalogRouter(t)

	for _, body := range []string{
		`{"retentionRate": 1.5}`,
		`{"retentionRate": 0}`,
		`{"retentionRate": -0.9}`,
		`{}`,
	} {
		w, env := putJSON(t, router, "/v1/admin/plans/monthly/retention", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
		require.NotNil(t, env.Error, "body %s", body)
		assert.Equal(t, "INVALID_REQUEST", env.Error.Code, "body %s", body)
	}
	assert.Empty(t, planStore.lastID)
}

func TestUpdateStatus(t *testing.T) {
	router, catalogStore, _ := newCatalogRouter(t)

	w, env := putJSON(t, router, "/v1/admin/products/purrify-120g/status", `{"isActive": false}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "purrify-120g", catalogStore.lastID)
	assert.False(t, catalogStore.lastActive)
}

func TestUpdateStatusAliasedProductConflicts(t *testing.T) {
	router, _, _ := newCatalogRouter(t)

	w, env := putJSON(t, router, "/v1/admin/products/purrify-50g/status", `{"isActive": false}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "PRODUCT_IN_USE", env.Error.Code)
}

func TestUpdateStatusUnknownProduct(t *testing.T) {
	router, _, _ := newCatalogRouter(t)

	w, env := putJSON(t, router, "/v1/admin/products/purrify-500g/status", `{"isActive": true}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "PRODUCT_NOT_FOUND", env.Error.Code)
}

func TestUpdateStatusRequiresIsActive(t *testing.T) {
	router, catalogStore, _ := newCatalogRouter(t)

	w, env := putJSON(t, router, "/v1/admin/products/purrify-120g/status", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_REQUEST", env.Error.Code)
	assert.Empty(t, catalogStore.lastID)
}
