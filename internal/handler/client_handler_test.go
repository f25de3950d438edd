package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purrify/pricing_api/internal/models"
)

// newMeRouter mounts the identity endpoint behind a stub of the auth
// middleware that injects a resolved client into the request context.
func newMeRouter(client *models.Client, sandbox bool) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := &ClientHandler{}
	router := gin.New()
	router.GET("/v1/client/me", func(c *gin.Context) {
		if client != nil {
			c.Set("client", client)
			c.Set("is_sandbox", sandbox)
		}
		c.Next()
	}, h.Me)
	return router
}

func TestMe(t *testing.T) {
	router := newMeRouter(&models.Client{
		ID:       1,
		ClientID: "storefront",
		Name:     "Purrify Storefront",
		IsActive: true,
	}, true)

	req := httptest.NewRequest(http.MethodGet, "/v1/client/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

	var data struct {
		ClientID string `json:"clientId"`
		Name     string `json:"name"`
		Sandbox  bool   `json:"sandbox"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "storefront", data.ClientID)
	assert.Equal(t, "Purrify Storefront", data.Name)
	assert.True(t, data.Sandbox)
}

func TestMeWithoutClient(t *testing.T) {
	router := newMeRouter(nil, false)

	req := httptest.NewRequest(http.MethodGet, "/v1/client/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_CLIENT", env.Error.Code)
}
