package paymentlinks

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purrify/pricing_api/internal/utils"
)

func newTestRegistry(t *testing.T, secret string, links map[string]string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Every request must carry a valid signature over its path.
		if !utils.VerifySignature([]byte(r.URL.Path), r.Header.Get("X-Signature"), secret) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if r.URL.Path == "/v1/links" {
			var resp LinkListResponse
			for k, u := range links {
				resp.Links = append(resp.Links, LinkResponse{Key: k, URL: u})
			}
			json.NewEncoder(w).Encode(resp)
			return
		}

		key := r.URL.Path[len("/v1/links/"):]
		u, ok := links[key]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(LinkResponse{Key: key, URL: u})
	}))
}

func TestResolve(t *testing.T) {
	srv := newTestRegistry(t, "s3cret", map[string]string{
		"monthly_purrify-50g": "https://buy.stripe.com/test_abc",
	})
	defer srv.Close()

	client := NewClient(srv.URL, "s3cret")

	url, err := client.Resolve(context.Background(), "monthly_purrify-50g")
	require.NoError(t, err)
	assert.Equal(t, "https://buy.stripe.com/test_abc", url)
}

func TestResolveMissingKey(t *testing.T) {
	srv := newTestRegistry(t, "s3cret", nil)
	defer srv.Close()

	client := NewClient(srv.URL, "s3cret")

	_, err := client.Resolve(context.Background(), "monthly_purrify-50g")
	assert.ErrorIs(t, err, utils.ErrPaymentLinkMissing)
}

func TestResolveRejectedSignature(t *testing.T) {
	srv := newTestRegistry(t, "s3cret", nil)
	defer srv.Close()

	client := NewClient(srv.URL, "wrong-secret")

	_, err := client.Resolve(context.Background(), "monthly_purrify-50g")
	require.Error(t, err)
	assert.NotErrorIs(t, err, utils.ErrPaymentLinkMissing)
}

func TestResolveAll(t *testing.T) {
	want := map[string]string{
		"monthly_purrify-50g":    "https://buy.stripe.com/test_abc",
		"quarterly_purrify-120g": "https://buy.stripe.com/test_def",
	}
	srv := newTestRegistry(t, "s3cret", want)
	defer srv.Close()

	client := NewClient(srv.URL, "s3cret")

	links, err := client.ResolveAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, links)
}
