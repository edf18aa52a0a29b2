//go:build unit

package webhook_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nabrasa-storefront/internal/domain/order"
	"nabrasa-storefront/internal/infra/webhook"
	"nabrasa-storefront/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPayload() order.Payload {
	return order.Payload{
		EstablishmentSlug: "na-brasa",
		SourceDomain:      "nabrasa.test",
		Order: order.PayloadOrder{
			ExternalID:   "NB-1-abcdef12",
			Channel:      order.ChannelWhatsApp,
			DeliveryType: "pickup",
		},
	}
}

func TestClientSend(t *testing.T) {
	t.Run("success sends headers and decodes the acknowledgement", func(t *testing.T) {
		var got struct {
			auth, apiKey, idem, ctype string
			body                      order.Payload
		}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got.auth = r.Header.Get("Authorization")
			got.apiKey = r.Header.Get("X-API-Key")
			got.idem = r.Header.Get("Idempotency-Key")
			got.ctype = r.Header.Get("Content-Type")
			_ = json.NewDecoder(r.Body).Decode(&got.body)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"ok":true,"order_id":"ord-1","print_queued":true}`))
		}))
		defer srv.Close()

		c := webhook.NewClient(config.WebhookConfig{URL: srv.URL, APIKey: "secret", Timeout: time.Second})
		res, err := c.Send(context.Background(), testPayload(), "key-1")
		require.NoError(t, err)

		assert.Equal(t, webhook.Result{OK: true, OrderID: "ord-1", PrintQueued: true}, res)
		assert.Equal(t, "Bearer secret", got.auth)
		assert.Equal(t, "secret", got.apiKey)
		assert.Equal(t, "key-1", got.idem)
		assert.Equal(t, "application/json", got.ctype)
		assert.Equal(t, "NB-1-abcdef12", got.body.Order.ExternalID)
	})

	t.Run("no api key omits auth headers", func(t *testing.T) {
		var auth, apiKey string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Get("Authorization")
			apiKey = r.Header.Get("X-API-Key")
			w.WriteHeader(http.StatusAccepted)
		}))
		defer srv.Close()

		c := webhook.NewClient(config.WebhookConfig{URL: srv.URL, Timeout: time.Second})
		_, err := c.Send(context.Background(), testPayload(), "key-2")
		require.NoError(t, err)
		assert.Empty(t, auth)
		assert.Empty(t, apiKey)
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		}))
		defer srv.Close()

		c := webhook.NewClient(config.WebhookConfig{URL: srv.URL, Timeout: time.Second})
		_, err := c.Send(context.Background(), testPayload(), "key-3")
		require.Error(t, err)
		assert.ErrorIs(t, err, webhook.ErrUnexpectedStatus)

		var se *webhook.StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, http.StatusBadGateway, se.StatusCode)
		assert.Contains(t, se.Body, "boom")
	})

	t.Run("timeout is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		c := webhook.NewClient(config.WebhookConfig{URL: srv.URL, Timeout: 20 * time.Millisecond})
		_, err := c.Send(context.Background(), testPayload(), "key-4")
		assert.Error(t, err)
	})
}

func TestNewClientWithHTTPLeavesCallerClientAlone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true,"order_id":"ord-9"}`))
	}))
	defer srv.Close()

	shared := srv.Client()
	require.Zero(t, shared.Timeout)

	c := webhook.NewClientWithHTTP(config.WebhookConfig{URL: srv.URL}, shared)
	res, err := c.Send(context.Background(), testPayload(), "key-5")
	require.NoError(t, err)

	assert.Equal(t, "ord-9", res.OrderID)
	assert.Zero(t, shared.Timeout)
}
