package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codguard/codguard/internal/common"
	"github.com/codguard/codguard/internal/model"
)

func TestOrders_StatusQueryAndAuthHeader(t *testing.T) {
	var gotPath, gotQuery, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"_id": "O1", "customer": "Huzaifa Paracha", "status": "pending", "total_price": 2500},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithToken("tok-123"))
	orders, err := c.Orders(context.Background(), "pending")
	require.NoError(t, err)

	assert.Equal(t, "/orders", gotPath)
	assert.Equal(t, "status=pending", gotQuery)
	assert.Equal(t, "Bearer tok-123", gotAuth, "data endpoints carry the bearer token")

	require.Len(t, orders, 1)
	assert.Equal(t, "O1", orders[0].ID, "_id alias resolved")
	assert.Equal(t, model.OrderPending, orders[0].Status)
}

func TestOrders_AllStatusOmitsQuery(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Orders(context.Background(), "all")
	require.NoError(t, err)
	assert.Empty(t, gotQuery)
}

func TestConfirmOrders_SingleBulkRequest(t *testing.T) {
	var calls int
	var gotBody []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders/confirm", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(BulkResult{Success: true, Message: "2 orders confirmed"})
	}))
	defer srv.Close()

	result, err := NewClient(srv.URL).ConfirmOrders(context.Background(), []string{"O1", "O2"})
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "one request carries the whole batch")
	assert.Equal(t, []string{"O1", "O2"}, gotBody, "ids travel as a bare array")
	assert.True(t, result.Success)
}

func TestLogin_TokenExcludedThenAttached(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			assert.Empty(t, r.Header.Get("Authorization"), "login never carries a stale token")
			_ = json.NewEncoder(w).Encode(map[string]string{
				"token": "fresh-token", "user_id": "u1", "email": "ops@merchant.pk", "name": "Ops", "role": "admin",
			})
		case "/auth/verify":
			assert.Equal(t, "Bearer fresh-token", r.Header.Get("Authorization"))
			_ = json.NewEncoder(w).Encode(map[string]string{"user_id": "u1", "email": "ops@merchant.pk"})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithToken("stale-token"))
	sess, err := c.Login(context.Background(), "ops@merchant.pk", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", sess.Token)
	assert.Equal(t, "admin", sess.Role)

	_, err = c.Verify(context.Background())
	require.NoError(t, err)
}

func TestErrorMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/orders/missing":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail": "Order not found"}`))
		case "/orders/forbidden":
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail": "Invalid token"}`))
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	_, err := c.Order(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Order not found", apiErr.Detail)

	_, err = c.Order(context.Background(), "forbidden")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestDeliveries_SampleFallback(t *testing.T) {
	// A server that is already closed stands in for an unreachable backend.
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL)
	assert.False(t, c.SampleMode())

	deliveries, err := c.Deliveries(context.Background(), "all")
	require.NoError(t, err)
	assert.NotEmpty(t, deliveries)
	assert.True(t, c.SampleMode(), "fallback flags sample data mode")

	// Courier filter applies to the sample set too.
	leopard, err := c.Deliveries(context.Background(), "leopard")
	require.NoError(t, err)
	for _, d := range leopard {
		assert.Equal(t, model.CourierLeopard, d.Courier)
	}
	assert.Less(t, len(leopard), len(deliveries))

	summary, err := c.DeliverySummary(context.Background())
	require.NoError(t, err)
	assert.NotZero(t, summary.TotalOrders)
}

func TestFakeOrders_BackendErrorIsNotMaskedBySample(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail": "Internal server error"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.FakeOrders(context.Background(), "")
	require.Error(t, err)
	assert.False(t, c.SampleMode(), "HTTP errors are real failures, not fallback triggers")
}

func TestUpdateOrderStatus_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/orders/O1/status", r.URL.Path)
		assert.Equal(t, "confirmed", r.URL.Query().Get("status"))
		assert.Equal(t, "Customer confirmed via call", r.URL.Query().Get("response_content"))
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "O1", "status": "confirmed"})
	}))
	defer srv.Close()

	order, err := NewClient(srv.URL).UpdateOrderStatus(context.Background(), "O1", "confirmed", "Customer confirmed via call")
	require.NoError(t, err)
	assert.Equal(t, model.OrderConfirmed, order.Status)
}
