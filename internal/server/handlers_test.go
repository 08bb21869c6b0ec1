package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csakala/tableside/internal/export"
	"github.com/csakala/tableside/internal/models"
	"github.com/csakala/tableside/internal/store"
)

func testHandlerConfig(t *testing.T) *models.Config {
	t.Helper()
	return &models.Config{
		RestaurantName:    "Tuleni Restaurant",
		RestaurantID:      "tuleni",
		BaseURL:           "https://tuleni.example.com",
		TableCount:        20,
		DefaultLanguage:   "en",
		DefaultCurrency:   "ZMW",
		MaxMenuPrice:      200,
		ExportPath:        t.TempDir(),
		ExportDestination: "local",
	}
}

func newTestRouter(t *testing.T) (*mux.Router, *store.Store) {
	t.Helper()
	cfg := testHandlerConfig(t)
	s := store.New(cfg, nil, nil, nil)
	s.SetMenu([]models.MenuItem{
		{
			ID:        "nshima-beef",
			Name:      "Nshima with Beef Stew",
			Price:     45.00,
			Category:  "mains",
			Available: true,
			PrepTime:  10,
		},
		{
			ID:         "grilled-chicken",
			Name:       "Grilled Chicken",
			Price:      85.00,
			Category:   "grills",
			Available:  true,
			PrepTime:   20,
			SpiceLevel: models.SpiceLevelHot,
		},
		{
			ID:        "garden-salad",
			Name:      "Garden Salad",
			Price:     30.00,
			Category:  "salads",
			Available: false,
			PrepTime:  5,
		},
	})

	exporter, err := export.NewExporter(cfg)
	require.NoError(t, err)

	r := mux.NewRouter()
	NewHandler(s, exporter, cfg).RegisterRoutes(r)
	return r, s
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
}

func TestHealthCheck(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := doJSON(t, r, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "Tuleni Restaurant", body["restaurant"])
}

func TestGetMenuQueryFilters(t *testing.T) {
	r, _ := newTestRouter(t)

	tests := []struct {
		name    string
		path    string
		wantIDs []string
	}{
		{name: "unfiltered hides unavailable", path: "/api/menu", wantIDs: []string{"nshima-beef", "grilled-chicken"}},
		{name: "category", path: "/api/menu?category=mains", wantIDs: []string{"nshima-beef"}},
		{name: "text search", path: "/api/menu?q=chicken", wantIDs: []string{"grilled-chicken"}},
		{name: "spice", path: "/api/menu?spice=hot", wantIDs: []string{"grilled-chicken"}},
		{name: "price range", path: "/api/menu?price_min=40&price_max=50", wantIDs: []string{"nshima-beef"}},
		{name: "no match", path: "/api/menu?q=pizza", wantIDs: nil},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			rec := doJSON(t, r, http.MethodGet, testCase.path, nil)
			require.Equal(t, http.StatusOK, rec.Code)

			var result models.MenuResult
			decodeBody(t, rec, &result)
			gotIDs := make([]string, 0, len(result.Items))
			for _, item := range result.Items {
				gotIDs = append(gotIDs, item.ID)
			}
			if testCase.wantIDs == nil {
				assert.Empty(t, gotIDs)
			} else {
				assert.ElementsMatch(t, testCase.wantIDs, gotIDs)
			}
		})
	}
}

func TestAddMenuItemValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/menu", models.MenuItem{Name: "Munkoyo", Price: 12, PrepTime: 2, Category: "drinks", Available: true})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.MenuItem
	decodeBody(t, rec, &created)
	assert.NotEmpty(t, created.ID)

	rec = doJSON(t, r, http.MethodPost, "/api/menu", models.MenuItem{Price: 12, PrepTime: 2})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/menu", models.MenuItem{Name: "Broken", Price: -1, PrepTime: 2})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestToggleAvailabilityEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/menu/garden-salad/availability", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var item models.MenuItem
	decodeBody(t, rec, &item)
	assert.True(t, item.Available)

	rec = doJSON(t, r, http.MethodPost, "/api/menu/no-such-item/availability", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	// unknown item
	rec := doJSON(t, r, http.MethodPost, "/api/cart/items", map[string]string{"item_id": "no-such-item"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// unavailable item
	rec = doJSON(t, r, http.MethodPost, "/api/cart/items", map[string]string{"item_id": "garden-salad"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/cart/items", map[string]string{"item_id": "nshima-beef"})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, r, http.MethodPost, "/api/cart/items", map[string]string{"item_id": "nshima-beef"})
	require.Equal(t, http.StatusOK, rec.Code)

	var cart struct {
		Items []models.CartItem `json:"items"`
		Total float64           `json:"total"`
	}
	decodeBody(t, rec, &cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 90.00, cart.Total)

	rec = doJSON(t, r, http.MethodPut, "/api/cart/items/nshima-beef", map[string]interface{}{"quantity": 3, "special_instructions": "no salt"})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &cart)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, "no salt", cart.Items[0].SpecialInstructions)

	rec = doJSON(t, r, http.MethodPut, "/api/cart/items/nshima-beef", map[string]int{"quantity": -1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodDelete, "/api/cart", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = doJSON(t, r, http.MethodGet, "/api/cart", nil)
	decodeBody(t, rec, &cart)
	assert.Empty(t, cart.Items)
}

func placeOrderViaAPI(t *testing.T, r http.Handler) models.Order {
	t.Helper()
	rec := doJSON(t, r, http.MethodPut, "/api/session/table", map[string]int{"number": 7})
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = doJSON(t, r, http.MethodPost, "/api/cart/items", map[string]string{"item_id": "nshima-beef"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/orders", models.OrderDraft{
		CustomerName:  "Mutale Banda",
		CustomerPhone: "+260971234567",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var order models.Order
	decodeBody(t, rec, &order)
	return order
}

func TestPlaceOrderFlow(t *testing.T) {
	r, _ := newTestRouter(t)
	order := placeOrderViaAPI(t, r)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 7, order.TableNumber)
	assert.Equal(t, 45.00, order.Total)
	assert.Equal(t, 15, order.EstimatedTime)

	// cart is cleared by placement
	rec := doJSON(t, r, http.MethodGet, "/api/cart", nil)
	var cart struct {
		Items []models.CartItem `json:"items"`
	}
	decodeBody(t, rec, &cart)
	assert.Empty(t, cart.Items)

	// and a notification was recorded
	rec = doJSON(t, r, http.MethodGet, "/api/notifications", nil)
	var notifications struct {
		Notifications []models.Notification `json:"notifications"`
		Unread        int                   `json:"unread"`
	}
	decodeBody(t, rec, &notifications)
	require.Len(t, notifications.Notifications, 1)
	assert.Equal(t, order.ID, notifications.Notifications[0].OrderID)
	assert.Equal(t, 1, notifications.Unread)
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPut, "/api/session/table", map[string]int{"number": 3})
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = doJSON(t, r, http.MethodPost, "/api/orders", models.OrderDraft{
		CustomerName:  "Mutale Banda",
		CustomerPhone: "+260971234567",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Contains(t, body["error"], "cart")
}

func TestUpdateOrderStatusEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	order := placeOrderViaAPI(t, r)

	rec := doJSON(t, r, http.MethodPut, "/api/orders/"+order.ID+"/status", map[string]string{"status": models.OrderStatusConfirmed})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated models.Order
	decodeBody(t, rec, &updated)
	assert.Equal(t, models.OrderStatusConfirmed, updated.Status)

	// skipping ahead is rejected
	rec = doJSON(t, r, http.MethodPut, "/api/orders/"+order.ID+"/status", map[string]string{"status": models.OrderStatusCompleted})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, r, http.MethodPut, "/api/orders/"+order.ID+"/status", map[string]string{"status": "in_transit"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelOrderEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	order := placeOrderViaAPI(t, r)

	rec := doJSON(t, r, http.MethodPost, "/api/orders/"+order.ID+"/cancel", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var cancelled models.Order
	decodeBody(t, rec, &cancelled)
	assert.Equal(t, models.OrderStatusCancelled, cancelled.Status)

	// cancellation is one-shot
	rec = doJSON(t, r, http.MethodPost, "/api/orders/"+order.ID+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetOrdersFilterParams(t *testing.T) {
	r, s := newTestRouter(t)
	first := placeOrderViaAPI(t, r)
	second := placeOrderViaAPI(t, r)
	require.NoError(t, s.UpdateOrderStatus(first.ID, models.OrderStatusConfirmed))

	rec := doJSON(t, r, http.MethodGet, "/api/orders?status=pending", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var orders []models.Order
	decodeBody(t, rec, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, second.ID, orders[0].ID)

	rec = doJSON(t, r, http.MethodGet, "/api/orders?search=mutale", nil)
	decodeBody(t, rec, &orders)
	assert.Len(t, orders, 2)
}

func TestSessionEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPut, "/api/session/language", map[string]string{"value": "bem"})
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = doJSON(t, r, http.MethodPut, "/api/session/currency", map[string]string{"value": "USD"})
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = doJSON(t, r, http.MethodPut, "/api/session/currency", map[string]string{"value": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = doJSON(t, r, http.MethodPut, "/api/session/table", map[string]int{"number": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/session/theme", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var theme map[string]bool
	decodeBody(t, rec, &theme)
	assert.True(t, theme["dark_mode"])

	rec = doJSON(t, r, http.MethodGet, "/api/session", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var session map[string]interface{}
	decodeBody(t, rec, &session)
	assert.Equal(t, "bem", session["language"])
	assert.Equal(t, "USD", session["currency"])
	assert.Equal(t, true, session["dark_mode"])
}

func TestAnalyticsEndpoints(t *testing.T) {
	r, s := newTestRouter(t)
	order := placeOrderViaAPI(t, r)
	for _, status := range []string{
		models.OrderStatusConfirmed,
		models.OrderStatusPreparing,
		models.OrderStatusReady,
		models.OrderStatusDelivered,
		models.OrderStatusCompleted,
	} {
		require.NoError(t, s.UpdateOrderStatus(order.ID, status))
	}

	rec := doJSON(t, r, http.MethodGet, "/api/analytics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var analytics models.Analytics
	decodeBody(t, rec, &analytics)
	assert.Equal(t, 1, analytics.TotalOrders)
	assert.Equal(t, 45.00, analytics.TotalRevenue)

	rec = doJSON(t, r, http.MethodGet, "/api/analytics/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestExportEndpoint(t *testing.T) {
	r, s := newTestRouter(t)
	order := placeOrderViaAPI(t, r)
	for _, status := range []string{
		models.OrderStatusConfirmed,
		models.OrderStatusPreparing,
		models.OrderStatusReady,
		models.OrderStatusDelivered,
		models.OrderStatusCompleted,
	} {
		require.NoError(t, s.UpdateOrderStatus(order.ID, status))
	}

	rec := doJSON(t, r, http.MethodPost, "/api/admin/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Path   string `json:"path"`
		Orders int    `json:"orders"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, 1, body.Orders)
	assert.True(t, strings.HasSuffix(body.Path, ".parquet"))
}

func TestTableQRCode(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/tables/5/qrcode", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Body.Bytes())

	// outside the configured table range
	rec = doJSON(t, r, http.MethodGet, "/api/tables/21/qrcode", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = doJSON(t, r, http.MethodGet, "/api/tables/0/qrcode", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
