package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/csakala/tableside/internal/export"
	"github.com/csakala/tableside/internal/models"
	"github.com/csakala/tableside/internal/store"
)

type Handler struct {
	Store    *store.Store
	Exporter *export.Exporter
	Config   *models.Config
}

func NewHandler(s *store.Store, exporter *export.Exporter, cfg *models.Config) *Handler {
	return &Handler{Store: s, Exporter: exporter, Config: cfg}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu", h.addMenuItem).Methods("POST")
	r.HandleFunc("/api/menu/{id}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/api/menu/{id}/availability", h.toggleAvailability).Methods("POST")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addToCart).Methods("POST")
	r.HandleFunc("/api/cart/items/{id}", h.updateCartItem).Methods("PUT")
	r.HandleFunc("/api/cart/items/{id}", h.removeFromCart).Methods("DELETE")

	r.HandleFunc("/api/orders", h.placeOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/cancel", h.cancelOrder).Methods("POST")

	r.HandleFunc("/api/notifications", h.getNotifications).Methods("GET")
	r.HandleFunc("/api/notifications", h.addNotification).Methods("POST")
	r.HandleFunc("/api/notifications", h.clearNotifications).Methods("DELETE")
	r.HandleFunc("/api/notifications/{id}/read", h.markNotificationRead).Methods("POST")

	r.HandleFunc("/api/filters", h.setFilters).Methods("PUT")
	r.HandleFunc("/api/filters", h.clearFilters).Methods("DELETE")
	r.HandleFunc("/api/search", h.setSearchQuery).Methods("PUT")

	r.HandleFunc("/api/session", h.getSession).Methods("GET")
	r.HandleFunc("/api/session/table", h.setTableNumber).Methods("PUT")
	r.HandleFunc("/api/session/language", h.setLanguage).Methods("PUT")
	r.HandleFunc("/api/session/currency", h.setCurrency).Methods("PUT")
	r.HandleFunc("/api/session/zone", h.setZone).Methods("PUT")
	r.HandleFunc("/api/session/theme", h.toggleTheme).Methods("POST")

	r.HandleFunc("/api/analytics", h.getAnalytics).Methods("GET")
	r.HandleFunc("/api/analytics/summary", h.getAnalyticsSummary).Methods("GET")
	r.HandleFunc("/api/admin/export", h.exportOrders).Methods("POST")

	r.HandleFunc("/api/tables/{number}/qrcode", h.getTableQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "healthy",
		"restaurant": h.Config.RestaurantName,
		"timestamp":  time.Now().Format(time.RFC3339),
	})
}

// menu

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if len(q) == 0 {
		respondJSON(w, http.StatusOK, h.Store.FilteredMenu())
		return
	}

	filter := models.MenuFilter{
		Category:   q.Get("category"),
		Query:      q.Get("q"),
		Dietary:    q["dietary"],
		SpiceLevel: q["spice"],
	}
	if v := q.Get("price_min"); v != "" {
		filter.PriceMin, _ = strconv.ParseFloat(v, 64)
	}
	if v := q.Get("price_max"); v != "" {
		filter.PriceMax, _ = strconv.ParseFloat(v, 64)
	}
	respondJSON(w, http.StatusOK, store.FilterMenu(h.Store.Menu(), filter, h.Config.MaxMenuPrice))
}

func (h *Handler) addMenuItem(w http.ResponseWriter, r *http.Request) {
	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if item.Name == "" || item.Price < 0 || item.PrepTime <= 0 {
		respondError(w, http.StatusBadRequest, "name, non-negative price and positive prep_time are required")
		return
	}
	respondJSON(w, http.StatusCreated, h.Store.AddMenuItem(item))
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	item.ID = mux.Vars(r)["id"]
	h.Store.UpdateMenuItem(item)
	respondJSON(w, http.StatusOK, item)
}

func (h *Handler) toggleAvailability(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	h.Store.ToggleMenuItemAvailability(id)
	item, ok := h.Store.MenuItem(id)
	if !ok {
		respondError(w, http.StatusNotFound, "menu item not found")
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// cart

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	items := h.Store.Cart()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
		"total": models.CartTotal(items),
	})
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemID string `json:"item_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	item, ok := h.Store.MenuItem(req.ItemID)
	if !ok {
		respondError(w, http.StatusNotFound, "menu item not found")
		return
	}
	if !item.Available {
		respondError(w, http.StatusConflict, "menu item is not available")
		return
	}
	h.Store.AddToCart(item)
	h.getCart(w, r)
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity            *int    `json:"quantity,omitempty"`
		SpecialInstructions *string `json:"special_instructions,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	id := mux.Vars(r)["id"]
	if req.Quantity != nil {
		if err := h.Store.UpdateQuantity(id, *req.Quantity); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.SpecialInstructions != nil {
		h.Store.SetSpecialInstructions(id, *req.SpecialInstructions)
	}
	h.getCart(w, r)
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	h.Store.RemoveFromCart(mux.Vars(r)["id"])
	h.getCart(w, r)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	h.Store.ClearCart()
	w.WriteHeader(http.StatusNoContent)
}

// orders

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var draft models.OrderDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	order, err := h.Store.PlaceOrder(draft)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.OrderFilter{
		Status:        q.Get("status"),
		PaymentStatus: q.Get("payment_status"),
		Search:        q.Get("search"),
	}
	if v := q.Get("from"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filter.From = t
		}
	}
	if v := q.Get("to"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filter.To = t
		}
	}
	respondJSON(w, http.StatusOK, h.Store.Orders(filter, q.Get("sort")))
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, ok := h.Store.Order(mux.Vars(r)["id"])
	if !ok {
		respondError(w, http.StatusNotFound, "order not found")
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	id := mux.Vars(r)["id"]
	if err := h.Store.UpdateOrderStatus(id, req.Status); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, store.ErrIllegalTransition) {
			status = http.StatusConflict
		}
		respondError(w, status, err.Error())
		return
	}
	order, ok := h.Store.Order(id)
	if !ok {
		respondError(w, http.StatusNotFound, "order not found")
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.Store.CancelOrder(id); err != nil {
		respondError(w, http.StatusConflict, err.Error())
		return
	}
	order, ok := h.Store.Order(id)
	if !ok {
		respondError(w, http.StatusNotFound, "order not found")
		return
	}
	respondJSON(w, http.StatusOK, order)
}

// notifications

func (h *Handler) getNotifications(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": h.Store.Notifications(),
		"unread":        h.Store.UnreadNotificationCount(),
	})
}

func (h *Handler) addNotification(w http.ResponseWriter, r *http.Request) {
	var n models.Notification
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if n.Title == "" || n.Type == "" {
		respondError(w, http.StatusBadRequest, "type and title are required")
		return
	}
	respondJSON(w, http.StatusCreated, h.Store.AddNotification(n))
}

func (h *Handler) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	h.Store.MarkNotificationRead(mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearNotifications(w http.ResponseWriter, r *http.Request) {
	h.Store.ClearNotifications()
	w.WriteHeader(http.StatusNoContent)
}

// browse state

func (h *Handler) setFilters(w http.ResponseWriter, r *http.Request) {
	var filter models.MenuFilter
	if err := json.NewDecoder(r.Body).Decode(&filter); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	h.Store.SetFilters(filter)
	respondJSON(w, http.StatusOK, h.Store.Filter())
}

func (h *Handler) clearFilters(w http.ResponseWriter, r *http.Request) {
	h.Store.ClearFilters()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setSearchQuery(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	h.Store.SetSearchQuery(req.Query)
	respondJSON(w, http.StatusOK, h.Store.FilteredMenu())
}

// session

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	table, restaurant, zone, language, currency, darkMode := h.Store.Session()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"table_number":  table,
		"restaurant_id": restaurant,
		"zone_id":       zone,
		"language":      language,
		"currency":      currency,
		"dark_mode":     darkMode,
	})
}

func (h *Handler) setTableNumber(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Number int `json:"number"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.Number <= 0 {
		respondError(w, http.StatusBadRequest, "table number must be positive")
		return
	}
	h.Store.SetTableNumber(req.Number)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setLanguage(w http.ResponseWriter, r *http.Request) {
	h.setSessionString(w, r, h.Store.SetLanguage)
}

func (h *Handler) setCurrency(w http.ResponseWriter, r *http.Request) {
	h.setSessionString(w, r, h.Store.SetCurrency)
}

func (h *Handler) setZone(w http.ResponseWriter, r *http.Request) {
	h.setSessionString(w, r, h.Store.SetZone)
}

func (h *Handler) setSessionString(w http.ResponseWriter, r *http.Request, apply func(string)) {
	var req struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.Value == "" {
		respondError(w, http.StatusBadRequest, "value is required")
		return
	}
	apply(req.Value)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) toggleTheme(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]bool{"dark_mode": h.Store.ToggleDarkMode()})
}

// analytics

func (h *Handler) getAnalytics(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.Store.Analytics())
}

func (h *Handler) getAnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.Store.AnalyticsSummary())
}

func (h *Handler) exportOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.Store.Orders(models.OrderFilter{Status: models.OrderStatusCompleted}, models.OrderSortTimestamp)
	path, err := h.Exporter.ExportOrders(orders)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"path":   path,
		"orders": len(orders),
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
