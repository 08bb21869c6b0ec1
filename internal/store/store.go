package store

import (
	"log"
	"sync"
	"time"

	"github.com/csakala/tableside/internal/models"
	"github.com/csakala/tableside/internal/prefs"
	"github.com/csakala/tableside/internal/repositories"
	"github.com/csakala/tableside/internal/sink"
)

// Store owns all application state: menu catalog, cart, orders, notifications
// and browse criteria. Every command is applied under one mutex, so state
// transitions are atomic and the derived analytics snapshot is recomputed
// strictly after the transition that changed the order list.
type Store struct {
	mu sync.Mutex

	config *models.Config

	menu          []models.MenuItem
	cart          []models.CartItem
	orders        []models.Order
	notifications []models.Notification
	analytics     models.Analytics
	filter        models.MenuFilter

	tableNumber  int
	restaurantID string
	zoneID       string
	language     string
	currency     string
	darkMode     bool

	prefs   prefs.Store
	out     sink.OutputDestination
	archive repositories.OrderArchive

	now func() time.Time
}

func New(config *models.Config, preferences prefs.Store, out sink.OutputDestination, archive repositories.OrderArchive) *Store {
	if preferences == nil {
		preferences = prefs.NewMemory()
	}
	if out == nil {
		out = &sink.Discard{}
	}
	if archive == nil {
		archive = repositories.NoopOrderArchive{}
	}

	s := &Store{
		config:       config,
		language:     config.DefaultLanguage,
		currency:     config.DefaultCurrency,
		restaurantID: config.RestaurantID,
		prefs:        preferences,
		out:          out,
		archive:      archive,
		now:          time.Now,
	}
	s.filter = s.defaultFilter()
	s.analytics = s.computeAnalytics()
	s.loadPreferences()
	return s
}

func (s *Store) defaultFilter() models.MenuFilter {
	return models.MenuFilter{PriceMin: 0, PriceMax: 0}
}

// loadPreferences restores the two persisted keys; failures fall back to the
// configured defaults.
func (s *Store) loadPreferences() {
	if lang, err := s.prefs.Load(prefs.KeyLanguage); err != nil {
		log.Printf("Failed to load language preference: %v", err)
	} else if lang != "" {
		s.language = lang
	}
	if cur, err := s.prefs.Load(prefs.KeyCurrency); err != nil {
		log.Printf("Failed to load currency preference: %v", err)
	} else if cur != "" {
		s.currency = cur
	}
}

func (s *Store) SetLanguage(lang string) {
	s.mu.Lock()
	s.language = lang
	s.mu.Unlock()

	// Persisted after commit; a failed save never blocks the change.
	if err := s.prefs.Save(prefs.KeyLanguage, lang); err != nil {
		log.Printf("Failed to persist language preference: %v", err)
	}
}

func (s *Store) SetCurrency(currency string) {
	s.mu.Lock()
	s.currency = currency
	s.mu.Unlock()

	if err := s.prefs.Save(prefs.KeyCurrency, currency); err != nil {
		log.Printf("Failed to persist currency preference: %v", err)
	}
}

func (s *Store) SetTableNumber(n int) {
	if n <= 0 {
		return
	}
	s.mu.Lock()
	s.tableNumber = n
	s.mu.Unlock()
}

func (s *Store) SetRestaurant(id string) {
	s.mu.Lock()
	s.restaurantID = id
	s.mu.Unlock()
}

func (s *Store) SetZone(id string) {
	s.mu.Lock()
	s.zoneID = id
	s.mu.Unlock()
}

func (s *Store) ToggleDarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.darkMode = !s.darkMode
	return s.darkMode
}

// Session returns the transient per-device state.
func (s *Store) Session() (tableNumber int, restaurantID, zoneID, language, currency string, darkMode bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tableNumber, s.restaurantID, s.zoneID, s.language, s.currency, s.darkMode
}

func (s *Store) Close() error {
	return s.out.Close()
}
