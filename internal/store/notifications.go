package store

import (
	"sort"

	"github.com/lucsky/cuid"

	"github.com/csakala/tableside/internal/models"
)

// AddNotification records a notification; id, timestamp and restaurant
// linkage are filled in here.
func (s *Store) AddNotification(n models.Notification) models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addNotificationLocked(n)
}

func (s *Store) addNotificationLocked(n models.Notification) models.Notification {
	n.ID = cuid.New()
	n.Timestamp = s.now()
	n.Read = false
	if n.RestaurantID == "" {
		n.RestaurantID = s.restaurantID
	}
	if n.Priority == "" {
		n.Priority = models.NotificationPriorityMedium
	}
	s.notifications = append(s.notifications, n)
	return n
}

// MarkNotificationRead flips the read flag; unknown ids are no-ops.
func (s *Store) MarkNotificationRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			return
		}
	}
}

func (s *Store) ClearNotifications() {
	s.mu.Lock()
	s.notifications = nil
	s.mu.Unlock()
}

// Notifications returns the list newest first.
func (s *Store) Notifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out
}

func (s *Store) UnreadNotificationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for i := range s.notifications {
		if !s.notifications[i].Read {
			count++
		}
	}
	return count
}
