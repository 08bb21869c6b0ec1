package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csakala/tableside/internal/models"
)

func TestAddNotificationDefaults(t *testing.T) {
	s, _ := newTestStore()

	n := s.AddNotification(models.Notification{
		Type:    models.NotificationTypeSystem,
		Title:   "Kitchen closing soon",
		Message: "Last orders at 21:30",
	})

	assert.NotEmpty(t, n.ID)
	assert.False(t, n.Timestamp.IsZero())
	assert.False(t, n.Read)
	assert.Equal(t, "tuleni", n.RestaurantID)
	assert.Equal(t, models.NotificationPriorityMedium, n.Priority, "priority defaults to medium")

	urgent := s.AddNotification(models.Notification{
		Type:     models.NotificationTypeSystem,
		Title:    "Power outage",
		Priority: models.NotificationPriorityUrgent,
	})
	assert.Equal(t, models.NotificationPriorityUrgent, urgent.Priority)
}

func TestNotificationsNewestFirst(t *testing.T) {
	base := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	s, _ := newTestStoreAt(base)

	var ids []string
	for i := 0; i < 3; i++ {
		offset := time.Duration(i) * time.Minute
		s.now = func() time.Time { return base.Add(offset) }
		n := s.AddNotification(models.Notification{Type: models.NotificationTypeSystem, Title: "tick"})
		ids = append(ids, n.ID)
	}

	got := s.Notifications()
	require.Len(t, got, 3)
	assert.Equal(t, ids[2], got[0].ID)
	assert.Equal(t, ids[0], got[2].ID)
}

func TestMarkNotificationRead(t *testing.T) {
	s, _ := newTestStore()
	first := s.AddNotification(models.Notification{Type: models.NotificationTypeSystem, Title: "one"})
	s.AddNotification(models.Notification{Type: models.NotificationTypeSystem, Title: "two"})
	assert.Equal(t, 2, s.UnreadNotificationCount())

	s.MarkNotificationRead(first.ID)
	assert.Equal(t, 1, s.UnreadNotificationCount())

	// repeat and unknown ids are no-ops
	s.MarkNotificationRead(first.ID)
	s.MarkNotificationRead("no-such-notification")
	assert.Equal(t, 1, s.UnreadNotificationCount())
}

func TestClearNotifications(t *testing.T) {
	s, _ := newTestStore()
	s.AddNotification(models.Notification{Type: models.NotificationTypeSystem, Title: "one"})
	s.AddNotification(models.Notification{Type: models.NotificationTypeSystem, Title: "two"})

	s.ClearNotifications()
	assert.Empty(t, s.Notifications())
	assert.Zero(t, s.UnreadNotificationCount())
}
