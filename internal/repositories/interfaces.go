package repositories

import (
	"context"

	"github.com/csakala/tableside/internal/models"
)

// OrderArchive is the durable audit log for finished orders. The in-memory
// store works without one; the Postgres implementation is wired in when
// postgres_enabled is set.
type OrderArchive interface {
	Create(ctx context.Context, order *models.Order) error
	GetAll(ctx context.Context) ([]*models.Order, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type MenuItemRepository interface {
	Create(ctx context.Context, menuItem *models.MenuItem) error
	GetAll(ctx context.Context) ([]*models.MenuItem, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

// NoopOrderArchive drops every write; the default when Postgres is disabled.
type NoopOrderArchive struct{}

func (NoopOrderArchive) Create(ctx context.Context, order *models.Order) error { return nil }
func (NoopOrderArchive) GetAll(ctx context.Context) ([]*models.Order, error)   { return nil, nil }
func (NoopOrderArchive) Count(ctx context.Context) (int, error)                { return 0, nil }
func (NoopOrderArchive) DeleteAll(ctx context.Context) error                   { return nil }
