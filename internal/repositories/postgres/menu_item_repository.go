package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/csakala/tableside/internal/models"
)

type MenuItemRepository struct {
	pool *pgxpool.Pool
}

func NewMenuItemRepository(pool *pgxpool.Pool) *MenuItemRepository {
	return &MenuItemRepository{pool: pool}
}

func (r *MenuItemRepository) BulkCreate(ctx context.Context, menuItems []*models.MenuItem) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"menu_items"},
		[]string{
			"id", "name", "description", "price", "category",
			"available", "prep_time", "spice_level", "dietary",
			"allergens", "ingredients", "popularity",
		},
		pgx.CopyFromSlice(len(menuItems), func(i int) ([]interface{}, error) {
			return []interface{}{
				menuItems[i].ID,
				menuItems[i].Name,
				menuItems[i].Description,
				menuItems[i].Price,
				menuItems[i].Category,
				menuItems[i].Available,
				menuItems[i].PrepTime,
				menuItems[i].SpiceLevel,
				menuItems[i].Dietary,
				menuItems[i].Allergens,
				menuItems[i].Ingredients,
				menuItems[i].Popularity,
			}, nil
		}),
	)
	return err
}

func (r *MenuItemRepository) Create(ctx context.Context, menuItem *models.MenuItem) error {
	query := `
        INSERT INTO menu_items (
            id, name, description, price, category, available,
            prep_time, spice_level, dietary, allergens, ingredients, popularity
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
        )
    `

	_, err := r.pool.Exec(ctx, query,
		menuItem.ID,
		menuItem.Name,
		menuItem.Description,
		menuItem.Price,
		menuItem.Category,
		menuItem.Available,
		menuItem.PrepTime,
		menuItem.SpiceLevel,
		menuItem.Dietary,
		menuItem.Allergens,
		menuItem.Ingredients,
		menuItem.Popularity,
	)
	return err
}

func (r *MenuItemRepository) GetAll(ctx context.Context) ([]*models.MenuItem, error) {
	query := `
        SELECT
            id, name, description, price, category, available,
            prep_time, spice_level, dietary, allergens, ingredients, popularity
        FROM menu_items
        ORDER BY category, name
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.MenuItem
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.Category,
			&item.Available,
			&item.PrepTime,
			&item.SpiceLevel,
			&item.Dietary,
			&item.Allergens,
			&item.Ingredients,
			&item.Popularity,
		); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

func (r *MenuItemRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&count)
	return count, err
}

func (r *MenuItemRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM menu_items`)
	return err
}
