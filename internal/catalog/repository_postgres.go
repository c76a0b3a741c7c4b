package catalog

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// FETCH FULL CATALOG
// --------------------------------------------------
func (r *PostgresRepository) FetchCatalog(ctx context.Context) (Catalog, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, category, unit_price
		FROM menu_items
		ORDER BY category, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cat := make(Catalog)
	for rows.Next() {
		var item MenuItem
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Category,
			&item.UnitPrice,
		); err != nil {
			return nil, err
		}
		cat[item.Category] = append(cat[item.Category], item)
	}
	return cat, rows.Err()
}

// --------------------------------------------------
// AUTHORITATIVE ITEM CHECK
// --------------------------------------------------
func (r *PostgresRepository) VerifyItem(
	ctx context.Context,
	name string,
	category Category,
) (bool, error) {

	var exists int
	err := r.db.QueryRow(ctx, `
		SELECT 1
		FROM menu_items
		WHERE lower(trim(name)) = lower(trim($1))
		  AND category = $2
		LIMIT 1
	`, name, category).Scan(&exists)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// --------------------------------------------------
// ADMIN MUTATIONS
// --------------------------------------------------
func (r *PostgresRepository) AddItem(
	ctx context.Context,
	name string,
	category Category,
) (*MenuItem, error) {

	item := &MenuItem{
		Name:      name,
		Category:  category,
		UnitPrice: UnitPrices[category],
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO menu_items (name, category, unit_price)
		VALUES ($1, $2, $3)
		RETURNING id
	`, item.Name, item.Category, item.UnitPrice).Scan(&item.ID)

	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *PostgresRepository) RemoveItem(ctx context.Context, id int) error {
	cmd, err := r.db.Exec(ctx, `
		DELETE FROM menu_items
		WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("menu item not found")
	}
	return nil
}

// --------------------------------------------------
// SEED STOCK DISHES (EMPTY TABLE ONLY)
// --------------------------------------------------
func (r *PostgresRepository) SeedIfEmpty(ctx context.Context) error {
	var count int
	if err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM menu_items
	`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, category := range AllCategories {
		for _, name := range defaultDishes[category] {
			if _, err := r.db.Exec(ctx, `
				INSERT INTO menu_items (name, category, unit_price)
				VALUES ($1, $2, $3)
			`, name, category, UnitPrices[category]); err != nil {
				return err
			}
		}
	}

	log.Println("Seeded stock dish catalog")
	return nil
}
