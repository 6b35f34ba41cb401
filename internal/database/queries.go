package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vijay-prabhu/winematch/internal/catalog"
)

// ReplaceCatalog swaps the stored catalog for items in a single transaction
// and records the import. Catalog order is kept in the position column.
func (db *DB) ReplaceCatalog(ctx context.Context, source string, items []catalog.Item) (*Import, error) {
	imp := &Import{
		ID:         uuid.New().String(),
		WineCount:  len(items),
		ImportedAt: time.Now(),
	}
	if source != "" {
		imp.Source = &source
	}

	err := db.Transaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM wines`); err != nil {
			return fmt.Errorf("failed to clear wines: %w", err)
		}

		for pos, it := range items {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO wines (
					id, name, collection, description, color, calories, position, created_at
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			`,
				it.ID, it.Name, it.Collection, it.Description, it.Color, it.Calories,
				pos, imp.ImportedAt,
			); err != nil {
				return fmt.Errorf("failed to insert wine %d: %w", it.ID, err)
			}

			for _, c := range catalog.Categories {
				for tagPos, tag := range it.Tags(c) {
					if _, err := tx.ExecContext(ctx, `
						INSERT INTO wine_tags (wine_id, category, tag, position)
						VALUES (?, ?, ?, ?)
					`, it.ID, string(c), tag, tagPos); err != nil {
						return fmt.Errorf("failed to insert %s tag for wine %d: %w", c, it.ID, err)
					}
				}
			}
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO catalog_imports (id, source, wine_count, imported_at)
			VALUES (?, ?, ?, ?)
		`, imp.ID, NullString(imp.Source), imp.WineCount, imp.ImportedAt)
		return err
	})
	if err != nil {
		return nil, err
	}

	return imp, nil
}

// ListWines retrieves all stored wines in catalog order
func (db *DB) ListWines(ctx context.Context) ([]catalog.Item, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, name, collection, description, color, calories
		FROM wines ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []catalog.Item
	index := make(map[int]int)
	for rows.Next() {
		var it catalog.Item
		if err := rows.Scan(
			&it.ID, &it.Name, &it.Collection, &it.Description, &it.Color, &it.Calories,
		); err != nil {
			return nil, err
		}
		index[it.ID] = len(items)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := db.attachTags(ctx, items, index, 0); err != nil {
		return nil, err
	}

	return items, nil
}

// GetWine retrieves a single wine by ID. Returns nil if not found.
func (db *DB) GetWine(ctx context.Context, id int) (*catalog.Item, error) {
	it := &catalog.Item{}
	err := db.QueryRowContext(ctx, `
		SELECT id, name, collection, description, color, calories
		FROM wines WHERE id = ?
	`, id).Scan(&it.ID, &it.Name, &it.Collection, &it.Description, &it.Color, &it.Calories)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	items := []catalog.Item{*it}
	if err := db.attachTags(ctx, items, map[int]int{id: 0}, id); err != nil {
		return nil, err
	}
	return &items[0], nil
}

// attachTags loads tags into items. A non-zero onlyID restricts the query
// to one wine.
func (db *DB) attachTags(ctx context.Context, items []catalog.Item, index map[int]int, onlyID int) error {
	query := `SELECT wine_id, category, tag FROM wine_tags`
	args := []interface{}{}
	if onlyID != 0 {
		query += " WHERE wine_id = ?"
		args = append(args, onlyID)
	}
	query += " ORDER BY wine_id, category, position"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var wineID int
		var category, tag string
		if err := rows.Scan(&wineID, &category, &tag); err != nil {
			return err
		}

		idx, ok := index[wineID]
		if !ok {
			continue
		}
		it := &items[idx]
		switch catalog.Category(category) {
		case catalog.CategoryWords:
			it.Words = append(it.Words, tag)
		case catalog.CategoryFoods:
			it.Foods = append(it.Foods, tag)
		case catalog.CategoryMoods:
			it.Moods = append(it.Moods, tag)
		}
	}

	return rows.Err()
}

// CountWines returns the number of stored wines
func (db *DB) CountWines(ctx context.Context) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM wines`).Scan(&n)
	return n, err
}

// LastImport returns the most recent catalog import, or nil if none
func (db *DB) LastImport(ctx context.Context) (*Import, error) {
	imports, err := db.ListImports(ctx, 1)
	if err != nil || len(imports) == 0 {
		return nil, err
	}
	return &imports[0], nil
}

// ListImports retrieves catalog imports, newest first
func (db *DB) ListImports(ctx context.Context, limit int) ([]Import, error) {
	query := `
		SELECT id, source, wine_count, imported_at
		FROM catalog_imports ORDER BY imported_at DESC
	`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var imports []Import
	for rows.Next() {
		var imp Import
		var source sql.NullString
		if err := rows.Scan(&imp.ID, &source, &imp.WineCount, &imp.ImportedAt); err != nil {
			return nil, err
		}
		imp.Source = StringPtr(source)
		imports = append(imports, imp)
	}

	return imports, rows.Err()
}
