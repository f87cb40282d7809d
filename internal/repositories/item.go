package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/tkowalski/go-htmx-examples/internal/models"
	"github.com/tkowalski/go-htmx-examples/internal/shared"
)

// ItemRepository implements [models.Repository] for [models.Item] persistence.
type ItemRepository struct {
	db *sql.DB
}

// NewItemRepository creates a new [ItemRepository] with the given database connection
func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// Create inserts a new item into the database with generated ID and sequence
func (r *ItemRepository) Create(item *models.Item) error {
	sequence, err := NextSequence(r.db, "items")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	item.SetID(id)
	item.SetSequence(sequence)

	if err := item.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO items (id, sequence, name, created_at, updated_at) VALUES (?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query, id, sequence, item.Name(), item.CreatedAt(), item.UpdatedAt())
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}

	return nil
}

// Get retrieves an item by ID
func (r *ItemRepository) Get(id string) (*models.Item, error) {
	query := `
		SELECT id, sequence, name, created_at, updated_at
		FROM items
		WHERE id = ?
	`

	item, err := scanItem(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("item not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query item: %w", err)
	}

	return item, nil
}

// Update modifies an existing item in the database
func (r *ItemRepository) Update(item *models.Item) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	item.SetUpdatedAt(now)

	result, err := r.db.Exec("UPDATE items SET name = ?, updated_at = ? WHERE id = ?", item.Name(), now, item.ID())
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("item not found: %s", item.ID())
	}

	return nil
}

// Delete removes an item by ID
func (r *ItemRepository) Delete(id string) error {
	result, err := r.db.Exec("DELETE FROM items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("item not found: %s", id)
	}

	return nil
}

// List retrieves all items in insertion order
func (r *ItemRepository) List(criteria map[string]any) ([]*models.Item, error) {
	query := `
		SELECT id, sequence, name, created_at, updated_at
		FROM items
		ORDER BY sequence ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []*models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return items, nil
}

func scanItem(row scanner) (*models.Item, error) {
	var (
		itemID    string
		sequence  int
		name      string
		createdAt time.Time
		updatedAt time.Time
	)

	if err := row.Scan(&itemID, &sequence, &name, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	item := models.NewItem(sequence, name)
	item.SetID(itemID)
	item.SetCreatedAt(createdAt)
	item.SetUpdatedAt(updatedAt)

	return item, nil
}
