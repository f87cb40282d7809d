package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/tkowalski/go-htmx-examples/internal/models"
	"github.com/tkowalski/go-htmx-examples/internal/shared"
)

// ContactRepository implements [models.Repository] for [models.Contact] persistence.
type ContactRepository struct {
	db *sql.DB
}

// NewContactRepository creates a new [ContactRepository] with the given database connection
func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create inserts a new contact into the database with generated ID and sequence
func (r *ContactRepository) Create(contact *models.Contact) error {
	sequence, err := NextSequence(r.db, "contacts")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	contact.SetID(id)
	contact.SetSequence(sequence)

	if err := contact.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO contacts (id, sequence, name, email, message, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query, id, sequence, contact.Name(), contact.Email(), contact.Message(), contact.CreatedAt(), contact.UpdatedAt())
	if err != nil {
		return fmt.Errorf("failed to insert contact: %w", err)
	}

	return nil
}

// Get retrieves a contact by ID
func (r *ContactRepository) Get(id string) (*models.Contact, error) {
	query := `
		SELECT id, sequence, name, email, message, created_at, updated_at
		FROM contacts
		WHERE id = ?
	`

	contact, err := scanContact(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", shared.ErrContactNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query contact: %w", err)
	}

	return contact, nil
}

// Update modifies an existing contact in the database
func (r *ContactRepository) Update(contact *models.Contact) error {
	if err := contact.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	contact.SetUpdatedAt(now)

	query := `
		UPDATE contacts
		SET name = ?, email = ?, message = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query, contact.Name(), contact.Email(), contact.Message(), now, contact.ID())
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrContactNotFound, contact.ID())
	}

	return nil
}

// Delete removes a contact by ID
func (r *ContactRepository) Delete(id string) error {
	result, err := r.db.Exec("DELETE FROM contacts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrContactNotFound, id)
	}

	return nil
}

// List retrieves all contacts matching the given criteria, newest first
// (the contacts page shows recent submissions at the top).
func (r *ContactRepository) List(criteria map[string]any) ([]*models.Contact, error) {
	query := `
		SELECT id, sequence, name, email, message, created_at, updated_at
		FROM contacts
		WHERE 1 = 1
	`

	args := []any{}

	if email, ok := criteria["email"].(string); ok && email != "" {
		query += " AND email = ?"
		args = append(args, email)
	}

	query += " ORDER BY sequence DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	var contacts []*models.Contact
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return contacts, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanContact(row scanner) (*models.Contact, error) {
	var (
		contactID string
		sequence  int
		name      string
		email     string
		message   string
		createdAt time.Time
		updatedAt time.Time
	)

	if err := row.Scan(&contactID, &sequence, &name, &email, &message, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	contact := models.NewContact(sequence, name, email, message)
	contact.SetID(contactID)
	contact.SetCreatedAt(createdAt)
	contact.SetUpdatedAt(updatedAt)

	return contact, nil
}
