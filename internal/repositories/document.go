package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/tkowalski/go-htmx-examples/internal/models"
	"github.com/tkowalski/go-htmx-examples/internal/shared"
)

// DocumentRepository implements [models.Repository] for [models.Document] persistence.
// Documents are soft-deleted so the editor demo can be forgiving about deletes.
type DocumentRepository struct {
	db *sql.DB
}

// NewDocumentRepository creates a new [DocumentRepository] with the given database connection
func NewDocumentRepository(db *sql.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create inserts a new document into the database with generated ID and sequence
func (r *DocumentRepository) Create(doc *models.Document) error {
	sequence, err := NextSequence(r.db, "documents")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	doc.SetID(id)
	doc.SetSequence(sequence)

	if err := doc.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO documents (id, sequence, title, content, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query, id, sequence, doc.Title(), doc.Content(), doc.CreatedAt(), doc.UpdatedAt())
	if err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}

	return nil
}

// Get retrieves a document by ID, excluding soft-deleted documents
func (r *DocumentRepository) Get(id string) (*models.Document, error) {
	query := `
		SELECT id, sequence, title, content, created_at, updated_at, deleted_at
		FROM documents
		WHERE id = ? AND deleted_at IS NULL
	`

	doc, err := scanDocument(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", shared.ErrDocumentNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query document: %w", err)
	}

	return doc, nil
}

// Update modifies an existing document in the database
func (r *DocumentRepository) Update(doc *models.Document) error {
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	doc.SetUpdatedAt(now)

	query := `
		UPDATE documents
		SET title = ?, content = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, doc.Title(), doc.Content(), now, doc.ID())
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrDocumentNotFound, doc.ID())
	}

	return nil
}

// Delete soft-deletes a document by ID
func (r *DocumentRepository) Delete(id string) error {
	now := time.Now()

	query := `
		UPDATE documents
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, now, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrDocumentNotFound, id)
	}

	return nil
}

// List retrieves all documents, most recently updated first, excluding
// soft-deleted documents
func (r *DocumentRepository) List(criteria map[string]any) ([]*models.Document, error) {
	query := `
		SELECT id, sequence, title, content, created_at, updated_at, deleted_at
		FROM documents
		WHERE deleted_at IS NULL
	`

	args := []any{}

	if title, ok := criteria["title"].(string); ok && title != "" {
		query += " AND title = ?"
		args = append(args, title)
	}

	query += " ORDER BY updated_at DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []*models.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return docs, nil
}

func scanDocument(row scanner) (*models.Document, error) {
	var (
		docID     string
		sequence  int
		title     string
		content   string
		createdAt time.Time
		updatedAt time.Time
		deletedAt sql.NullTime
	)

	if err := row.Scan(&docID, &sequence, &title, &content, &createdAt, &updatedAt, &deletedAt); err != nil {
		return nil, err
	}

	doc := models.NewDocument(sequence, title, content)
	doc.SetID(docID)
	doc.SetCreatedAt(createdAt)
	doc.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		doc.SetDeletedAt(&deletedAt.Time)
	}

	return doc, nil
}
