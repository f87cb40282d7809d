package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/tkowalski/go-htmx-examples/internal/shared"
)

// Document is a rich text document saved from the TipTap editor demo.
// Content holds the editor's HTML output verbatim.
type Document struct {
	id        string
	sequence  int
	title     string
	content   string
	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time
}

// NewDocument creates a Document with the given sequence number, title, and
// HTML content. The ID is assigned by the repository on insert.
func NewDocument(sequence int, title, content string) *Document {
	now := time.Now()
	return &Document{
		sequence:  sequence,
		title:     title,
		content:   content,
		createdAt: now,
		updatedAt: now,
	}
}

func (d *Document) ID() string            { return d.id }
func (d *Document) Sequence() int         { return d.sequence }
func (d *Document) Title() string         { return d.title }
func (d *Document) Content() string       { return d.content }
func (d *Document) CreatedAt() time.Time  { return d.createdAt }
func (d *Document) UpdatedAt() time.Time  { return d.updatedAt }
func (d *Document) DeletedAt() *time.Time { return d.deletedAt }

func (d *Document) SetID(id string)            { d.id = id }
func (d *Document) SetSequence(n int)          { d.sequence = n }
func (d *Document) SetTitle(title string)      { d.title = title }
func (d *Document) SetContent(content string)  { d.content = content }
func (d *Document) SetCreatedAt(t time.Time)   { d.createdAt = t }
func (d *Document) SetUpdatedAt(t time.Time)   { d.updatedAt = t }
func (d *Document) SetDeletedAt(t *time.Time)  { d.deletedAt = t }

// Validate checks that the document has a title and some content.
func (d *Document) Validate() error {
	if strings.TrimSpace(d.title) == "" {
		return fmt.Errorf("%w: document title is required", shared.ErrInvalidInput)
	}
	if strings.TrimSpace(d.content) == "" {
		return fmt.Errorf("%w: document content is required", shared.ErrInvalidInput)
	}
	return nil
}
