package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/tkowalski/go-htmx-examples/internal/shared"
)

// Item is a row in the minimal database list demo.
type Item struct {
	id        string
	sequence  int
	name      string
	createdAt time.Time
	updatedAt time.Time
}

// NewItem creates an Item with the given sequence number and name.
// The ID is assigned by the repository on insert.
func NewItem(sequence int, name string) *Item {
	now := time.Now()
	return &Item{
		sequence:  sequence,
		name:      name,
		createdAt: now,
		updatedAt: now,
	}
}

func (i *Item) ID() string           { return i.id }
func (i *Item) Sequence() int        { return i.sequence }
func (i *Item) Name() string         { return i.name }
func (i *Item) CreatedAt() time.Time { return i.createdAt }
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }

func (i *Item) SetID(id string)          { i.id = id }
func (i *Item) SetSequence(n int)        { i.sequence = n }
func (i *Item) SetCreatedAt(t time.Time) { i.createdAt = t }
func (i *Item) SetUpdatedAt(t time.Time) { i.updatedAt = t }

// Validate checks that the item has a name.
func (i *Item) Validate() error {
	if strings.TrimSpace(i.name) == "" {
		return fmt.Errorf("%w: item name is required", shared.ErrInvalidInput)
	}
	return nil
}
