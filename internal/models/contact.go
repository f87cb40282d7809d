package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/tkowalski/go-htmx-examples/internal/shared"
)

// Contact is a persisted submission from the contact form demo.
type Contact struct {
	id        string
	sequence  int
	name      string
	email     string
	message   string
	createdAt time.Time
	updatedAt time.Time
}

// NewContact creates a Contact with the given sequence number and form fields.
// The ID is assigned by the repository on insert.
func NewContact(sequence int, name, email, message string) *Contact {
	now := time.Now()
	return &Contact{
		sequence:  sequence,
		name:      name,
		email:     email,
		message:   message,
		createdAt: now,
		updatedAt: now,
	}
}

func (c *Contact) ID() string           { return c.id }
func (c *Contact) Sequence() int        { return c.sequence }
func (c *Contact) Name() string         { return c.name }
func (c *Contact) Email() string        { return c.email }
func (c *Contact) Message() string      { return c.message }
func (c *Contact) CreatedAt() time.Time { return c.createdAt }
func (c *Contact) UpdatedAt() time.Time { return c.updatedAt }

func (c *Contact) SetID(id string)             { c.id = id }
func (c *Contact) SetSequence(n int)           { c.sequence = n }
func (c *Contact) SetCreatedAt(t time.Time)    { c.createdAt = t }
func (c *Contact) SetUpdatedAt(t time.Time)    { c.updatedAt = t }

// Validate checks that the required form fields are present and the email
// looks like an address. Browser-side HTML5 validation runs first, this is
// the server-side backstop.
func (c *Contact) Validate() error {
	if strings.TrimSpace(c.name) == "" {
		return fmt.Errorf("%w: contact name is required", shared.ErrInvalidInput)
	}
	if strings.TrimSpace(c.message) == "" {
		return fmt.Errorf("%w: contact message is required", shared.ErrInvalidInput)
	}
	if !strings.Contains(c.email, "@") {
		return fmt.Errorf("%w: invalid email address %q", shared.ErrInvalidInput, c.email)
	}
	return nil
}
