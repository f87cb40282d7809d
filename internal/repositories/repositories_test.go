package repositories

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/tkowalski/go-htmx-examples/internal/models"
	"github.com/tkowalski/go-htmx-examples/internal/shared"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func TestNextSequence(t *testing.T) {
	db := setupTestDB(t)

	for want := 1; want <= 3; want++ {
		got, err := NextSequence(db, "contacts")
		if err != nil {
			t.Fatalf("failed to get sequence: %v", err)
		}
		if got != want {
			t.Errorf("expected sequence %d, got %d", want, got)
		}
	}

	// Independent counter per table.
	got, err := NextSequence(db, "items")
	if err != nil {
		t.Fatalf("failed to get sequence: %v", err)
	}
	if got != 1 {
		t.Errorf("expected items sequence 1, got %d", got)
	}
}

func TestContactRepository(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewContactRepository(db)

		contact := models.NewContact(0, "Ada Lovelace", "ada@example.com", "Hello")
		if err := repo.Create(contact); err != nil {
			t.Fatalf("failed to create contact: %v", err)
		}

		if contact.ID() == "" {
			t.Error("contact ID should be set after creation")
		}
	})

	t.Run("Create rejects invalid input", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewContactRepository(db)

		contact := models.NewContact(0, "", "ada@example.com", "Hello")
		if err := repo.Create(contact); err == nil {
			t.Error("expected validation error for empty name")
		}

		contact = models.NewContact(0, "Ada", "not-an-email", "Hello")
		if err := repo.Create(contact); err == nil {
			t.Error("expected validation error for malformed email")
		}
	})

	t.Run("Get", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewContactRepository(db)

		contact := models.NewContact(0, "Ada Lovelace", "ada@example.com", "Hello")
		if err := repo.Create(contact); err != nil {
			t.Fatalf("failed to create contact: %v", err)
		}

		retrieved, err := repo.Get(contact.ID())
		if err != nil {
			t.Fatalf("failed to get contact: %v", err)
		}
		if retrieved.Email() != contact.Email() || retrieved.Message() != contact.Message() {
			t.Errorf("retrieved contact differs from created")
		}
	})

	t.Run("Get unknown id", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewContactRepository(db)

		if _, err := repo.Get("missing"); !errors.Is(err, shared.ErrContactNotFound) {
			t.Errorf("expected ErrContactNotFound, got %v", err)
		}
	})

	t.Run("List newest first", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewContactRepository(db)

		for _, name := range []string{"first", "second", "third"} {
			if err := repo.Create(models.NewContact(0, name, name+"@example.com", "msg")); err != nil {
				t.Fatalf("failed to create contact: %v", err)
			}
		}

		contacts, err := repo.List(map[string]any{})
		if err != nil {
			t.Fatalf("failed to list contacts: %v", err)
		}
		if len(contacts) != 3 {
			t.Fatalf("expected 3 contacts, got %d", len(contacts))
		}
		if contacts[0].Name() != "third" {
			t.Errorf("expected newest contact first, got %s", contacts[0].Name())
		}
	})

	t.Run("List filters by email", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewContactRepository(db)

		repo.Create(models.NewContact(0, "Ada", "ada@example.com", "one"))
		repo.Create(models.NewContact(0, "Grace", "grace@example.com", "two"))

		contacts, err := repo.List(map[string]any{"email": "ada@example.com"})
		if err != nil {
			t.Fatalf("failed to list contacts: %v", err)
		}
		if len(contacts) != 1 || contacts[0].Name() != "Ada" {
			t.Errorf("expected only Ada's contact, got %d entries", len(contacts))
		}
	})
}

func TestItemRepository(t *testing.T) {
	t.Run("Create and List in insertion order", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewItemRepository(db)

		for _, name := range []string{"alpha", "beta", "gamma"} {
			if err := repo.Create(models.NewItem(0, name)); err != nil {
				t.Fatalf("failed to create item: %v", err)
			}
		}

		items, err := repo.List(nil)
		if err != nil {
			t.Fatalf("failed to list items: %v", err)
		}
		if len(items) != 3 {
			t.Fatalf("expected 3 items, got %d", len(items))
		}
		for i, want := range []string{"alpha", "beta", "gamma"} {
			if items[i].Name() != want {
				t.Errorf("position %d: expected %s, got %s", i, want, items[i].Name())
			}
			if items[i].Sequence() != i+1 {
				t.Errorf("position %d: expected sequence %d, got %d", i, i+1, items[i].Sequence())
			}
		}
	})

	t.Run("Delete", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewItemRepository(db)

		item := models.NewItem(0, "alpha")
		if err := repo.Create(item); err != nil {
			t.Fatalf("failed to create item: %v", err)
		}

		if err := repo.Delete(item.ID()); err != nil {
			t.Fatalf("failed to delete item: %v", err)
		}
		if err := repo.Delete(item.ID()); err == nil {
			t.Error("deleting twice should fail")
		}
	})
}

func TestDocumentRepository(t *testing.T) {
	t.Run("Create and Get", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewDocumentRepository(db)

		doc := models.NewDocument(0, "Notes", "<p>Hello</p>")
		if err := repo.Create(doc); err != nil {
			t.Fatalf("failed to create document: %v", err)
		}

		retrieved, err := repo.Get(doc.ID())
		if err != nil {
			t.Fatalf("failed to get document: %v", err)
		}
		if retrieved.Title() != "Notes" || retrieved.Content() != "<p>Hello</p>" {
			t.Errorf("retrieved document differs from created")
		}
	})

	t.Run("Update", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewDocumentRepository(db)

		doc := models.NewDocument(0, "Notes", "<p>Hello</p>")
		if err := repo.Create(doc); err != nil {
			t.Fatalf("failed to create document: %v", err)
		}

		doc.SetTitle("Notes v2")
		doc.SetContent("<p>Hello again</p>")
		if err := repo.Update(doc); err != nil {
			t.Fatalf("failed to update document: %v", err)
		}

		retrieved, err := repo.Get(doc.ID())
		if err != nil {
			t.Fatalf("failed to get document: %v", err)
		}
		if retrieved.Title() != "Notes v2" {
			t.Errorf("expected updated title, got %s", retrieved.Title())
		}
	})

	t.Run("soft delete hides document", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewDocumentRepository(db)

		doc := models.NewDocument(0, "Notes", "<p>Hello</p>")
		if err := repo.Create(doc); err != nil {
			t.Fatalf("failed to create document: %v", err)
		}

		if err := repo.Delete(doc.ID()); err != nil {
			t.Fatalf("failed to delete document: %v", err)
		}

		if _, err := repo.Get(doc.ID()); !errors.Is(err, shared.ErrDocumentNotFound) {
			t.Errorf("expected ErrDocumentNotFound after delete, got %v", err)
		}

		docs, err := repo.List(nil)
		if err != nil {
			t.Fatalf("failed to list documents: %v", err)
		}
		if len(docs) != 0 {
			t.Errorf("soft-deleted document still listed")
		}

		// Row remains in the table.
		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM documents").Scan(&count); err != nil {
			t.Fatalf("failed to count documents: %v", err)
		}
		if count != 1 {
			t.Errorf("expected 1 row after soft delete, got %d", count)
		}
	})

	t.Run("List most recently updated first", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewDocumentRepository(db)

		older := models.NewDocument(0, "Older", "<p>a</p>")
		newer := models.NewDocument(0, "Newer", "<p>b</p>")
		older.SetUpdatedAt(time.Now().Add(-time.Hour))

		if err := repo.Create(newer); err != nil {
			t.Fatalf("failed to create document: %v", err)
		}
		if err := repo.Create(older); err != nil {
			t.Fatalf("failed to create document: %v", err)
		}

		docs, err := repo.List(nil)
		if err != nil {
			t.Fatalf("failed to list documents: %v", err)
		}
		if len(docs) != 2 || docs[0].Title() != "Newer" {
			t.Errorf("expected most recently updated document first")
		}
	})
}

func TestSessionRepository(t *testing.T) {
	t.Run("Create and Get", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSessionRepository(db)

		session := models.NewSession(shared.GenerateID(), "octocat", "octo@example.com", time.Hour)
		if err := repo.Create(session); err != nil {
			t.Fatalf("failed to create session: %v", err)
		}

		retrieved, err := repo.Get(session.ID())
		if err != nil {
			t.Fatalf("failed to get session: %v", err)
		}
		if retrieved.UserLogin() != "octocat" {
			t.Errorf("expected login octocat, got %s", retrieved.UserLogin())
		}
	})

	t.Run("expired session reads as expired", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSessionRepository(db)

		session := models.NewSession(shared.GenerateID(), "octocat", "", -time.Minute)
		if err := repo.Create(session); err != nil {
			t.Fatalf("failed to create session: %v", err)
		}

		if _, err := repo.Get(session.ID()); !errors.Is(err, shared.ErrSessionExpired) {
			t.Errorf("expected ErrSessionExpired, got %v", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSessionRepository(db)

		session := models.NewSession(shared.GenerateID(), "octocat", "", time.Hour)
		if err := repo.Create(session); err != nil {
			t.Fatalf("failed to create session: %v", err)
		}

		if err := repo.Delete(session.ID()); err != nil {
			t.Fatalf("failed to delete session: %v", err)
		}
		if _, err := repo.Get(session.ID()); !errors.Is(err, shared.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound after delete, got %v", err)
		}
	})

	t.Run("DeleteExpired", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSessionRepository(db)

		repo.Create(models.NewSession(shared.GenerateID(), "old", "", -time.Hour))
		repo.Create(models.NewSession(shared.GenerateID(), "live", "", time.Hour))

		removed, err := repo.DeleteExpired(time.Now())
		if err != nil {
			t.Fatalf("failed to delete expired sessions: %v", err)
		}
		if removed != 1 {
			t.Errorf("expected 1 expired session removed, got %d", removed)
		}
	})
}
