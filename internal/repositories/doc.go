// Package repositories implements SQLite persistence for all domain entities.
//
// Each repository handles CRUD operations with atomic sequence generation for human-readable ordering.
//
// Key Implementations:
//   - [ContactRepository] : Contact form submissions, newest first
//   - [ItemRepository] : Rows for the minimal database list demo
//   - [DocumentRepository] : Rich text documents with soft deletes via deleted_at
//   - [SessionRepository] : Browser sessions keyed by cookie uuid with expiry
//
// Sequence numbers provide stable, human-readable ordering (e.g., contact #42, document #15)
// independent of UUIDs and creation timestamps. The [NextSequence] function atomically
// increments per-table sequence counters in dedicated sequence tables.
package repositories
