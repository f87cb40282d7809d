// Package models defines domain entities and persistence interfaces for the HTMX demo applications.
//
// The package contains two categories of types:
//
// 1. Data Transfer Objects (DTOs): Lightweight structs representing external service data
//   - [Issue] : GitHub issue metadata from the REST API
//   - [GitHubUser] : The authenticated user from the OAuth sign-in flow
//
// 2. Persistent Entities: Database-backed models with full lifecycle management
//   - [Contact] : Contact form submissions
//   - [Item] : Rows in the minimal database list demo
//   - [Document] : Rich text documents from the TipTap editor demo, soft-deletable
//   - [Session] : Browser sessions for the OAuth sign-in demo
//
// Entities backed by the Repository layer implement the Model interface providing
// ID generation, timestamps, validation, and (for documents) soft delete support.
// The Repository[T] interface defines standard CRUD operations for database access.
//
// The background task demos deliberately do not appear here: their Task type is
// in-memory only and lives in internal/tasks.
package models
