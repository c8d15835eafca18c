// Package database owns the SQLite handle shared by the per-entity
// repositories, bootstraps the schema, and defines the store-level error
// taxonomy the HTTP layer maps to status codes.
//
// Repositories live in sub-packages (genres, books, reviews); each is a small
// stateful object constructed with the injected *sqlx.DB and safe for
// concurrent use. No connection is held across repository calls.
package database
