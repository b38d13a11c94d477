// Package persistence provides GORM-backed repository implementations
// for every domain area, plus database connection management and
// schema migration.
package persistence
