// Package migrations contains all database migration files.
// Each migration file uses init() to call migration.Register().
// This package is imported by cmd/quitute/main.go and internal/server
// so every migration is registered at startup.
package migrations
