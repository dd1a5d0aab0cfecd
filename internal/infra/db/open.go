// Package db opens and migrates the optional sqlite article database.
// The markdown drafts directory is the default store; sqlite is for
// deployments that outgrow flat files.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"
)

// Open creates a sqlite database handle for the given file path and
// verifies the connection. The modernc driver is pure Go, so there is
// no cgo requirement.
func Open(path string) (*sql.DB, error) {
	database, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// sqlite serializes writers; a single connection avoids SQLITE_BUSY
	// churn under concurrent handlers.
	database.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.PingContext(ctx); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	slog.Info("sqlite database opened", slog.String("path", path))
	return database, nil
}
