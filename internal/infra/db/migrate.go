package db

import "database/sql"

// MigrateUp creates the articles schema if it does not exist yet.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    id                  TEXT PRIMARY KEY,
    title               TEXT NOT NULL,
    content             TEXT NOT NULL DEFAULT '',
    status              TEXT NOT NULL DEFAULT 'draft',
    target_publish_date TIMESTAMP,
    reminder_offset     TEXT NOT NULL DEFAULT 'none',
    word_goal           INTEGER NOT NULL DEFAULT 0,
    sources             TEXT NOT NULL DEFAULT '[]',
    created_at          TIMESTAMP NOT NULL,
    updated_at          TIMESTAMP NOT NULL
)`); err != nil {
		return err
	}

	indexes := []string{
		// pipeline view groups by status
		`CREATE INDEX IF NOT EXISTS idx_articles_status ON articles(status)`,
		// calendar view filters on the publish date
		`CREATE INDEX IF NOT EXISTS idx_articles_target_publish_date ON articles(target_publish_date)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}
	return nil
}
