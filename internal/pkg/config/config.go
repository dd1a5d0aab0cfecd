// Package config assembles the application configuration from the
// environment. All knobs have working defaults so a bare `go run`
// starts against ./drafts with the markdown store.
package config

import (
	"fmt"
	"time"

	"github.com/calebmoores/content-dashboard/pkg/config"
)

// App holds everything the api and worker binaries need at startup.
type App struct {
	// Addr is the HTTP listen address.
	Addr string

	// DraftsDir is the directory holding markdown article files.
	// Used when DBPath is empty.
	DraftsDir string

	// DBPath selects the sqlite store when non-empty; the markdown
	// directory store is the default.
	DBPath string

	// Version is reported by the health endpoint.
	Version string

	// CORSOrigins is the origin whitelist; ["*"] allows any origin.
	CORSOrigins []string

	// SuggestRate and SuggestBurst bound the AI suggestion endpoint.
	SuggestRate  float64
	SuggestBurst int

	// AutoPublishSchedule is the cron expression for the worker's
	// publish-due sweep.
	AutoPublishSchedule string

	// ShutdownTimeout bounds graceful HTTP shutdown.
	ShutdownTimeout time.Duration
}

// Load reads the application configuration from the environment,
// applying defaults and logging warnings for invalid values.
func Load() (*App, error) {
	app := &App{
		Addr:                config.GetEnvString("HTTP_ADDR", ":8080"),
		DraftsDir:           config.GetEnvString("DRAFTS_DIR", "drafts"),
		DBPath:              config.GetEnvString("DASHBOARD_DB", ""),
		Version:             config.GetEnvString("APP_VERSION", "dev"),
		CORSOrigins:         config.GetEnvStringList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		SuggestRate:         config.GetEnvFloat("SUGGEST_RATE", 1.0),
		SuggestBurst:        config.GetEnvInt("SUGGEST_BURST", 5),
		AutoPublishSchedule: config.GetEnvString("AUTOPUBLISH_SCHEDULE", "* * * * *"),
		ShutdownTimeout:     config.GetEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	if err := app.validate(); err != nil {
		return nil, err
	}
	return app, nil
}

func (a *App) validate() error {
	if a.Addr == "" {
		return fmt.Errorf("listen address must not be empty")
	}
	if a.DraftsDir == "" && a.DBPath == "" {
		return fmt.Errorf("either DRAFTS_DIR or DASHBOARD_DB must be set")
	}
	if a.SuggestRate <= 0 {
		return fmt.Errorf("suggestion rate must be positive, got %v", a.SuggestRate)
	}
	if a.SuggestBurst <= 0 {
		return fmt.Errorf("suggestion burst must be positive, got %d", a.SuggestBurst)
	}
	if a.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %v", a.ShutdownTimeout)
	}
	return nil
}
