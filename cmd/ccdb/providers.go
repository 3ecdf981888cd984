package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/golang-cz/devslog"
	"github.com/hayeah/goo"
	"github.com/jmoiron/sqlx"

	"github.com/hayeah/ccdb/ls"
	"github.com/hayeah/ccdb/namespace"
	"github.com/hayeah/ccdb/namespace/sqlite"
)

// ProvideGooConfig maps the command-line flags onto goo's logging and
// database configuration.
func ProvideGooConfig(args *Args) *goo.Config {
	level := "INFO"
	if args.Verbose {
		level = "DEBUG"
	}
	return &goo.Config{
		Logging: &goo.LoggerConfig{
			LogLevel:  level,
			LogFormat: args.LogFormat,
		},
		Database: &goo.DatabaseConfig{
			Dialect: "sqlite3",
			DSN:     args.DB,
		},
	}
}

// ProvideLogger keeps stdout for listings. goo.ProvideSlog sends its json
// format to stderr but its console handler to stdout, so the console handler
// is built here on stderr.
func ProvideLogger(cfg *goo.Config) (*slog.Logger, error) {
	if cfg.Logging.LogFormat == "json" {
		return goo.ProvideSlog(cfg)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Logging.LogLevel)); err != nil {
		return nil, fmt.Errorf("provide logger: %w", err)
	}
	return slog.New(devslog.NewHandler(os.Stderr, &devslog.Options{
		HandlerOptions: &slog.HandlerOptions{Level: level},
	})), nil
}

// ProvideDB opens the SQLite namespace database.
func ProvideDB(cfg *goo.Config, logger *slog.Logger) (*sqlx.DB, func(), error) {
	db, err := sqlite.OpenDB(cfg.Database.DSN)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		logger.Debug("closing database connection", "db", cfg.Database.DSN)
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database", "error", err)
		}
	}
	return db, cleanup, nil
}

// ProvideStore brings the schema up to date and wraps the database.
func ProvideStore(db *sqlx.DB, migrator *goo.DBMigrator, logger *slog.Logger) (*sqlite.Store, error) {
	if err := migrator.Up(sqlite.Migrations); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return sqlite.New(db, logger), nil
}

// ProvideNamespace picks the YAML fixture when one is given and the SQLite
// database otherwise. The database is only opened when it is used.
func ProvideNamespace(cfg *goo.Config, args *Args, logger *slog.Logger) (namespace.Provider, func(), error) {
	if args.Fixture != "" {
		logger.Debug("reading namespace fixture", "path", args.Fixture)
		m, err := namespace.LoadMemoryFile(args.Fixture)
		if err != nil {
			return nil, nil, err
		}
		return m, func() {}, nil
	}

	logger.Debug("opening namespace database", "dsn", cfg.Database.DSN)
	db, cleanup, err := ProvideDB(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	store, err := ProvideStore(db, goo.ProvideDBMigrator(db, logger), logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return store, cleanup, nil
}

// ProvideTheme styles listings for the output they are written to.
func ProvideTheme(out io.Writer) ls.Theme {
	return ls.NewTheme(out)
}

// ProvideLister constructs a Lister rooted at the current path.
func ProvideLister(p namespace.Provider, args *Args, theme ls.Theme, logger *slog.Logger) *ls.Lister {
	return ls.NewLister(p, args.Cwd, theme, logger)
}
