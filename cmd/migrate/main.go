// Command migrate applies the SQL files under migrations/ with the atlas CLI.
//
//	go run ./cmd/migrate          # apply pending migrations
//	go run ./cmd/migrate status   # show the revision state
//
// The atlas binary must be on PATH (or set ATLAS_BIN). After editing a
// migration, refresh migrations/atlas.sum with `atlas migrate hash`.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"time"

	"marketplace-api/internal/pkg/config"
	"marketplace-api/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type migrateConfig struct {
	DB       config.DBConfig
	Dir      string        `envconfig:"MIGRATIONS_DIR" default:"file://migrations"`
	AtlasBin string        `envconfig:"ATLAS_BIN" default:"atlas"`
	Timeout  time.Duration `envconfig:"MIGRATE_TIMEOUT" default:"2m"`
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("failed to load .env", "error", err)
	}

	var cfg migrateConfig
	if err := envconfig.Process("", &cfg); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	cmd := "apply"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	if err := run(ctx, logger, cfg, cmd); err != nil {
		logger.Error("migration failed", "command", cmd, "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, cfg migrateConfig, cmd string) error {
	client, err := atlasexec.NewClient(".", cfg.AtlasBin)
	if err != nil {
		return errs.Wrap(err, "init atlas client")
	}
	dbURL := atlasURL(cfg.DB)

	switch cmd {
	case "apply":
		res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
			URL:    dbURL,
			DirURL: cfg.Dir,
		})
		if err != nil {
			return errs.Wrap(err, "apply migrations")
		}
		for _, f := range res.Applied {
			logger.Info("applied migration", "version", f.Version, "name", f.Name)
		}
		logger.Info("database is up to date", "current", res.Current, "target", res.Target, "applied", len(res.Applied))
		return nil
	case "status":
		st, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{
			URL:    dbURL,
			DirURL: cfg.Dir,
		})
		if err != nil {
			return errs.Wrap(err, "read migration status")
		}
		logger.Info("migration status", "status", st.Status, "current", st.Current, "next", st.Next, "pending", len(st.Pending))
		return nil
	default:
		return errs.Newf("unknown command %q (want apply or status)", cmd)
	}
}

// atlasURL is the DSN without the pgx-only timezone parameter.
func atlasURL(c config.DBConfig) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%s", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.SSLMode}, "search_path": {"public"}}.Encode(),
	}
	return u.String()
}
