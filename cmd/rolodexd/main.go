// Command rolodexd runs the Rolodex contact manager as a Forge app.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/xraph/forge"
	"github.com/xraph/grove"

	"github.com/xraph/rolodex"
	"github.com/xraph/rolodex/auth"
	"github.com/xraph/rolodex/cache"
	rolodexext "github.com/xraph/rolodex/extension"
	"github.com/xraph/rolodex/store/hybrid"
	"github.com/xraph/rolodex/store/local"
	"github.com/xraph/rolodex/store/mongo"
)

type config struct {
	DataPath string `env:"ROLODEX_DATA_PATH" envDefault:"Data/contacts.json"`

	AuthAPIKey   string `env:"ROLODEX_AUTH_API_KEY"`
	AuthEndpoint string `env:"ROLODEX_AUTH_ENDPOINT"`

	RemoteCredentialsFile string `env:"ROLODEX_REMOTE_CREDENTIALS_FILE"`
	RemoteProjectID       string `env:"ROLODEX_REMOTE_PROJECT_ID"`
	RemoteCollection      string `env:"ROLODEX_REMOTE_COLLECTION"`

	CacheTTL time.Duration `env:"ROLODEX_CACHE_TTL" envDefault:"5m"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("rolodexd: parse env: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	localStore := local.New(cfg.DataPath, local.WithLogger(logger))

	// The remote backend dials lazily; a grove DB only needs to be in
	// the DI container if dispatch ever reaches it.
	var app forge.App
	remoteStore := mongo.NewLazy(
		mongo.Config{
			CredentialsFile: cfg.RemoteCredentialsFile,
			ProjectID:       cfg.RemoteProjectID,
			Collection:      cfg.RemoteCollection,
		},
		func(_ context.Context) (*grove.DB, error) {
			return forge.Inject[*grove.DB](app.Container())
		},
	)

	store := hybrid.New(localStore, remoteStore, hybrid.WithLogger(logger))

	extOpts := []rolodexext.ExtOption{
		rolodexext.WithStore(store),
		rolodexext.WithLogger(logger),
		rolodexext.WithEngineOptions(
			rolodex.WithCache(cache.NewMemory(cache.WithTTL(cfg.CacheTTL))),
		),
	}

	if cfg.AuthAPIKey != "" {
		client, err := auth.New(auth.Config{
			APIKey:   cfg.AuthAPIKey,
			Endpoint: cfg.AuthEndpoint,
		})
		if err != nil {
			log.Fatalf("rolodexd: auth client: %v", err)
		}
		extOpts = append(extOpts, rolodexext.WithAuth(client))
	} else {
		logger.Warn("no auth api key configured, account operations disabled")
	}

	app = forge.New(
		forge.WithExtensions(
			rolodexext.New(extOpts...),
		),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal(err)
	}
}
