// Package cli implements the interactive chatfiles client: a small REPL that
// drives the upload/download services against a configured backend.
package cli

import (
	"context"
	"database/sql"
	"io"
	"os"
	"sync"

	"github.com/osadchiy/chatfiles/internal/client/client"
	"github.com/osadchiy/chatfiles/internal/client/config"
	"github.com/osadchiy/chatfiles/internal/client/models"
	"github.com/osadchiy/chatfiles/internal/client/notify"
	"github.com/osadchiy/chatfiles/internal/client/policy"
	"github.com/osadchiy/chatfiles/internal/client/registry"
	"github.com/osadchiy/chatfiles/internal/client/repositories/history"
	"github.com/osadchiy/chatfiles/internal/client/services"
	"github.com/osadchiy/chatfiles/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config    *config.Config
	uploads   services.UploadService
	downloads services.DownloadService
	history   history.Repository
	db        *sql.DB
	auth      models.AuthContext
	log       logging.Logger

	out io.Writer

	// wg tracks background uploads so Run can drain them on exit.
	wg sync.WaitGroup
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	repos, err := client.InitDatabase(ctx, c.LocalDBPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout)
	validator := policy.NewValidator(&notify.Writer{W: os.Stderr})

	uploads := services.NewUploadService(apiClient, validator, registry.New(), repos.History, log)
	downloads := services.NewDownloadService(apiClient, c.DistributionBaseURL, c.DownloadDir, log)

	// Credentials are supplied by the environment; empty means anonymous.
	auth := models.AuthContext{
		Token:     os.Getenv("CHATFILES_AUTH_TOKEN"),
		SessionID: os.Getenv("CHATFILES_SESSION_ID"),
	}

	return &App{
		config:    c,
		uploads:   uploads,
		downloads: downloads,
		history:   repos.History,
		db:        repos.DB,
		auth:      auth,
		log:       log,
		out:       os.Stdout,
	}, nil
}
