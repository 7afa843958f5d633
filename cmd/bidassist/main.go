package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/narabid/bidassist/internal/api"
	"github.com/narabid/bidassist/internal/cli"
	"github.com/narabid/bidassist/internal/db"
	"github.com/narabid/bidassist/internal/localstore"
	"github.com/narabid/bidassist/internal/repository"
	"github.com/narabid/bidassist/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dbPath, err := db.DefaultPath()
	if err != nil {
		return err
	}
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	bidCacheRepo := repository.NewSQLiteBidCacheRepo(database)
	noticeCacheRepo := repository.NewSQLiteNoticeCacheRepo(database)

	// Wire the remote-store client with the persisted credential.
	cfg := api.LoadConfig()
	var observer api.Observer = api.NoopObserver{}
	if cfg.LogCalls {
		observer = api.NewLogObserver(os.Stderr)
	}
	client := api.NewClient(cfg, service.SessionTokenSource{Sessions: sessionRepo}, observer)

	// Local signup slot for account recovery.
	storeDir, err := localstore.DefaultDir()
	if err != nil {
		return err
	}

	app := &cli.App{
		Auth:     service.NewAuthService(client, sessionRepo),
		Wishlist: service.NewWishlistService(client),
		Bids:     service.NewBidService(client, bidCacheRepo),
		Notices:  service.NewNoticeService(client, noticeCacheRepo),
		Users:    localstore.New(storeDir),
	}

	// Detect interactive terminal for the TUI entrypoint and prompts.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
