package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"fyyur/internal/app/artists"
	"fyyur/internal/app/shows"
	"fyyur/internal/app/venues"
	"fyyur/internal/httpapi"
	"fyyur/internal/httpapi/middleware"
	"fyyur/internal/store"
	"fyyur/migrations"
)

var (
	migrateOnStart bool
	seedOnStart    bool
)

const shutdownTimeout = 30 * time.Second

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	Long: `Serve the directory pages until interrupted.

Examples:
  fyyur serve                      # Serve against an up-to-date schema
  fyyur serve --migrate --seed     # Apply migrations and load demo listings first`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "Apply pending migrations before serving")
	serveCmd.Flags().BoolVar(&seedOnStart, "seed", false, "Load demo venues, artists and shows into an empty directory")
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if migrateOnStart {
		if err := migrations.Up(cfg.Database.URL); err != nil {
			return err
		}
	}

	db, err := openDatabase(ctx, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer db.Close()

	dataStore := store.New(db)

	if seedOnStart {
		if err := bootstrapDirectory(ctx, dataStore); err != nil {
			return err
		}
	}

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newHTTPHandler(dataStore, []byte(cfg.Session.Secret)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Zerolog().Info().Str("addr", server.Addr).Str("env", cfg.Env).Msg("fyyur listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serveErr:
		if ok {
			return err
		}
		return nil
	case <-quit:
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server exited")
	return nil
}

func newHTTPHandler(dataStore *store.Store, secret []byte) http.Handler {
	venueSvc := venues.New(dataStore, nil)
	artistSvc := artists.New(dataStore, nil)
	showSvc := shows.New(dataStore, nil)

	srv := httpapi.New(venueSvc, artistSvc, showSvc, secret)

	return middleware.RequestLogging()(middleware.Recovery(srv.ServerError())(srv.Routes()))
}
