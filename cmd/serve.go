package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/biblioteca-cpe/console-gateway/internal/api"
	"github.com/biblioteca-cpe/console-gateway/internal/infrastructure/session"
	"github.com/biblioteca-cpe/console-gateway/internal/infrastructure/upstream"
	"github.com/biblioteca-cpe/console-gateway/internal/pkg/config"
	"github.com/biblioteca-cpe/console-gateway/pkg/logger"
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the console gateway server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(cmd.Context()); err != nil {
			fmt.Fprintf(os.Stderr, "server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context) error {
	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := session.Connect(ctx, session.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		return err
	}
	defer rdb.Close()

	client := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, logger.For("upstream"))

	e := api.NewRouter(client, rdb, cfg)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("upstream", cfg.Upstream.BaseURL).Msg("starting console gateway")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
