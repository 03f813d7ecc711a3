package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seuhd/campus-coffee/internal/adapters/driving/rest"
	"github.com/seuhd/campus-coffee/internal/core/services"
	"github.com/seuhd/campus-coffee/internal/logger"
	"github.com/seuhd/campus-coffee/internal/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the REST API server",
	Long: `Runs the HTTP server exposing the directory under /api/v1/pos
until SIGINT or SIGTERM, then drains open connections and exits.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	b, err := openBackends(ctx)
	if err != nil {
		return err
	}
	defer b.close()

	log := logger.Get()
	metrics := observability.NewMetrics()
	service := services.NewPosService(b.posStore, newOsmGateway(""), log)
	srv := rest.NewServer(cfg.HTTP.Addr, service, b.ready, metrics, log)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	cmd.Printf("Serving on %s (storage: %s)\n", cfg.HTTP.Addr, cfg.Storage.Driver)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down", zap.Duration("timeout", cfg.HTTP.ShutdownTimeout()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout())
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	log.Info("shutdown complete")
	return nil
}
