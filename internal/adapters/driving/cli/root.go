// Package cli implements the campuscoffee command line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seuhd/campus-coffee/internal/adapters/driven/osm"
	"github.com/seuhd/campus-coffee/internal/adapters/driven/storage/memory"
	"github.com/seuhd/campus-coffee/internal/adapters/driven/storage/postgres"
	"github.com/seuhd/campus-coffee/internal/adapters/driven/storage/sqlite"
	"github.com/seuhd/campus-coffee/internal/adapters/driving/rest"
	"github.com/seuhd/campus-coffee/internal/config"
	"github.com/seuhd/campus-coffee/internal/core/ports/driven"
	"github.com/seuhd/campus-coffee/internal/core/ports/driving"
	"github.com/seuhd/campus-coffee/internal/core/services"
	"github.com/seuhd/campus-coffee/internal/logger"
)

// Global flags.
var (
	cfgFile       string
	storageDriver string
	verbose       bool
	logFile       string
)

// cfg is loaded by the root PersistentPreRunE before any command runs.
var cfg *config.Config

// posService is wired lazily by setupServices so commands like version
// never touch a store. Tests inject a fake directly.
var posService driving.PosService

var rootCmd = &cobra.Command{
	Use:   "campuscoffee",
	Short: "Campus coffee point-of-sale directory",
	Long: `campuscoffee maintains a directory of cafes and bakeries around the
university campuses. Entries can be managed directly or imported
straight from OpenStreetMap nodes.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}

		// Flags win over file and environment settings.
		if storageDriver != "" {
			cfg.Storage.Driver = storageDriver
		}
		if verbose {
			cfg.Log.Verbose = true
		}
		if logFile != "" {
			cfg.Log.File = logFile
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		if cfg.Log.File != "" {
			logger.InitWithFile(cfg.Log.Verbose, cfg.Log.File)
		} else {
			logger.Init(cfg.Log.Verbose)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	defer logger.Sync()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to TOML config file")
	rootCmd.PersistentFlags().StringVar(&storageDriver, "storage", "", "Storage driver: sqlite, postgres or memory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Path to log file for persistent logging (JSON format)")
}

// backends bundles the opened store with its readiness probe and closer.
type backends struct {
	posStore driven.PosStore
	ready    rest.ReadinessChecker
	close    func()
}

// openBackends opens the store selected by cfg.Storage.Driver.
func openBackends(ctx context.Context) (*backends, error) {
	log := logger.Get()

	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		store, err := sqlite.NewStore(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return &backends{
			posStore: store.PosStore(),
			ready:    rest.ReadinessFunc(store.Ping),
			close: func() {
				if err := store.Close(); err != nil {
					log.Warn("closing sqlite store", zap.Error(err))
				}
			},
		}, nil

	case config.DriverPostgres:
		store, err := postgres.NewStore(ctx, cfg.Storage.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("opening postgres store: %w", err)
		}
		return &backends{
			posStore: store.PosStore(),
			ready:    rest.ReadinessFunc(store.Ping),
			close:    store.Close,
		}, nil

	case config.DriverMemory:
		return &backends{
			posStore: memory.NewPosStore(),
			ready:    rest.ReadinessFunc(func(context.Context) error { return nil }),
			close:    func() {},
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// newOsmGateway returns the live API client, or a gateway reading from a
// local .osm extract when one is given.
func newOsmGateway(extract string) driven.OsmGateway {
	if extract != "" {
		return osm.NewFileGateway(extract, logger.Get())
	}
	return osm.NewClient(
		cfg.OSM.BaseURL,
		cfg.OSM.UserAgent,
		cfg.OSM.Timeout(),
		cfg.OSM.RateLimit,
		cfg.OSM.Burst,
		logger.Get(),
	)
}

// setupServices wires the POS service against the configured store and
// returns a cleanup that closes it. When extract is non-empty the OSM
// gateway reads from that file instead of the live API. If a service was
// injected beforehand the call is a no-op.
func setupServices(ctx context.Context, extract string) (func(), error) {
	if posService != nil {
		return func() {}, nil
	}

	b, err := openBackends(ctx)
	if err != nil {
		return nil, err
	}
	posService = services.NewPosService(b.posStore, newOsmGateway(extract), logger.Get())
	return func() {
		posService = nil
		b.close()
	}, nil
}
