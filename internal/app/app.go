package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Adda-Baaj/placeholder-client/internal/config"
	"github.com/Adda-Baaj/placeholder-client/internal/logger"
	"github.com/Adda-Baaj/placeholder-client/internal/placeholder"
	"github.com/Adda-Baaj/placeholder-client/internal/storage"
	"github.com/Adda-Baaj/placeholder-client/pkg/httpclient"
	"github.com/Adda-Baaj/placeholder-client/pkg/publishers"
)

// App holds the API client together with the export journal and publishers
// it reports to. Close releases both.
type App struct {
	cfg    *config.Config
	client *placeholder.Client
	store  storage.Store
	fanout *publishers.Fanout
	log    logger.Logger
}

// New builds the runtime from config. out receives open task listings.
func New(ctx context.Context, cfg *config.Config, log logger.Logger, out io.Writer) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	storeOpts := storage.Options{
		ExportTTL:       cfg.StorageTTL,
		CleanupInterval: cfg.StorageCleanupInterval,
	}
	store, err := storage.NewStore(cfg.StorageType, cfg.BBoltPath, storeOpts)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	log.DebugObj("storage initialized", "storage_config", map[string]any{
		"type":                     cfg.StorageType,
		"path":                     cfg.BBoltPath,
		"export_ttl_seconds":       int(cfg.StorageTTL.Seconds()),
		"cleanup_interval_seconds": int(cfg.StorageCleanupInterval.Seconds()),
	})

	fanout, err := publishers.LoadFanout(ctx, cfg.PublishersFile, log)
	if err != nil {
		store.Close()
		return nil, err
	}

	client, err := placeholder.New(cfg.BaseURL, httpclient.NewRestyExecutor(cfg.RequestTimeout),
		placeholder.WithOutputDir(cfg.OutputDir),
		placeholder.WithOutput(out),
		placeholder.WithLastPostStrategy(cfg.LastPostStrategy),
		placeholder.WithRecorder(store),
		placeholder.WithPublisher(fanout),
		placeholder.WithLogger(log),
	)
	if err != nil {
		fanout.Close()
		store.Close()
		return nil, fmt.Errorf("init client: %w", err)
	}

	return &App{
		cfg:    cfg,
		client: client,
		store:  store,
		fanout: fanout,
		log:    log,
	}, nil
}

// Client returns the API client.
func (a *App) Client() *placeholder.Client { return a.client }

// Store returns the export journal.
func (a *App) Store() storage.Store { return a.store }

// Close releases publishers and the storage backend.
func (a *App) Close() error {
	if a == nil {
		return nil
	}
	var errs []error
	if err := a.fanout.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close publishers: %w", err))
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.ErrorObj("storage close failed", "error", err)
			errs = append(errs, fmt.Errorf("close storage: %w", err))
		}
	}
	return errors.Join(errs...)
}
