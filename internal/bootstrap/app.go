package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ItemForge_Go/internal/bonus"
	"github.com/osse101/ItemForge_Go/internal/catalog"
	"github.com/osse101/ItemForge_Go/internal/config"
	"github.com/osse101/ItemForge_Go/internal/database"
	"github.com/osse101/ItemForge_Go/internal/database/postgres"
	"github.com/osse101/ItemForge_Go/internal/economy"
	"github.com/osse101/ItemForge_Go/internal/item"
	"github.com/osse101/ItemForge_Go/internal/server"
	"github.com/osse101/ItemForge_Go/internal/worker"
)

// App is the wired item daemon.
type App struct {
	Catalog  *catalog.Catalog
	Services *item.Services
	Pool     *pgxpool.Pool
	Gateway  *postgres.ItemGateway
	Storage  *worker.StorageWorker
	Pricing  *economy.PricingEngine
	Server   *server.Server
}

// Build loads the catalog, connects and migrates the database and wires the
// item services, storage worker and inspection server. The storage worker
// is started; the server is not.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	cat, err := catalog.Load(ctx, cfg.CatalogDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadCatalog, err)
	}
	slog.Info(LogMsgCatalogLoaded, "templates", cat.TemplateCount())

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgConnectDatabase, err)
	}

	if cfg.MigrateOnStart {
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgMigrateDatabase, err)
		}
	} else {
		slog.Info(LogMsgMigrationsSkipped)
	}

	svc := &item.Services{
		Resolver: bonus.NewResolver(cat, cat, bonus.WithCache(cfg.BonusCacheSize, cfg.BonusCacheTTL)),
	}
	gateway := postgres.NewItemGateway(pool, svc)
	svc.Refunds = gateway

	storage := worker.NewStorageWorker(gateway, cfg.StorageWorkers, cfg.StorageQueueSize)
	storage.Start(ctx)

	pricing := economy.NewPricingEngine(cat, economy.WithShieldPriceRow(uint32(cfg.ShieldPriceRow)))

	return &App{
		Catalog:  cat,
		Services: svc,
		Pool:     pool,
		Gateway:  gateway,
		Storage:  storage,
		Pricing:  pricing,
		Server:   server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, pool, gateway, cat, pricing),
	}, nil
}
