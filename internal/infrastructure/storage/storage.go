// Package storage abre el backend de registros de negocio elegido por STORAGE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/BarApp-api/internal/domain/repository"
	"github.com/jhoicas/BarApp-api/internal/infrastructure/memory"
	"github.com/jhoicas/BarApp-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/BarApp-api/internal/infrastructure/postgres"
	"github.com/jhoicas/BarApp-api/pkg/config"
	"github.com/jhoicas/BarApp-api/pkg/logger"
)

// Storage almacén abierto con su chequeo de salud y cierre.
type Storage struct {
	Store  repository.BusinessStore
	Health func(ctx context.Context) error
	Close  func()
}

// Open conecta el driver configurado. Con postgres aplica migraciones si DB_AUTO_MIGRATE;
// con mongodb asegura los índices de la colección.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if cfg.DB.AutoMigrate {
			applied, err := postgres.Migrate(ctx, postgres.NewTxRunner(pool))
			if err != nil {
				pool.Close()
				return nil, err
			}
			log.Info().Strs("migrations", applied).Msg("migraciones aplicadas")
		}
		return &Storage{
			Store:  postgres.NewBusinessRepository(pool),
			Health: pool.Ping,
			Close:  pool.Close,
		}, nil

	case config.DriverMongoDB:
		conn, err := mongodb.NewConnection(ctx, cfg.Mongo)
		if err != nil {
			return nil, fmt.Errorf("conexión a MongoDB: %w", err)
		}
		repo := mongodb.NewBusinessRepository(conn)
		indexes, err := repo.EnsureIndexes(ctx)
		if err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("índices de MongoDB: %w", err)
		}
		log.Info().Strs("indexes", indexes).Msg("índices de business verificados")
		return &Storage{
			Store:  repo,
			Health: conn.HealthCheck,
			Close: func() {
				if err := conn.Close(); err != nil {
					log.Error().Err(err).Msg("cerrar MongoDB")
				}
			},
		}, nil

	case config.DriverMemory:
		log.Warn().Msg("almacenamiento en memoria: los registros se pierden al reiniciar")
		return &Storage{
			Store:  memory.NewBusinessStore(),
			Health: func(context.Context) error { return nil },
			Close:  func() {},
		}, nil
	}
	return nil, fmt.Errorf("STORAGE_DRIVER desconocido %q", cfg.Storage.Driver)
}
