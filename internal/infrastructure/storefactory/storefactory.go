// Package storefactory abre el backend de almacenamiento elegido en la configuración.
package storefactory

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-stock/internal/infrastructure/docstore"
	"github.com/jhoicas/Inventario-stock/internal/infrastructure/filestore"
	"github.com/jhoicas/Inventario-stock/internal/infrastructure/postgres"
	"github.com/jhoicas/Inventario-stock/internal/infrastructure/redisstore"
	"github.com/jhoicas/Inventario-stock/pkg/config"
	"github.com/jhoicas/Inventario-stock/pkg/logger"
)

// Open devuelve el backend para cfg.Store.Driver y la función que libera sus recursos.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (docstore.Backend, func(), error) {
	noop := func() {}
	switch cfg.Store.Driver {
	case config.StoreDriverFile, "":
		store, err := filestore.Open(cfg.Store.DataDir)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("dir", store.Dir()).Msg("almacén en archivos JSON")
		return store, noop, nil

	case config.StoreDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		store := postgres.NewCollectionStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("crear esquema: %w", err)
		}
		log.Info().Str("host", cfg.DB.Host).Msg("almacén en PostgreSQL")
		return store, pool.Close, nil

	case config.StoreDriverRedis:
		store, err := redisstore.Open(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("almacén en Redis")
		return store, func() {
			if err := store.Close(); err != nil {
				log.Warn().Err(err).Msg("cerrar cliente Redis")
			}
		}, nil

	case config.StoreDriverMemory:
		log.Warn().Msg("almacén en memoria: los datos se pierden al reiniciar")
		return docstore.NewMemoryBackend(), noop, nil
	}
	return nil, nil, fmt.Errorf("driver de almacenamiento desconocido: %q", cfg.Store.Driver)
}
