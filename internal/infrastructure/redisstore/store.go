// Package redisstore guarda cada colección como una clave Redis con el arreglo JSON completo.
// Las transacciones usan WATCH sobre todas las claves y MULTI/EXEC; si otra réplica escribe
// entre la lectura y la confirmación, la transacción se reintenta.
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
	"github.com/jhoicas/Inventario-stock/internal/infrastructure/docstore"
	"github.com/jhoicas/Inventario-stock/pkg/config"
)

const maxRetries = 5

// ErrTooManyConflicts la transacción perdió la carrera optimista maxRetries veces.
var ErrTooManyConflicts = errors.New("redisstore: demasiados conflictos de escritura concurrente")

var _ docstore.Backend = (*Store)(nil)

// Store backend Redis.
type Store struct {
	client *redis.Client
	prefix string
}

// Open conecta y verifica con PING.
func Open(ctx context.Context, cfg config.RedisConfig) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return New(client, cfg.KeyPrefix), nil
}

// New envuelve un cliente existente.
func New(client *redis.Client, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

// Close cierra el cliente.
func (s *Store) Close() error {
	return s.client.Close()
}

// Key clave Redis de una colección.
func (s *Store) Key(name string) string {
	return s.prefix + name
}

func (s *Store) keys() []string {
	keys := make([]string, 0, len(repository.AllCollections))
	for _, name := range repository.AllCollections {
		keys = append(keys, s.Key(name))
	}
	return keys
}

// Run ejecuta fn con lecturas bajo WATCH y confirma las escrituras en un MULTI/EXEC.
// fn puede ejecutarse varias veces si hay conflictos; no debe tener efectos fuera de tx.
func (s *Store) Run(ctx context.Context, fn func(tx docstore.Tx) error) error {
	for attempt := 0; attempt < maxRetries; attempt++ {
		err := s.client.Watch(ctx, func(rtx *redis.Tx) error {
			staged := docstore.NewStagedTx(func(ctx context.Context, name string) ([]byte, error) {
				data, err := rtx.Get(ctx, s.Key(name)).Bytes()
				if errors.Is(err, redis.Nil) {
					return nil, nil
				}
				return data, err
			})
			if err := fn(staged); err != nil {
				return err
			}
			pending := staged.Pending()
			if len(pending) == 0 {
				return nil
			}
			_, err := rtx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				for _, d := range pending {
					pipe.Set(ctx, s.Key(d.Name), d.Data, 0)
				}
				return nil
			})
			return err
		}, s.keys()...)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return ErrTooManyConflicts
}
