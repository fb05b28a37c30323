// Package cache define o cache com TTL injetado nos serviços que precisam memorizar
// consultas.
package cache

import (
	"context"
	"time"
)

// Cache é um armazenamento chave/valor com expiração
type Cache interface {
	// Get retorna o valor e true quando a chave existe e não expirou
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// Clear remove todas as chaves com o prefixo informado; prefixo vazio limpa tudo
	Clear(ctx context.Context, prefix string) error
}
