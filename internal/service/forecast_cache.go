package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// ForecastCache memoiza proyecciones serializadas por clave
// (customer:analysis). Fallas del cache degradan a recomputar, nunca a
// error de usuario.
type ForecastCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration)
}

type redisForecastCache struct {
	client *redis.Client
	prefix string
}

// NewRedisForecastCache devuelve un cache respaldado por redis, o nil
// si no hay cliente configurado (el servicio tolera cache nil).
func NewRedisForecastCache(client *redis.Client) ForecastCache {
	if client == nil {
		return nil
	}
	return &redisForecastCache{client: client, prefix: "forecast:"}
}

func (c *redisForecastCache) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

func (c *redisForecastCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) {
	// Best effort: si redis no está, la próxima lectura recomputa.
	_ = c.client.Set(ctx, c.prefix+key, data, ttl).Err()
}
