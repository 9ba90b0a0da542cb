package container

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"device-inventory-service/internal/domain/services"
	"device-inventory-service/internal/test/fixtures"
)

func TestNewServiceContainerWithoutRedis(t *testing.T) {
	cfg := fixtures.Config()
	db := fixtures.NewDB(t, cfg)

	c := NewServiceContainer(db, cfg, nil)

	assert.Same(t, db, c.GetDB())
	assert.Same(t, cfg, c.GetConfig())
	assert.Same(t, cfg, c.GetService("config"))
	assert.Same(t, db, c.GetService("db"))
	assert.Implements(t, (*services.InterfaceDeviceService)(nil), c.GetService("device"))
	assert.Implements(t, (*services.InterfaceEmployeeService)(nil), c.GetService("employee"))
	assert.NotNil(t, c.GetService("cache"))
	_, isRedis := c.GetService("cache").(*services.RedisCacheService)
	assert.False(t, isRedis)
	assert.Nil(t, c.GetService("unknown"))
}

func TestNewServiceContainerWithRedis(t *testing.T) {
	cfg := fixtures.Config()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	c := NewServiceContainer(fixtures.NewDB(t, cfg), cfg, client)

	cache, ok := c.GetService("cache").(*services.RedisCacheService)
	require.True(t, ok)
	assert.Same(t, client, cache.Client)
	assert.Equal(t, cfg.CacheTTL, cache.TTL)
}

func TestNewServiceContainerUnreachableRedis(t *testing.T) {
	cfg := fixtures.Config()
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	client := redis.NewClient(&redis.Options{Addr: addr, MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	c := NewServiceContainer(fixtures.NewDB(t, cfg), cfg, client)

	_, isRedis := c.GetService("cache").(*services.RedisCacheService)
	assert.False(t, isRedis)
}

func TestNewServiceContainerPanicsWithoutDependencies(t *testing.T) {
	cfg := fixtures.Config()
	assert.Panics(t, func() { NewServiceContainer(nil, cfg, nil) })
	assert.Panics(t, func() { NewServiceContainer(fixtures.NewDB(t, cfg), nil, nil) })
}
