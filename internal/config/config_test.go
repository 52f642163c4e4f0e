package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("NDC_ENDPOINT", "http://supplier.local/ndc")
	t.Setenv("REQUIRED_SEAT_CHARACTERISTICS", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_USER", "")

	cfg := Load()

	assert.Equal(t, "TR", cfg.NDC.OwnerCode)
	assert.Equal(t, "SG", cfg.NDC.CountryCode)
	assert.Equal(t, 30*time.Second, cfg.NDC.Timeout)
	assert.Equal(t, []string{"1", "8", "E", "V"}, cfg.RequiredSeatCharacteristics)
	assert.Empty(t, cfg.JWTSecret)
	assert.False(t, cfg.DB.Enabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("NDC_ENDPOINT", "http://supplier.local/ndc")
	t.Setenv("NDC_TIMEOUT", "5s")
	t.Setenv("REQUIRED_SEAT_CHARACTERISTICS", " E, ,V ")
	t.Setenv("AUTH_ROLES", "AGENT,ADMIN")
	t.Setenv("DB_USER", "ndc")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "audit")
	t.Setenv("RABBITMQ_URL", "")
	t.Setenv("AMQP_URL", "amqp://guest:guest@mq:5672/")

	cfg := Load()

	assert.Equal(t, 5*time.Second, cfg.NDC.Timeout)
	assert.Equal(t, []string{"E", "V"}, cfg.RequiredSeatCharacteristics)
	assert.Equal(t, []string{"AGENT", "ADMIN"}, cfg.AuthRoles)
	assert.True(t, cfg.DB.Enabled())
	assert.Equal(t, "3306", cfg.DB.Port)
	assert.Equal(t, "amqp://guest:guest@mq:5672/", cfg.AMQPURL)
}

func TestLoadRateLimitConfigClamps(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_EVERY", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	rl := LoadRateLimitConfig()

	assert.Equal(t, 1, rl.Capacity)
	assert.Equal(t, 1, rl.RefillTokens)
	assert.Equal(t, 2*time.Second, rl.RefillInterval)
	assert.Equal(t, 10*time.Second, rl.TTL)
}

func TestLoadCacheConfig(t *testing.T) {
	t.Setenv("CACHE_METHODS", "post, get")
	t.Setenv("CACHE_TTL", "bogus")

	c := LoadCacheConfig()

	assert.Equal(t, map[string]bool{"POST": true, "GET": true}, c.Methods)
	assert.Equal(t, time.Second, c.TTL)
	assert.Equal(t, "method_route_body", c.KeyStrategy)
}

func TestRedisOptions(t *testing.T) {
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REDIS_TLS", "1")

	o := redisOptions()

	assert.Equal(t, "cache:6380", o.Addr)
	assert.Equal(t, 2, o.DB)
	assert.NotNil(t, o.TLSConfig)
}
