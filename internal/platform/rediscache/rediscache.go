// Package rediscache caches generated mnemonics in Redis so repeated
// mistakes on the same item skip the Gemini round trip. The cache is
// optional: the hint pipeline works without it.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mkurosawa/kotoba-api/internal/domain"
)

// Config holds Redis connection configuration.
type Config struct {
	Host         string
	Port         int
	Password     string
	DB           int
	PoolSize     int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Host:         "localhost",
		Port:         6379,
		DB:           0,
		PoolSize:     10,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
}

// Addr returns the Redis address in "host:port" format.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

var (
	// ErrCacheConnection is returned when the Redis connection fails.
	ErrCacheConnection = errors.New("cache: connection failed")

	// ErrCacheSerialization is returned when a cached payload cannot be
	// encoded or decoded.
	ErrCacheSerialization = errors.New("cache: serialization failed")
)

// prefixMnemonic namespaces mnemonic keys.
const prefixMnemonic = "mnemonic:"

// TTLMnemonic is how long a generated mnemonic stays cached. Mnemonics are
// static per item, so the TTL only bounds memory, not staleness.
const TTLMnemonic = 24 * time.Hour

// MnemonicCache is a Redis-backed cache for generated mnemonics.
type MnemonicCache struct {
	client *redis.Client
}

// New connects to Redis and verifies the connection.
func New(cfg Config) (*MnemonicCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCacheConnection, err)
	}

	return &MnemonicCache{client: client}, nil
}

// Get retrieves the cached mnemonic for an item. A miss returns (nil, nil).
func (c *MnemonicCache) Get(ctx context.Context, itemID string) (*domain.Mnemonic, error) {
	data, err := c.client.Get(ctx, mnemonicKey(itemID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var m domain.Mnemonic
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCacheSerialization, err)
	}
	return &m, nil
}

// Set stores the mnemonic for an item with the default TTL.
func (c *MnemonicCache) Set(ctx context.Context, itemID string, m *domain.Mnemonic) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCacheSerialization, err)
	}
	return c.client.Set(ctx, mnemonicKey(itemID), data, TTLMnemonic).Err()
}

// Close closes the Redis connection.
func (c *MnemonicCache) Close() error {
	return c.client.Close()
}

func mnemonicKey(itemID string) string {
	return prefixMnemonic + itemID
}
