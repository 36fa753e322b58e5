package tmpstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Drolfothesgnir/bbparse/bbcode"
	"github.com/Drolfothesgnir/bbparse/util"
	"github.com/redis/go-redis/v9"
)

// Different key prefixes for different use cases
const (
	ParseResultPrefix = "parse:"
)

var (
	ErrCacheMiss      = errors.New("parse result not found or expired")
	ErrCorruptedEntry = errors.New("cached parse result cannot be decoded")
)

// Parse result stored between requests with the same input
type ParseResult struct {
	Nodes    []bbcode.SerializableNode    `json:"nodes"`
	Stats    bbcode.Stats                 `json:"stats"`
	Warnings []bbcode.SerializableWarning `json:"warnings"`
	ParsedAt time.Time                    `json:"parsed_at"`
}

type Store interface {
	SaveParseResult(ctx context.Context, inputKey string, data ParseResult, ttl time.Duration) error
	GetParseResult(ctx context.Context, inputKey string) (*ParseResult, error)
	DeleteParseResult(ctx context.Context, inputKey string) error
	Close() error
}

type RedisStore struct {
	client *redis.Client
}

func NewStore(config *util.Config) Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddress, //  default "localhost:6379"
		Password: "",                  // "" for no password, ok for now
		DB:       0,                   // 0 for default database
	})

	return &RedisStore{client: rdb}
}

// InputKey derives the cache key of the markup input.
// Inputs can be large, so the key is the hex SHA-256 of the input instead of the input itself.
func InputKey(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// Function to save the parse result so the next request
// with the same input skips the parsing.
func (store *RedisStore) SaveParseResult(
	ctx context.Context,
	inputKey string,
	data ParseResult,
	ttl time.Duration,
) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to serialize parse result: %w", err)
	}

	key := ParseResultPrefix + inputKey
	return store.client.Set(ctx, key, jsonData, ttl).Err()
}

// Function to retrieve the cached parse result.
// Returns ErrCacheMiss if not found or expired and ErrCorruptedEntry if the stored value is not a valid result.
func (store *RedisStore) GetParseResult(ctx context.Context, inputKey string) (*ParseResult, error) {
	key := ParseResultPrefix + inputKey

	jsonData, err := store.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get parse result: %w", err)
	}

	var result ParseResult
	if err := json.Unmarshal([]byte(jsonData), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptedEntry, err)
	}

	return &result, nil
}

// Helper function to evict the cached parse result.
func (store *RedisStore) DeleteParseResult(ctx context.Context, inputKey string) error {
	key := ParseResultPrefix + inputKey
	return store.client.Del(ctx, key).Err()
}

// Close releases the redis connection pool.
func (store *RedisStore) Close() error {
	return store.client.Close()
}
