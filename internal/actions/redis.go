package actions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	qrerr "github.com/KirkDiggler/quickroll-bot/internal/errors"
)

const (
	// Key patterns
	definitionKeyPrefix = "action:"
	definitionIndexKey  = "actions"

	defaultListConcurrency = 8
)

// Data is the stored form of a Definition
type Data struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Cost        int      `json:"cost"`
	Traits      []string `json:"traits,omitempty"`
	Description string   `json:"description,omitempty"`
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client          redis.UniversalClient
	ListConcurrency int
}

type redisRepository struct {
	client          redis.UniversalClient
	listConcurrency int
}

// NewRedisRepository creates a new Redis-backed definition repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	concurrency := cfg.ListConcurrency
	if concurrency <= 0 {
		concurrency = defaultListConcurrency
	}

	return &redisRepository{
		client:          cfg.Client,
		listConcurrency: concurrency,
	}
}

// NewRedis creates a Redis-backed repository with default configuration
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

func definitionKey(id string) string {
	return definitionKeyPrefix + id
}

func (r *redisRepository) Get(ctx context.Context, id string) (*Definition, error) {
	if id == "" {
		return nil, qrerr.InvalidArgumentf("action ID is required")
	}

	jsonData, err := r.client.Get(ctx, definitionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, notFound(id)
		}
		return nil, fmt.Errorf("failed to get action definition from Redis: %w", err)
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal action definition: %w", err)
	}

	return fromData(&data), nil
}

func (r *redisRepository) Put(ctx context.Context, def *Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}

	jsonData, err := json.Marshal(toData(def))
	if err != nil {
		return fmt.Errorf("failed to marshal action definition: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, definitionKey(def.ID), string(jsonData), 0)
	pipe.SAdd(ctx, definitionIndexKey, def.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to put action definition in Redis: %w", err)
	}

	return nil
}

func (r *redisRepository) List(ctx context.Context) ([]*Definition, error) {
	ids, err := r.client.SMembers(ctx, definitionIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list action definitions from Redis: %w", err)
	}
	sort.Strings(ids)

	defs := make([]*Definition, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.listConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			def, err := r.Get(gctx, id)
			if err != nil {
				if qrerr.IsNotFound(err) {
					log.Printf("[Actions] Index lists %s but no definition is stored", id)
					return nil
				}
				return fmt.Errorf("failed to get action definition %s: %w", id, err)
			}
			defs[i] = def
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]*Definition, 0, len(defs))
	for _, def := range defs {
		if def != nil {
			result = append(result, def)
		}
	}

	return result, nil
}

func (r *redisRepository) Delete(ctx context.Context, id string) error {
	pipe := r.client.Pipeline()
	del := pipe.Del(ctx, definitionKey(id))
	pipe.SRem(ctx, definitionIndexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete action definition from Redis: %w", err)
	}

	if del.Val() == 0 {
		return notFound(id)
	}

	return nil
}

func toData(def *Definition) *Data {
	return &Data{
		ID:          def.ID,
		Name:        def.Name,
		Cost:        def.Cost,
		Traits:      def.Traits,
		Description: def.Description,
	}
}

func fromData(data *Data) *Definition {
	return &Definition{
		ID:          data.ID,
		Name:        data.Name,
		Cost:        data.Cost,
		Traits:      data.Traits,
		Description: data.Description,
	}
}
