package actions

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// Store is an opened definition repository
type Store struct {
	Repository
	client *redis.Client
}

// OpenStore connects to Redis when redisURL is set.
// Any parse or connection failure falls back to an in-memory repository.
func OpenStore(ctx context.Context, redisURL string) *Store {
	if redisURL == "" {
		log.Println("No REDIS_URL found, using in-memory action definitions")
		return &Store{Repository: NewInMemoryRepository()}
	}

	log.Printf("Connecting to Redis at: %s", redisURL)

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("Failed to parse Redis URL: %v", err)
		log.Println("Falling back to in-memory action definitions")
		return &Store{Repository: NewInMemoryRepository()}
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		log.Println("Falling back to in-memory action definitions")
		_ = client.Close()
		return &Store{Repository: NewInMemoryRepository()}
	}

	log.Println("Successfully connected to Redis")
	return &Store{
		Repository: NewRedis(client),
		client:     client,
	}
}

// Persistent reports whether definitions are stored in Redis
func (s *Store) Persistent() bool {
	return s.client != nil
}

// Close releases the Redis connection, if any
func (s *Store) Close() error {
	if s.client == nil {
		return nil
	}
	if err := s.client.Close(); err != nil {
		return err
	}
	log.Println("Closed Redis connection")
	return nil
}
