// Package redis publishes analysis events on a redis channel.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const publishTimeout = 2 * time.Second

type Redis struct {
	Client  *redis.Client
	Logger  *zap.SugaredLogger
	Channel string
}

func New(address, password, channel string, logger *zap.SugaredLogger) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	_, err := client.Ping(ctx).Result()
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &Redis{
		Client:  client,
		Logger:  logger,
		Channel: channel,
	}, nil
}

// Produce publishes data as JSON. Nothing is stored: subscribers that are not
// listening miss the event.
func (r *Redis) Produce(ctx context.Context, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := r.Client.Publish(ctx, r.Channel, jsonData).Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}

	r.Logger.Debugw("redis: Produce", "channel", r.Channel)

	return nil
}

func (r *Redis) Close() error {
	return r.Client.Close()
}
