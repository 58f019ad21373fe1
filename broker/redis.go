package broker

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
)

type RedisProducer struct {
	redisClient *redis.Client

	channel string
}

func (redisMQ *RedisProducer) String() string {
	return "redis"
}

func (redisMQ *RedisProducer) Channel() string {
	return redisMQ.channel
}

func (redisMQ *RedisProducer) Connect(ctx context.Context, clientName string, args map[string]interface{}) error {
	var ok bool

	var address string

	if address, ok = GetEntry(args, "Address").(string); !ok {
		return errors.New("redisMQ connect: string type assertion failed for Address")
	}

	password, _ := GetEntry(args, "Password").(string)

	var db int
	var err error

	if dbStr, ok := GetEntry(args, "DB").(string); ok {
		db, err = strconv.Atoi(dbStr)
		if err != nil {
			return fmt.Errorf("redisMQ connect db atoi: %w", err)
		}
	}

	if channel, ok := GetEntry(args, "Channel").(string); ok {
		redisMQ.channel = channel
	}

	redisMQ.redisClient = redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})

	err = redisMQ.redisClient.Ping(ctx).Err()
	if err != nil {
		return fmt.Errorf("redisMQ connect ping: %w", err)
	}

	return nil
}

func (redisMQ *RedisProducer) Publish(ctx context.Context, channelName string, data []byte) error {
	return redisMQ.redisClient.Publish(
		ctx,
		channelName,
		data,
	).Err()
}

func (redisMQ *RedisProducer) IsClosed() bool {
	return redisMQ.redisClient == nil
}

func (redisMQ *RedisProducer) Close() {
	redisMQ.redisClient.Close()
	redisMQ.redisClient = nil
}
