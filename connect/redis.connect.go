package connect

import (
	"context"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/VinukaThejana/immerzo/config"
	"github.com/redis/go-redis/v9"
)

// Redis is used to manage al redis service connections
type Redis struct {
	System *redis.Client
}

func connect(url string) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		logger.Error(err)
		return nil
	}

	r := redis.NewClient(opt)
	if err := r.Ping(context.Background()).Err(); err != nil {
		logger.Error(err)
	}

	return r
}

// InitRedis is a function to initialize all redis instances, redis is optional
func (c *Connector) InitRedis(env *config.Env) {
	if env.RedisSystemURL == "" {
		return
	}

	system := connect(env.RedisSystemURL)
	if system == nil {
		return
	}

	c.R = &Redis{
		System: system,
	}
}
