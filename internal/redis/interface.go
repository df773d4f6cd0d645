package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so stores accept single-node, cluster
// and test clients alike
type Client interface {
	redis.UniversalClient
}
