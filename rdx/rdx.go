package rdx

import (
	"log"
	"os"
	"time"

	"menara/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

const cacheTTL = 5 * time.Minute

func init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	Conn = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	if err := Conn.Ping(globals.Ctx).Err(); err != nil {
		log.Printf("Redis not reachable at %s: %v (caching disabled)", addr, err)
	}
}

// RdxGet fetches a cached string value; empty string on miss or error.
func RdxGet(key string) (string, error) {
	val, err := Conn.Get(globals.Ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func RdxSet(key, value string) error {
	return Conn.Set(globals.Ctx, key, value, cacheTTL).Err()
}

func RdxDel(key string) error {
	return Conn.Del(globals.Ctx, key).Err()
}

func RdxHset(hash, field, value string) error {
	return Conn.HSet(globals.Ctx, hash, field, value).Err()
}

func RdxHget(hash, field string) (string, error) {
	val, err := Conn.HGet(globals.Ctx, hash, field).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func RdxHdel(hash, field string) error {
	return Conn.HDel(globals.Ctx, hash, field).Err()
}
