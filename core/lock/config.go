package lock

import "time"

// Config selects the single-sync lock backend.
type Config struct {
	// RedisAddr enables the redis lock (host:port). Empty keeps the lock in-process.
	RedisAddr string `mapstructure:"redis_addr" default:""`
	// RedisPassword authenticates against redis.
	RedisPassword string `mapstructure:"redis_password" default:""`
	// RedisDB is the redis logical database.
	RedisDB int `mapstructure:"redis_db" default:"0"`
	// Key is the redis key holding the lock token.
	Key string `mapstructure:"key" default:"catalog:sync:lock"`
	// TTLSeconds expires a lock left behind by a crashed holder.
	TTLSeconds int `mapstructure:"ttl_seconds" default:"600"`
}

// TTL returns the lock expiry, 10 minutes when unset. A run must finish within it.
func (c Config) TTL() time.Duration {
	if c.TTLSeconds <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(c.TTLSeconds) * time.Second
}

// Distributed reports whether the lock is shared through redis.
func (c Config) Distributed() bool {
	return c.RedisAddr != ""
}
