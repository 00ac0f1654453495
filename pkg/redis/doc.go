// Package redis wraps the go-redis client with a retrying Connect helper
// and a health probe, configured from environment variables.
//
// Connect parses a redis:// URL, then pings the server until it answers or
// the retry budget is spent. The returned *redis.Client is used directly by
// callers; this package adds no abstraction over it.
package redis
