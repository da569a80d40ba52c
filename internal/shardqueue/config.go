package shardqueue

import "time"

// Config tunes a ShardExecutor. Zero values fall back to defaults applied in
// NewShardExecutor.
type Config struct {
	// Shards is the number of worker goroutines / queues.
	Shards int

	// QueueSize is the per-shard channel capacity.
	QueueSize int

	// EnqueueTimeout bounds how long Submit blocks on a full shard before
	// returning a QueueFullError.
	EnqueueTimeout time.Duration

	// MaxAttempts caps retries of a recoverable job, first run included.
	MaxAttempts int

	// BaseBackoff is the initial retry interval; it doubles up to MaxInterval.
	BaseBackoff time.Duration
	MaxInterval time.Duration

	// ErrorHandler receives the terminal error of a job that failed for good
	// (irrecoverable, cancelled, or out of attempts). Optional.
	ErrorHandler func(error)
}
