package database

import (
	"time"

	"github.com/rs/zerolog/log"
)

// Close closes the pool. Safe to call more than once.
func (db *PostgresDB) Close() error {
	if db.Pool == nil {
		return nil
	}

	log.Info().Str("component", "database").Msg("Closing database connection pool")
	db.Pool.Close()
	db.Pool = nil

	return nil
}

// PoolStats is a snapshot of pool usage, exposed by the health endpoint
type PoolStats struct {
	TotalConns      int32         `json:"total_conns"`
	IdleConns       int32         `json:"idle_conns"`
	AcquiredConns   int32         `json:"acquired_conns"`
	MaxConns        int32         `json:"max_conns"`
	AcquireCount    int64         `json:"acquire_count"`
	AvgAcquireTime  time.Duration `json:"avg_acquire_time_ns"`
	EmptyAcquireCnt int64         `json:"empty_acquire_count"`
}

// Stats returns nil when the pool is not connected
func (db *PostgresDB) Stats() *PoolStats {
	if db.Pool == nil {
		return nil
	}

	s := db.Pool.Stat()
	return &PoolStats{
		TotalConns:      s.TotalConns(),
		IdleConns:       s.IdleConns(),
		AcquiredConns:   s.AcquiredConns(),
		MaxConns:        s.MaxConns(),
		AcquireCount:    s.AcquireCount(),
		AvgAcquireTime:  calculateAvgDuration(s.AcquireDuration(), s.AcquireCount()),
		EmptyAcquireCnt: s.EmptyAcquireCount(),
	}
}

func calculateAvgDuration(total time.Duration, count int64) time.Duration {
	if count == 0 {
		return 0
	}
	return total / time.Duration(count)
}
