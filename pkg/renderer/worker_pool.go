package renderer

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/df07/go-raycore/pkg/core"
	"golang.org/x/sync/errgroup"
)

// WorkerConfig controls how ray batches are split across goroutines
type WorkerConfig struct {
	NumWorkers int // Number of parallel workers (0 = use CPU count)
	ChunkSize  int // Rays handed to a worker at a time
}

// DefaultWorkerConfig returns sensible default values
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		NumWorkers: 0,   // Auto-detect CPU count
		ChunkSize:  256, // Large enough to amortize scheduling
	}
}

// WorkerPool casts batches of rays against a shared scene in parallel.
// The scene is only read, so any number of batches may run at once.
type WorkerPool struct {
	scene  core.Hitable
	config WorkerConfig
	logger core.Logger
}

// NewWorkerPool creates a worker pool over scene
func NewWorkerPool(scene core.Hitable, config WorkerConfig, logger core.Logger) *WorkerPool {
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	if config.ChunkSize <= 0 {
		config.ChunkSize = DefaultWorkerConfig().ChunkSize
	}

	return &WorkerPool{
		scene:  scene,
		config: config,
		logger: core.LoggerOrNop(logger),
	}
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.config.NumWorkers
}

// Cast intersects every ray with the scene, optionally through xf, and returns
// one record per ray in input order (nil for a miss). Chunks are written to
// disjoint ranges of the result slice, so no locking is needed.
//
// Cancelling ctx stops new chunks from starting; chunks already running
// finish. The partial results are discarded and ctx's error is returned.
func (wp *WorkerPool) Cast(ctx context.Context, rays []core.Ray, interval core.Interval, xf *core.Transform) ([]*core.HitRecord, CastStats, error) {
	startTime := time.Now()
	results := make([]*core.HitRecord, len(rays))

	var hits atomic.Int64
	chunks := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(wp.config.NumWorkers)

	for start := 0; start < len(rays); start += wp.config.ChunkSize {
		if gctx.Err() != nil {
			break
		}
		start := start
		end := min(start+wp.config.ChunkSize, len(rays))
		chunks++

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			chunkHits := 0
			for i := start; i < end; i++ {
				if hit, isHit := rays[i].Hit(wp.scene, interval, xf); isHit {
					results[i] = hit
					chunkHits++
				}
			}
			hits.Add(int64(chunkHits))
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return nil, CastStats{}, fmt.Errorf("cast %d rays: %w", len(rays), err)
	}

	stats := CastStats{
		Rays:     len(rays),
		Hits:     int(hits.Load()),
		Chunks:   chunks,
		Workers:  wp.config.NumWorkers,
		Duration: time.Since(startTime),
	}
	wp.logger.Printf("Cast %d rays in %d chunks on %d workers: %d hits in %v\n",
		stats.Rays, stats.Chunks, stats.Workers, stats.Hits, stats.Duration)

	return results, stats, nil
}
