package services

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/griot-labs/griot-cli/internal/core/domain"
	"github.com/griot-labs/griot-cli/internal/core/ports/driven"
	"github.com/griot-labs/griot-cli/internal/logger"
)

// Default batching parameters for the embedding generator.
const (
	// DefaultBatchSize is the number of chunks embedded concurrently
	// per batch.
	DefaultBatchSize = 20

	// DefaultBatchPause is the fixed pause between batches. A simple
	// fixed-window throttle against provider rate limits; not adaptive,
	// no retry-with-backoff.
	DefaultBatchPause = time.Second
)

// BatchEmbedder converts chunks into vectors via batched calls to the
// embedding provider. Batches run strictly sequentially; within a batch
// one request is issued per chunk concurrently, and all requests settle
// before the next batch starts. A failed chunk is logged and dropped -
// failure is local and never aborts the run.
type BatchEmbedder struct {
	service   driven.EmbeddingService
	batchSize int
	limiter   *rate.Limiter
}

// NewBatchEmbedder creates a batch embedder. Non-positive batchSize and
// pause fall back to the defaults.
func NewBatchEmbedder(service driven.EmbeddingService, batchSize int, pause time.Duration) *BatchEmbedder {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if pause <= 0 {
		pause = DefaultBatchPause
	}

	return &BatchEmbedder{
		service:   service,
		batchSize: batchSize,
		// One token per pause window; the first batch starts immediately.
		limiter: rate.NewLimiter(rate.Every(pause), 1),
	}
}

// EmbedChunks embeds every chunk and returns the vectors paired with the
// chunks that survived, order preserved modulo dropped failures. The
// returned count is the number of chunks dropped on per-request errors.
// The only error returned is context cancellation between batches.
func (b *BatchEmbedder) EmbedChunks(ctx context.Context, chunks []domain.Chunk) ([][]float32, []domain.Chunk, int, error) {
	vectors := make([][]float32, 0, len(chunks))
	kept := make([]domain.Chunk, 0, len(chunks))
	dropped := 0

	for start := 0; start < len(chunks); start += b.batchSize {
		if err := b.limiter.Wait(ctx); err != nil {
			return nil, nil, dropped, err
		}

		end := start + b.batchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]
		logger.Debug("Embedding batch %d-%d of %d chunks", start+1, end, len(chunks))

		// Fan out one request per chunk, fan in by slot so order holds.
		slots := make([][]float32, len(batch))
		var wg sync.WaitGroup
		for i := range batch {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				vec, err := b.service.Embed(ctx, batch[i].Text)
				if err != nil {
					logger.Warn("Embedding failed for chunk (doc %d, page %d): %v",
						batch[i].DocID, batch[i].Page, err)
					return
				}
				slots[i] = vec
			}(i)
		}
		wg.Wait()

		for i, vec := range slots {
			if vec == nil {
				dropped++
				continue
			}
			vectors = append(vectors, vec)
			kept = append(kept, batch[i])
		}
	}

	return vectors, kept, dropped, nil
}
