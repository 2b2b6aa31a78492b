package ports

import (
	"context"

	"github.com/AnaMorales4/BackColombiaTour/internal/domain"
)

// TourListCache caches serialized catalog pages. Implementations may drop
// entries at any time; a miss is never an error.
type TourListCache interface {
	Key(ctx context.Context, f domain.TourFilter) string
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, payload []byte)
	// Invalidate discards every cached page. Called after any catalog or
	// ledger mutation.
	Invalidate(ctx context.Context)
}
