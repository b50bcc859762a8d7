package domain

import "context"

// PostIndexWorker keeps the post bloom filter in step with the post table.
type PostIndexWorker interface {
	// Start refreshes the index periodically until ctx is cancelled.
	Start(ctx context.Context)

	// Refresh indexes every post created since the last refresh.
	Refresh(ctx context.Context) error
}
