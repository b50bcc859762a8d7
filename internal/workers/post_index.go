package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jinhyuk9714/Back-likelion/domain"
)

const postIndexBatchSize = 1000

type postIndexWorker struct {
	PostRepo  domain.PostRepository
	BloomRepo domain.BloomRepository
	interval  time.Duration
}

var _ domain.PostIndexWorker = (*postIndexWorker)(nil)

func NewPostIndexWorker(pr domain.PostRepository, br domain.BloomRepository, interval time.Duration) *postIndexWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &postIndexWorker{
		PostRepo:  pr,
		BloomRepo: br,
		interval:  interval,
	}
}

func (w *postIndexWorker) Start(ctx context.Context) {
	if err := w.Refresh(ctx); err != nil {
		logrus.Errorf("failed to build post index: %v", err)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.Refresh(ctx); err != nil {
				logrus.Errorf("failed to refresh post index: %v", err)
			}
		case <-ctx.Done():
			logrus.Info("shutting down PostIndexWorker")
			return
		}
	}
}

// Refresh indexes post ids above the watermark in batches, advancing the
// watermark after each batch so a failed run resumes where it stopped.
func (w *postIndexWorker) Refresh(ctx context.Context) error {
	watermark, err := w.BloomRepo.Watermark(ctx)
	if err != nil {
		return err
	}

	indexed := 0
	for {
		ids, err := w.PostRepo.FetchIDs(ctx, watermark, postIndexBatchSize)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			break
		}

		if err := w.BloomRepo.BulkAdd(ctx, ids); err != nil {
			return err
		}
		watermark = ids[len(ids)-1]
		if err := w.BloomRepo.SetWatermark(ctx, watermark); err != nil {
			return err
		}
		indexed += len(ids)

		if len(ids) < postIndexBatchSize {
			break
		}
	}

	if indexed > 0 {
		logrus.WithFields(logrus.Fields{
			"indexed":   indexed,
			"watermark": watermark,
		}).Info("post index refreshed")
	}
	return nil
}
