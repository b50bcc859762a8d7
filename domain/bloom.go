package domain

import "context"

// BloomRepository indexes post IDs for fast negative existence checks.
type BloomRepository interface {
	// Exists 检查 ID 是否可能存在
	// 返回 true: 可能存在 (需要进一步查 DB)
	// 返回 false: 绝对不存在 (直接返回 404)
	// IDs above the watermark have not been indexed yet and always report true.
	Exists(ctx context.Context, id int64) (bool, error)

	// BulkAdd 将 ID 批量加入过滤器
	BulkAdd(ctx context.Context, ids []int64) error

	// Watermark returns the highest ID indexed so far, 0 if none.
	Watermark(ctx context.Context) (int64, error)

	// SetWatermark records the highest ID indexed so far.
	SetWatermark(ctx context.Context, id int64) error
}
