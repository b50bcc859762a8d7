package redis

import (
	"context"
	"errors"
	"fmt"
	"hash/crc32"
	"hash/fnv"

	"github.com/redis/go-redis/v9"

	"github.com/jinhyuk9714/Back-likelion/domain"
)

const (
	KeyPostBloom          = "bloom:post:ids"
	KeyPostBloomWatermark = "bloom:post:watermark"
)

// Both keys carry the bit size, so bits built for another size are never read.
func bloomKey(bitSize uint64) string {
	return fmt.Sprintf("%s:%d", KeyPostBloom, bitSize)
}

func watermarkKey(bitSize uint64) string {
	return fmt.Sprintf("%s:%d", KeyPostBloomWatermark, bitSize)
}

type redisBloomRepo struct {
	client       *redis.Client
	BloomBitSize uint64
	bitsKey      string
	watermarkKey string
}

var _ domain.BloomRepository = (*redisBloomRepo)(nil)

func NewRedisBloomRepo(client *redis.Client, bitSize uint64) *redisBloomRepo {
	return &redisBloomRepo{
		client:       client,
		BloomBitSize: bitSize,
		bitsKey:      bloomKey(bitSize),
		watermarkKey: watermarkKey(bitSize),
	}
}

func (r *redisBloomRepo) Exists(ctx context.Context, id int64) (bool, error) {
	offsets := r.getOffset(id)
	pipe := r.client.Pipeline()
	bits := make([]*redis.IntCmd, 0, len(offsets))
	for _, offset := range offsets {
		bits = append(bits, pipe.GetBit(ctx, r.bitsKey, int64(offset)))
	}
	indexed := pipe.Exists(ctx, r.bitsKey)
	watermark := pipe.Get(ctx, r.watermarkKey)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return false, err
	}

	wm, err := watermark.Int64()
	if errors.Is(err, redis.Nil) {
		// nothing indexed yet
		return true, nil
	}
	if err != nil {
		return false, err
	}
	if n, err := indexed.Result(); err != nil {
		return false, err
	} else if n == 0 {
		// bits evicted, the watermark no longer vouches for them
		return true, nil
	}
	if id > wm {
		return true, nil
	}

	for _, cmd := range bits {
		val, err := cmd.Result()
		if err != nil {
			return false, err
		}
		if val == 0 {
			return false, nil
		}
	}

	return true, nil
}

// Watermark reports 0 when the bits are gone, so the next refresh rebuilds
// the filter from the first post.
func (r *redisBloomRepo) Watermark(ctx context.Context) (int64, error) {
	pipe := r.client.Pipeline()
	indexed := pipe.Exists(ctx, r.bitsKey)
	watermark := pipe.Get(ctx, r.watermarkKey)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return 0, err
	}

	wm, err := watermark.Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	n, err := indexed.Result()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}
	return wm, nil
}

func (r *redisBloomRepo) SetWatermark(ctx context.Context, id int64) error {
	return r.client.Set(ctx, r.watermarkKey, id, 0).Err()
}

func (r *redisBloomRepo) getOffset(id int64) []uint64 {
	data := fmt.Appendf(nil, "%d", id)
	offsets := make([]uint64, 3) // 假设 k=3

	// Hash 1: CRC32
	offsets[0] = uint64(crc32.ChecksumIEEE(data)) % r.BloomBitSize

	// Hash 2: FNV64
	h := fnv.New64()
	h.Write(data)
	offsets[1] = h.Sum64() % r.BloomBitSize

	// Hash 3: 线性混合
	offsets[2] = (offsets[0] + offsets[1] + 0xABC) % r.BloomBitSize

	return offsets
}

// BulkAdd sets the bits of every id in a single pipeline.
func (r *redisBloomRepo) BulkAdd(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	pipe := r.client.Pipeline()
	for _, id := range ids {
		for _, offset := range r.getOffset(id) {
			pipe.SetBit(ctx, r.bitsKey, int64(offset), 1)
		}
	}

	_, err := pipe.Exec(ctx)
	return err
}
