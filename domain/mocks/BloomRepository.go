package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jinhyuk9714/Back-likelion/domain"
)

// BloomRepository is a mock type for the domain.BloomRepository type
type BloomRepository struct {
	mock.Mock
}

func (_m *BloomRepository) Exists(ctx context.Context, id int64) (bool, error) {
	ret := _m.Called(ctx, id)
	return ret.Bool(0), ret.Error(1)
}

func (_m *BloomRepository) BulkAdd(ctx context.Context, ids []int64) error {
	return _m.Called(ctx, ids).Error(0)
}

func (_m *BloomRepository) Watermark(ctx context.Context) (int64, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *BloomRepository) SetWatermark(ctx context.Context, id int64) error {
	return _m.Called(ctx, id).Error(0)
}

var _ domain.BloomRepository = (*BloomRepository)(nil)
