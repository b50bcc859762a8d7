package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jinhyuk9714/Back-likelion/domain"
)

// PostRepository is a mock type for the domain.PostRepository type
type PostRepository struct {
	mock.Mock
}

func (_m *PostRepository) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.Post), ret.Error(1)
}

func (_m *PostRepository) FetchIDs(ctx context.Context, afterID, limit int64) ([]int64, error) {
	ret := _m.Called(ctx, afterID, limit)
	var r0 []int64
	if rf, ok := ret.Get(0).([]int64); ok {
		r0 = rf
	}
	return r0, ret.Error(1)
}

var _ domain.PostRepository = (*PostRepository)(nil)
