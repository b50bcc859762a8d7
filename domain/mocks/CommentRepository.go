package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jinhyuk9714/Back-likelion/domain"
)

// CommentRepository is a mock type for the domain.CommentRepository type
type CommentRepository struct {
	mock.Mock
}

func (_m *CommentRepository) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.Comment), ret.Error(1)
}

func (_m *CommentRepository) GetByPostAndID(ctx context.Context, postID, id int64) (domain.Comment, error) {
	ret := _m.Called(ctx, postID, id)
	return ret.Get(0).(domain.Comment), ret.Error(1)
}

func (_m *CommentRepository) FetchChildren(ctx context.Context, parentID int64) ([]domain.Comment, error) {
	ret := _m.Called(ctx, parentID)
	var r0 []domain.Comment
	if rf, ok := ret.Get(0).([]domain.Comment); ok {
		r0 = rf
	}
	return r0, ret.Error(1)
}

func (_m *CommentRepository) FetchByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	ret := _m.Called(ctx, postID)
	var r0 []domain.Comment
	if rf, ok := ret.Get(0).([]domain.Comment); ok {
		r0 = rf
	}
	return r0, ret.Error(1)
}

func (_m *CommentRepository) Store(ctx context.Context, c *domain.Comment) error {
	ret := _m.Called(ctx, c)
	return ret.Error(0)
}

func (_m *CommentRepository) Update(ctx context.Context, c *domain.Comment) error {
	ret := _m.Called(ctx, c)
	return ret.Error(0)
}

func (_m *CommentRepository) SoftDelete(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

var _ domain.CommentRepository = (*CommentRepository)(nil)
