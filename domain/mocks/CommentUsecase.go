package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jinhyuk9714/Back-likelion/domain"
)

// CommentUsecase is a mock type for the domain.CommentUsecase type
type CommentUsecase struct {
	mock.Mock
}

func (_m *CommentUsecase) Create(ctx context.Context, in domain.CreateCommentInput) (domain.RenderedComment, error) {
	ret := _m.Called(ctx, in)
	return ret.Get(0).(domain.RenderedComment), ret.Error(1)
}

func (_m *CommentUsecase) Update(ctx context.Context, id int64, content string, identity string) (domain.RenderedComment, error) {
	ret := _m.Called(ctx, id, content, identity)
	return ret.Get(0).(domain.RenderedComment), ret.Error(1)
}

func (_m *CommentUsecase) Delete(ctx context.Context, id int64, identity string) error {
	return _m.Called(ctx, id, identity).Error(0)
}

func (_m *CommentUsecase) GetByID(ctx context.Context, id int64) (domain.RenderedComment, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.RenderedComment), ret.Error(1)
}

func (_m *CommentUsecase) FetchByPost(ctx context.Context, postID int64) (domain.PostComments, error) {
	ret := _m.Called(ctx, postID)
	return ret.Get(0).(domain.PostComments), ret.Error(1)
}

var _ domain.CommentUsecase = (*CommentUsecase)(nil)
