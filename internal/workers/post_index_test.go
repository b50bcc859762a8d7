package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jinhyuk9714/Back-likelion/domain/mocks"
)

func sequence(from, n int64) []int64 {
	ids := make([]int64, 0, n)
	for i := int64(1); i <= n; i++ {
		ids = append(ids, from+i)
	}
	return ids
}

func TestRefresh(t *testing.T) {
	t.Run("indexes-above-watermark", func(t *testing.T) {
		posts := new(mocks.PostRepository)
		bloom := new(mocks.BloomRepository)
		bloom.On("Watermark", mock.Anything).Return(int64(10), nil).Once()
		posts.On("FetchIDs", mock.Anything, int64(10), int64(postIndexBatchSize)).Return([]int64{11, 14, 20}, nil).Once()
		bloom.On("BulkAdd", mock.Anything, []int64{11, 14, 20}).Return(nil).Once()
		bloom.On("SetWatermark", mock.Anything, int64(20)).Return(nil).Once()

		err := NewPostIndexWorker(posts, bloom, time.Minute).Refresh(context.Background())

		assert.NoError(t, err)
		posts.AssertExpectations(t)
		bloom.AssertExpectations(t)
	})

	t.Run("pages-full-batches", func(t *testing.T) {
		first := sequence(0, postIndexBatchSize)
		posts := new(mocks.PostRepository)
		bloom := new(mocks.BloomRepository)
		bloom.On("Watermark", mock.Anything).Return(int64(0), nil).Once()
		posts.On("FetchIDs", mock.Anything, int64(0), int64(postIndexBatchSize)).Return(first, nil).Once()
		bloom.On("BulkAdd", mock.Anything, first).Return(nil).Once()
		bloom.On("SetWatermark", mock.Anything, int64(postIndexBatchSize)).Return(nil).Once()
		posts.On("FetchIDs", mock.Anything, int64(postIndexBatchSize), int64(postIndexBatchSize)).Return([]int64{}, nil).Once()

		err := NewPostIndexWorker(posts, bloom, time.Minute).Refresh(context.Background())

		assert.NoError(t, err)
		posts.AssertExpectations(t)
		bloom.AssertExpectations(t)
	})

	t.Run("nothing-new", func(t *testing.T) {
		posts := new(mocks.PostRepository)
		bloom := new(mocks.BloomRepository)
		bloom.On("Watermark", mock.Anything).Return(int64(20), nil).Once()
		posts.On("FetchIDs", mock.Anything, int64(20), int64(postIndexBatchSize)).Return([]int64{}, nil).Once()

		err := NewPostIndexWorker(posts, bloom, time.Minute).Refresh(context.Background())

		assert.NoError(t, err)
		bloom.AssertNotCalled(t, "BulkAdd", mock.Anything, mock.Anything)
		bloom.AssertNotCalled(t, "SetWatermark", mock.Anything, mock.Anything)
	})

	t.Run("bulk-add-failure-keeps-watermark", func(t *testing.T) {
		posts := new(mocks.PostRepository)
		bloom := new(mocks.BloomRepository)
		bloom.On("Watermark", mock.Anything).Return(int64(0), nil).Once()
		posts.On("FetchIDs", mock.Anything, int64(0), int64(postIndexBatchSize)).Return([]int64{1, 2}, nil).Once()
		bloom.On("BulkAdd", mock.Anything, []int64{1, 2}).Return(errors.New("redis down")).Once()

		err := NewPostIndexWorker(posts, bloom, time.Minute).Refresh(context.Background())

		assert.Error(t, err)
		bloom.AssertNotCalled(t, "SetWatermark", mock.Anything, mock.Anything)
	})

	t.Run("watermark-failure", func(t *testing.T) {
		posts := new(mocks.PostRepository)
		bloom := new(mocks.BloomRepository)
		bloom.On("Watermark", mock.Anything).Return(int64(0), errors.New("redis down")).Once()

		err := NewPostIndexWorker(posts, bloom, time.Minute).Refresh(context.Background())

		assert.Error(t, err)
		posts.AssertNotCalled(t, "FetchIDs", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestStartStopsOnCancel(t *testing.T) {
	posts := new(mocks.PostRepository)
	bloom := new(mocks.BloomRepository)
	bloom.On("Watermark", mock.Anything).Return(int64(0), nil)
	posts.On("FetchIDs", mock.Anything, int64(0), int64(postIndexBatchSize)).Return([]int64{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewPostIndexWorker(posts, bloom, 10*time.Millisecond).Start(ctx)
		close(done)
	}()

	time.Sleep(35 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
	bloom.AssertCalled(t, "Watermark", mock.Anything)
}
