package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jinhyuk9714/Back-likelion/domain"
)

// Transactor is a mock type for the domain.Transactor type.
// It records the call and runs fn with the same context.
type Transactor struct {
	mock.Mock
}

func (_m *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	_m.Called(ctx)
	return fn(ctx)
}

var _ domain.Transactor = (*Transactor)(nil)
