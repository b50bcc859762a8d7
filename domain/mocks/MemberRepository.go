package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jinhyuk9714/Back-likelion/domain"
)

// MemberRepository is a mock type for the domain.MemberRepository type
type MemberRepository struct {
	mock.Mock
}

func (_m *MemberRepository) GetByEmail(ctx context.Context, email string) (domain.Member, error) {
	ret := _m.Called(ctx, email)
	return ret.Get(0).(domain.Member), ret.Error(1)
}

func (_m *MemberRepository) GetByID(ctx context.Context, id int64) (domain.Member, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.Member), ret.Error(1)
}

func (_m *MemberRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Member, error) {
	ret := _m.Called(ctx, ids)
	var r0 []domain.Member
	if rf, ok := ret.Get(0).([]domain.Member); ok {
		r0 = rf
	}
	return r0, ret.Error(1)
}

var _ domain.MemberRepository = (*MemberRepository)(nil)
