package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jinhyuk9714/Back-likelion/domain"
	"github.com/jinhyuk9714/Back-likelion/internal/repository/mysql/model"
)

type memberRepository struct {
	DB *gorm.DB
}

var _ domain.MemberRepository = (*memberRepository)(nil)

// NewMemberRepository will create an implementation of domain.MemberRepository
func NewMemberRepository(db *gorm.DB) *memberRepository {
	return &memberRepository{
		DB: db,
	}
}

func (m *memberRepository) GetByEmail(ctx context.Context, email string) (domain.Member, error) {
	var member model.Member
	if err := conn(ctx, m.DB).First(&member, "email = ?", email).Error; err != nil {
		return domain.Member{}, memberNotFound(err)
	}

	return member.ToDomain(), nil
}

func (m *memberRepository) GetByID(ctx context.Context, id int64) (domain.Member, error) {
	var member model.Member
	if err := conn(ctx, m.DB).First(&member, "id = ?", id).Error; err != nil {
		return domain.Member{}, memberNotFound(err)
	}

	return member.ToDomain(), nil
}

func (m *memberRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Member, error) {
	if len(ids) == 0 {
		return []domain.Member{}, nil
	}
	var members []model.Member
	if err := conn(ctx, m.DB).Where("id IN ?", ids).Find(&members).Error; err != nil {
		return nil, err
	}
	res := make([]domain.Member, len(members))
	for i := range members {
		res[i] = members[i].ToDomain()
	}
	return res, nil
}

func memberNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrMemberNotFound
	}
	return err
}
