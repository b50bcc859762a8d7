package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jinhyuk9714/Back-likelion/domain"
	"github.com/jinhyuk9714/Back-likelion/internal/repository/mysql/model"
)

type postRepository struct {
	DB *gorm.DB
}

// mysql层只负责数据库操作
var _ domain.PostRepository = (*postRepository)(nil)

// NewPostRepository 创建数据库操作层
func NewPostRepository(db *gorm.DB) *postRepository {
	return &postRepository{db}
}

func (m *postRepository) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	var post model.Post
	err := conn(ctx, m.DB).First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Post{}, domain.ErrPostNotFound
	}
	if err != nil {
		return domain.Post{}, err
	}
	return post.ToDomain(), nil
}

func (m *postRepository) FetchIDs(ctx context.Context, afterID, limit int64) ([]int64, error) {
	var ids []int64
	err := conn(ctx, m.DB).Model(&model.Post{}).
		Where("id > ?", afterID).
		Order("id").
		Limit(int(limit)).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
