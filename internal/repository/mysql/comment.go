package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jinhyuk9714/Back-likelion/domain"
	"github.com/jinhyuk9714/Back-likelion/internal/repository/mysql/model"
)

type commentRepository struct {
	DB *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

// live scopes a query to comments that are not soft-deleted.
func (c *commentRepository) live(ctx context.Context) *gorm.DB {
	return conn(ctx, c.DB).Model(&model.Comment{}).Where("is_deleted = ?", false)
}

func (c *commentRepository) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	var comment model.Comment
	err := c.live(ctx).Where("id = ?", id).First(&comment).Error
	if err != nil {
		return domain.Comment{}, notFound(err)
	}
	return comment.ToDomain(), nil
}

func (c *commentRepository) GetByPostAndID(ctx context.Context, postID, id int64) (domain.Comment, error) {
	var comment model.Comment
	err := c.live(ctx).
		Clauses(clause.Locking{Strength: "SHARE"}).
		Where("id = ? AND post_id = ?", id, postID).
		First(&comment).Error
	if err != nil {
		return domain.Comment{}, notFound(err)
	}
	return comment.ToDomain(), nil
}

func (c *commentRepository) FetchChildren(ctx context.Context, parentID int64) ([]domain.Comment, error) {
	var comments []model.Comment
	err := c.live(ctx).
		Where("parent_id = ?", parentID).
		Order("id").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return toDomainComments(comments), nil
}

func (c *commentRepository) FetchByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	var comments []model.Comment
	err := c.live(ctx).
		Where("post_id = ?", postID).
		Order("id").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return toDomainComments(comments), nil
}

func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	commentModel := model.NewCommentFromDomain(comment)
	if err := conn(ctx, c.DB).Create(commentModel).Error; err != nil {
		return err
	}
	comment.ID = commentModel.ID
	comment.CreatedAt = commentModel.CreatedAt
	comment.UpdatedAt = commentModel.UpdatedAt
	return nil
}

func (c *commentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	now := time.Now()
	result := c.live(ctx).
		Where("id = ?", comment.ID).
		Updates(map[string]any{"content": comment.Content, "updated_at": now})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCommentNotFound
	}
	comment.UpdatedAt = now
	return nil
}

func (c *commentRepository) SoftDelete(ctx context.Context, id int64) error {
	return c.live(ctx).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}

func toDomainComments(comments []model.Comment) []domain.Comment {
	res := make([]domain.Comment, 0, len(comments))
	for i := range comments {
		res = append(res, comments[i].ToDomain())
	}
	return res
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrCommentNotFound
	}
	return err
}

var _ domain.CommentRepository = (*commentRepository)(nil)
