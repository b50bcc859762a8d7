package model

import (
	"time"

	"github.com/jinhyuk9714/Back-likelion/domain"
)

type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	MemberID  int64     `gorm:"column:member_id;not null;index"`
	Nickname  string    `gorm:"type:varchar(50);not null"`
	PostID    int64     `gorm:"column:post_id;not null;index"`
	ParentID  *int64    `gorm:"column:parent_id;index"`
	Depth     int       `gorm:"not null"`
	Content   string    `gorm:"type:varchar(100);not null"`
	IsDeleted bool      `gorm:"column:is_deleted;type:tinyint(1);not null;default:0"`
	CreatedAt time.Time `gorm:"type:datetime"`
	UpdatedAt time.Time `gorm:"type:datetime"`

	// Only used to declare the cascading foreign keys on migration.
	Member *Member  `gorm:"foreignKey:MemberID"`
	Post   *Post    `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Parent *Comment `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"`
}

func (Comment) TableName() string {
	return "comment"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	m := &Comment{
		ID:        c.ID,
		MemberID:  c.Author.ID,
		Nickname:  c.Nickname,
		PostID:    c.PostID,
		Depth:     c.Depth,
		Content:   c.Content,
		IsDeleted: c.IsDeleted,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.ParentID != 0 {
		parentID := c.ParentID
		m.ParentID = &parentID
	}
	return m
}

func (m *Comment) ToDomain() domain.Comment {
	c := domain.Comment{
		ID:        m.ID,
		Author:    domain.Member{ID: m.MemberID},
		Nickname:  m.Nickname,
		PostID:    m.PostID,
		Depth:     m.Depth,
		Content:   m.Content,
		IsDeleted: m.IsDeleted,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.ParentID != nil {
		c.ParentID = *m.ParentID
	}
	return c
}
