package model

import (
	"time"

	"github.com/jinhyuk9714/Back-likelion/domain"
)

type Post struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	MemberID  int64     `gorm:"column:member_id;not null;index"`
	Title     string    `gorm:"type:varchar(100);not null"`
	Content   string    `gorm:"type:longtext;not null"`
	CreatedAt time.Time `gorm:"type:datetime"`
	UpdatedAt time.Time `gorm:"type:datetime"`

	Member *Member `gorm:"foreignKey:MemberID"`
}

func (Post) TableName() string {
	return "post"
}

func (m *Post) ToDomain() domain.Post {
	return domain.Post{
		ID:        m.ID,
		MemberID:  m.MemberID,
		Title:     m.Title,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// All lists every table in migration order.
func All() []any {
	return []any{&Member{}, &Post{}, &Comment{}}
}
