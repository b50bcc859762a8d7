package model

import (
	"time"

	"github.com/jinhyuk9714/Back-likelion/domain"
)

type Member struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Email     string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Password  string    `gorm:"type:varchar(100);not null"`
	Nickname  string    `gorm:"type:varchar(50);not null"`
	Emoji     string    `gorm:"type:varchar(16)"`
	CreatedAt time.Time `gorm:"type:datetime"`
	UpdatedAt time.Time `gorm:"type:datetime"`
}

func (Member) TableName() string {
	return "member"
}

func (m *Member) ToDomain() domain.Member {
	return domain.Member{
		ID:        m.ID,
		Email:     m.Email,
		Nickname:  m.Nickname,
		Emoji:     m.Emoji,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
