package response

import (
	"time"

	"github.com/jinhyuk9714/Back-likelion/domain"
)

const DateTimeFormat = "2006-01-02 15:04:05"

type Comment struct {
	ID        int64  `json:"id"`
	Emoji     string `json:"emoji"`
	Nickname  string `json:"nickname"`
	Content   string `json:"content"`
	ParentID  *int64 `json:"parent_id,omitempty"`
	Depth     int    `json:"depth"`
	Deleted   bool   `json:"deleted,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`

	// Children 子评论列表
	Children []Comment `json:"children"`
}

// PostComments is the discussion of a post.
type PostComments struct {
	Count    int       `json:"count"`
	Comments []Comment `json:"comments"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateTimeFormat)
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.RenderedComment) Comment {
	res := Comment{
		ID:        c.ID,
		Emoji:     c.Emoji,
		Nickname:  c.Nickname,
		Content:   c.Content,
		Depth:     c.Depth,
		Deleted:   c.Deleted,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
		Children:  make([]Comment, 0, len(c.Children)),
	}
	if c.ParentID != 0 {
		parentID := c.ParentID
		res.ParentID = &parentID
	}
	for i := range c.Children {
		res.Children = append(res.Children, NewCommentFromDomain(&c.Children[i]))
	}
	return res
}

func NewPostCommentsFromDomain(pc *domain.PostComments) PostComments {
	res := PostComments{
		Count:    pc.Count,
		Comments: make([]Comment, 0, len(pc.Comments)),
	}
	for i := range pc.Comments {
		res.Comments = append(res.Comments, NewCommentFromDomain(&pc.Comments[i]))
	}
	return res
}
