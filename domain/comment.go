package domain

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// MaxContentLength is the longest comment body accepted, in characters
	MaxContentLength = 100

	// RootDepth is the depth of a comment attached directly to a post
	RootDepth = 0
	// ReplyDepth is the depth of a reply to a root comment
	ReplyDepth = 1
)

// Comment domain model
type Comment struct {
	ID        int64
	Author    Member // 作者, the store only fills Author.ID
	Nickname  string // author's nickname at write time, never re-synced
	PostID    int64
	ParentID  int64 // 0 for root comments
	Depth     int
	Content   string
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewRootComment builds a depth 0 comment on a post.
func NewRootComment(postID int64, author Member, content string) Comment {
	return Comment{
		Author:   author,
		Nickname: author.Nickname,
		PostID:   postID,
		Depth:    RootDepth,
		Content:  content,
	}
}

// NewReply builds a depth 1 comment under parent.
// Returns ErrParentNotFound if parent belongs to another post or is deleted,
// and ErrReplyDepthExceeded if parent is itself a reply.
func NewReply(parent Comment, author Member, content string) (Comment, error) {
	if parent.IsDeleted {
		return Comment{}, ErrParentNotFound
	}
	if parent.IsReply() {
		return Comment{}, ErrReplyDepthExceeded
	}
	return Comment{
		Author:   author,
		Nickname: author.Nickname,
		PostID:   parent.PostID,
		ParentID: parent.ID,
		Depth:    ReplyDepth,
		Content:  content,
	}, nil
}

// IsRoot reports whether c is attached directly to its post.
func (c *Comment) IsRoot() bool {
	return c.ParentID == 0
}

// IsReply reports whether c replies to another comment.
func (c *Comment) IsReply() bool {
	return c.ParentID != 0 || c.Depth > RootDepth
}

// WrittenBy reports whether identity is the recorded author of c.
func (c *Comment) WrittenBy(identity string) bool {
	return identity != "" && c.Author.Email == identity
}

// ValidateContent checks a comment body is non-blank and at most MaxContentLength characters.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrBadParamInput
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return ErrBadParamInput
	}
	return nil
}

// RenderedComment is the output projection of a Comment and its replies.
type RenderedComment struct {
	ID        int64
	Emoji     string // live from the author's member record
	Nickname  string
	Content   string
	Depth     int
	ParentID  int64
	Deleted   bool // set only on placeholders standing in for a deleted root
	CreatedAt time.Time
	UpdatedAt time.Time
	Children  []RenderedComment
}

// Render projects c without children.
func (c *Comment) Render() RenderedComment {
	return RenderedComment{
		ID:        c.ID,
		Emoji:     c.Author.Emoji,
		Nickname:  c.Nickname,
		Content:   c.Content,
		Depth:     c.Depth,
		ParentID:  c.ParentID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Children:  []RenderedComment{},
	}
}

// PostComments is the rendered discussion of a post.
type PostComments struct {
	Comments []RenderedComment
	Count    int // number of non-deleted comments
}

// CreateCommentInput carries a new root comment or reply.
// ParentID 0 creates a root comment.
type CreateCommentInput struct {
	PostID   int64
	ParentID int64
	Content  string
	Identity string
}

// CommentUsecase 业务逻辑接口
type CommentUsecase interface {
	Create(ctx context.Context, in CreateCommentInput) (RenderedComment, error)
	Update(ctx context.Context, id int64, content string, identity string) (RenderedComment, error)
	Delete(ctx context.Context, id int64, identity string) error
	GetByID(ctx context.Context, id int64) (RenderedComment, error)
	FetchByPost(ctx context.Context, postID int64) (PostComments, error)
}

// CommentRepository 数据存取接口
// No lookup ever returns a soft-deleted comment.
type CommentRepository interface {
	// GetByID returns ErrCommentNotFound if absent or deleted.
	GetByID(ctx context.Context, id int64) (Comment, error)
	// GetByPostAndID resolves a comment scoped to a post, locking it against
	// concurrent deletion for the rest of the transaction.
	// Returns ErrCommentNotFound if absent, deleted or in another post.
	GetByPostAndID(ctx context.Context, postID, id int64) (Comment, error)
	// FetchChildren 获取指定父评论的所有子回复
	FetchChildren(ctx context.Context, parentID int64) ([]Comment, error)
	// FetchByPost 获取文章的全部评论, ordered by ID
	FetchByPost(ctx context.Context, postID int64) ([]Comment, error)
	Store(ctx context.Context, c *Comment) error
	// Update replaces the content in place.
	// Returns ErrCommentNotFound if no live row matched.
	Update(ctx context.Context, c *Comment) error
	// SoftDelete marks the comment deleted; deleting twice is a no-op.
	SoftDelete(ctx context.Context, id int64) error
}
