package domain

import (
	"context"
	"time"
)

// Post is the discussion a comment set is attached to.
type Post struct {
	ID        int64
	MemberID  int64
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PostRepository defines the read contract the comment subsystem needs from posts.
type PostRepository interface {
	// GetByID retrieves a single post by its ID.
	// Returns ErrPostNotFound if the post doesn't exist.
	GetByID(ctx context.Context, id int64) (Post, error)

	// FetchIDs returns up to limit post IDs greater than afterID in ascending order.
	FetchIDs(ctx context.Context, afterID, limit int64) ([]int64, error)
}
