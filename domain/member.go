package domain

import (
	"context"
	"time"
)

// Member represents a forum member.
// Email is the stable identity key resolved from the caller's credentials.
type Member struct {
	ID        int64     // Unique identifier
	Email     string    // Identity key (unique)
	Nickname  string    // Current display name
	Emoji     string    // Avatar marker
	CreatedAt time.Time // Registration timestamp
	UpdatedAt time.Time // Last profile update timestamp
}

// MemberRepository defines the contract for member lookups.
type MemberRepository interface {
	// GetByEmail retrieves a member by identity key.
	// Returns ErrMemberNotFound if no member matches.
	GetByEmail(ctx context.Context, email string) (Member, error)

	// GetByID retrieves a member by ID.
	// Returns ErrMemberNotFound if the member doesn't exist.
	GetByID(ctx context.Context, id int64) (Member, error)

	// GetByIDs retrieves all existing members among the given IDs.
	GetByIDs(ctx context.Context, ids []int64) ([]Member, error)
}
