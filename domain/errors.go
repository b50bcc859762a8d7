package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested route target can't be resolved
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")

	// ErrAuthenticationRequired will throw if the caller has no resolvable identity
	ErrAuthenticationRequired = errors.New("authentication required")
	// ErrMemberNotFound will throw if no member matches the caller identity
	ErrMemberNotFound = errors.New("member not found")
	// ErrPostNotFound will throw if the referenced post doesn't exist
	ErrPostNotFound = errors.New("post not found")
	// ErrParentNotFound will throw if the parent comment doesn't exist, is deleted
	// or belongs to another post
	ErrParentNotFound = errors.New("parent comment not found")
	// ErrCommentNotFound will throw if the comment doesn't exist or is deleted
	ErrCommentNotFound = errors.New("comment not found")
	// ErrAuthorshipMismatch will throw if the caller is not the comment author
	ErrAuthorshipMismatch = errors.New("comment author mismatch")
	// ErrReplyDepthExceeded will throw if a reply is used as parent
	ErrReplyDepthExceeded = errors.New("a reply cannot be replied to")
)
