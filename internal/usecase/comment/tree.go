package comment

import "github.com/jinhyuk9714/Back-likelion/domain"

// RenderPostTree groups the live comments of a post into root comments
// carrying their replies.
//
// Roots keep the order of comments, and so do the replies under each root.
// Rows belonging to another post are dropped. Replies whose root is not among
// comments (the root was soft-deleted) are grouped under a placeholder root
// marked Deleted, placed where the first such reply appears.
func RenderPostTree(postID int64, comments []domain.Comment) []domain.RenderedComment {
	roots := make(map[int64]bool)
	replies := make(map[int64][]domain.RenderedComment)
	for i := range comments {
		c := &comments[i]
		if c.PostID != postID {
			continue
		}
		if c.IsRoot() {
			roots[c.ID] = true
			continue
		}
		replies[c.ParentID] = append(replies[c.ParentID], c.Render())
	}

	res := make([]domain.RenderedComment, 0, len(roots))
	emitted := make(map[int64]bool)
	for i := range comments {
		c := &comments[i]
		if c.PostID != postID {
			continue
		}

		var node domain.RenderedComment
		switch {
		case c.IsRoot():
			node = c.Render()
		case !roots[c.ParentID] && !emitted[c.ParentID]:
			node = placeholder(c.ParentID)
		default:
			continue
		}

		if children, ok := replies[node.ID]; ok {
			node.Children = children
		}
		emitted[node.ID] = true
		res = append(res, node)
	}
	return res
}

func placeholder(id int64) domain.RenderedComment {
	return domain.RenderedComment{
		ID:       id,
		Depth:    domain.RootDepth,
		Deleted:  true,
		Children: []domain.RenderedComment{},
	}
}

// countComments counts rendered comments, leaving out placeholders.
func countComments(tree []domain.RenderedComment) int {
	n := 0
	for _, root := range tree {
		if !root.Deleted {
			n++
		}
		n += len(root.Children)
	}
	return n
}
