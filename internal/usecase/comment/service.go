package comment

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/jinhyuk9714/Back-likelion/domain"
)

type service struct {
	commentRepo domain.CommentRepository
	memberRepo  domain.MemberRepository
	postRepo    domain.PostRepository
	bloomRepo   domain.BloomRepository
	tx          domain.Transactor
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(
	commentRepo domain.CommentRepository,
	memberRepo domain.MemberRepository,
	postRepo domain.PostRepository,
	bloomRepo domain.BloomRepository,
	tx domain.Transactor,
) *service {
	return &service{
		commentRepo: commentRepo,
		memberRepo:  memberRepo,
		postRepo:    postRepo,
		bloomRepo:   bloomRepo,
		tx:          tx,
	}
}

// mustExists fails with ErrPostNotFound when the post is absent.
// A definite negative from the bloom filter skips the database.
func (s *service) mustExists(ctx context.Context, postID int64) error {
	if s.bloomRepo != nil {
		exists, err := s.bloomRepo.Exists(ctx, postID)
		if err != nil {
			logrus.Warnf("bloom filter unavailable, checking post %d in db: %v", postID, err)
		} else if !exists {
			logrus.Debugf("bloom filter says post %d does not exist", postID)
			return domain.ErrPostNotFound
		}
	}

	_, err := s.postRepo.GetByID(ctx, postID)
	return err
}

func (s *service) Create(ctx context.Context, in domain.CreateCommentInput) (domain.RenderedComment, error) {
	if in.Identity == "" {
		return domain.RenderedComment{}, domain.ErrAuthenticationRequired
	}
	if err := domain.ValidateContent(in.Content); err != nil {
		return domain.RenderedComment{}, err
	}

	var c domain.Comment
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.mustExists(ctx, in.PostID); err != nil {
			return err
		}

		author, err := s.memberRepo.GetByEmail(ctx, in.Identity)
		if err != nil {
			return err
		}

		if in.ParentID == 0 {
			c = domain.NewRootComment(in.PostID, author, in.Content)
		} else {
			parent, err := s.commentRepo.GetByPostAndID(ctx, in.PostID, in.ParentID)
			if errors.Is(err, domain.ErrCommentNotFound) {
				return domain.ErrParentNotFound
			}
			if err != nil {
				return err
			}
			if c, err = domain.NewReply(parent, author, in.Content); err != nil {
				return err
			}
		}

		return s.commentRepo.Store(ctx, &c)
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"post_id":   in.PostID,
			"parent_id": in.ParentID,
		}).Warnf("create comment: %v", err)
		return domain.RenderedComment{}, err
	}

	return c.Render(), nil
}

func (s *service) Update(ctx context.Context, id int64, content string, identity string) (domain.RenderedComment, error) {
	if identity == "" {
		return domain.RenderedComment{}, domain.ErrAuthenticationRequired
	}
	if err := domain.ValidateContent(content); err != nil {
		return domain.RenderedComment{}, err
	}

	var c domain.Comment
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if c, err = s.ownedComment(ctx, id, identity); err != nil {
			return err
		}
		c.Content = content
		return s.commentRepo.Update(ctx, &c)
	})
	if err != nil {
		logrus.WithField("comment_id", id).Warnf("update comment: %v", err)
		return domain.RenderedComment{}, err
	}

	return c.Render(), nil
}

func (s *service) Delete(ctx context.Context, id int64, identity string) error {
	if identity == "" {
		return domain.ErrAuthenticationRequired
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.ownedComment(ctx, id, identity); err != nil {
			return err
		}
		return s.commentRepo.SoftDelete(ctx, id)
	})
	if err != nil {
		logrus.WithField("comment_id", id).Warnf("delete comment: %v", err)
	}
	return err
}

// ownedComment resolves a live comment with its author and checks identity wrote it.
func (s *service) ownedComment(ctx context.Context, id int64, identity string) (domain.Comment, error) {
	c, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Comment{}, err
	}

	author, err := s.memberRepo.GetByID(ctx, c.Author.ID)
	if errors.Is(err, domain.ErrMemberNotFound) {
		// the author left; nobody can claim the comment
		return domain.Comment{}, domain.ErrAuthorshipMismatch
	}
	if err != nil {
		return domain.Comment{}, err
	}
	c.Author = author

	if !c.WrittenBy(identity) {
		return domain.Comment{}, domain.ErrAuthorshipMismatch
	}
	return c, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (domain.RenderedComment, error) {
	var (
		c        domain.Comment
		children []domain.Comment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		c, err = s.commentRepo.GetByID(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		children, err = s.commentRepo.FetchChildren(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.RenderedComment{}, err
	}

	all := append([]domain.Comment{c}, children...)
	if err := s.fillAuthors(ctx, all); err != nil {
		return domain.RenderedComment{}, err
	}

	res := all[0].Render()
	for i := range all[1:] {
		res.Children = append(res.Children, all[i+1].Render())
	}
	return res, nil
}

func (s *service) FetchByPost(ctx context.Context, postID int64) (domain.PostComments, error) {
	if err := s.mustExists(ctx, postID); err != nil {
		return domain.PostComments{}, err
	}

	comments, err := s.commentRepo.FetchByPost(ctx, postID)
	if err != nil {
		return domain.PostComments{}, err
	}
	if err := s.fillAuthors(ctx, comments); err != nil {
		return domain.PostComments{}, err
	}

	tree := RenderPostTree(postID, comments)
	return domain.PostComments{
		Comments: tree,
		Count:    countComments(tree),
	}, nil
}

// fillAuthors 批量填充评论作者信息
func (s *service) fillAuthors(ctx context.Context, comments []domain.Comment) error {
	if len(comments) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(comments))
	seen := make(map[int64]bool)
	for _, c := range comments {
		if !seen[c.Author.ID] {
			ids = append(ids, c.Author.ID)
			seen[c.Author.ID] = true
		}
	}

	members, err := s.memberRepo.GetByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("fill comment authors: %w", err)
	}

	memberMap := make(map[int64]domain.Member, len(members))
	for _, m := range members {
		memberMap[m.ID] = m
	}
	for i := range comments {
		if m, ok := memberMap[comments[i].Author.ID]; ok {
			comments[i].Author = m
		}
	}
	return nil
}
