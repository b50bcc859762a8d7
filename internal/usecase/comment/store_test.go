package comment_test

import (
	"context"
	"sync"
	"time"

	"github.com/jinhyuk9714/Back-likelion/domain"
)

// memStore is an in-memory comment, member and post store.
type memStore struct {
	mu       sync.Mutex
	nextID   int64
	comments []domain.Comment
	members  map[int64]domain.Member
	posts    map[int64]domain.Post
}

func newMemStore() *memStore {
	return &memStore{
		members: make(map[int64]domain.Member),
		posts:   make(map[int64]domain.Post),
	}
}

func (s *memStore) addMember(m domain.Member) domain.Member {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members[m.ID] = m
	return m
}

func (s *memStore) addPost(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts[id] = domain.Post{ID: id}
}

// raw returns the stored row regardless of its deleted flag.
func (s *memStore) raw(id int64) (domain.Comment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.comments {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Comment{}, false
}

func (s *memStore) live(match func(c domain.Comment) bool) []domain.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := []domain.Comment{}
	for _, c := range s.comments {
		if !c.IsDeleted && match(c) {
			c.Author = domain.Member{ID: c.Author.ID}
			res = append(res, c)
		}
	}
	return res
}

func (s *memStore) GetByID(_ context.Context, id int64) (domain.Comment, error) {
	found := s.live(func(c domain.Comment) bool { return c.ID == id })
	if len(found) == 0 {
		return domain.Comment{}, domain.ErrCommentNotFound
	}
	return found[0], nil
}

func (s *memStore) GetByPostAndID(_ context.Context, postID, id int64) (domain.Comment, error) {
	found := s.live(func(c domain.Comment) bool { return c.ID == id && c.PostID == postID })
	if len(found) == 0 {
		return domain.Comment{}, domain.ErrCommentNotFound
	}
	return found[0], nil
}

func (s *memStore) FetchChildren(_ context.Context, parentID int64) ([]domain.Comment, error) {
	return s.live(func(c domain.Comment) bool { return c.ParentID == parentID }), nil
}

func (s *memStore) FetchByPost(_ context.Context, postID int64) ([]domain.Comment, error) {
	return s.live(func(c domain.Comment) bool { return c.PostID == postID }), nil
}

func (s *memStore) Store(_ context.Context, c *domain.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	now := time.Now()
	c.ID = s.nextID
	c.CreatedAt, c.UpdatedAt = now, now
	s.comments = append(s.comments, *c)
	return nil
}

func (s *memStore) Update(_ context.Context, c *domain.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.comments {
		if s.comments[i].ID == c.ID && !s.comments[i].IsDeleted {
			s.comments[i].Content = c.Content
			s.comments[i].UpdatedAt = time.Now()
			c.UpdatedAt = s.comments[i].UpdatedAt
			return nil
		}
	}
	return domain.ErrCommentNotFound
}

func (s *memStore) SoftDelete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.comments {
		if s.comments[i].ID == id {
			s.comments[i].IsDeleted = true
		}
	}
	return nil
}

func (s *memStore) GetByEmail(_ context.Context, email string) (domain.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.members {
		if m.Email == email {
			return m, nil
		}
	}
	return domain.Member{}, domain.ErrMemberNotFound
}

func (s *memStore) GetMember(id int64) (domain.Member, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.members[id]
	return m, ok
}

func (s *memStore) GetByIDs(_ context.Context, ids []int64) ([]domain.Member, error) {
	res := []domain.Member{}
	for _, id := range ids {
		if m, ok := s.GetMember(id); ok {
			res = append(res, m)
		}
	}
	return res, nil
}

// memberStore and postStore adapt memStore to the interfaces whose method
// names collide with CommentRepository.
type memberStore struct{ *memStore }

func (s memberStore) GetByID(_ context.Context, id int64) (domain.Member, error) {
	if m, ok := s.GetMember(id); ok {
		return m, nil
	}
	return domain.Member{}, domain.ErrMemberNotFound
}

type postStore struct{ *memStore }

func (s postStore) GetByID(_ context.Context, id int64) (domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.posts[id]; ok {
		return p, nil
	}
	return domain.Post{}, domain.ErrPostNotFound
}

func (s postStore) FetchIDs(_ context.Context, afterID, limit int64) ([]int64, error) {
	return nil, nil
}

type passthroughTx struct{}

func (passthroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var (
	_ domain.CommentRepository = (*memStore)(nil)
	_ domain.MemberRepository  = memberStore{}
	_ domain.PostRepository    = postStore{}
	_ domain.Transactor        = passthroughTx{}
)
