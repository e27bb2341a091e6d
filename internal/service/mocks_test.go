package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/itchan-dev/boards/internal/domain"
	internal_errors "github.com/itchan-dev/boards/internal/errors"
)

type noopRenderer struct{}

func (noopRenderer) RenderPost(post *domain.Post) {
	post.MessageHTML = "<p>" + post.Message + "</p>"
}

// MockBoardStorage mocks the BoardStorage interface.
type MockBoardStorage struct {
	createBoardFunc func(ctx context.Context, data domain.BoardCreationData) (domain.Board, error)
	updateBoardFunc func(ctx context.Context, data domain.BoardUpdateData) (domain.Board, error)
	getBoardFunc    func(ctx context.Context, id domain.BoardId) (domain.Board, error)
	listBoardsFunc  func(ctx context.Context, filter *domain.BoardId) ([]domain.BoardSummary, error)
	deleteBoardFunc func(ctx context.Context, id domain.BoardId) error
	topicCountFunc  func(ctx context.Context, id domain.BoardId) (int, error)
	postCountFunc   func(ctx context.Context, id domain.BoardId) (int, error)
	lastPostFunc    func(ctx context.Context, id domain.BoardId) (*domain.Post, error)
}

func (m *MockBoardStorage) CreateBoard(ctx context.Context, data domain.BoardCreationData) (domain.Board, error) {
	if m.createBoardFunc != nil {
		return m.createBoardFunc(ctx, data)
	}
	return domain.Board{Id: 1, Name: data.Name, Description: data.Description}, nil
}

func (m *MockBoardStorage) UpdateBoard(ctx context.Context, data domain.BoardUpdateData) (domain.Board, error) {
	if m.updateBoardFunc != nil {
		return m.updateBoardFunc(ctx, data)
	}
	return domain.Board{Id: data.Id, Name: data.Name, Description: data.Description}, nil
}

func (m *MockBoardStorage) GetBoard(ctx context.Context, id domain.BoardId) (domain.Board, error) {
	if m.getBoardFunc != nil {
		return m.getBoardFunc(ctx, id)
	}
	return domain.Board{Id: id}, nil
}

func (m *MockBoardStorage) ListBoards(ctx context.Context, filter *domain.BoardId) ([]domain.BoardSummary, error) {
	if m.listBoardsFunc != nil {
		return m.listBoardsFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockBoardStorage) DeleteBoard(ctx context.Context, id domain.BoardId) error {
	if m.deleteBoardFunc != nil {
		return m.deleteBoardFunc(ctx, id)
	}
	return nil
}

func (m *MockBoardStorage) TopicCount(ctx context.Context, id domain.BoardId) (int, error) {
	if m.topicCountFunc != nil {
		return m.topicCountFunc(ctx, id)
	}
	return 0, nil
}

func (m *MockBoardStorage) PostCount(ctx context.Context, id domain.BoardId) (int, error) {
	if m.postCountFunc != nil {
		return m.postCountFunc(ctx, id)
	}
	return 0, nil
}

func (m *MockBoardStorage) LastPost(ctx context.Context, id domain.BoardId) (*domain.Post, error) {
	if m.lastPostFunc != nil {
		return m.lastPostFunc(ctx, id)
	}
	return nil, nil
}

// fakeStore is a small in-memory TopicStorage and PostStorage used to check
// counting properties end to end through the services.
type fakeStore struct {
	mu       sync.Mutex
	boards   map[domain.BoardId]domain.Board
	topics   map[domain.TopicId]*domain.Topic
	posts    map[domain.PostId]*domain.Post
	nextId   int64
	failIncr bool
}

func newFakeStore(boards ...domain.BoardId) *fakeStore {
	s := &fakeStore{
		boards: map[domain.BoardId]domain.Board{},
		topics: map[domain.TopicId]*domain.Topic{},
		posts:  map[domain.PostId]*domain.Post{},
	}
	for _, b := range boards {
		s.boards[b] = domain.Board{Id: b, Name: fmt.Sprintf("board%d", b)}
	}
	return s
}

func (s *fakeStore) id() int64 {
	s.nextId++
	return s.nextId
}

func (s *fakeStore) GetBoard(ctx context.Context, id domain.BoardId) (domain.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.boards[id]
	if !ok {
		return domain.Board{}, errNotFound("Board")
	}
	return b, nil
}

func (s *fakeStore) CreateTopic(ctx context.Context, data domain.TopicCreationData) (domain.Topic, domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.boards[data.Board]; !ok {
		return domain.Topic{}, domain.Post{}, errNotFound("Board")
	}
	topic := &domain.Topic{Id: s.id(), Subject: data.Subject, Board: data.Board, CreatedBy: data.Author}
	post := &domain.Post{Id: s.id(), Message: data.Message, Topic: topic.Id, CreatedBy: data.Author}
	s.topics[topic.Id] = topic
	s.posts[post.Id] = post
	return *topic, *post, nil
}

func (s *fakeStore) GetTopic(ctx context.Context, board domain.BoardId, id domain.TopicId) (domain.Topic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.topics[id]
	if !ok || t.Board != board {
		return domain.Topic{}, errNotFound("Topic")
	}
	return *t, nil
}

func (s *fakeStore) IncrementTopicViews(ctx context.Context, id domain.TopicId) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failIncr {
		return 0, fmt.Errorf("db is down")
	}
	t, ok := s.topics[id]
	if !ok {
		return 0, errNotFound("Topic")
	}
	t.Views++
	return t.Views, nil
}

func (s *fakeStore) ListTopics(ctx context.Context, board domain.BoardId) ([]domain.TopicSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.TopicSummary
	for _, t := range s.topics {
		if t.Board == board {
			out = append(out, domain.TopicSummary{Topic: *t})
		}
	}
	return out, nil
}

func (s *fakeStore) TopicPosts(ctx context.Context, id domain.TopicId) ([]domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Post
	for pid := int64(1); pid <= s.nextId; pid++ {
		if p, ok := s.posts[pid]; ok && p.Topic == id {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *fakeStore) CreatePost(ctx context.Context, data domain.PostCreationData) (domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.topics[data.Topic]
	if !ok || t.Board != data.Board {
		return domain.Post{}, errNotFound("Topic")
	}
	post := &domain.Post{Id: s.id(), Message: data.Message, Topic: data.Topic, CreatedBy: data.Author}
	s.posts[post.Id] = post
	return *post, nil
}

func (s *fakeStore) GetPost(ctx context.Context, id domain.PostId) (domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return domain.Post{}, errNotFound("Post")
	}
	return *p, nil
}

func (s *fakeStore) UpdatePost(ctx context.Context, id domain.PostId, message domain.MsgText) (domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return domain.Post{}, errNotFound("Post")
	}
	p.Message = message
	return *p, nil
}

func (s *fakeStore) postCount(board domain.BoardId) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, p := range s.posts {
		if s.topics[p.Topic].Board == board {
			n++
		}
	}
	return n
}

// fakeViews is an in-memory ViewTracker with set-if-absent semantics.
type fakeViews struct {
	mu    sync.Mutex
	flags map[string]bool
	err   error
}

func newFakeViews() *fakeViews {
	return &fakeViews{flags: map[string]bool{}}
}

func (v *fakeViews) key(session domain.SessionId, topic domain.TopicId) string {
	return fmt.Sprintf("%s:%d", session, topic)
}

func (v *fakeViews) MarkViewed(ctx context.Context, session domain.SessionId, topic domain.TopicId) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.err != nil {
		return false, v.err
	}
	k := v.key(session, topic)
	if v.flags[k] {
		return false, nil
	}
	v.flags[k] = true
	return true, nil
}

func (v *fakeViews) Forget(ctx context.Context, session domain.SessionId, topic domain.TopicId) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.flags, v.key(session, topic))
	return nil
}

func errNotFound(what string) error {
	return internal_errors.NotFound(what + " not found")
}
