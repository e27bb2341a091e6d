package handler

import (
	"context"

	"github.com/itchan-dev/boards/internal/domain"
)

type MockBoardService struct {
	MockCreateOrUpdate func(ctx context.Context, id *domain.BoardId, name domain.BoardName, description domain.BoardDescription) (domain.Board, error)
	MockGet            func(ctx context.Context, id domain.BoardId) (domain.BoardSummary, error)
	MockList           func(ctx context.Context, filter *domain.BoardId) ([]domain.BoardSummary, error)
	MockDelete         func(ctx context.Context, id domain.BoardId) error
}

func (m *MockBoardService) CreateOrUpdate(ctx context.Context, id *domain.BoardId, name domain.BoardName, description domain.BoardDescription) (domain.Board, error) {
	if m.MockCreateOrUpdate != nil {
		return m.MockCreateOrUpdate(ctx, id, name, description)
	}
	return domain.Board{}, nil
}

func (m *MockBoardService) Get(ctx context.Context, id domain.BoardId) (domain.BoardSummary, error) {
	if m.MockGet != nil {
		return m.MockGet(ctx, id)
	}
	return domain.BoardSummary{}, nil
}

func (m *MockBoardService) List(ctx context.Context, filter *domain.BoardId) ([]domain.BoardSummary, error) {
	if m.MockList != nil {
		return m.MockList(ctx, filter)
	}
	return nil, nil
}

func (m *MockBoardService) Delete(ctx context.Context, id domain.BoardId) error {
	if m.MockDelete != nil {
		return m.MockDelete(ctx, id)
	}
	return nil
}

func (m *MockBoardService) PostCount(ctx context.Context, id domain.BoardId) (int, error) {
	return 0, nil
}

func (m *MockBoardService) LastPost(ctx context.Context, id domain.BoardId) (*domain.Post, error) {
	return nil, nil
}

type MockTopicService struct {
	MockCreate func(ctx context.Context, data domain.TopicCreationData) (domain.Topic, domain.Post, error)
	MockView   func(ctx context.Context, board domain.BoardId, id domain.TopicId, session domain.SessionId) (domain.TopicWithPosts, error)
	MockList   func(ctx context.Context, board domain.BoardId) ([]domain.TopicSummary, error)
}

func (m *MockTopicService) Create(ctx context.Context, data domain.TopicCreationData) (domain.Topic, domain.Post, error) {
	if m.MockCreate != nil {
		return m.MockCreate(ctx, data)
	}
	return domain.Topic{}, domain.Post{}, nil
}

func (m *MockTopicService) View(ctx context.Context, board domain.BoardId, id domain.TopicId, session domain.SessionId) (domain.TopicWithPosts, error) {
	if m.MockView != nil {
		return m.MockView(ctx, board, id, session)
	}
	return domain.TopicWithPosts{}, nil
}

func (m *MockTopicService) List(ctx context.Context, board domain.BoardId) ([]domain.TopicSummary, error) {
	if m.MockList != nil {
		return m.MockList(ctx, board)
	}
	return nil, nil
}

type MockPostService struct {
	MockReply func(ctx context.Context, data domain.PostCreationData) (domain.Post, error)
	MockEdit  func(ctx context.Context, data domain.PostEditData) (domain.Post, error)
	MockGet   func(ctx context.Context, id domain.PostId) (domain.Post, error)
}

func (m *MockPostService) Reply(ctx context.Context, data domain.PostCreationData) (domain.Post, error) {
	if m.MockReply != nil {
		return m.MockReply(ctx, data)
	}
	return domain.Post{}, nil
}

func (m *MockPostService) Edit(ctx context.Context, data domain.PostEditData) (domain.Post, error) {
	if m.MockEdit != nil {
		return m.MockEdit(ctx, data)
	}
	return domain.Post{}, nil
}

func (m *MockPostService) Get(ctx context.Context, id domain.PostId) (domain.Post, error) {
	if m.MockGet != nil {
		return m.MockGet(ctx, id)
	}
	return domain.Post{}, nil
}

type MockAuthService struct {
	MockSignup     func(ctx context.Context, creds domain.Credentials) (domain.UserId, error)
	MockLogin      func(ctx context.Context, creds domain.Credentials) (string, error)
	MockGrantAdmin func(ctx context.Context, username domain.Username) error
}

func (m *MockAuthService) Signup(ctx context.Context, creds domain.Credentials) (domain.UserId, error) {
	if m.MockSignup != nil {
		return m.MockSignup(ctx, creds)
	}
	return 0, nil
}

func (m *MockAuthService) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	if m.MockLogin != nil {
		return m.MockLogin(ctx, creds)
	}
	return "", nil
}

func (m *MockAuthService) GrantAdmin(ctx context.Context, username domain.Username) error {
	if m.MockGrantAdmin != nil {
		return m.MockGrantAdmin(ctx, username)
	}
	return nil
}

type mockPinger struct{ err error }

func (m mockPinger) Ping(ctx context.Context) error { return m.err }
