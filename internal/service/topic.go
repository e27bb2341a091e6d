package service

import (
	"context"
	"strings"

	"github.com/itchan-dev/boards/internal/domain"
	"github.com/itchan-dev/boards/internal/logger"
)

type TopicService interface {
	Create(ctx context.Context, creationData domain.TopicCreationData) (domain.Topic, domain.Post, error)
	View(ctx context.Context, board domain.BoardId, id domain.TopicId, session domain.SessionId) (domain.TopicWithPosts, error)
	List(ctx context.Context, board domain.BoardId) ([]domain.TopicSummary, error)
}

type Topic struct {
	storage          TopicStorage
	views            ViewTracker
	renderer         Renderer
	topicValidator   TopicValidator
	messageValidator PostValidator
}

type TopicStorage interface {
	GetBoard(ctx context.Context, id domain.BoardId) (domain.Board, error)
	CreateTopic(ctx context.Context, creationData domain.TopicCreationData) (domain.Topic, domain.Post, error)
	GetTopic(ctx context.Context, board domain.BoardId, id domain.TopicId) (domain.Topic, error)
	IncrementTopicViews(ctx context.Context, id domain.TopicId) (int64, error)
	ListTopics(ctx context.Context, board domain.BoardId) ([]domain.TopicSummary, error)
	TopicPosts(ctx context.Context, id domain.TopicId) ([]domain.Post, error)
}

// ViewTracker is the per-session "already viewed" flag store.
type ViewTracker interface {
	// MarkViewed atomically sets the flag and reports whether this call set it.
	MarkViewed(ctx context.Context, session domain.SessionId, topic domain.TopicId) (bool, error)
	Forget(ctx context.Context, session domain.SessionId, topic domain.TopicId) error
}

func NewTopic(storage TopicStorage, views ViewTracker, renderer Renderer) *Topic {
	return &Topic{storage: storage, views: views, renderer: renderer}
}

// Create opens a topic together with its first post.
func (t *Topic) Create(ctx context.Context, creationData domain.TopicCreationData) (domain.Topic, domain.Post, error) {
	creationData.Subject = strings.TrimSpace(creationData.Subject)
	creationData.Message = strings.TrimSpace(creationData.Message)
	if err := t.topicValidator.Subject(creationData.Subject); err != nil {
		return domain.Topic{}, domain.Post{}, err
	}
	if err := t.messageValidator.Message(creationData.Message); err != nil {
		return domain.Topic{}, domain.Post{}, err
	}

	topic, post, err := t.storage.CreateTopic(ctx, creationData)
	if err != nil {
		return domain.Topic{}, domain.Post{}, err
	}
	topicsCreatedTotal.Inc()
	postsCreatedTotal.Inc()
	logger.Log.Info("topic created", "board_id", topic.Board, "topic_id", topic.Id, "author_id", topic.CreatedBy)

	t.renderer.RenderPost(&post)
	return topic, post, nil
}

// GetWithViewIncrement looks the topic up and counts the view once per session.
func (t *Topic) GetWithViewIncrement(ctx context.Context, board domain.BoardId, id domain.TopicId, session domain.SessionId) (domain.Topic, error) {
	topic, err := t.storage.GetTopic(ctx, board, id)
	if err != nil {
		return domain.Topic{}, err
	}

	if session == "" {
		topicViewsTotal.WithLabelValues("anonymous").Inc()
		return topic, nil
	}

	first, err := t.views.MarkViewed(ctx, session, topic.Id)
	if err != nil {
		// a view is not worth failing the read over
		logger.Log.Warn("view tracker unavailable", "topic_id", topic.Id, "error", err)
		topicViewsTotal.WithLabelValues("tracker_error").Inc()
		return topic, nil
	}
	if !first {
		topicViewsTotal.WithLabelValues("duplicate").Inc()
		return topic, nil
	}

	views, err := t.storage.IncrementTopicViews(ctx, topic.Id)
	if err != nil {
		if forgetErr := t.views.Forget(ctx, session, topic.Id); forgetErr != nil {
			logger.Log.Error("failed to release view flag", "topic_id", topic.Id, "error", forgetErr)
		}
		return domain.Topic{}, err
	}
	topicViewsTotal.WithLabelValues("counted").Inc()
	topic.Views = views
	return topic, nil
}

// View returns the topic page: the topic (view counted) and its posts.
func (t *Topic) View(ctx context.Context, board domain.BoardId, id domain.TopicId, session domain.SessionId) (domain.TopicWithPosts, error) {
	topic, err := t.GetWithViewIncrement(ctx, board, id, session)
	if err != nil {
		return domain.TopicWithPosts{}, err
	}
	posts, err := t.storage.TopicPosts(ctx, topic.Id)
	if err != nil {
		return domain.TopicWithPosts{}, err
	}
	for i := range posts {
		t.renderer.RenderPost(&posts[i])
	}
	return domain.TopicWithPosts{Topic: topic, Posts: posts}, nil
}

func (t *Topic) List(ctx context.Context, board domain.BoardId) ([]domain.TopicSummary, error) {
	if _, err := t.storage.GetBoard(ctx, board); err != nil {
		return nil, err
	}
	return t.storage.ListTopics(ctx, board)
}
