package pg

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/itchan-dev/boards/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTopic(t *testing.T) {
	ctx := context.Background()
	author := setupUser(t)
	board := setupBoard(t)

	t.Run("topic comes with exactly one post", func(t *testing.T) {
		start := time.Now().Add(-time.Second)
		topic, post, err := storage.CreateTopic(ctx, domain.TopicCreationData{
			Board: board, Subject: "Hello", Author: author, Message: "World",
		})
		require.NoError(t, err)

		assert.Greater(t, topic.Id, int64(0))
		assert.Equal(t, "Hello", topic.Subject)
		assert.Equal(t, board, topic.Board)
		assert.Equal(t, author, topic.CreatedBy)
		assert.Zero(t, topic.Views)
		assert.True(t, topic.CreatedAt.After(start))

		assert.Equal(t, "World", post.Message)
		assert.Equal(t, topic.Id, post.Topic)
		assert.Equal(t, author, post.CreatedBy)

		posts, err := storage.TopicPosts(ctx, topic.Id)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, post.Id, posts[0].Id)
		assert.Equal(t, "World", posts[0].Message)
	})

	t.Run("unknown board should 404", func(t *testing.T) {
		_, _, err := storage.CreateTopic(ctx, domain.TopicCreationData{
			Board: -1, Subject: "s", Author: author, Message: "m",
		})
		requireNotFoundError(t, err)
	})

	t.Run("unknown author should 404", func(t *testing.T) {
		_, _, err := storage.CreateTopic(ctx, domain.TopicCreationData{
			Board: board, Subject: "s", Author: -1, Message: "m",
		})
		requireNotFoundError(t, err)
	})

	t.Run("failing first post rolls back the topic", func(t *testing.T) {
		before, err := storage.ListTopics(ctx, board)
		require.NoError(t, err)

		_, _, err = storage.CreateTopic(ctx, domain.TopicCreationData{
			Board: board, Subject: "rollback", Author: author, Message: strings.Repeat("x", 4001),
		})
		require.Error(t, err)

		after, err := storage.ListTopics(ctx, board)
		require.NoError(t, err)
		assert.Equal(t, len(before), len(after), "no topic without posts must be left behind")
	})
}

func TestGetTopic(t *testing.T) {
	ctx := context.Background()
	author := setupUser(t)
	board := setupBoard(t)
	otherBoard := setupBoard(t)
	topic, _ := setupTopic(t, board, author)

	t.Run("existing", func(t *testing.T) {
		fetched, err := storage.GetTopic(ctx, board, topic.Id)
		require.NoError(t, err)
		assert.Equal(t, topic.Id, fetched.Id)
		assert.Equal(t, topic.Subject, fetched.Subject)
		assert.True(t, topic.CreatedAt.Equal(fetched.CreatedAt))
	})

	t.Run("wrong board should 404", func(t *testing.T) {
		_, err := storage.GetTopic(ctx, otherBoard, topic.Id)
		requireNotFoundError(t, err)
	})
}

func TestIncrementTopicViews(t *testing.T) {
	ctx := context.Background()
	author := setupUser(t)
	board := setupBoard(t)
	topic, _ := setupTopic(t, board, author)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := storage.IncrementTopicViews(ctx, topic.Id)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	fetched, err := storage.GetTopic(ctx, board, topic.Id)
	require.NoError(t, err)
	assert.EqualValues(t, n, fetched.Views, "concurrent increments must not be lost")

	_, err = storage.IncrementTopicViews(ctx, -1)
	requireNotFoundError(t, err)
}

func TestListTopics(t *testing.T) {
	ctx := context.Background()
	author := setupUser(t)
	board := setupBoard(t)
	older, _ := setupTopic(t, board, author)
	newer, _ := setupTopic(t, board, author)

	topics, err := storage.ListTopics(ctx, board)
	require.NoError(t, err)
	require.Len(t, topics, 2)
	assert.Equal(t, newer.Id, topics[0].Id)
	assert.Zero(t, topics[0].Replies)

	// a reply bumps the older topic to the top
	_, err = storage.CreatePost(ctx, domain.PostCreationData{Board: board, Topic: older.Id, Author: author, Message: "bump"})
	require.NoError(t, err)

	topics, err = storage.ListTopics(ctx, board)
	require.NoError(t, err)
	require.Len(t, topics, 2)
	assert.Equal(t, older.Id, topics[0].Id)
	assert.Equal(t, 1, topics[0].Replies)
	assert.False(t, topics[0].LastActivity.Before(topics[0].CreatedAt))
}
