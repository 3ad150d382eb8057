package pg

import (
	"testing"
	"time"

	"github.com/ashchan-dev/ashchan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/lib/pq"
)

func TestCreatePost(t *testing.T) {
	code := seedTestBoard(t)
	threadId := createTestThread(t, code)

	before, err := storage.GetThread(threadId)
	require.NoError(t, err)

	postId, replyCount, err := storage.CreatePost(domain.PostCreationData{
		Thread: threadId,
		Name:   "Anonymous",
		Text:   "first reply",
		IP:     "10.0.0.2",
	})
	require.NoError(t, err, "CreatePost should not return an error")
	assert.Greater(t, postId, int64(0), "Post ID should be greater than 0")
	assert.Equal(t, 1, replyCount, "reply_count should become 1")

	after, err := storage.GetThread(threadId)
	require.NoError(t, err)
	assert.Equal(t, 1, after.ReplyCount)
	require.Len(t, after.Posts, 1)
	assert.Equal(t, "first reply", after.Posts[0].Text)
	assert.False(t, after.BumpTime.Before(before.BumpTime), "bump_time must never move backward")
	assert.True(t, after.BumpTime.Equal(after.Posts[0].CreatedAt), "bump_time should match the accepted post's created_at")

	// Test creating a post in a non-existent thread
	_, _, err = storage.CreatePost(domain.PostCreationData{Thread: -1, Text: "orphan"})
	requireNotFoundError(t, err)
}

func TestCreatePost_CountsEveryAcceptedPost(t *testing.T) {
	code := seedTestBoard(t)
	threadId := createTestThread(t, code)

	for i := 1; i <= 5; i++ {
		_, replyCount, err := storage.CreatePost(domain.PostCreationData{Thread: threadId, Text: "reply"})
		require.NoError(t, err)
		assert.Equal(t, i, replyCount)
	}

	thread, err := storage.GetThread(threadId)
	require.NoError(t, err)
	assert.Equal(t, 5, thread.ReplyCount)
	assert.Len(t, thread.Posts, 5)
}

func TestCreatePost_LockedThread(t *testing.T) {
	code := seedTestBoard(t)
	threadId := createTestThread(t, code)
	createTestPost(t, threadId, nil)

	before, err := storage.GetThread(threadId)
	require.NoError(t, err)

	setThreadFlags(t, threadId, false, true)

	_, _, err = storage.CreatePost(domain.PostCreationData{Thread: threadId, Text: "rejected"})
	requireStatusCodeError(t, err, 423)

	// rejection leaves no trace: same reply_count, same bump_time, no post row
	after, err := storage.GetThread(threadId)
	require.NoError(t, err)
	assert.Equal(t, before.ReplyCount, after.ReplyCount, "reply_count must not change on a locked thread")
	assert.True(t, after.BumpTime.Equal(before.BumpTime), "bump_time must not change on a locked thread")
	assert.Len(t, after.Posts, len(before.Posts), "no post should be stored for a locked thread")
}

func TestPostCredentials(t *testing.T) {
	code := seedTestBoard(t)
	threadId := createTestThread(t, code)

	hash := []byte("$2a$10$fakehashfortest")
	withPassword := createTestPost(t, threadId, hash)
	withoutPassword := createTestPost(t, threadId, nil)

	got, err := storage.PostCredentials(withPassword)
	require.NoError(t, err, "PostCredentials should not return an error")
	assert.Equal(t, hash, got)

	got, err = storage.PostCredentials(withoutPassword)
	require.NoError(t, err)
	assert.Nil(t, got, "posts created without a password have a nil hash")

	_, err = storage.PostCredentials(-1)
	requireNotFoundError(t, err)
}

func TestDeletePost(t *testing.T) {
	code := seedTestBoard(t)
	threadId := createTestThread(t, code)
	postId := createTestPost(t, threadId, nil)
	createTestPost(t, threadId, nil)

	before, err := storage.GetThread(threadId)
	require.NoError(t, err)
	require.Equal(t, 2, before.ReplyCount)

	err = storage.DeletePost(postId)
	require.NoError(t, err, "DeletePost should not return an error")

	// hard delete: the row is gone but thread counters stay
	after, err := storage.GetThread(threadId)
	require.NoError(t, err)
	assert.Len(t, after.Posts, 1, "deleted post should disappear from the thread")
	assert.Equal(t, 2, after.ReplyCount, "reply_count must not decrement on deletion")
	assert.True(t, after.BumpTime.Equal(before.BumpTime), "bump_time must not change on deletion")

	_, err = storage.PostCredentials(postId)
	requireNotFoundError(t, err)

	// Test deleting a non-existent post
	err = storage.DeletePost(postId)
	requireNotFoundError(t, err)
}

func TestRecentPosts(t *testing.T) {
	code := seedTestBoard(t)
	threadId := createTestThread(t, code)

	var postIds []domain.PostId
	for i := 0; i < 3; i++ {
		postIds = append(postIds, createTestPost(t, threadId, nil))
	}

	posts, err := storage.RecentPosts(2)
	require.NoError(t, err, "RecentPosts should not return an error")
	require.Len(t, posts, 2, "limit should cap the result")

	// freshest first
	assert.Equal(t, postIds[2], posts[0].Id)
	assert.Equal(t, postIds[1], posts[1].Id)
	assert.False(t, posts[0].CreatedAt.Before(posts[1].CreatedAt))
}

func TestStats(t *testing.T) {
	code := seedTestBoard(t)
	threadId := createTestThread(t, code)
	createTestPost(t, threadId, nil)

	stats, err := storage.Stats()
	require.NoError(t, err, "Stats should not return an error")
	assert.GreaterOrEqual(t, stats.Boards, int64(1))
	assert.GreaterOrEqual(t, stats.Threads, int64(1))
	assert.GreaterOrEqual(t, stats.Posts, int64(1))
	require.NotNil(t, stats.LastPostAt)
	assert.WithinDuration(t, time.Now().UTC(), *stats.LastPostAt, time.Minute)
}
