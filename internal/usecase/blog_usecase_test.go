package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"practice-site/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBlogUsecase(t *testing.T) BlogUsecase {
	t.Helper()
	data := newTestDataAccess(t)
	data.now = fixedClock(time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC), time.Minute)
	return NewBlogUsecase(data, testLogger(), newTestAudit())
}

func TestBlogUsecase_CreateDefaults(t *testing.T) {
	uc := newTestBlogUsecase(t)

	post, err := uc.Create(context.Background(), &dto.CreateBlogPostRequest{
		Title:   "10 Essential Health Tips for 2024!",
		Content: "Drink water.",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(post.ID, "post-"))
	assert.Equal(t, "10-essential-health-tips-for-2024", post.Slug)
	assert.Equal(t, "2024-06-15", post.PublishDate)
	assert.True(t, post.Published)
	assert.Zero(t, post.Views)
	assert.Zero(t, post.Likes)
	assert.NotNil(t, post.Tags)
}

func TestBlogUsecase_ListSortsAndPaginates(t *testing.T) {
	uc := newTestBlogUsecase(t)
	ctx := context.Background()

	// Inserted oldest first so the list has to reorder them
	for day := 1; day <= 25; day++ {
		_, err := uc.Create(ctx, &dto.CreateBlogPostRequest{
			Title:       fmt.Sprintf("Post %02d", day),
			Content:     "body",
			PublishDate: fmt.Sprintf("2024-01-%02d", day),
		})
		require.NoError(t, err)
	}

	posts, pagination, err := uc.List(ctx, dto.BlogListQuery{Page: 2, Limit: 10})
	require.NoError(t, err)

	require.Len(t, posts, 10)
	// 11th newest is day 15, 20th newest is day 6
	assert.Equal(t, "Post 15", posts[0].Title)
	assert.Equal(t, "Post 06", posts[9].Title)
	assert.Equal(t, Pagination{Total: 25, TotalPages: 3, CurrentPage: 2, Limit: 10}, pagination)
}

func TestBlogUsecase_ListFilters(t *testing.T) {
	uc := newTestBlogUsecase(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, &dto.CreateBlogPostRequest{Title: "Brushing basics", Content: "x", Category: "Oral Health", Featured: true})
	require.NoError(t, err)
	_, err = uc.Create(ctx, &dto.CreateBlogPostRequest{Title: "Draft notes", Content: "x", Category: "News", Published: boolPtr(false)})
	require.NoError(t, err)
	_, err = uc.Create(ctx, &dto.CreateBlogPostRequest{Title: "Clinic news", Content: "x", Category: "News", Tags: []string{"Flossing"}})
	require.NoError(t, err)

	posts, _, err := uc.List(ctx, dto.BlogListQuery{Category: "oral health"})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Brushing basics", posts[0].Title)

	posts, _, err = uc.List(ctx, dto.BlogListQuery{FeaturedOnly: true})
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	posts, _, err = uc.List(ctx, dto.BlogListQuery{PublishedOnly: true})
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	posts, _, err = uc.List(ctx, dto.BlogListQuery{Search: "FLOSS"})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Clinic news", posts[0].Title)
}

func TestBlogUsecase_ViewIncrementsEveryTime(t *testing.T) {
	uc := newTestBlogUsecase(t)
	ctx := context.Background()

	post, err := uc.Create(ctx, &dto.CreateBlogPostRequest{Title: "Hello World", Content: "x"})
	require.NoError(t, err)

	for want := 1; want <= 3; want++ {
		viewed, err := uc.View(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, want, viewed.Views)
	}

	viewed, err := uc.ViewBySlug(ctx, "hello-world")
	require.NoError(t, err)
	assert.Equal(t, 4, viewed.Views)

	_, err = uc.View(ctx, "post-missing")
	assert.ErrorIs(t, err, ErrBlogPostNotFound)
	_, err = uc.ViewBySlug(ctx, "missing")
	assert.ErrorIs(t, err, ErrBlogPostNotFound)
}

func TestBlogUsecase_Like(t *testing.T) {
	uc := newTestBlogUsecase(t)
	ctx := context.Background()

	post, err := uc.Create(ctx, &dto.CreateBlogPostRequest{Title: "Hello", Content: "x"})
	require.NoError(t, err)

	_, err = uc.Like(ctx, post.ID)
	require.NoError(t, err)
	liked, err := uc.Like(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, &dto.BlogLikeResponse{ID: post.ID, Likes: 2}, liked)

	_, err = uc.Like(ctx, "post-missing")
	assert.ErrorIs(t, err, ErrBlogPostNotFound)
}

func TestBlogUsecase_UpdateRegeneratesSlug(t *testing.T) {
	uc := newTestBlogUsecase(t)
	ctx := context.Background()

	post, err := uc.Create(ctx, &dto.CreateBlogPostRequest{Title: "Old Title", Content: "x"})
	require.NoError(t, err)
	_, err = uc.View(ctx, post.ID)
	require.NoError(t, err)

	updated, err := uc.Update(ctx, post.ID, &dto.UpdateBlogPostRequest{Title: strPtr("New Title")})
	require.NoError(t, err)
	assert.Equal(t, "new-title", updated.Slug)
	assert.Equal(t, 1, updated.Views, "counters survive updates")

	updated, err = uc.Update(ctx, post.ID, &dto.UpdateBlogPostRequest{Title: strPtr("Another"), Slug: strPtr("custom")})
	require.NoError(t, err)
	assert.Equal(t, "custom", updated.Slug)

	_, err = uc.Update(ctx, "post-missing", &dto.UpdateBlogPostRequest{})
	assert.ErrorIs(t, err, ErrBlogPostNotFound)
}

func TestBlogUsecase_DeleteIsIdempotent(t *testing.T) {
	uc := newTestBlogUsecase(t)
	ctx := context.Background()

	post, err := uc.Create(ctx, &dto.CreateBlogPostRequest{Title: "Hello", Content: "x"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, post.ID))
	require.NoError(t, uc.Delete(ctx, post.ID))

	posts, _, err := uc.List(ctx, dto.BlogListQuery{})
	require.NoError(t, err)
	assert.Empty(t, posts)
}
