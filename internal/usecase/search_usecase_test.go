package usecase

import (
	"context"
	"testing"

	"practice-site/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchUsecase_Search(t *testing.T) {
	data := newTestDataAccess(t)
	audit := newTestAudit()
	services := NewServiceUsecase(data, testLogger(), audit)
	blog := NewBlogUsecase(data, testLogger(), audit)
	uc := NewSearchUsecase(data, testLogger())
	ctx := context.Background()

	svc, err := services.Create(ctx, &dto.CreateServiceRequest{Title: "Teeth Whitening", Description: "Brighter smile"})
	require.NoError(t, err)
	_, err = services.Create(ctx, &dto.CreateServiceRequest{Title: "Whitening Kit", Description: "retired", IsActive: boolPtr(false)})
	require.NoError(t, err)
	post, err := blog.Create(ctx, &dto.CreateBlogPostRequest{Title: "Is whitening safe?", Content: "Yes."})
	require.NoError(t, err)
	_, err = blog.Create(ctx, &dto.CreateBlogPostRequest{Title: "Whitening draft", Content: "x", Published: boolPtr(false)})
	require.NoError(t, err)

	resp, err := uc.Search(ctx, "  WHITENING ")
	require.NoError(t, err)

	assert.Equal(t, "WHITENING", resp.Query)
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, dto.SearchResult{
		ID:      svc.ID,
		Type:    dto.SearchResultService,
		Title:   "Teeth Whitening",
		Excerpt: "Brighter smile",
		URL:     "/services#" + svc.ID,
	}, resp.Results[0])
	assert.Equal(t, dto.SearchResultBlog, resp.Results[1].Type)
	assert.Equal(t, "/blog/"+post.Slug, resp.Results[1].URL)
}

func TestSearchUsecase_QueryLength(t *testing.T) {
	uc := NewSearchUsecase(newTestDataAccess(t), testLogger())
	ctx := context.Background()

	resp, err := uc.Search(ctx, " a ")
	assert.ErrorIs(t, err, ErrSearchQueryTooShort)
	require.NotNil(t, resp)
	assert.Empty(t, resp.Results)
	assert.NotNil(t, resp.Results)

	resp, err = uc.Search(ctx, "ab")
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
}
