package converter

import (
	"encoding/json"
	"testing"

	"practice-site/internal/delivery/dto"
	"practice-site/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyContactUpdate_SkipsAbsentAndNullFields(t *testing.T) {
	contact := entity.Contact{Status: entity.ContactStatusScheduled, Priority: entity.ContactPriorityNormal, Notes: "call back"}

	var req dto.UpdateContactRequest
	require.NoError(t, json.Unmarshal([]byte(`{"status": null, "priority": "high"}`), &req))

	ApplyContactUpdate(&contact, &req)

	assert.Equal(t, entity.ContactStatusScheduled, contact.Status)
	assert.Equal(t, entity.ContactPriorityHigh, contact.Priority)
	assert.Equal(t, "call back", contact.Notes)
}

func TestApplyBlogPostUpdate_RegeneratesSlugOnTitleChange(t *testing.T) {
	post := entity.BlogPost{Title: "Old", Slug: "old", Views: 7, Likes: 2}
	title := "Brand New Title!"

	ApplyBlogPostUpdate(&post, &dto.UpdateBlogPostRequest{Title: &title})

	assert.Equal(t, "brand-new-title", post.Slug)
	assert.Equal(t, 7, post.Views)
	assert.Equal(t, 2, post.Likes)
}

func TestApplyBlogPostUpdate_ExplicitSlugWins(t *testing.T) {
	post := entity.BlogPost{Title: "Old", Slug: "old"}
	title, custom := "New", "custom-slug"

	ApplyBlogPostUpdate(&post, &dto.UpdateBlogPostRequest{Title: &title, Slug: &custom})

	assert.Equal(t, "custom-slug", post.Slug)
}

func TestCreateBlogPostRequestToEntity_Defaults(t *testing.T) {
	post := CreateBlogPostRequestToEntity("post-1", "2024-05-01", &dto.CreateBlogPostRequest{
		Title:   "10 Essential Health Tips for 2024!",
		Content: "<p>hi</p>",
	})

	assert.Equal(t, "10-essential-health-tips-for-2024", post.Slug)
	assert.Equal(t, "2024-05-01", post.PublishDate)
	assert.True(t, post.Published)
	assert.Zero(t, post.Views)
	assert.Zero(t, post.Likes)
	assert.NotNil(t, post.Tags)
}

func TestBlogPostSlug_FallsBackToID(t *testing.T) {
	post := CreateBlogPostRequestToEntity("post-1", "2024-05-01", &dto.CreateBlogPostRequest{Title: "!!", Content: "x"})
	assert.Equal(t, "post-1", post.Slug)

	title := "??"
	post.Slug = "something"
	ApplyBlogPostUpdate(&post, &dto.UpdateBlogPostRequest{Title: &title})
	assert.Equal(t, "post-1", post.Slug)

	title = "Hello World"
	ApplyBlogPostUpdate(&post, &dto.UpdateBlogPostRequest{Title: &title})
	assert.Equal(t, "hello-world", post.Slug)
}

func TestApplyPracticeUpdate_ShallowMerge(t *testing.T) {
	doc := entity.DefaultDocument()
	name := "Bright Smile"

	ApplyPracticeUpdate(doc, &dto.UpdatePracticeRequest{
		Name:  &name,
		Hours: &entity.Hours{Weekdays: "9-5"},
	})

	assert.Equal(t, "Bright Smile", doc.Practice.Name)
	assert.Equal(t, "[Enter Your Practice Tagline]", doc.Practice.Tagline)
	assert.Equal(t, "9-5", doc.Hours.Weekdays)
	assert.Empty(t, doc.Hours.Saturday, "sections are replaced wholesale")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abc...", truncate("abcdef", 3))
}
