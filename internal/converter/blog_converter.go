package converter

import (
	"practice-site/internal/delivery/dto"
	"practice-site/internal/domain/entity"
	"practice-site/pkg/slug"
)

// postSlug derives the slug from the title, falling back to the post id when
// the title has no sluggable characters.
func postSlug(title, id string) string {
	if s := slug.Generate(title); s != "" {
		return s
	}
	return id
}

// CreateBlogPostRequestToEntity builds a new post with zeroed counters. The
// slug is derived from the title.
func CreateBlogPostRequestToEntity(id, today string, req *dto.CreateBlogPostRequest) entity.BlogPost {
	publishDate := req.PublishDate
	if publishDate == "" {
		publishDate = today
	}

	return entity.BlogPost{
		ID:          id,
		Title:       req.Title,
		Slug:        postSlug(req.Title, id),
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		Image:       req.Image,
		Author:      req.Author,
		Category:    req.Category,
		Tags:        nonNilStrings(req.Tags),
		ReadTime:    req.ReadTime,
		Featured:    req.Featured,
		Published:   boolOrDefault(req.Published, true),
		PublishDate: publishDate,
		Views:       0,
		Likes:       0,
	}
}

// ApplyBlogPostUpdate patches the post. A new title regenerates the slug
// unless the request sets one explicitly. Counters are never touched.
func ApplyBlogPostUpdate(post *entity.BlogPost, req *dto.UpdateBlogPostRequest) {
	if req.Title != nil && *req.Title != post.Title && req.Slug == nil {
		post.Slug = postSlug(*req.Title, post.ID)
	}
	apply(&post.Title, req.Title)
	apply(&post.Slug, req.Slug)
	if post.Slug == "" {
		post.Slug = post.ID
	}
	apply(&post.Excerpt, req.Excerpt)
	apply(&post.Content, req.Content)
	apply(&post.Image, req.Image)
	apply(&post.Author, req.Author)
	apply(&post.Category, req.Category)
	apply(&post.Tags, req.Tags)
	apply(&post.ReadTime, req.ReadTime)
	apply(&post.Featured, req.Featured)
	apply(&post.Published, req.Published)
	apply(&post.PublishDate, req.PublishDate)
	post.Tags = nonNilStrings(post.Tags)
}
