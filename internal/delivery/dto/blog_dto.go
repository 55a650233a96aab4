package dto

import "practice-site/internal/domain/entity"

type CreateBlogPostRequest struct {
	Title       string        `json:"title" validate:"required,min=2"`
	Excerpt     string        `json:"excerpt"`
	Content     string        `json:"content" validate:"required"`
	Image       string        `json:"image"`
	Author      entity.Author `json:"author"`
	Category    string        `json:"category"`
	Tags        []string      `json:"tags"`
	ReadTime    string        `json:"readTime"`
	Featured    bool          `json:"featured"`
	Published   *bool         `json:"published"`
	PublishDate string        `json:"publishDate" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateBlogPostRequest struct {
	Title       *string        `json:"title" validate:"omitempty,min=2"`
	Slug        *string        `json:"slug" validate:"omitempty,min=1"`
	Excerpt     *string        `json:"excerpt"`
	Content     *string        `json:"content" validate:"omitempty,min=1"`
	Image       *string        `json:"image"`
	Author      *entity.Author `json:"author"`
	Category    *string        `json:"category"`
	Tags        *[]string      `json:"tags"`
	ReadTime    *string        `json:"readTime"`
	Featured    *bool          `json:"featured"`
	Published   *bool          `json:"published"`
	PublishDate *string        `json:"publishDate" validate:"omitempty,datetime=2006-01-02"`
}

type BlogListQuery struct {
	Category      string
	FeaturedOnly  bool
	PublishedOnly bool
	Search        string
	Page          int
	Limit         int
}

type BlogLikeResponse struct {
	ID    string `json:"id"`
	Likes int    `json:"likes"`
}
