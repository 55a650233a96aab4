package entity

import "strings"

const BlogPostIDPrefix = "post-"

// PublishDateLayout is the date-only format used for publishDate.
const PublishDateLayout = "2006-01-02"

type Author struct {
	Name  string `json:"name"`
	Title string `json:"title,omitempty"`
	Image string `json:"image,omitempty"`
}

// BlogPost content is stored as raw HTML and rendered unsanitized by the site.
type BlogPost struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	Image       string   `json:"image"`
	Author      Author   `json:"author"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	ReadTime    string   `json:"readTime"`
	Featured    bool     `json:"featured"`
	Published   bool     `json:"published"`
	PublishDate string   `json:"publishDate"`
	Views       int      `json:"views"`
	Likes       int      `json:"likes"`
}

// Matches reports whether the lowercase query occurs in the title, excerpt,
// content or any tag of the post.
func (p *BlogPost) Matches(query string) bool {
	if strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Excerpt), query) ||
		strings.Contains(strings.ToLower(p.Content), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
