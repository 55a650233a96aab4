package converter

import (
	"practice-site/internal/delivery/dto"
	"practice-site/internal/domain/entity"
)

const searchExcerptLength = 160

func ServiceToSearchResult(service *entity.Service) dto.SearchResult {
	return dto.SearchResult{
		ID:      service.ID,
		Type:    dto.SearchResultService,
		Title:   service.Title,
		Excerpt: truncate(service.Description, searchExcerptLength),
		URL:     "/services#" + service.ID,
	}
}

func BlogPostToSearchResult(post *entity.BlogPost) dto.SearchResult {
	return dto.SearchResult{
		ID:      post.ID,
		Type:    dto.SearchResultBlog,
		Title:   post.Title,
		Excerpt: truncate(post.Excerpt, searchExcerptLength),
		URL:     "/blog/" + post.Slug,
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
