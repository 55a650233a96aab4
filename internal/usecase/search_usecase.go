package usecase

import (
	"context"
	"errors"
	"strings"

	"practice-site/internal/converter"
	"practice-site/internal/delivery/dto"

	"github.com/sirupsen/logrus"
)

const minSearchQueryLength = 2

var (
	ErrSearchQueryTooShort = errors.New("search query must be at least 2 characters")
)

type SearchUsecase interface {
	Search(ctx context.Context, query string) (*dto.SearchResponse, error)
}

type searchUsecase struct {
	data *DataAccess
	log  *logrus.Logger
}

func NewSearchUsecase(data *DataAccess, log *logrus.Logger) SearchUsecase {
	return &searchUsecase{
		data: data,
		log:  log,
	}
}

// Search matches active services and published posts, services first.
func (u *searchUsecase) Search(ctx context.Context, query string) (*dto.SearchResponse, error) {
	query = strings.TrimSpace(query)
	response := &dto.SearchResponse{
		Query:   query,
		Results: []dto.SearchResult{},
	}
	if len([]rune(query)) < minSearchQueryLength {
		return response, ErrSearchQueryTooShort
	}

	doc, err := u.data.readOrEmpty(ctx)
	if err != nil {
		u.log.Warnf("Failed to read site document for search: %+v", err)
		return nil, err
	}

	needle := strings.ToLower(query)
	for i := range doc.Services {
		s := &doc.Services[i]
		if !s.IsActive {
			continue
		}
		if strings.Contains(strings.ToLower(s.Title), needle) || strings.Contains(strings.ToLower(s.Description), needle) {
			response.Results = append(response.Results, converter.ServiceToSearchResult(s))
		}
	}
	for i := range doc.BlogPosts {
		p := &doc.BlogPosts[i]
		if p.Published && p.Matches(needle) {
			response.Results = append(response.Results, converter.BlogPostToSearchResult(p))
		}
	}
	response.Total = len(response.Results)

	return response, nil
}
