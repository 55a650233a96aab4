package handler

import (
	"net/http"
	"strconv"

	"practice-site/internal/usecase"
	"practice-site/pkg/response"
)

func queryInt(r *http.Request, key string) int {
	value, _ := strconv.Atoi(r.URL.Query().Get(key))
	return value
}

func queryTrue(r *http.Request, key string) bool {
	return r.URL.Query().Get(key) == "true"
}

func paginationMeta(p usecase.Pagination) *response.Meta {
	return &response.Meta{
		Total:       p.Total,
		TotalPages:  p.TotalPages,
		CurrentPage: p.CurrentPage,
		Limit:       p.Limit,
	}
}
