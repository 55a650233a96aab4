package handler

import (
	"net/http"

	"practice-site/internal/usecase"
	"practice-site/pkg/response"
)

type SearchHandler struct {
	searchUsecase usecase.SearchUsecase
}

func NewSearchHandler(searchUsecase usecase.SearchUsecase) *SearchHandler {
	return &SearchHandler{searchUsecase: searchUsecase}
}

// Search handles site-wide search
// @Summary Search services and blog posts
// @Tags Search
// @Produce json
// @Param query query string true "Search text, at least 2 characters"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /search [get]
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	results, err := h.searchUsecase.Search(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		switch err {
		case usecase.ErrSearchQueryTooShort:
			response.JSON(w, http.StatusBadRequest, response.Response{
				Success: false,
				Message: "Search query must be at least 2 characters",
				Data:    results,
			})
		default:
			response.ServerError(w, "Failed to search", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Search completed successfully", results)
}
