package handler

import (
	"encoding/json"
	"net/http"

	"practice-site/internal/delivery/dto"
	"practice-site/internal/usecase"
	"practice-site/pkg/response"
	"practice-site/pkg/validator"

	"github.com/gorilla/mux"
)

type BlogHandler struct {
	blogUsecase usecase.BlogUsecase
	validator   *validator.CustomValidator
}

func NewBlogHandler(blogUsecase usecase.BlogUsecase, validator *validator.CustomValidator) *BlogHandler {
	return &BlogHandler{
		blogUsecase: blogUsecase,
		validator:   validator,
	}
}

// GetAll handles listing blog posts
// @Summary List blog posts
// @Description List blog posts newest first with filters and pagination
// @Tags Blog
// @Produce json
// @Param category query string false "Category"
// @Param featured query bool false "Only featured posts"
// @Param published query bool false "Only published posts"
// @Param search query string false "Search text"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Router /blog [get]
func (h *BlogHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	query := dto.BlogListQuery{
		Category:      r.URL.Query().Get("category"),
		FeaturedOnly:  queryTrue(r, "featured"),
		PublishedOnly: queryTrue(r, "published"),
		Search:        r.URL.Query().Get("search"),
		Page:          queryInt(r, "page"),
		Limit:         queryInt(r, "limit"),
	}

	posts, pagination, err := h.blogUsecase.List(r.Context(), query)
	if err != nil {
		response.ServerError(w, "Failed to get blog posts", err)
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Blog posts retrieved successfully", posts, paginationMeta(pagination))
}

// GetByID returns a post and counts the view
// @Summary Get blog post by ID
// @Tags Blog
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /blog/{id} [get]
func (h *BlogHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	post, err := h.blogUsecase.View(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		switch err {
		case usecase.ErrBlogPostNotFound:
			response.NotFound(w, "Blog post not found")
		default:
			response.ServerError(w, "Failed to get blog post", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Blog post retrieved successfully", post)
}

// GetBySlug returns a post and counts the view
// @Summary Get blog post by slug
// @Tags Blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /blog/slug/{slug} [get]
func (h *BlogHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	post, err := h.blogUsecase.ViewBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		switch err {
		case usecase.ErrBlogPostNotFound:
			response.NotFound(w, "Blog post not found")
		default:
			response.ServerError(w, "Failed to get blog post", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Blog post retrieved successfully", post)
}

// Like handles liking a post
// @Summary Like a blog post
// @Tags Blog
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /blog/{id}/like [post]
func (h *BlogHandler) Like(w http.ResponseWriter, r *http.Request) {
	likes, err := h.blogUsecase.Like(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		switch err {
		case usecase.ErrBlogPostNotFound:
			response.NotFound(w, "Blog post not found")
		default:
			response.ServerError(w, "Failed to like blog post", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Blog post liked successfully", likes)
}

// Create handles blog post creation
// @Summary Create a new blog post
// @Tags Blog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateBlogPostRequest true "Create Blog Post Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /blog [post]
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBlogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	post, err := h.blogUsecase.Create(r.Context(), &req)
	if err != nil {
		response.ServerError(w, "Failed to create blog post", err)
		return
	}

	response.Success(w, http.StatusCreated, "Blog post created successfully", post)
}

// Update handles blog post update
// @Summary Update a blog post
// @Tags Blog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body dto.UpdateBlogPostRequest true "Update Blog Post Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /blog/{id} [put]
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateBlogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	post, err := h.blogUsecase.Update(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		switch err {
		case usecase.ErrBlogPostNotFound:
			response.NotFound(w, "Blog post not found")
		default:
			response.ServerError(w, "Failed to update blog post", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Blog post updated successfully", post)
}

// Delete handles blog post deletion
// @Summary Delete a blog post
// @Tags Blog
// @Security BearerAuth
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} response.Response
// @Router /blog/{id} [delete]
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.blogUsecase.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		response.ServerError(w, "Failed to delete blog post", err)
		return
	}

	response.Success(w, http.StatusOK, "Blog post deleted successfully", nil)
}
