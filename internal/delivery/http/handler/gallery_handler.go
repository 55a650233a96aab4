package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"practice-site/internal/delivery/dto"
	"practice-site/internal/domain/entity"
	"practice-site/internal/usecase"
	"practice-site/pkg/response"
	"practice-site/pkg/validator"

	"github.com/gorilla/mux"
)

type GalleryHandler struct {
	galleryUsecase usecase.GalleryUsecase
	validator      *validator.CustomValidator
}

func NewGalleryHandler(galleryUsecase usecase.GalleryUsecase, validator *validator.CustomValidator) *GalleryHandler {
	return &GalleryHandler{
		galleryUsecase: galleryUsecase,
		validator:      validator,
	}
}

func (h *GalleryHandler) Get(w http.ResponseWriter, r *http.Request) {
	gallery, err := h.galleryUsecase.Get(r.Context())
	if err != nil {
		response.ServerError(w, "Failed to get gallery", err)
		return
	}

	response.Success(w, http.StatusOK, "Gallery retrieved successfully", gallery)
}

// Replace handles replacing the whole gallery
// @Summary Replace gallery
// @Tags Gallery
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /gallery [put]
func (h *GalleryHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var gallery entity.Gallery
	if err := json.NewDecoder(r.Body).Decode(&gallery); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	updated, err := h.galleryUsecase.Replace(r.Context(), &gallery)
	if err != nil {
		response.ServerError(w, "Failed to update gallery", err)
		return
	}

	response.Success(w, http.StatusOK, "Gallery updated successfully", updated)
}

func (h *GalleryHandler) AddFacilityImage(w http.ResponseWriter, r *http.Request) {
	var req dto.AddFacilityImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	gallery, err := h.galleryUsecase.AddFacilityImage(r.Context(), &req)
	if err != nil {
		response.ServerError(w, "Failed to add facility image", err)
		return
	}

	response.Success(w, http.StatusCreated, "Facility image added successfully", gallery)
}

func (h *GalleryHandler) RemoveFacilityImage(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid image index", nil)
		return
	}

	gallery, err := h.galleryUsecase.RemoveFacilityImage(r.Context(), index)
	if err != nil {
		response.ServerError(w, "Failed to remove facility image", err)
		return
	}

	response.Success(w, http.StatusOK, "Facility image removed successfully", gallery)
}

func (h *GalleryHandler) AddCase(w http.ResponseWriter, r *http.Request) {
	var req dto.AddBeforeAfterCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	gallery, err := h.galleryUsecase.AddCase(r.Context(), &req)
	if err != nil {
		response.ServerError(w, "Failed to add before/after case", err)
		return
	}

	response.Success(w, http.StatusCreated, "Before/after case added successfully", gallery)
}

func (h *GalleryHandler) RemoveCase(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid case index", nil)
		return
	}

	gallery, err := h.galleryUsecase.RemoveCase(r.Context(), index)
	if err != nil {
		response.ServerError(w, "Failed to remove before/after case", err)
		return
	}

	response.Success(w, http.StatusOK, "Before/after case removed successfully", gallery)
}
