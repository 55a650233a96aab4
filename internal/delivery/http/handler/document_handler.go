package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"practice-site/internal/domain/entity"
	"practice-site/internal/usecase"
	"practice-site/pkg/response"

	"github.com/gorilla/mux"
)

// DocumentHandler serves the admin editor, which works on the whole site
// document at once.
type DocumentHandler struct {
	documentUsecase usecase.DocumentUsecase
}

func NewDocumentHandler(documentUsecase usecase.DocumentUsecase) *DocumentHandler {
	return &DocumentHandler{documentUsecase: documentUsecase}
}

// GetDocument handles loading the site document
// @Summary Get full site data
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/data [get]
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.documentUsecase.GetDocument(r.Context())
	if err != nil {
		response.ServerError(w, "Failed to load site data", err)
		return
	}

	response.Success(w, http.StatusOK, "Site data retrieved successfully", doc)
}

// SaveDocument handles replacing the site document
// @Summary Save full site data
// @Description Replaces the document. A stale lastModified is rejected with 409.
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/data [post]
func (h *DocumentHandler) SaveDocument(w http.ResponseWriter, r *http.Request) {
	var draft entity.SiteDocument
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	doc, err := h.documentUsecase.SaveDocument(r.Context(), &draft)
	if err != nil {
		switch err {
		case usecase.ErrDocumentConflict:
			response.Conflict(w, "Site data was modified by another session, reload and try again")
		default:
			response.ServerError(w, "Failed to save site data", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Site data saved successfully", doc)
}

// SaveSection handles replacing one top-level section
// @Summary Save one section of site data
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param section path string true "Section name"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/data/{section} [put]
func (h *DocumentHandler) SaveSection(w http.ResponseWriter, r *http.Request) {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	doc, err := h.documentUsecase.SaveSection(r.Context(), mux.Vars(r)["section"], raw)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnknownSection):
			response.BadRequest(w, "Unknown section")
		case errors.Is(err, usecase.ErrInvalidSection):
			response.BadRequest(w, "Invalid section content")
		default:
			response.ServerError(w, "Failed to save section", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Section saved successfully", doc)
}
