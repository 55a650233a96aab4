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

type ContactHandler struct {
	contactUsecase usecase.ContactUsecase
	validator      *validator.CustomValidator
}

func NewContactHandler(contactUsecase usecase.ContactUsecase, validator *validator.CustomValidator) *ContactHandler {
	return &ContactHandler{
		contactUsecase: contactUsecase,
		validator:      validator,
	}
}

// Create handles a public appointment request
// @Summary Submit an appointment request
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.CreateContactRequest true "Contact Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /contact [post]
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	contact, err := h.contactUsecase.Create(r.Context(), &req)
	if err != nil {
		response.ServerError(w, "Failed to submit appointment request", err)
		return
	}

	response.Success(w, http.StatusCreated, "Appointment request submitted successfully", contact)
}

// GetAll handles listing contact submissions
// @Summary List contact submissions
// @Tags Contact
// @Security BearerAuth
// @Produce json
// @Param status query string false "Status filter"
// @Param priority query string false "Priority filter"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Router /contact [get]
func (h *ContactHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	query := dto.ContactListQuery{
		Status:   r.URL.Query().Get("status"),
		Priority: r.URL.Query().Get("priority"),
		Page:     queryInt(r, "page"),
		Limit:    queryInt(r, "limit"),
	}

	contacts, pagination, err := h.contactUsecase.List(r.Context(), query)
	if err != nil {
		response.ServerError(w, "Failed to get contacts", err)
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Contacts retrieved successfully", contacts, paginationMeta(pagination))
}

func (h *ContactHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.contactUsecase.Stats(r.Context())
	if err != nil {
		response.ServerError(w, "Failed to get contact statistics", err)
		return
	}

	response.Success(w, http.StatusOK, "Contact statistics retrieved successfully", stats)
}

func (h *ContactHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	contact, err := h.contactUsecase.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		switch err {
		case usecase.ErrContactNotFound:
			response.NotFound(w, "Contact not found")
		default:
			response.ServerError(w, "Failed to get contact", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Contact retrieved successfully", contact)
}

// Update handles status and follow-up changes to a submission
// @Summary Update a contact submission
// @Tags Contact
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param request body dto.UpdateContactRequest true "Update Contact Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /contact/{id} [put]
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	contact, err := h.contactUsecase.Update(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		switch err {
		case usecase.ErrContactNotFound:
			response.NotFound(w, "Contact not found")
		default:
			response.ServerError(w, "Failed to update contact", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Contact updated successfully", contact)
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.contactUsecase.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		response.ServerError(w, "Failed to delete contact", err)
		return
	}

	response.Success(w, http.StatusOK, "Contact deleted successfully", nil)
}
