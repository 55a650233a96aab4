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

type TeamHandler struct {
	teamUsecase usecase.TeamUsecase
	validator      *validator.CustomValidator
}

func NewTeamHandler(teamUsecase usecase.TeamUsecase, validator *validator.CustomValidator) *TeamHandler {
	return &TeamHandler{
		teamUsecase: teamUsecase,
		validator:      validator,
	}
}

// GetAll handles listing team members
// @Summary List team members
// @Tags Team
// @Produce json
// @Param active query bool false "Only active team members"
// @Success 200 {object} response.Response
// @Router /team [get]
func (h *TeamHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	members, err := h.teamUsecase.List(r.Context(), dto.TeamListQuery{
		ActiveOnly: queryTrue(r, "active"),
	})
	if err != nil {
		response.ServerError(w, "Failed to get team members", err)
		return
	}

	response.Success(w, http.StatusOK, "Team members retrieved successfully", members)
}

// GetByID handles getting a team member by ID
// @Summary Get team member by ID
// @Tags Team
// @Produce json
// @Param id path string true "Team member ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /team/{id} [get]
func (h *TeamHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	member, err := h.teamUsecase.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		switch err {
		case usecase.ErrTeamMemberNotFound:
			response.NotFound(w, "Team member not found")
		default:
			response.ServerError(w, "Failed to get team member", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Team member retrieved successfully", member)
}

// Create handles team member creation
// @Summary Create a new team member
// @Tags Team
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTeamMemberRequest true "Create Team Member Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /team [post]
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTeamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	member, err := h.teamUsecase.Create(r.Context(), &req)
	if err != nil {
		response.ServerError(w, "Failed to create team member", err)
		return
	}

	response.Success(w, http.StatusCreated, "Team member created successfully", member)
}

// Update handles team member update
// @Summary Update a team member
// @Tags Team
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Team member ID"
// @Param request body dto.UpdateTeamMemberRequest true "Update Team Member Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /team/{id} [put]
func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateTeamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	member, err := h.teamUsecase.Update(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		switch err {
		case usecase.ErrTeamMemberNotFound:
			response.NotFound(w, "Team member not found")
		default:
			response.ServerError(w, "Failed to update team member", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Team member updated successfully", member)
}

// Delete handles team member deletion
// @Summary Delete a team member
// @Tags Team
// @Security BearerAuth
// @Produce json
// @Param id path string true "Team member ID"
// @Success 200 {object} response.Response
// @Router /team/{id} [delete]
func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.teamUsecase.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		response.ServerError(w, "Failed to delete team member", err)
		return
	}

	response.Success(w, http.StatusOK, "Team member deleted successfully", nil)
}
