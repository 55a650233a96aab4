package handler

import (
	"encoding/json"
	"net/http"

	"practice-site/internal/delivery/dto"
	"practice-site/internal/usecase"
	"practice-site/pkg/response"
	"practice-site/pkg/validator"
)

type PracticeHandler struct {
	practiceUsecase usecase.PracticeUsecase
	validator       *validator.CustomValidator
}

func NewPracticeHandler(practiceUsecase usecase.PracticeUsecase, validator *validator.CustomValidator) *PracticeHandler {
	return &PracticeHandler{
		practiceUsecase: practiceUsecase,
		validator:       validator,
	}
}

// GetPractice handles getting the practice profile
// @Summary Get practice information
// @Tags Practice
// @Produce json
// @Success 200 {object} response.Response
// @Router /practice [get]
func (h *PracticeHandler) GetPractice(w http.ResponseWriter, r *http.Request) {
	practice, err := h.practiceUsecase.GetPractice(r.Context())
	if err != nil {
		response.ServerError(w, "Failed to get practice information", err)
		return
	}

	response.Success(w, http.StatusOK, "Practice information retrieved successfully", practice)
}

// GetStatus reports whether the practice profile still contains placeholders
// @Summary Get practice configuration status
// @Tags Practice
// @Produce json
// @Success 200 {object} response.Response
// @Router /practice/status [get]
func (h *PracticeHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.practiceUsecase.GetStatus(r.Context())
	if err != nil {
		response.ServerError(w, "Failed to get practice status", err)
		return
	}

	response.Success(w, http.StatusOK, "Practice status retrieved successfully", status)
}

// UpdatePractice handles a partial update of the practice profile
// @Summary Update practice information
// @Tags Practice
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdatePracticeRequest true "Update Practice Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /practice [put]
func (h *PracticeHandler) UpdatePractice(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdatePracticeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	practice, err := h.practiceUsecase.UpdatePractice(r.Context(), &req)
	if err != nil {
		response.ServerError(w, "Failed to update practice information", err)
		return
	}

	response.Success(w, http.StatusOK, "Practice information updated successfully", practice)
}

func (h *PracticeHandler) GetUI(w http.ResponseWriter, r *http.Request) {
	ui, err := h.practiceUsecase.GetUI(r.Context())
	if err != nil {
		response.ServerError(w, "Failed to get UI text", err)
		return
	}

	response.Success(w, http.StatusOK, "UI text retrieved successfully", ui)
}

func (h *PracticeHandler) ReplaceUI(w http.ResponseWriter, r *http.Request) {
	var ui map[string]any
	if err := json.NewDecoder(r.Body).Decode(&ui); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	updated, err := h.practiceUsecase.ReplaceUI(r.Context(), ui)
	if err != nil {
		response.ServerError(w, "Failed to update UI text", err)
		return
	}

	response.Success(w, http.StatusOK, "UI text updated successfully", updated)
}
